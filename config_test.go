package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name           string
		configJSON     string
		expectedWidth  int
		expectedHeight int
		expectedSort   int
	}{
		{
			name: "Valid config",
			configJSON: `{
				"window_width": 1000,
				"window_height": 800,
				"sort_method": 1
			}`,
			expectedWidth:  1000,
			expectedHeight: 800,
			expectedSort:   SortNatural,
		},
		{
			name: "Width too small",
			configJSON: `{
				"window_width": 200,
				"window_height": 600,
				"sort_method": 0
			}`,
			expectedWidth:  defaultWidth,
			expectedHeight: 600,
			expectedSort:   SortEntryOrder,
		},
		{
			name: "Height too small",
			configJSON: `{
				"window_width": 800,
				"window_height": 100,
				"sort_method": 0
			}`,
			expectedWidth:  800,
			expectedHeight: defaultHeight,
			expectedSort:   SortEntryOrder,
		},
		{
			name: "Invalid sort method",
			configJSON: `{
				"window_width": 800,
				"window_height": 600,
				"sort_method": 9
			}`,
			expectedWidth:  800,
			expectedHeight: 600,
			expectedSort:   SortEntryOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			configPath := filepath.Join(tempDir, ".iv.json")

			err := os.WriteFile(configPath, []byte(tt.configJSON), 0644)
			if err != nil {
				t.Fatalf("Failed to write test config: %v", err)
			}

			config := loadConfigFromPath(configPath)

			if config.WindowWidth != tt.expectedWidth {
				t.Errorf("Expected width %d, got %d", tt.expectedWidth, config.WindowWidth)
			}
			if config.WindowHeight != tt.expectedHeight {
				t.Errorf("Expected height %d, got %d", tt.expectedHeight, config.WindowHeight)
			}
			if config.SortMethod != tt.expectedSort {
				t.Errorf("Expected sort method %d, got %d", tt.expectedSort, config.SortMethod)
			}
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	// Test with non-existent config file
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.json")

	config := loadConfigFromPath(configPath)

	expectedConfig := Config{
		WindowWidth:  defaultWidth,
		WindowHeight: defaultHeight,
		SortMethod:   SortEntryOrder,
		ShowInfo:     false,
		Keybindings:  getDefaultKeybindings(),
	}

	if !reflect.DeepEqual(config, expectedConfig) {
		t.Errorf("Default config mismatch.\nExpected: %+v\nGot: %+v", expectedConfig, config)
	}
}

func TestLoadConfigDamagedFileFallsBack(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, ".iv.json")

	if err := os.WriteFile(configPath, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	config := loadConfigFromPath(configPath)

	if config.WindowWidth != defaultWidth || config.WindowHeight != defaultHeight {
		t.Errorf("Damaged config did not fall back to defaults: %+v", config)
	}
}

func TestConfigKeybindingFallbacks(t *testing.T) {
	tests := []struct {
		name       string
		configJSON string
		wantAction string
		wantKeys   []string
	}{
		{
			name:       "Missing actions filled with defaults",
			configJSON: `{"keybindings": {"next": ["KeyN"]}}`,
			wantAction: "exit",
			wantKeys:   []string{"Escape", "KeyQ"},
		},
		{
			name:       "Unknown key falls back entirely",
			configJSON: `{"keybindings": {"next": ["KeyPedal"]}}`,
			wantAction: "next",
			wantKeys:   []string{"ArrowRight", "Space"},
		},
		{
			name:       "Conflicting keys fall back entirely",
			configJSON: `{"keybindings": {"next": ["KeyX"], "previous": ["KeyX"]}}`,
			wantAction: "previous",
			wantKeys:   []string{"ArrowLeft", "Backspace"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			configPath := filepath.Join(tempDir, ".iv.json")

			if err := os.WriteFile(configPath, []byte(tt.configJSON), 0644); err != nil {
				t.Fatalf("Failed to write test config: %v", err)
			}

			config := loadConfigFromPath(configPath)

			if !reflect.DeepEqual(config.Keybindings[tt.wantAction], tt.wantKeys) {
				t.Errorf("Expected %s -> %v, got %v", tt.wantAction, tt.wantKeys, config.Keybindings[tt.wantAction])
			}
		})
	}
}

func TestValidateKeybindings(t *testing.T) {
	tests := []struct {
		name        string
		keybindings map[string][]string
		wantErr     bool
	}{
		{"Defaults are valid", getDefaultKeybindings(), false},
		{"Modifier combination", map[string][]string{"next": {"Shift+KeyN"}}, false},
		{"Unknown key", map[string][]string{"next": {"KeyPedal"}}, true},
		{"Unknown modifier", map[string][]string{"next": {"Hyper+KeyN"}}, true},
		{"Conflict across actions", map[string][]string{"next": {"KeyX"}, "exit": {"KeyX"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateKeybindings(tt.keybindings)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateKeybindings() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
