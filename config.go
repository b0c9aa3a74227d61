package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Window size constants
const (
	defaultWidth  = 1200
	defaultHeight = 900
	minWidth      = 400
	minHeight     = 300
)

// Sort method constants
const (
	SortEntryOrder = 0 // Maintain enumeration order (no sort)
	SortNatural    = 1 // Natural sort order (e.g., file1, file2, file10)
	SortSimple     = 2 // Simple string sort (lexicographical)
)

type Config struct {
	WindowWidth  int                 `json:"window_width"`
	WindowHeight int                 `json:"window_height"`
	SortMethod   int                 `json:"sort_method"`
	ShowInfo     bool                `json:"show_info"`
	Keybindings  map[string][]string `json:"keybindings"`
}

func getConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "iv.json"
	}
	return filepath.Join(homeDir, ".iv.json")
}

func loadConfig() Config {
	return loadConfigFromPath(getConfigPath())
}

func defaultConfig() Config {
	return Config{
		WindowWidth:  defaultWidth,
		WindowHeight: defaultHeight,
		SortMethod:   SortEntryOrder, // Default: keep enumeration order
		ShowInfo:     false,
		Keybindings:  getDefaultKeybindings(),
	}
}

// loadConfigFromPath reads the config file and falls back to defaults for
// anything missing or out of range. The config is never written back.
func loadConfigFromPath(configPath string) Config {
	config := defaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Config file not found is not an error - use defaults
		return config
	}

	if err := json.Unmarshal(data, &config); err != nil {
		// Invalid config file - log warning and use defaults
		log.Printf("Warning: Invalid config file %s, using defaults: %v", configPath, err)
		return defaultConfig()
	}

	// Validate minimum size
	if config.WindowWidth < minWidth {
		config.WindowWidth = defaultWidth
	}
	if config.WindowHeight < minHeight {
		config.WindowHeight = defaultHeight
	}

	// Validate sort method
	if config.SortMethod < SortEntryOrder || config.SortMethod > SortSimple {
		config.SortMethod = SortEntryOrder
	}

	// Validate keybindings - ensure defaults exist for missing actions
	if config.Keybindings == nil {
		config.Keybindings = getDefaultKeybindings()
	} else {
		// Fill in missing keybindings with defaults
		defaults := getDefaultKeybindings()
		for action, defaultKeys := range defaults {
			if _, exists := config.Keybindings[action]; !exists {
				config.Keybindings[action] = defaultKeys
			}
		}

		if err := validateKeybindings(config.Keybindings); err != nil {
			log.Printf("Warning: Invalid keybindings detected, using defaults: %v", err)
			config.Keybindings = getDefaultKeybindings()
		}
	}

	return config
}

// validateKeybindings validates the keybindings configuration
func validateKeybindings(keybindings map[string][]string) error {
	// Check for valid key formats and detect conflicts
	keyToAction := make(map[string]string)
	validKeys := getValidKeyNames()

	for action, keys := range keybindings {
		for _, keyStr := range keys {
			if err := validateKeyString(keyStr, validKeys); err != nil {
				return fmt.Errorf("invalid key '%s' for action '%s': %v", keyStr, action, err)
			}

			if existingAction, exists := keyToAction[keyStr]; exists {
				return fmt.Errorf("key conflict: '%s' is bound to both '%s' and '%s'", keyStr, existingAction, action)
			}
			keyToAction[keyStr] = action
		}
	}

	return nil
}

// validateKeyString validates a single key string format
func validateKeyString(keyStr string, validKeys map[string]bool) error {
	parts := strings.Split(keyStr, "+")
	if len(parts) == 0 {
		return fmt.Errorf("empty key string")
	}

	// Last part should be the actual key
	keyName := parts[len(parts)-1]
	if !validKeys[keyName] {
		return fmt.Errorf("unknown key: %s", keyName)
	}

	// Check modifiers
	for i := 0; i < len(parts)-1; i++ {
		modifier := strings.ToLower(parts[i])
		if modifier != "shift" && modifier != "ctrl" && modifier != "alt" {
			return fmt.Errorf("unknown modifier: %s", parts[i])
		}
	}

	return nil
}

// getValidKeyNames returns a set of valid key names
func getValidKeyNames() map[string]bool {
	valid := make(map[string]bool)
	for name := range getKeyMapping() {
		valid[name] = true
	}
	return valid
}
