package main

import (
	"io/fs"
	"path/filepath"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
)

// InputHandler translates one frame's polled input into dispatcher events.
type InputHandler struct {
	keybindingManager *KeybindingManager
}

// NewInputHandler creates a new InputHandler
func NewInputHandler(keybindingManager *KeybindingManager) *InputHandler {
	return &InputHandler{
		keybindingManager: keybindingManager,
	}
}

// PollEvents gathers the events raised by this frame's input. Order is
// fixed: drops first, then navigation, then toggles, then exit.
func (h *InputHandler) PollEvents() []Event {
	var events []Event

	if path := droppedPath(); path != "" {
		events = append(events, Event{Kind: EventDropFile, Path: path})
	}
	if h.keybindingManager.CheckAction("previous") {
		events = append(events, Event{Kind: EventKeyPrev})
	}
	if h.keybindingManager.CheckAction("next") {
		events = append(events, Event{Kind: EventKeyNext})
	}
	if h.keybindingManager.CheckAction("info") {
		events = append(events, Event{Kind: EventToggleInfo})
	}
	if h.keybindingManager.CheckAction("exit") {
		events = append(events, Event{Kind: EventQuit})
	}

	return events
}

// droppedPath returns the OS path of the first regular file in this frame's
// drop, or "" when nothing was dropped. A dropped directory surfaces
// through its first contained file; the rescan resolves the containing
// directory either way.
func droppedPath() string {
	dropped := ebiten.DroppedFiles()
	if dropped == nil {
		return ""
	}

	var first string
	err := fs.WalkDir(dropped, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		first = osPathFromFS(path)
		return fs.SkipAll
	})
	if err != nil {
		debugLog("walk dropped files: %v", err)
	}
	return first
}

// osPathFromFS converts a path from ebiten's dropped-files FS back into an
// OS path. The FS strips the leading separator on Unix.
func osPathFromFS(p string) string {
	if runtime.GOOS == "windows" {
		return filepath.FromSlash(p)
	}
	return string(filepath.Separator) + filepath.FromSlash(p)
}
