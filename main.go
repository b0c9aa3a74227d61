package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/afero"
)

const appName = "iv"

var debugMode = os.Getenv("IV_DEBUG") != ""

func debugLog(format string, args ...any) {
	if debugMode {
		log.Printf("Debug: "+format, args...)
	}
}

func run() error {
	flag.Parse()

	config := loadConfig()
	fsys := afero.NewOsFs()

	if err := InitGraphics(); err != nil {
		return fmt.Errorf("init graphics: %w", err)
	}

	set := NewImageSet(fsys, GetSortStrategy(config.SortMethod), collectImages(flag.Args()))
	cache := NewTextureCache(NewFileTextureLoader(fsys))
	// The drawable resource is released first on every exit path; the
	// surface, window, and subsystem go down inside RunGame's return.
	defer cache.Destroy()

	viewport := &Viewport{Width: config.WindowWidth, Height: config.WindowHeight}
	renderer := NewRenderer(viewport, cache, set)
	if config.ShowInfo {
		renderer.ToggleInfo()
	}
	dispatcher := NewDispatcher(set, cache, renderer, viewport, ebitenWindow{})
	input := NewInputHandler(NewKeybindingManager(config.Keybindings))

	ebiten.SetWindowTitle(appName)
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(NewGame(dispatcher, renderer, input, viewport))
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
