package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts the ebiten frame loop into a stream of dispatcher events:
// shown on the first frame, resized when the layout size moves away from
// the viewport, then whatever this frame's input raised. Each event is
// processed to completion before the next.
type Game struct {
	dispatcher *Dispatcher
	renderer   *Renderer
	input      *InputHandler
	viewport   *Viewport

	layoutW int
	layoutH int
	shown   bool
}

func NewGame(dispatcher *Dispatcher, renderer *Renderer, input *InputHandler, viewport *Viewport) *Game {
	return &Game{
		dispatcher: dispatcher,
		renderer:   renderer,
		input:      input,
		viewport:   viewport,
	}
}

func (g *Game) Update() error {
	var events []Event

	if !g.shown {
		g.shown = true
		events = append(events, Event{Kind: EventShown})
	}
	if g.layoutW != g.viewport.Width || g.layoutH != g.viewport.Height {
		events = append(events, Event{Kind: EventResized, Width: g.layoutW, Height: g.layoutH})
	}
	events = append(events, g.input.PollEvents()...)

	for _, ev := range events {
		if err := g.dispatcher.Dispatch(ev); err != nil {
			return err
		}
		if g.dispatcher.Quit() {
			return ebiten.Termination
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layoutW, g.layoutH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// ebitenWindow adapts the ebiten window to the WindowTitler collaborator.
type ebitenWindow struct{}

func (ebitenWindow) SetTitle(title string) {
	ebiten.SetWindowTitle(title)
}
