package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const infoFontSize = 16.0

var (
	colorWhite = color.RGBA{255, 255, 255, 255}

	// Background color for the semi-transparent info overlay
	bgColorLight = color.RGBA{0, 0, 0, 128}
)

// Renderer draws the held texture scaled to fit the viewport, plus the
// optional info overlay. All placement decisions live in FitRect.
type Renderer struct {
	viewport *Viewport
	cache    *TextureCache
	set      *ImageSet

	showInfo bool
}

// NewRenderer creates a new Renderer
func NewRenderer(viewport *Viewport, cache *TextureCache, set *ImageSet) *Renderer {
	return &Renderer{
		viewport: viewport,
		cache:    cache,
		set:      set,
	}
}

// ToggleInfo shows or hides the info overlay.
func (r *Renderer) ToggleInfo() {
	r.showInfo = !r.showInfo
}

// Draw renders the entire screen
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Clear()

	tex := r.cache.Image()
	if tex == nil {
		return
	}

	iw, ih := tex.Bounds().Dx(), tex.Bounds().Dy()
	x, y, w, h := FitRect(iw, ih, r.viewport.Width, r.viewport.Height)

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Scale(float64(w)/float64(iw), float64(h)/float64(ih))
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(tex, op)

	if r.showInfo {
		r.drawInfoDisplay(screen)
	}
}

func (r *Renderer) drawInfoDisplay(screen *ebiten.Image) {
	if globalFontSource == nil || r.set.Len() == 0 {
		return
	}

	infoFont := &text.GoTextFace{
		Source: globalFontSource,
		Size:   infoFontSize,
	}

	infoText := fmt.Sprintf("%s  %d / %d", r.set.CurrentName(), r.set.Current()+1, r.set.Len())

	// Measure text dimensions
	textWidth, textHeight := text.Measure(infoText, infoFont, 0)

	// Position at bottom right corner
	padding := 10.0
	textX := float64(screen.Bounds().Dx()) - textWidth - padding
	textY := float64(screen.Bounds().Dy()) - textHeight - padding

	// Semi-transparent background
	bgPadding := 5.0
	DrawFilledRect(screen, textX-bgPadding, textY-bgPadding, textWidth+bgPadding*2, textHeight+bgPadding*2, bgColorLight)

	DrawText(screen, infoText, infoFont, textX, textY, colorWhite)
}
