package main

import "math"

// Viewport is the current drawable size in pixels. It is mutated only by
// resize events and read by the renderer.
type Viewport struct {
	Width  int
	Height int
}

// FitRect places an iw×ih image inside a vw×vh viewport: uniform
// aspect-preserving downscale when the image exceeds the viewport in either
// dimension, no upscaling ever, centered with integer division (odd
// differences land one pixel off-center, which is fine).
func FitRect(iw, ih, vw, vh int) (x, y, w, h int) {
	w, h = iw, ih
	if iw > vw || ih > vh {
		scale := math.Max(float64(iw)/float64(vw), float64(ih)/float64(vh))
		w = int(float64(iw) / scale)
		h = int(float64(ih) / scale)
	}
	x = (vw - w) / 2
	y = (vh - h) / 2
	return x, y, w, h
}
