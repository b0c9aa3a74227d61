package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/afero"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// TextureLoader decodes the image at path into a drawable texture.
type TextureLoader interface {
	Load(path string) (*ebiten.Image, error)
}

// FileTextureLoader loads textures from a filesystem.
type FileTextureLoader struct {
	fs afero.Fs
}

func NewFileTextureLoader(fsys afero.Fs) *FileTextureLoader {
	return &FileTextureLoader{fs: fsys}
}

func (l *FileTextureLoader) Load(path string) (*ebiten.Image, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// TextureCache holds the decoded texture for the currently selected entry.
// It is a single slot: the previous texture is deallocated before a new one
// is assigned.
type TextureCache struct {
	loader TextureLoader
	tex    *ebiten.Image
}

func NewTextureCache(loader TextureLoader) *TextureCache {
	return &TextureCache{loader: loader}
}

// Image returns the held texture, or nil when nothing has been loaded yet.
func (c *TextureCache) Image() *ebiten.Image {
	return c.tex
}

// Refresh reloads the texture when the set's selection has moved since the
// last load. A clean selection reuses the held texture with no decode, so
// pure re-renders (resizes) cost nothing. A load failure is fatal to the
// caller; the cache is left unchanged in that case.
func (c *TextureCache) Refresh(set *ImageSet) error {
	if set.Len() == 0 {
		return nil
	}
	if !set.Dirty() && c.tex != nil {
		return nil
	}

	img, err := c.loader.Load(set.CurrentPath())
	if err != nil {
		return err
	}

	if c.tex != nil {
		c.tex.Deallocate()
	}
	c.tex = img
	set.MarkClean()
	return nil
}

// Destroy releases the held texture. Safe to call more than once; Refresh
// after Destroy loads again.
func (c *TextureCache) Destroy() {
	if c.tex != nil {
		c.tex.Deallocate()
		c.tex = nil
	}
}
