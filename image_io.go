package vglite

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
)

// FromImage creates a canonical buffer holding img, converted to
// premultiplied BGRA8888.
func (a *Allocator) FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	b, err := a.Allocate(bounds.Dx(), bounds.Dy(), CanonicalFormat)
	if err != nil {
		return nil, err
	}

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		xdraw.Draw(rgba, rgba.Bounds(), img, bounds.Min, xdraw.Src)
	}
	if err := b.CopyFromImage(rgba); err != nil {
		return nil, err
	}
	return b, nil
}

// LoadPNG decodes a PNG file into a canonical buffer.
func (a *Allocator) LoadPNG(path string) (*Buffer, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("vglite: load %s: %w", path, err)
	}
	return a.FromImage(img)
}

// EncodePNG writes a canonical buffer to w as PNG.
func (b *Buffer) EncodePNG(w io.Writer) error {
	img, err := b.ToImage()
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SavePNG saves a canonical buffer to a PNG file.
func (b *Buffer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
