package vglite

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/vglite/internal/blend"
	"github.com/gogpu/vglite/internal/mask"
)

// SoftwareRenderer is the CPU Renderer used by default.
//
// Shapes are rasterized with golang.org/x/image/vector, pictures are
// resampled with golang.org/x/image/draw and the results are composited into
// the target with premultiplied 8-bit arithmetic. Commands are rendered in
// the order they were pushed.
type SoftwareRenderer struct {
	target *Buffer
	queue  []softwareCommand
	z      *vector.Rasterizer
	masks  *mask.Pool
}

// softwareCommand is one queued command. Exactly one of shape and picture is
// set.
type softwareCommand struct {
	shape   *ShapeCommand
	picture *PictureCommand
	pixels  *image.RGBA
}

// NewSoftwareRenderer creates a renderer with no target.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{masks: mask.NewPool(4)}
}

// SetTarget implements Renderer. Commands queued for a previous target are
// rendered into it first.
func (r *SoftwareRenderer) SetTarget(target *Buffer) error {
	if target == nil || target.Width <= 0 || target.Height <= 0 {
		return fmt.Errorf("vglite: set target: %w", ErrInvalidArgument)
	}
	if target.Format.TextureFormat() != r.TargetFormat() {
		return fmt.Errorf("vglite: set target %v: %w", target.Format, ErrNotSupported)
	}
	if len(target.Memory) < target.rowStride()*(target.Height-1)+target.Width*4 {
		return fmt.Errorf("vglite: set target: memory too small: %w", ErrInvalidArgument)
	}
	if r.target != nil && r.target != target && len(r.queue) > 0 {
		if err := r.Sync(); err != nil {
			return err
		}
	}
	r.target = target
	return nil
}

// TargetFormat returns the texture format of the buffers the renderer draws
// into and samples from.
func (r *SoftwareRenderer) TargetFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}

// Target returns the current target buffer.
func (r *SoftwareRenderer) Target() *Buffer {
	return r.target
}

// Pending returns the number of queued commands.
func (r *SoftwareRenderer) Pending() int {
	return len(r.queue)
}

// PushShape implements Renderer.
func (r *SoftwareRenderer) PushShape(cmd ShapeCommand) error {
	if r.target == nil {
		return fmt.Errorf("vglite: push shape: no target: %w", ErrOutOfResources)
	}
	if cmd.Shape == nil {
		return fmt.Errorf("vglite: push shape: nil shape: %w", ErrInvalidArgument)
	}
	if g := cmd.Gradient; g != nil && g.X0 == g.X1 && g.Y0 == g.Y1 {
		return fmt.Errorf("vglite: push shape: degenerate gradient: %w", ErrInvalidArgument)
	}
	r.queue = append(r.queue, softwareCommand{shape: &cmd})
	return nil
}

// PushPicture implements Renderer. The image pixels are copied before
// PushPicture returns.
func (r *SoftwareRenderer) PushPicture(cmd PictureCommand) error {
	if r.target == nil {
		return fmt.Errorf("vglite: push picture: no target: %w", ErrOutOfResources)
	}
	if cmd.Image == nil {
		return fmt.Errorf("vglite: push picture: nil image: %w", ErrInvalidArgument)
	}
	if cmd.Image.Format.TextureFormat() != r.TargetFormat() {
		return fmt.Errorf("vglite: push picture %v: %w", cmd.Image.Format, ErrUnsupportedFormat)
	}
	pixels, err := cmd.Image.ToImage()
	if err != nil {
		return fmt.Errorf("vglite: push picture: %w", err)
	}
	cmd.Image = nil
	r.queue = append(r.queue, softwareCommand{picture: &cmd, pixels: pixels})
	return nil
}

// Sync implements Renderer.
func (r *SoftwareRenderer) Sync() error {
	if len(r.queue) == 0 {
		return nil
	}
	if r.target == nil {
		r.queue = r.queue[:0]
		return fmt.Errorf("vglite: sync: no target: %w", ErrOutOfResources)
	}
	Logger().Debug("vglite: software sync", "commands", len(r.queue),
		"width", r.target.Width, "height", r.target.Height)

	for i := range r.queue {
		c := &r.queue[i]
		switch {
		case c.shape != nil:
			r.renderShape(c.shape)
		case c.picture != nil:
			r.renderPicture(c.picture, c.pixels)
		}
		r.queue[i] = softwareCommand{}
	}
	r.queue = r.queue[:0]
	return nil
}

func (r *SoftwareRenderer) renderShape(cmd *ShapeCommand) {
	cover := r.coverage(cmd.Shape, cmd.Transform, cmd.FillRule)
	defer r.masks.Put(cover)
	mode := cmd.Blend.compositeMode()
	t := r.target
	w, stride := t.Width, t.rowStride()

	if cmd.Gradient == nil {
		p := cmd.Color.Premultiplied()
		c := [4]byte{p.B, p.G, p.R, p.A}
		for y := 0; y < t.Height; y++ {
			cov := cover.Pix[y*cover.Stride : y*cover.Stride+w]
			blend.Solid(t.Memory[y*stride:y*stride+w*4], c, cov, w, mode)
		}
		return
	}

	g := cmd.Gradient
	inv, ok := cmd.Transform.Multiply(g.Transform).Invert()
	if !ok {
		Logger().Debug("vglite: gradient transform not invertible")
		return
	}
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	lenSq := dx*dx + dy*dy
	row := make([]byte, w*4)
	for y := 0; y < t.Height; y++ {
		cov := cover.Pix[y*cover.Stride : y*cover.Stride+w]
		for x := 0; x < w; x++ {
			if cov[x] == 0 {
				continue
			}
			q := inv.TransformPoint(Pt(float32(x)+0.5, float32(y)+0.5))
			s := ((q.X-g.X0)*dx + (q.Y-g.Y0)*dy) / lenSq
			c := colorAtOffset(g.Stops, s, g.Spread)
			px := row[x*4 : x*4+4]
			px[0], px[1], px[2], px[3] = packComponent(c[0]), packComponent(c[1]),
				packComponent(c[2]), packComponent(c[3])
		}
		blend.Span(t.Memory[y*stride:y*stride+w*4], row, cov, w, mode)
	}
}

func (r *SoftwareRenderer) renderPicture(cmd *PictureCommand, pixels *image.RGBA) {
	if _, ok := cmd.Transform.Invert(); !ok {
		Logger().Debug("vglite: picture transform not invertible")
		return
	}
	t := r.target
	w, stride := t.Width, t.rowStride()

	var sampler xdraw.Transformer = xdraw.BiLinear
	if cmd.Filter == FilterPoint {
		sampler = xdraw.NearestNeighbor
	}
	layer := image.NewRGBA(image.Rect(0, 0, w, t.Height))
	sampler.Transform(layer, cmd.Transform.Aff3(), pixels, pixels.Bounds(), xdraw.Src, nil)

	var clip *image.Alpha
	if cmd.Clip != nil {
		clip = r.coverage(cmd.Clip, cmd.ClipTransform, cmd.ClipFillRule)
		defer r.masks.Put(clip)
	}
	mode := cmd.Blend.compositeMode()
	row := make([]byte, w*4)
	cov := make([]byte, w)
	for y := 0; y < t.Height; y++ {
		swapRB(row, layer.Pix[y*layer.Stride:y*layer.Stride+w*4])
		for x := range cov {
			c := uint32(cmd.Opacity)
			if clip != nil {
				c = uint32(udiv255(c * uint32(clip.Pix[y*clip.Stride+x])))
			}
			cov[x] = uint8(c)
		}
		blend.Span(t.Memory[y*stride:y*stride+w*4], row, cov, w, mode)
	}
}

// coverage rasterizes s transformed by m into an alpha mask the size of the
// target. If s carries a clip rectangle, coverage outside the transformed
// rectangle is removed.
func (r *SoftwareRenderer) coverage(s *Shape, m Matrix, rule FillRule) *image.Alpha {
	w, h := r.target.Width, r.target.Height
	cover := r.masks.Get(w, h)

	subpaths := []*Shape{s}
	if rule == FillEvenOdd {
		subpaths = s.Subpaths()
	}
	if len(subpaths) <= 1 {
		r.rasterize(cover, s, m)
	} else {
		layer := r.masks.Get(w, h)
		for _, sub := range subpaths {
			clear(layer.Pix)
			r.rasterize(layer, sub, m)
			xorCoverage(cover.Pix, layer.Pix)
		}
		r.masks.Put(layer)
	}

	if clip, ok := s.Clip(); ok {
		box := r.masks.Get(w, h)
		r.rasterize(box, RectShape(clip), m)
		for i, c := range box.Pix {
			cover.Pix[i] = udiv255(uint32(cover.Pix[i]) * uint32(c))
		}
		r.masks.Put(box)
	}
	return cover
}

// rasterize accumulates the coverage of s transformed by m into dst. Every
// subpath is closed before it is filled.
func (r *SoftwareRenderer) rasterize(dst *image.Alpha, s *Shape, m Matrix) {
	w, h := dst.Rect.Dx(), dst.Rect.Dy()
	if r.z == nil {
		r.z = vector.NewRasterizer(w, h)
	} else {
		r.z.Reset(w, h)
	}
	z := r.z

	open := false
	for _, elem := range s.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			if open {
				z.ClosePath()
			}
			p := m.TransformPoint(e.Point)
			z.MoveTo(p.X, p.Y)
			open = true
		case LineTo:
			p := m.TransformPoint(e.Point)
			z.LineTo(p.X, p.Y)
			open = true
		case CubicTo:
			c1 := m.TransformPoint(e.Control1)
			c2 := m.TransformPoint(e.Control2)
			p := m.TransformPoint(e.Point)
			z.CubeTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
			open = true
		case Close:
			if open {
				z.ClosePath()
			}
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
}

// xorCoverage combines b into a so that doubly covered area cancels out.
func xorCoverage(a, b []byte) {
	for i := range a {
		x, y := int32(a[i]), int32(b[i])
		v := x + y - (2*x*y+127)/255
		if v < 0 {
			v = 0
		}
		a[i] = uint8(v)
	}
}
