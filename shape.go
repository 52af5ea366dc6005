package vglite

// PathElement represents a single decoded path primitive.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Rect is an axis-aligned rectangle given by origin and size.
type Rect struct {
	X, Y, Width, Height float32
}

// Shape records the primitives of a decoded path. It implements PathSink.
type Shape struct {
	elements []PathElement
	clip     Rect
	hasClip  bool
}

// NewShape creates an empty shape.
func NewShape() *Shape {
	return &Shape{elements: make([]PathElement, 0, 16)}
}

// ShapeFromPath decodes p into a new Shape.
func ShapeFromPath(p *Path, opts DecodeOptions) (*Shape, error) {
	s := NewShape()
	if err := DecodePath(p, s, opts); err != nil {
		return nil, err
	}
	return s, nil
}

// RectShape returns a closed rectangle with no clip.
func RectShape(r Rect) *Shape {
	s := NewShape()
	s.MoveTo(r.X, r.Y)
	s.LineTo(r.X+r.Width, r.Y)
	s.LineTo(r.X+r.Width, r.Y+r.Height)
	s.LineTo(r.X, r.Y+r.Height)
	s.Close()
	return s
}

// MoveTo records the start of a subpath.
func (s *Shape) MoveTo(x, y float32) {
	s.elements = append(s.elements, MoveTo{Point: Pt(x, y)})
}

// LineTo records a line.
func (s *Shape) LineTo(x, y float32) {
	s.elements = append(s.elements, LineTo{Point: Pt(x, y)})
}

// CubicTo records a cubic curve.
func (s *Shape) CubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	s.elements = append(s.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
}

// Close records the end of a subpath.
func (s *Shape) Close() {
	s.elements = append(s.elements, Close{})
}

// ClipRect records the clip rectangle.
func (s *Shape) ClipRect(x, y, w, h float32) {
	s.clip = Rect{X: x, Y: y, Width: w, Height: h}
	s.hasClip = true
}

// Elements returns the recorded primitives.
func (s *Shape) Elements() []PathElement {
	return s.elements
}

// Clip returns the clip rectangle and whether one was recorded.
func (s *Shape) Clip() (Rect, bool) {
	return s.clip, s.hasClip
}

// Subpaths splits the shape at every MoveTo.
func (s *Shape) Subpaths() []*Shape {
	var out []*Shape
	var cur *Shape
	for _, elem := range s.elements {
		if _, ok := elem.(MoveTo); ok || cur == nil {
			cur = NewShape()
			out = append(out, cur)
		}
		cur.elements = append(cur.elements, elem)
	}
	return out
}
