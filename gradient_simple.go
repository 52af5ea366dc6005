package vglite

import "fmt"

const (
	// MaxGradientStops is the largest number of stops Gradient.Set accepts.
	MaxGradientStops = 16

	// GradientWidth is the number of levels of a Gradient image.
	GradientWidth = 256
)

// Gradient is the 256-level linear gradient. Stops are integer positions in
// [0, 255] with packed colors, and Update writes one color per level into a
// 256x1 BGRA8888 image.
type Gradient struct {
	// Allocator creates the gradient image. Nil uses a default Allocator.
	Allocator *Allocator

	colors []Color
	stops  []uint32
	matrix Matrix
	image  *Buffer
}

// NewGradient creates an uninitialized gradient with an identity matrix.
// Call Init before Update.
func NewGradient() *Gradient {
	return &Gradient{matrix: Identity()}
}

// Init allocates the gradient image and resets the stops.
func (g *Gradient) Init() error {
	img, err := allocatorOrDefault(g.Allocator).Allocate(GradientWidth, 1, FormatBGRA8888)
	if err != nil {
		return fmt.Errorf("vglite: init gradient: %w", err)
	}
	if g.image != nil {
		_ = g.image.Free()
	}
	g.image = img
	g.colors, g.stops = nil, nil
	return nil
}

// Set validates and stores the stops.
//
// Stops of 256 or above are dropped. A stop equal to the last kept stop
// replaces its color and a smaller stop is dropped. An empty list or more
// than MaxGradientStops entries leaves no stops, which Update renders as
// black to white.
func (g *Gradient) Set(colors []Color, stops []uint32) error {
	if len(colors) != len(stops) {
		return fmt.Errorf("vglite: set gradient: %d colors for %d stops: %w",
			len(colors), len(stops), ErrInvalidArgument)
	}
	g.colors, g.stops = nil, nil
	if len(stops) == 0 || len(stops) > MaxGradientStops {
		return nil
	}
	g.stops = make([]uint32, 0, len(stops))
	g.colors = make([]Color, 0, len(stops))

	for i, s := range stops {
		if s >= GradientWidth {
			continue
		}
		n := len(g.stops)
		switch {
		case n == 0 || s > g.stops[n-1]:
			g.stops = append(g.stops, s)
			g.colors = append(g.colors, colors[i])
		case s == g.stops[n-1]:
			g.colors[n-1] = colors[i]
		}
	}
	return nil
}

// Stops returns the accepted stops and their colors.
func (g *Gradient) Stops() ([]uint32, []Color) {
	return g.stops, g.colors
}

// Update fills the gradient image from the stops. Levels before the first
// stop take its color, levels between stops are interpolated with truncating
// integer arithmetic, and levels after the last stop take its color.
func (g *Gradient) Update() error {
	if g.image == nil {
		return fmt.Errorf("vglite: update gradient: not initialized: %w", ErrInvalidArgument)
	}
	stops, colors := g.stops, g.colors
	if len(stops) == 0 {
		stops, colors = defaultGradientStops()
	}

	levels := gradientLevels(stops, colors)
	for i, c := range levels {
		putColor(g.image.Memory[i*4:], c)
	}
	return nil
}

// defaultGradientStops is the black to white ramp used when no stops are set.
func defaultGradientStops() ([]uint32, []Color) {
	return []uint32{0, GradientWidth - 1}, []Color{Black, White}
}

// gradientLevels computes the color of every level.
func gradientLevels(stops []uint32, colors []Color) [GradientWidth]Color {
	var out [GradientWidth]Color
	first := stops[0]
	for i := uint32(0); i < first; i++ {
		out[i] = colors[0]
	}

	for i := 0; i < len(stops)-1; i++ {
		s0, s1 := stops[i], stops[i+1]
		c0, c1 := colors[i], colors[i+1]
		out[s0] = c0
		ds := int32(s1 - s0)
		for j := int32(1); j < ds; j++ {
			out[s0+uint32(j)] = ARGB(
				lerpChannel(c0.A(), c1.A(), j, ds),
				lerpChannel(c0.R(), c1.R(), j, ds),
				lerpChannel(c0.G(), c1.G(), j, ds),
				lerpChannel(c0.B(), c1.B(), j, ds),
			)
		}
	}

	last := len(stops) - 1
	for i := stops[last]; i < GradientWidth; i++ {
		out[i] = colors[last]
	}
	return out
}

// lerpChannel returns c0 + (c1-c0)*j/ds with truncation toward zero.
func lerpChannel(c0, c1 uint8, j, ds int32) uint8 {
	return uint8(int32(c0) + (int32(c1)-int32(c0))*j/ds)
}

// Clear releases the gradient image and resets the stops.
func (g *Gradient) Clear() error {
	g.colors, g.stops = nil, nil
	if g.image == nil {
		return nil
	}
	err := g.image.Free()
	g.image = nil
	return err
}

// Matrix returns the gradient transform.
func (g *Gradient) Matrix() *Matrix {
	return &g.matrix
}

// Image returns the gradient image, or nil before Init.
func (g *Gradient) Image() *Buffer {
	return g.image
}

// colorStops returns the stops as paint stops with offsets in [0, 1].
func (g *Gradient) colorStops() []ColorStop {
	stops, colors := g.stops, g.colors
	if len(stops) == 0 {
		stops, colors = defaultGradientStops()
	}
	out := make([]ColorStop, len(stops))
	for i, s := range stops {
		out[i] = ColorStop{Offset: float32(s) / 255, Color: colors[i]}
	}
	return out
}
