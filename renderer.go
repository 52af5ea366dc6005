package vglite

import (
	"fmt"

	"github.com/gogpu/vglite/internal/blend"
)

// FillRule selects how overlapping contours of a shape are filled.
type FillRule uint8

const (
	// FillNonZero fills every point with a non-zero winding number.
	FillNonZero FillRule = iota
	// FillEvenOdd fills points covered an odd number of times.
	FillEvenOdd
)

// BlendMode is a VGLite blend mode.
type BlendMode uint8

const (
	BlendNone BlendMode = iota
	BlendSrcOver
	BlendDstOver
	BlendSrcIn
	BlendDstIn
	BlendMultiply
	BlendScreen
	BlendDarken
	BlendLighten
	BlendAdditive
	BlendSubtract
	BlendNormalLVGL
	BlendAdditiveLVGL
	BlendSubtractLVGL
	BlendMultiplyLVGL
)

var blendModeNames = [...]string{
	BlendNone:         "None",
	BlendSrcOver:      "SrcOver",
	BlendDstOver:      "DstOver",
	BlendSrcIn:        "SrcIn",
	BlendDstIn:        "DstIn",
	BlendMultiply:     "Multiply",
	BlendScreen:       "Screen",
	BlendDarken:       "Darken",
	BlendLighten:      "Lighten",
	BlendAdditive:     "Additive",
	BlendSubtract:     "Subtract",
	BlendNormalLVGL:   "NormalLVGL",
	BlendAdditiveLVGL: "AdditiveLVGL",
	BlendSubtractLVGL: "SubtractLVGL",
	BlendMultiplyLVGL: "MultiplyLVGL",
}

// String returns the blend mode name.
func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", uint8(m))
}

// compositeMode maps a VGLite blend mode to the compositing operator the
// software renderer applies. Modes without a counterpart draw as source-over.
func (m BlendMode) compositeMode() blend.Mode {
	switch m {
	case BlendDstIn:
		return blend.ModeDestinationIn
	case BlendScreen:
		return blend.ModeScreen
	case BlendAdditive, BlendAdditiveLVGL:
		return blend.ModePlus
	case BlendMultiply, BlendMultiplyLVGL:
		return blend.ModeMultiply
	case BlendDarken:
		return blend.ModeDarken
	case BlendLighten:
		return blend.ModeLighten
	default:
		return blend.ModeSourceOver
	}
}

// Filter selects image sampling for blits.
type Filter uint8

const (
	FilterPoint Filter = iota
	FilterLinear
	FilterBiLinear
)

// LinearPaint fills a shape with a linear gradient. The gradient is
// positioned by Transform in the shape's coordinate space.
type LinearPaint struct {
	X0, Y0, X1, Y1 float32
	Transform      Matrix
	Stops          []ColorStop
	Spread         SpreadMode
}

// ShapeCommand fills a shape with a solid color or a linear gradient.
type ShapeCommand struct {
	Shape     *Shape
	Transform Matrix
	FillRule  FillRule
	Blend     BlendMode
	Color     Color

	// Gradient, if set, replaces Color.
	Gradient *LinearPaint
}

// PictureCommand draws a canonical image.
type PictureCommand struct {
	// Image holds premultiplied BGRA8888 pixels.
	Image     *Buffer
	Transform Matrix
	Blend     BlendMode
	Filter    Filter
	Opacity   uint8

	// Clip, if set, masks the picture. Its points are mapped by
	// ClipTransform and filled with ClipFillRule.
	Clip          *Shape
	ClipTransform Matrix
	ClipFillRule  FillRule
}

// Renderer executes drawing commands against a canonical target buffer.
//
// Commands are queued by the Push methods and rendered by Sync. A Renderer
// must copy any pixel data it needs from a PictureCommand before returning
// from PushPicture.
type Renderer interface {
	// SetTarget selects the buffer subsequent commands draw into.
	SetTarget(target *Buffer) error

	// PushShape queues a shape fill.
	PushShape(cmd ShapeCommand) error

	// PushPicture queues an image draw.
	PushPicture(cmd PictureCommand) error

	// Sync renders all queued commands and empties the queue.
	Sync() error
}
