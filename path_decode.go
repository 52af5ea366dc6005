package vglite

import (
	"encoding/binary"
	"fmt"
	"math"
)

// PathSink receives the primitives decoded from a Path.
//
// All coordinates are in path space. ClipRect is called exactly once, after
// every other primitive, with the rectangle derived from the path bounds.
type PathSink interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	CubicTo(c1x, c1y, c2x, c2y, x, y float32)
	Close()
	ClipRect(x, y, w, h float32)
}

// DecodeOptions controls DecodePath.
type DecodeOptions struct {
	// Strict validates the whole stream before emitting anything. Unknown
	// opcodes and truncated records fail with ErrMalformedPath, arc opcodes
	// with ErrNotSupported.
	Strict bool
}

// controlKind records which curve type produced the last control point,
// for the smooth opcodes.
type controlKind uint8

const (
	controlNone controlKind = iota
	controlQuad
	controlCubic
)

// pathDecoder holds the pen state while walking an opcode stream.
type pathDecoder struct {
	path *Path
	sink PathSink
	slot int

	current Point
	start   Point
	control Point
	kind    controlKind
}

// DecodePath walks the opcode records of p and emits move, line, cubic and
// close primitives to sink, followed by the clip rectangle.
//
// Quadratic segments are raised to cubics. Relative opcodes are offsets from
// the current point. Arc opcodes and unknown opcodes are skipped along with
// their declared arguments. A truncated trailing record ends decoding. In
// strict mode the stream is validated first and nothing is emitted on
// failure.
func DecodePath(p *Path, sink PathSink, opts DecodeOptions) error {
	if p == nil || sink == nil {
		return fmt.Errorf("vglite: decode path: %w", ErrInvalidArgument)
	}
	if !p.Format.IsValid() {
		return fmt.Errorf("vglite: decode path: %v: %w", p.Format, ErrInvalidArgument)
	}
	if opts.Strict {
		if err := ValidatePath(p); err != nil {
			return err
		}
	}

	d := pathDecoder{path: p, sink: sink, slot: p.Format.Size()}
	d.run()
	sink.ClipRect(p.ClipRect())
	return nil
}

// ValidatePath checks that every record of p is a known, supported opcode
// with all of its arguments present.
func ValidatePath(p *Path) error {
	if p == nil || !p.Format.IsValid() {
		return fmt.Errorf("vglite: validate path: %w", ErrInvalidArgument)
	}
	slot := p.Format.Size()
	for off := 0; off < len(p.Data); {
		op := Opcode(p.Data[off])
		switch {
		case !op.IsKnown():
			return fmt.Errorf("vglite: path offset %d: %v: %w", off, op, ErrMalformedPath)
		case op.IsArc():
			return fmt.Errorf("vglite: path offset %d: %v: %w", off, op, ErrNotSupported)
		}
		next := off + (1+op.ArgCount())*slot
		if next > len(p.Data) {
			return fmt.Errorf("vglite: path offset %d: %v truncated: %w", off, op, ErrMalformedPath)
		}
		off = next
	}
	return nil
}

func (d *pathDecoder) run() {
	data := d.path.Data
	for off := 0; off < len(data); {
		op := Opcode(data[off])
		n := op.ArgCount()
		next := off + (1+n)*d.slot
		if next > len(data) {
			Logger().Debug("vglite: path truncated", "offset", off, "opcode", op.String())
			return
		}
		var args [6]float32
		for i := 0; i < n; i++ {
			args[i] = d.arg(off + (1+i)*d.slot)
		}
		d.apply(op, args[:n])
		off = next
	}
}

// arg reads the coordinate slot at byte offset off.
func (d *pathDecoder) arg(off int) float32 {
	b := d.path.Data[off:]
	switch d.path.Format {
	case DataS8:
		return float32(int8(b[0]))
	case DataS16:
		return float32(int16(binary.LittleEndian.Uint16(b)))
	case DataS32:
		return float32(int32(binary.LittleEndian.Uint32(b)))
	default:
		return math.Float32frombits(binary.LittleEndian.Uint32(b))
	}
}

// point returns the i-th coordinate pair of args, offset from the current
// point when rel is set.
func (d *pathDecoder) point(args []float32, i int, rel bool) Point {
	p := Pt(args[2*i], args[2*i+1])
	if rel {
		p = p.Add(d.current)
	}
	return p
}

func (d *pathDecoder) apply(op Opcode, args []float32) {
	rel := op.IsRelative()
	switch op {
	case OpEnd, OpClose:
		d.sink.Close()
		d.current = d.start
		d.kind = controlNone

	case OpMove, OpMoveRel:
		p := d.point(args, 0, rel)
		d.sink.MoveTo(p.X, p.Y)
		d.current, d.start = p, p
		d.kind = controlNone

	case OpLine, OpLineRel:
		d.lineTo(d.point(args, 0, rel))

	case OpHLine, OpHLineRel:
		x := args[0]
		if rel {
			x += d.current.X
		}
		d.lineTo(Pt(x, d.current.Y))

	case OpVLine, OpVLineRel:
		y := args[0]
		if rel {
			y += d.current.Y
		}
		d.lineTo(Pt(d.current.X, y))

	case OpQuad, OpQuadRel:
		q := d.point(args, 0, rel)
		p := d.point(args, 1, rel)
		d.quadTo(q, p)

	case OpSQuad, OpSQuadRel:
		q := d.current
		if d.kind == controlQuad {
			q = d.control.Reflect(d.current)
		}
		d.quadTo(q, d.point(args, 0, rel))

	case OpCubic, OpCubicRel:
		d.cubicTo(d.point(args, 0, rel), d.point(args, 1, rel), d.point(args, 2, rel))

	case OpSCubic, OpSCubicRel:
		c1 := d.current
		if d.kind == controlCubic {
			c1 = d.control.Reflect(d.current)
		}
		d.cubicTo(c1, d.point(args, 0, rel), d.point(args, 1, rel))

	case OpBreak:
		// No geometry.

	default:
		if op.IsArc() {
			Logger().Debug("vglite: path arc skipped", "opcode", op.String())
		} else {
			Logger().Debug("vglite: unknown path opcode skipped", "opcode", op.String())
		}
	}
}

func (d *pathDecoder) lineTo(p Point) {
	d.sink.LineTo(p.X, p.Y)
	d.current = p
	d.kind = controlNone
}

// quadTo emits the quadratic curve from the current point through control q
// to p as a cubic with control points p0 + 2/3(q-p0) and p + 2/3(q-p).
func (d *pathDecoder) quadTo(q, p Point) {
	p0 := d.current
	c1 := p0.Lerp(q, 2.0/3.0)
	c2 := p.Lerp(q, 2.0/3.0)
	d.sink.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
	d.current = p
	d.control = q
	d.kind = controlQuad
}

func (d *pathDecoder) cubicTo(c1, c2, p Point) {
	d.sink.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
	d.current = p
	d.control = c2
	d.kind = controlCubic
}
