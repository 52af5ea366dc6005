package vglite

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// PathEncoder builds opcode streams.
//
// Methods record the first error and turn into no-ops afterwards; Bytes and
// Path report it.
type PathEncoder struct {
	format DataFormat
	buf    []byte
	err    error
}

// NewPathEncoder creates an encoder writing coordinates as f.
func NewPathEncoder(f DataFormat) *PathEncoder {
	e := &PathEncoder{format: f}
	if !f.IsValid() {
		e.err = fmt.Errorf("vglite: path encoder: %v: %w", f, ErrInvalidArgument)
	}
	return e
}

// Op appends one record. The number of arguments must match op.ArgCount().
// Integer formats round arguments to the nearest integer; values outside the
// representable range fail with ErrInvalidArgument.
func (e *PathEncoder) Op(op Opcode, args ...float32) *PathEncoder {
	if e.err != nil {
		return e
	}
	if !op.IsKnown() || len(args) != op.ArgCount() {
		e.err = fmt.Errorf("vglite: path encoder: %v with %d args: %w", op, len(args), ErrInvalidArgument)
		return e
	}
	slot := e.format.Size()
	rec := make([]byte, slot)
	rec[0] = byte(op)
	e.buf = append(e.buf, rec...)
	for _, a := range args {
		if err := e.put(a); err != nil {
			e.err = err
			return e
		}
	}
	return e
}

func (e *PathEncoder) put(v float32) error {
	if e.format == DataFP32 {
		e.buf = binary.LittleEndian.AppendUint32(e.buf, math.Float32bits(v))
		return nil
	}
	r := math32.Round(v)
	switch e.format {
	case DataS8:
		if r < math.MinInt8 || r > math.MaxInt8 {
			return e.rangeErr(v)
		}
		e.buf = append(e.buf, byte(int8(r)))
	case DataS16:
		if r < math.MinInt16 || r > math.MaxInt16 {
			return e.rangeErr(v)
		}
		e.buf = binary.LittleEndian.AppendUint16(e.buf, uint16(int16(r)))
	case DataS32:
		if float64(r) < math.MinInt32 || float64(r) > math.MaxInt32 {
			return e.rangeErr(v)
		}
		e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(int32(r)))
	}
	return nil
}

func (e *PathEncoder) rangeErr(v float32) error {
	return fmt.Errorf("vglite: path encoder: %g out of range for %v: %w", v, e.format, ErrInvalidArgument)
}

// MoveTo appends a MOVE record.
func (e *PathEncoder) MoveTo(x, y float32) *PathEncoder { return e.Op(OpMove, x, y) }

// LineTo appends a LINE record.
func (e *PathEncoder) LineTo(x, y float32) *PathEncoder { return e.Op(OpLine, x, y) }

// QuadTo appends a QUAD record.
func (e *PathEncoder) QuadTo(cx, cy, x, y float32) *PathEncoder {
	return e.Op(OpQuad, cx, cy, x, y)
}

// CubicTo appends a CUBIC record.
func (e *PathEncoder) CubicTo(c1x, c1y, c2x, c2y, x, y float32) *PathEncoder {
	return e.Op(OpCubic, c1x, c1y, c2x, c2y, x, y)
}

// Close appends a CLOSE record.
func (e *PathEncoder) Close() *PathEncoder { return e.Op(OpClose) }

// End appends an END record.
func (e *PathEncoder) End() *PathEncoder { return e.Op(OpEnd) }

// Bytes returns the encoded stream.
func (e *PathEncoder) Bytes() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.buf, nil
}

// Path wraps the encoded stream in a Path whose bounds cover every point and
// control point of the decoded geometry.
func (e *PathEncoder) Path(q Quality) (*Path, error) {
	data, err := e.Bytes()
	if err != nil {
		return nil, err
	}
	p := &Path{Format: e.format, Quality: q, Data: data}
	var b boundsSink
	if err := DecodePath(p, &b, DecodeOptions{}); err != nil {
		return nil, err
	}
	if b.empty {
		return p, nil
	}
	p.Bounds = [4]float32{b.minX, b.minY, b.maxX, b.maxY}
	return p, nil
}

// boundsSink accumulates the extent of every point it receives.
type boundsSink struct {
	minX, minY, maxX, maxY float32
	started                bool
	empty                  bool
}

func (b *boundsSink) add(x, y float32) {
	if !b.started {
		b.minX, b.maxX, b.minY, b.maxY = x, x, y, y
		b.started = true
		return
	}
	b.minX = math32.Min(b.minX, x)
	b.maxX = math32.Max(b.maxX, x)
	b.minY = math32.Min(b.minY, y)
	b.maxY = math32.Max(b.maxY, y)
}

func (b *boundsSink) MoveTo(x, y float32) { b.add(x, y) }
func (b *boundsSink) LineTo(x, y float32) { b.add(x, y) }
func (b *boundsSink) CubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	b.add(c1x, c1y)
	b.add(c2x, c2y)
	b.add(x, y)
}
func (b *boundsSink) Close()                      {}
func (b *boundsSink) ClipRect(_, _, _, _ float32) { b.empty = !b.started }
