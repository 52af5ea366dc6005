package vglite

import (
	"fmt"
)

// DataFormat is the encoding of path coordinates.
type DataFormat uint8

const (
	// DataS8 stores coordinates as int8.
	DataS8 DataFormat = iota
	// DataS16 stores coordinates as little-endian int16.
	DataS16
	// DataS32 stores coordinates as little-endian int32.
	DataS32
	// DataFP32 stores coordinates as little-endian IEEE-754 float32.
	DataFP32
)

// Size returns the byte width of one coordinate slot, or 0 for unknown
// formats.
func (f DataFormat) Size() int {
	switch f {
	case DataS8:
		return 1
	case DataS16:
		return 2
	case DataS32, DataFP32:
		return 4
	default:
		return 0
	}
}

// IsValid reports whether f is a known coordinate encoding.
func (f DataFormat) IsValid() bool {
	return f.Size() != 0
}

// String returns the VGLite name of the data format.
func (f DataFormat) String() string {
	switch f {
	case DataS8:
		return "S8"
	case DataS16:
		return "S16"
	case DataS32:
		return "S32"
	case DataFP32:
		return "FP32"
	default:
		return fmt.Sprintf("DataFormat(%d)", uint8(f))
	}
}

// Quality is the requested rendering quality of a path. The software
// renderer always antialiases.
type Quality uint8

const (
	QualityHigh Quality = iota
	QualityUpper
	QualityMedium
	QualityLow
)

// Opcode is a path command. Each opcode occupies one coordinate slot with
// the opcode value in its first byte and is followed by ArgCount
// coordinate slots.
type Opcode uint8

const (
	OpEnd          Opcode = 0x00
	OpClose        Opcode = 0x01
	OpMove         Opcode = 0x02
	OpMoveRel      Opcode = 0x03
	OpLine         Opcode = 0x04
	OpLineRel      Opcode = 0x05
	OpQuad         Opcode = 0x06
	OpQuadRel      Opcode = 0x07
	OpCubic        Opcode = 0x08
	OpCubicRel     Opcode = 0x09
	OpBreak        Opcode = 0x0A
	OpHLine        Opcode = 0x0B
	OpHLineRel     Opcode = 0x0C
	OpVLine        Opcode = 0x0D
	OpVLineRel     Opcode = 0x0E
	OpSQuad        Opcode = 0x0F
	OpSQuadRel     Opcode = 0x10
	OpSCubic       Opcode = 0x11
	OpSCubicRel    Opcode = 0x12
	OpSCCWArc      Opcode = 0x13
	OpSCCWArcRel   Opcode = 0x14
	OpSCWArc       Opcode = 0x15
	OpSCWArcRel    Opcode = 0x16
	OpLCCWArc      Opcode = 0x17
	OpLCCWArcRel   Opcode = 0x18
	OpLCWArc       Opcode = 0x19
	OpLCWArcRel    Opcode = 0x1A
	opcodeCount    = 0x1B
	arcFirstOpcode = OpSCCWArc
)

var opcodeInfo = [opcodeCount]struct {
	name string
	args int
}{
	OpEnd:        {"END", 0},
	OpClose:      {"CLOSE", 0},
	OpMove:       {"MOVE", 2},
	OpMoveRel:    {"MOVE_REL", 2},
	OpLine:       {"LINE", 2},
	OpLineRel:    {"LINE_REL", 2},
	OpQuad:       {"QUAD", 4},
	OpQuadRel:    {"QUAD_REL", 4},
	OpCubic:      {"CUBIC", 6},
	OpCubicRel:   {"CUBIC_REL", 6},
	OpBreak:      {"BREAK", 0},
	OpHLine:      {"HLINE", 1},
	OpHLineRel:   {"HLINE_REL", 1},
	OpVLine:      {"VLINE", 1},
	OpVLineRel:   {"VLINE_REL", 1},
	OpSQuad:      {"SQUAD", 2},
	OpSQuadRel:   {"SQUAD_REL", 2},
	OpSCubic:     {"SCUBIC", 4},
	OpSCubicRel:  {"SCUBIC_REL", 4},
	OpSCCWArc:    {"SCCWARC", 5},
	OpSCCWArcRel: {"SCCWARC_REL", 5},
	OpSCWArc:     {"SCWARC", 5},
	OpSCWArcRel:  {"SCWARC_REL", 5},
	OpLCCWArc:    {"LCCWARC", 5},
	OpLCCWArcRel: {"LCCWARC_REL", 5},
	OpLCWArc:     {"LCWARC", 5},
	OpLCWArcRel:  {"LCWARC_REL", 5},
}

// IsKnown reports whether op is a defined opcode.
func (op Opcode) IsKnown() bool {
	return op < opcodeCount
}

// IsArc reports whether op is one of the elliptical arc opcodes.
func (op Opcode) IsArc() bool {
	return op >= arcFirstOpcode && op < opcodeCount
}

// IsRelative reports whether the arguments of op are offsets from the
// current point.
func (op Opcode) IsRelative() bool {
	switch op {
	case OpMoveRel, OpLineRel, OpQuadRel, OpCubicRel,
		OpHLineRel, OpVLineRel, OpSQuadRel, OpSCubicRel,
		OpSCCWArcRel, OpSCWArcRel, OpLCCWArcRel, OpLCWArcRel:
		return true
	default:
		return false
	}
}

// ArgCount returns the number of coordinate slots following op. Unknown
// opcodes report 0.
func (op Opcode) ArgCount() int {
	if !op.IsKnown() {
		return 0
	}
	return opcodeInfo[op].args
}

// String returns the VGLite name of the opcode.
func (op Opcode) String() string {
	if !op.IsKnown() {
		return fmt.Sprintf("Opcode(0x%02x)", uint8(op))
	}
	return opcodeInfo[op].name
}

// Path is an encoded VGLite path: a stream of opcode records plus the
// bounding box that clips everything drawn from it.
type Path struct {
	Format  DataFormat
	Quality Quality

	// Bounds is min x, min y, max x, max y.
	Bounds [4]float32

	// Data holds the opcode records. The path does not copy it.
	Data []byte
}

// NewPath describes an existing opcode stream.
func NewPath(f DataFormat, q Quality, data []byte, minX, minY, maxX, maxY float32) (*Path, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("vglite: init path: %v: %w", f, ErrInvalidArgument)
	}
	return &Path{
		Format:  f,
		Quality: q,
		Bounds:  [4]float32{minX, minY, maxX, maxY},
		Data:    data,
	}, nil
}

// ClipRect returns the clip rectangle derived from the bounding box as
// x, y, width, height.
func (p *Path) ClipRect() (x, y, w, h float32) {
	return p.Bounds[0], p.Bounds[1], p.Bounds[2] - p.Bounds[0], p.Bounds[3] - p.Bounds[1]
}

// PathLength returns the byte length of a stream holding ops encoded as f.
// Returns 0 for an invalid format.
func PathLength(ops []Opcode, f DataFormat) int {
	slot := f.Size()
	n := 0
	for _, op := range ops {
		n += (1 + op.ArgCount()) * slot
	}
	return n
}
