// Package blend implements the compositing operators used by the software
// renderer.
//
// All operations work with premultiplied 8-bit channels. Color channels are
// treated independently, so the functions apply to BGRA and RGBA pixels alike
// as long as alpha is the fourth byte.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode selects a compositing operator.
type Mode uint8

const (
	// Porter-Duff operators
	ModeSourceOver Mode = iota // S + D*(1-Sa) [default]
	ModeDestinationIn          // D*Sa
	ModePlus                   // min(S + D, 255)

	// Separable blend modes
	ModeMultiply // S*(1-Da) + D*(1-Sa) + S*D
	ModeScreen   // S + D - S*D
	ModeDarken   // min of the two results, W3C form
	ModeLighten  // max of the two results, W3C form
)

// Func blends one premultiplied source pixel with a destination pixel.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// For returns the blend function for mode. Unknown modes use source-over.
func For(mode Mode) Func {
	switch mode {
	case ModeDestinationIn:
		return blendDestinationIn
	case ModePlus:
		return blendPlus
	case ModeMultiply:
		return blendMultiply
	case ModeScreen:
		return blendScreen
	case ModeDarken:
		return blendDarken
	case ModeLighten:
		return blendLighten
	default:
		return blendSourceOver
	}
}

// String returns the operator name.
func (m Mode) String() string {
	switch m {
	case ModeSourceOver:
		return "SourceOver"
	case ModeDestinationIn:
		return "DestinationIn"
	case ModePlus:
		return "Plus"
	case ModeMultiply:
		return "Multiply"
	case ModeScreen:
		return "Screen"
	case ModeDarken:
		return "Darken"
	case ModeLighten:
		return "Lighten"
	default:
		return "Unknown"
	}
}

// blendSourceOver composites source over destination.
// Formula: S + D * (1 - Sa)
func blendSourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := inv255(sa)
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// blendDestinationIn keeps destination where source is opaque.
// Formula: D * Sa
func blendDestinationIn(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mulDiv255(dr, sa), mulDiv255(dg, sa), mulDiv255(db, sa), mulDiv255(da, sa)
}

// blendPlus adds source and destination.
// Formula: min(S + D, 255)
func blendPlus(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addClamp(sr, dr), addClamp(sg, dg), addClamp(sb, db), addClamp(sa, da)
}
