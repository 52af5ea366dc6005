package vglite

import (
	"sort"

	"github.com/chewxy/math32"
)

// SpreadMode defines how gradients extend beyond their defined bounds.
type SpreadMode uint8

const (
	// SpreadPad extends edge colors beyond bounds (default behavior).
	SpreadPad SpreadMode = iota
	// SpreadRepeat repeats the gradient pattern.
	SpreadRepeat
	// SpreadReflect mirrors the gradient pattern.
	SpreadReflect
)

// applySpread applies the spread mode to normalize t to [0, 1].
func applySpread(t float32, mode SpreadMode) float32 {
	switch mode {
	case SpreadRepeat:
		t -= math32.Floor(t)
	case SpreadReflect:
		t = math32.Abs(t)
		period := math32.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default:
		t = clamp01(t)
	}
	return t
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// ColorStop represents a color at a specific position in a gradient paint.
type ColorStop struct {
	Offset float32 // Position in gradient, 0.0 to 1.0
	Color  Color
}

// colorAtOffset returns the premultiplied color at t, after the spread mode
// is applied. Stops must be sorted by offset. Channels are interpolated
// unpremultiplied.
func colorAtOffset(stops []ColorStop, t float32, mode SpreadMode) [4]float32 {
	if len(stops) == 0 {
		return [4]float32{}
	}
	if len(stops) == 1 {
		return premulFloat(stops[0].Color, stops[0].Color, 0)
	}

	t = applySpread(t, mode)
	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})
	if idx == 0 {
		return premulFloat(stops[0].Color, stops[0].Color, 0)
	}
	if idx >= len(stops) {
		last := stops[len(stops)-1].Color
		return premulFloat(last, last, 0)
	}

	s1, s2 := stops[idx-1], stops[idx]
	if s2.Offset == s1.Offset {
		return premulFloat(s1.Color, s1.Color, 0)
	}
	return premulFloat(s1.Color, s2.Color, (t-s1.Offset)/(s2.Offset-s1.Offset))
}

// premulFloat interpolates c1 toward c2 by t and premultiplies. The result
// channels are B, G, R, A in [0, 1].
func premulFloat(c1, c2 Color, t float32) [4]float32 {
	lerp := func(a, b uint8) float32 {
		return (float32(a) + (float32(b)-float32(a))*t) / 255
	}
	a := lerp(c1.A(), c2.A())
	return [4]float32{
		lerp(c1.B(), c2.B()) * a,
		lerp(c1.G(), c2.G()) * a,
		lerp(c1.R(), c2.R()) * a,
		a,
	}
}

// RampStop is one entry of a continuous color ramp. Channels are
// non-premultiplied values in [0, 1].
type RampStop struct {
	Stop       float32
	R, G, B, A float32
}

// MaxRampStops is the largest number of stops a continuous gradient
// accepts. Larger ramps fall back to the default ramp.
const MaxRampStops = 256

// rampFracEpsilon is the fractional error below which a stop position is
// considered to fall exactly on a texel.
const rampFracEpsilon = 0.00013

// defaultRamp is the opaque black to white ramp.
var defaultRamp = []RampStop{
	{Stop: 0, R: 0, G: 0, B: 0, A: 1},
	{Stop: 1, R: 1, G: 1, B: 1, A: 1},
}

// DefaultRamp returns a copy of the opaque black to white ramp.
func DefaultRamp() []RampStop {
	return append([]RampStop(nil), defaultRamp...)
}

// CanonicalizeRamp converts user stops into a ramp that starts at 0, ends at
// 1 and never decreases.
//
// An empty ramp, a ramp with more than MaxRampStops entries, or a ramp whose
// stops ever decrease yields the default ramp. Stops outside [0, 1] are
// dropped but still take part in the order check. Colors are clamped to
// [0, 1], and RGB is additionally clamped to alpha when premultiplied is set.
func CanonicalizeRamp(src []RampStop, premultiplied bool) []RampStop {
	if len(src) > MaxRampStops {
		Logger().Warn("vglite: color ramp rejected", "stops", len(src))
		return DefaultRamp()
	}
	if len(src) == 0 {
		return DefaultRamp()
	}

	out := make([]RampStop, 0, len(src)+2)
	prev := float32(-1)
	for _, s := range src {
		if s.Stop < prev {
			Logger().Warn("vglite: color ramp rejected: stops decrease", "stop", s.Stop, "previous", prev)
			return DefaultRamp()
		}
		prev = s.Stop
		if s.Stop < 0 || s.Stop > 1 {
			continue
		}

		c := clampRampColor(s, premultiplied)
		if len(out) == 0 && c.Stop > 0 {
			head := c
			head.Stop = 0
			out = append(out, head)
		}
		out = append(out, c)
	}

	if len(out) == 0 {
		return DefaultRamp()
	}
	if last := out[len(out)-1]; last.Stop != 1 {
		last.Stop = 1
		out = append(out, last)
	}
	return out
}

func clampRampColor(s RampStop, premultiplied bool) RampStop {
	s.A = clamp01(s.A)
	hi := float32(1)
	if premultiplied {
		hi = s.A
	}
	clamp := func(v float32) float32 {
		if v < 0 {
			return 0
		}
		if v > hi {
			return hi
		}
		return v
	}
	s.R, s.G, s.B = clamp(s.R), clamp(s.G), clamp(s.B)
	return s
}

// MaxRampWidth is the largest texture width RampWidth returns.
const MaxRampWidth = 1 << 16

// RampWidth returns the texture width that places every stop of a
// canonical ramp on a texel, for a gradient spanning length pixels.
//
// The search starts from max(1, round(length)) and raises the common
// denominator while any stop lands more than a small epsilon off a texel.
// The result is the denominator plus one, saturated at MaxRampWidth.
func RampWidth(length float32, ramp []RampStop) int {
	const maxCommon = MaxRampWidth - 1
	common := uint32(1)
	switch {
	case length >= maxCommon:
		common = maxCommon
	case length >= 1:
		common = uint32(math32.Round(length))
	}
	for _, s := range ramp {
		if s.Stop == 0 {
			continue
		}
		m := float32(common) * s.Stop
		frac := m - math32.Floor(m)
		if frac > rampFracEpsilon {
			if c := uint32(1/frac + 0.5); c > common {
				common = min(c, maxCommon)
			}
		}
	}
	return int(common) + 1
}

// validExtent reports whether v is a usable gradient length or radius.
func validExtent(v float32) bool {
	return v > 0 && !math32.IsInf(v, 1)
}

// bakeRamp fills width texels of dst with the ramp, four bytes per texel in
// the order A, B, G, R.
func bakeRamp(dst []byte, width int, ramp []RampStop, premultiplied bool) {
	cursor := 0
	for i := 0; i < width; i++ {
		g := float32(0)
		if width > 1 {
			g = float32(i) / float32(width-1)
		}
		for cursor < len(ramp)-1 && g > ramp[cursor].Stop {
			cursor++
		}

		var c1, c2 [4]float32
		var w float32
		cur := ramp[cursor]
		if g == cur.Stop || cursor == 0 {
			w = 1
			c1 = rampChannels(cur, premultiplied)
		} else {
			prev := ramp[cursor-1]
			w = (cur.Stop - g) / (cur.Stop - prev.Stop)
			c1 = rampChannels(prev, premultiplied)
			c2 = rampChannels(cur, premultiplied)
		}

		px := dst[i*4 : i*4+4]
		px[0] = packComponent(lerpWeight(c1[3], c2[3], w))
		px[1] = packComponent(lerpWeight(c1[2], c2[2], w))
		px[2] = packComponent(lerpWeight(c1[1], c2[1], w))
		px[3] = packComponent(lerpWeight(c1[0], c2[0], w))
	}
}

// rampChannels returns R, G, B, A of s, premultiplied if requested.
func rampChannels(s RampStop, premultiplied bool) [4]float32 {
	if premultiplied {
		return [4]float32{s.R * s.A, s.G * s.A, s.B * s.A, s.A}
	}
	return [4]float32{s.R, s.G, s.B, s.A}
}

// lerpWeight weights v1 by w and v2 by 1-w.
func lerpWeight(v1, v2, w float32) float32 {
	return v1*w + v2*(1-w)
}

// packComponent converts a [0, 1] channel to a byte with rounding and
// clamping.
func packComponent(v float32) uint8 {
	r := int32(v*255 + 0.5)
	switch {
	case r < 0:
		return 0
	case r > 255:
		return 255
	}
	return uint8(r)
}

// rampColorStops converts a canonical ramp into paint stops.
func rampColorStops(ramp []RampStop) []ColorStop {
	stops := make([]ColorStop, len(ramp))
	for i, s := range ramp {
		stops[i] = ColorStop{
			Offset: s.Stop,
			Color: ARGB(packComponent(s.A), packComponent(s.R),
				packComponent(s.G), packComponent(s.B)),
		}
	}
	return stops
}
