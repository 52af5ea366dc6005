package blend

// div255 divides x by 255 exactly for x in [0, 65535], rounding to nearest.
//
// Formula: ((x + 128) + ((x + 128) >> 8)) >> 8
func div255(x uint32) uint32 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// mulDiv255 returns round(a*b/255).
func mulDiv255(a, b byte) byte {
	return byte(div255(uint32(a) * uint32(b)))
}

// inv255 computes 255 - x (inverse alpha).
func inv255(x byte) byte {
	return 255 - x
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// sumDiff returns a + b - c clamped to [0, 255] without intermediate
// overflow.
func sumDiff(a, b, c byte) byte {
	v := int(a) + int(b) - int(c)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return byte(v)
}

func minByte(a, b byte) byte {
	if a < b {
		return a
	}
	return b
}

func maxByte(a, b byte) byte {
	if a > b {
		return a
	}
	return b
}
