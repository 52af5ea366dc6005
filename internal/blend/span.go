package blend

// Span composites src onto dst for n pixels of 4 bytes each. If coverage is
// non-nil, each source pixel is first scaled by the matching coverage byte
// and fully uncovered pixels are skipped.
func Span(dst, src, coverage []byte, n int, mode Mode) {
	fn := For(mode)
	for i := 0; i < n; i++ {
		off := i * 4
		sr, sg, sb, sa := src[off], src[off+1], src[off+2], src[off+3]
		if coverage != nil {
			c := coverage[i]
			if c == 0 {
				continue
			}
			if c != 255 {
				sr, sg, sb, sa = mulDiv255(sr, c), mulDiv255(sg, c), mulDiv255(sb, c), mulDiv255(sa, c)
			}
		}
		d := dst[off : off+4 : off+4]
		d[0], d[1], d[2], d[3] = fn(sr, sg, sb, sa, d[0], d[1], d[2], d[3])
	}
}

// Solid composites a single premultiplied color onto n pixels of dst,
// weighted by coverage.
func Solid(dst []byte, c [4]byte, coverage []byte, n int, mode Mode) {
	fn := For(mode)
	for i := 0; i < n; i++ {
		cov := coverage[i]
		if cov == 0 {
			continue
		}
		sr, sg, sb, sa := c[0], c[1], c[2], c[3]
		if cov != 255 {
			sr, sg, sb, sa = mulDiv255(sr, cov), mulDiv255(sg, cov), mulDiv255(sb, cov), mulDiv255(sa, cov)
		}
		off := i * 4
		d := dst[off : off+4 : off+4]
		d[0], d[1], d[2], d[3] = fn(sr, sg, sb, sa, d[0], d[1], d[2], d[3])
	}
}
