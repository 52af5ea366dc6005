package blend

// Separable blend modes in premultiplied form.
//
// For a blend function B the general result is
//
//	(1 - Sa) * D + (1 - Da) * S + Sa * Da * B(Sc, Dc)
//
// which for the modes below reduces to expressions over premultiplied
// channels without unpremultiplying.

// separable applies channel to every color channel and computes the union
// alpha Sa + Da*(1-Sa).
func separable(sr, sg, sb, sa, dr, dg, db, da byte, channel func(s, d, sa, da byte) byte) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}
	a := addClamp(sa, mulDiv255(da, inv255(sa)))
	return channel(sr, dr, sa, da), channel(sg, dg, sa, da), channel(sb, db, sa, da), a
}

// blendMultiply darkens by multiplying the colors.
// Formula: S*(1-Da) + D*(1-Sa) + S*D
func blendMultiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d, sa, da byte) byte {
		return addClamp(addClamp(mulDiv255(s, inv255(da)), mulDiv255(d, inv255(sa))), mulDiv255(s, d))
	})
}

// blendScreen lightens by inverting, multiplying and inverting again.
// Formula: S + D - S*D
func blendScreen(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d, _, _ byte) byte {
		return sumDiff(s, d, mulDiv255(s, d))
	})
}

// blendDarken keeps the darker contribution.
// Formula: S + D - max(S*Da, D*Sa)
func blendDarken(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d, sa, da byte) byte {
		return sumDiff(s, d, maxByte(mulDiv255(s, da), mulDiv255(d, sa)))
	})
}

// blendLighten keeps the lighter contribution.
// Formula: S + D - min(S*Da, D*Sa)
func blendLighten(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d, sa, da byte) byte {
		return sumDiff(s, d, minByte(mulDiv255(s, da), mulDiv255(d, sa)))
	})
}
