package blend

func blendClear(_, _, _, _, _, _, _, _ byte) (byte, byte, byte, byte) {
	return 0, 0, 0, 0
}

func blendSrc(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

func blendDst(_, _, _, _, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return dr, dg, db, da
}

func blendSrcOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	inv := 255 - sa
	return addClamp(sr, mulDiv255(dr, inv)),
		addClamp(sg, mulDiv255(dg, inv)),
		addClamp(sb, mulDiv255(db, inv)),
		addClamp(sa, mulDiv255(da, inv))
}

func blendDstOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return blendSrcOver(dr, dg, db, da, sr, sg, sb, sa)
}

func blendSrcIn(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

func blendDstIn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return blendSrcIn(dr, dg, db, da, sr, sg, sb, sa)
}

func blendSrcOut(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	inv := 255 - da
	return mulDiv255(sr, inv), mulDiv255(sg, inv), mulDiv255(sb, inv), mulDiv255(sa, inv)
}

func blendDstOut(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return blendSrcOut(dr, dg, db, da, sr, sg, sb, sa)
}

func blendSrcAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	inv := 255 - sa
	return addClamp(mulDiv255(sr, da), mulDiv255(dr, inv)),
		addClamp(mulDiv255(sg, da), mulDiv255(dg, inv)),
		addClamp(mulDiv255(sb, da), mulDiv255(db, inv)),
		da
}

func blendDstAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return blendSrcAtop(dr, dg, db, da, sr, sg, sb, sa)
}

func blendXor(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invS, invD := 255-sa, 255-da
	return addClamp(mulDiv255(sr, invD), mulDiv255(dr, invS)),
		addClamp(mulDiv255(sg, invD), mulDiv255(dg, invS)),
		addClamp(mulDiv255(sb, invD), mulDiv255(db, invS)),
		addClamp(mulDiv255(sa, invD), mulDiv255(da, invS))
}

func blendPlus(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addClamp(sr, dr), addClamp(sg, dg), addClamp(sb, db), addClamp(sa, da)
}
