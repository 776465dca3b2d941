package purefn

import (
	"github.com/on-the-ground/functools_ive_go/shared/helper"
)

// Pair holds both results of a two-output function under one cache entry.
type Pair[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

func TableizeI1O2[I1 comparable, O1, O2 any](
	pureFn func(I1) (O1, O2),
	opts ...Option,
) (func(I1) (O1, O2), *Cached[Pair[O1, O2]]) {
	memo := MustWrap(
		func(args ...any) (Pair[O1, O2], error) {
			v1, v2 := pureFn(helper.MustTypedArg[I1](args, 0))
			return Pair[O1, O2]{O1: v1, O2: v2}, nil
		},
		describedBy(pureFn, opts)...,
	)
	return func(i1 I1) (O1, O2) {
		res := mustCall(memo, i1)
		return res.O1, res.O2
	}, memo
}

func TableizeI2O2[I1, I2 comparable, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	opts ...Option,
) (func(I1, I2) (O1, O2), *Cached[Pair[O1, O2]]) {
	memo := MustWrap(
		func(args ...any) (Pair[O1, O2], error) {
			v1, v2 := pureFn(
				helper.MustTypedArg[I1](args, 0),
				helper.MustTypedArg[I2](args, 1),
			)
			return Pair[O1, O2]{O1: v1, O2: v2}, nil
		},
		describedBy(pureFn, opts)...,
	)
	return func(i1 I1, i2 I2) (O1, O2) {
		res := mustCall(memo, i1, i2)
		return res.O1, res.O2
	}, memo
}
