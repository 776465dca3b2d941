package purefn

import (
	"github.com/on-the-ground/functools_ive_go/shared/helper"
)

func TableizeI1O1[I1 comparable, O1 any](
	pureFn func(I1) O1,
	opts ...Option,
) (func(I1) O1, *Cached[O1]) {
	memo := MustWrap(
		func(args ...any) (O1, error) {
			return pureFn(helper.MustTypedArg[I1](args, 0)), nil
		},
		describedBy(pureFn, opts)...,
	)
	return func(i1 I1) O1 {
		return mustCall(memo, i1)
	}, memo
}

func TableizeI2O1[I1, I2 comparable, O1 any](
	pureFn func(I1, I2) O1,
	opts ...Option,
) (func(I1, I2) O1, *Cached[O1]) {
	memo := MustWrap(
		func(args ...any) (O1, error) {
			return pureFn(
				helper.MustTypedArg[I1](args, 0),
				helper.MustTypedArg[I2](args, 1),
			), nil
		},
		describedBy(pureFn, opts)...,
	)
	return func(i1 I1, i2 I2) O1 {
		return mustCall(memo, i1, i2)
	}, memo
}

func TableizeI3O1[I1, I2, I3 comparable, O1 any](
	pureFn func(I1, I2, I3) O1,
	opts ...Option,
) (func(I1, I2, I3) O1, *Cached[O1]) {
	memo := MustWrap(
		func(args ...any) (O1, error) {
			return pureFn(
				helper.MustTypedArg[I1](args, 0),
				helper.MustTypedArg[I2](args, 1),
				helper.MustTypedArg[I3](args, 2),
			), nil
		},
		describedBy(pureFn, opts)...,
	)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return mustCall(memo, i1, i2, i3)
	}, memo
}

func TableizeI4O1[I1, I2, I3, I4 comparable, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	opts ...Option,
) (func(I1, I2, I3, I4) O1, *Cached[O1]) {
	memo := MustWrap(
		func(args ...any) (O1, error) {
			return pureFn(
				helper.MustTypedArg[I1](args, 0),
				helper.MustTypedArg[I2](args, 1),
				helper.MustTypedArg[I3](args, 2),
				helper.MustTypedArg[I4](args, 3),
			), nil
		},
		describedBy(pureFn, opts)...,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return mustCall(memo, i1, i2, i3, i4)
	}, memo
}

// TableizeI1E memoizes an errorable function. Errors are returned, not stored.
func TableizeI1E[I1 comparable, O1 any](
	fn func(I1) (O1, error),
	opts ...Option,
) (func(I1) (O1, error), *Cached[O1]) {
	memo := MustWrap(
		func(args ...any) (O1, error) {
			return fn(helper.MustTypedArg[I1](args, 0))
		},
		describedBy(fn, opts)...,
	)
	return func(i1 I1) (O1, error) {
		return memo.Call(i1)
	}, memo
}

func TableizeI2E[I1, I2 comparable, O1 any](
	fn func(I1, I2) (O1, error),
	opts ...Option,
) (func(I1, I2) (O1, error), *Cached[O1]) {
	memo := MustWrap(
		func(args ...any) (O1, error) {
			return fn(
				helper.MustTypedArg[I1](args, 0),
				helper.MustTypedArg[I2](args, 1),
			)
		},
		describedBy(fn, opts)...,
	)
	return func(i1 I1, i2 I2) (O1, error) {
		return memo.Call(i1, i2)
	}, memo
}

// mustCall panics on ErrUnhashableKey, the only error an infallible target can
// produce. It happens when a comparable type parameter is an interface holding
// a non-comparable value.
func mustCall[O any](memo *Cached[O], args ...any) O {
	v, err := memo.Call(args...)
	if err != nil {
		panic(err)
	}
	return v
}
