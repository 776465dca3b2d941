package partial_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/functools_ive_go/partial"
	"github.com/on-the-ground/functools_ive_go/purefn"
	"github.com/on-the-ground/functools_ive_go/shared/fnmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	Args   []any
	Kwargs map[string]any
}

func record(args []any, kwargs map[string]any) (call, error) {
	return call{Args: args, Kwargs: kwargs}, nil
}

func TestNew_NilTarget(t *testing.T) {
	_, err := partial.New[int](nil, nil, nil)
	assert.ErrorIs(t, err, fnmodel.ErrNotCallable)
}

func TestFunc_MergeLaw(t *testing.T) {
	p, err := partial.New(record, []any{1, 2}, map[string]any{"x": 3})
	require.NoError(t, err)

	got, err := p.Call([]any{4}, map[string]any{"x": 5})
	require.NoError(t, err)

	want, _ := record([]any{1, 2, 4}, map[string]any{"x": 5})
	assert.Equal(t, want, got)
}

func TestFunc_BoundKeywordsSurviveCall(t *testing.T) {
	p, err := partial.New(record, nil, map[string]any{"x": 3, "y": 1})
	require.NoError(t, err)

	got, _ := p.Call(nil, map[string]any{"x": 5, "z": 9})
	assert.Equal(t, map[string]any{"x": 5, "y": 1, "z": 9}, got.Kwargs)

	got, _ = p.Call(nil, nil)
	assert.Equal(t, map[string]any{"x": 3, "y": 1}, got.Kwargs)
	assert.Empty(t, got.Args)
}

func TestFunc_CopiesBoundCollections(t *testing.T) {
	positional := []any{1}
	keyed := map[string]any{"x": 3}
	p, err := partial.New(record, positional, keyed)
	require.NoError(t, err)

	positional[0] = 100
	keyed["x"] = 100
	keyed["y"] = 200

	got, _ := p.Call(nil, nil)
	assert.Equal(t, []any{1}, got.Args)
	assert.Equal(t, map[string]any{"x": 3}, got.Kwargs)

	// mutating what the target received does not leak back either
	got.Kwargs["x"] = -1
	assert.Equal(t, map[string]any{"x": 3}, p.Keywords())
	assert.Equal(t, []any{1}, p.Args())
}

func TestFunc_PropagatesTargetError(t *testing.T) {
	boom := errors.New("boom")
	p, err := partial.New(func(args []any, kwargs map[string]any) (int, error) {
		return 0, boom
	}, []any{1}, nil)
	require.NoError(t, err)

	_, err = p.Call(nil, nil)
	assert.Equal(t, boom, err)
}

func TestFunc_Metadata(t *testing.T) {
	p, _ := partial.New(record, nil, nil)
	assert.Equal(t, "record", p.Metadata().Name)
	assert.Equal(t, "github.com/on-the-ground/functools_ive_go/partial_test", p.Metadata().Module)
}

func TestFunc_MetadataOptions(t *testing.T) {
	p, err := partial.New(record, []any{1}, nil,
		partial.WithDoc("records its arguments"),
		partial.WithName("recordOne"))
	require.NoError(t, err)
	assert.Equal(t, fnmodel.Metadata{
		Name:   "recordOne",
		Doc:    "records its arguments",
		Module: "github.com/on-the-ground/functools_ive_go/partial_test",
	}, p.Metadata())

	p, err = partial.New(record, nil, nil,
		partial.WithMetadata(fnmodel.Metadata{Module: "example"}),
		partial.WithModule("example/records"))
	require.NoError(t, err)
	assert.Equal(t, "record", p.Metadata().Name)
	assert.Equal(t, "example/records", p.Metadata().Module)
}

func TestFunc_ComposesWithCache(t *testing.T) {
	count := 0
	power := func(args []any, kwargs map[string]any) (int, error) {
		count++
		base, exp := args[0].(int), args[1].(int)
		if mod, ok := kwargs["mod"].(int); ok {
			return pow(base, exp) % mod, nil
		}
		return pow(base, exp), nil
	}

	square, err := partial.New(power, nil, map[string]any{"mod": 1000})
	require.NoError(t, err)

	memo := purefn.MustWrap(square.Positional())
	v, err := memo.Call(12, 3)
	require.NoError(t, err)
	assert.Equal(t, 728, v)

	_, _ = memo.Call(12, 3)
	assert.Equal(t, 1, count)
}

func pow(base, exp int) int {
	res := 1
	for i := 0; i < exp; i++ {
		res *= base
	}
	return res
}

func TestBind(t *testing.T) {
	prefix := partial.Bind1(func(p, s string) string { return p + s }, "go:")
	assert.Equal(t, "go:generate", prefix("generate"))

	clamp := partial.Bind2(func(lo, hi, v int) int { return max(lo, min(hi, v)) }, 0, 10)
	assert.Equal(t, 0, clamp(-5))
	assert.Equal(t, 7, clamp(7))
	assert.Equal(t, 10, clamp(15))
}
