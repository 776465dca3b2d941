package fnmodel_test

import (
	"testing"

	"github.com/on-the-ground/functools_ive_go/shared/fnmodel"
	"github.com/stretchr/testify/assert"
)

func square(n int) int { return n * n }

func TestDescribe_NamedFunction(t *testing.T) {
	meta := fnmodel.Describe(square, "fallback")
	assert.Equal(t, "square", meta.Name)
	assert.Equal(t, "github.com/on-the-ground/functools_ive_go/shared/fnmodel_test", meta.Module)
	assert.Empty(t, meta.Doc)
}

type table struct{}

func (*table) First(args []any, kwargs map[string]any) (any, error) { return nil, nil }

func TestDescribe_MethodValue(t *testing.T) {
	meta := fnmodel.Describe((&table{}).First, "fallback")
	assert.Equal(t, "(*table).First", meta.Name)
	assert.Equal(t, "github.com/on-the-ground/functools_ive_go/shared/fnmodel_test", meta.Module)
}

func TestDescribe_NilFallsBack(t *testing.T) {
	var fn func(int) int
	assert.Equal(t, fnmodel.Metadata{Name: "partial"}, fnmodel.Describe(fn, "partial"))
	assert.Equal(t, fnmodel.Metadata{Name: "x"}, fnmodel.Describe(nil, "x"))
	assert.Equal(t, fnmodel.Metadata{Name: "x"}, fnmodel.Describe(42, "x"))
}

func TestMetadata_Merge(t *testing.T) {
	base := fnmodel.Metadata{Name: "fib", Module: "m"}
	merged := base.Merge(fnmodel.Metadata{Doc: "fibonacci numbers"})
	assert.Equal(t, fnmodel.Metadata{Name: "fib", Doc: "fibonacci numbers", Module: "m"}, merged)
}
