package templates

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixedStrings(t *testing.T) {
	assert.Equal(t, "", prefixedStrings("T", 0))
	assert.Equal(t, "T0", prefixedStrings("T", 1))
	assert.Equal(t, "T0, T1, T2", prefixedStrings("T", 3))
}

func TestComputedGen(t *testing.T) {
	src := ComputedGen(3)

	assert.Contains(t, src, "func Computed1[T0, O any](")
	assert.Contains(t, src, "func Computed3[T0, T1, T2, O any](")
	assert.NotContains(t, src, "Computed4")
	assert.Contains(t, src, "\tfn func(T0, T1, T2) O,\n")
	assert.Equal(t, 3, strings.Count(src, "arg2"))

	_, err := parser.ParseFile(token.NewFileSet(), "computed_gen.go", src, 0)
	require.NoError(t, err)
}

func TestCombineGen(t *testing.T) {
	src := CombineGen(4)

	assert.NotContains(t, src, "Combine1")
	assert.Contains(t, src, "type Tuple2[T0, T1 any] struct {")
	assert.Contains(t, src, "func Combine4[T0, T1, T2, T3 any](")
	assert.Contains(t, src, "newCombiner(4, build)")
	assert.Contains(t, src, "\t\t\tV3: valueOf[T3](slots[3]),\n")

	_, err := parser.ParseFile(token.NewFileSet(), "combine_gen.go", src, 0)
	require.NoError(t, err)
}
