package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	{ // Construction copies its input
		x := []float64{1, 2, 3}
		v := NewVector(x...)
		x[0] = 10
		assert.Equal(t, 3, v.Len())
		assert.Equal(t, 1., v.AtVec(0))
		assert.Equal(t, []float64{1, 2, 3}, v.Data())
		assert.Equal(t, "[1, 2, 3]", v.String())
	}
	{ // Zero length vectors
		var v Vector
		assert.Equal(t, 0, v.Len())
		assert.Equal(t, 0, NewVector().Len())
		assert.Equal(t, 0, NewZeroVector(0).Len())
		assert.True(t, v.Equal(NewVector()))
		assert.True(t, v.IsZero())
		assert.Equal(t, 0., v.Norm())
	}
	{ // Comparisons
		a := NewVector(0.5, 1)
		assert.True(t, a.Equal(NewVector(0.5, 1)))
		assert.False(t, a.Equal(NewVector(0.5)))
		assert.False(t, a.Equal(NewVector(0.5, 1+1e-12)))
		assert.True(t, a.EqualApprox(NewVector(0.5, 1+1e-12), 1e-9))
		assert.InDelta(t, math.Sqrt(1.25), a.Norm(), 1e-15)
	}
	{ // Zero and finiteness tests
		z := NewZeroVector(3)
		assert.True(t, z.IsZero())
		assert.True(t, z.IsFinite())
		assert.False(t, NewVector(0, 1e-300).IsZero())
		assert.False(t, NewVector(math.NaN()).IsFinite())
		assert.False(t, NewVector(0, math.Inf(-1)).IsFinite())
	}
}
