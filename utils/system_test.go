package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNan(t *testing.T) {
	assert.False(t, IsNan(1.))
	assert.True(t, IsNan(math.NaN()))
	assert.True(t, IsNan([]float64{1, math.NaN()}))
	assert.False(t, IsNan(NewVector(1, 2)))
	assert.True(t, IsNan([]Vector{NewVector(1), NewVector(math.NaN())}))
	assert.False(t, IsNan("not a number"))
	assert.Contains(t, GetMemUsage(), "Alloc = ")
}
