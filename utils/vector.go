package utils

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Vector is a position or velocity in physical space, backed by a gonum
// dense vector. The zero Vector has no components.
type Vector struct {
	V *mat.VecDense
}

func NewVector(x ...float64) (v Vector) {
	var (
		data = make([]float64, len(x))
	)
	if len(x) == 0 {
		return
	}
	copy(data, x)
	v = Vector{V: mat.NewVecDense(len(data), data)}
	return
}

// NewZeroVector returns a vector of dim components, all zero.
func NewZeroVector(dim int) Vector {
	if dim <= 0 {
		return Vector{}
	}
	return Vector{V: mat.NewVecDense(dim, nil)}
}

func (v Vector) Len() int {
	if v.V == nil {
		return 0
	}
	return v.V.Len()
}

func (v Vector) AtVec(i int) float64 { return v.V.AtVec(i) }

// Data returns a copy of the components.
func (v Vector) Data() (d []float64) {
	d = make([]float64, v.Len())
	for i := range d {
		d[i] = v.V.AtVec(i)
	}
	return
}

// Equal is an exact component-wise comparison.
func (v Vector) Equal(a Vector) bool {
	if v.Len() != a.Len() {
		return false
	}
	if v.Len() == 0 {
		return true
	}
	return mat.Equal(v.V, a.V)
}

// EqualApprox compares components to within tol.
func (v Vector) EqualApprox(a Vector, tol float64) bool {
	if v.Len() != a.Len() {
		return false
	}
	if v.Len() == 0 {
		return true
	}
	return mat.EqualApprox(v.V, a.V, tol)
}

func (v Vector) Norm() float64 {
	if v.Len() == 0 {
		return 0
	}
	return mat.Norm(v.V, 2)
}

// IsZero is true when every component is exactly zero.
func (v Vector) IsZero() bool {
	for i := 0; i < v.Len(); i++ {
		if v.V.AtVec(i) != 0 {
			return false
		}
	}
	return true
}

// IsFinite is false if any component is NaN or Inf.
func (v Vector) IsFinite() bool {
	for i := 0; i < v.Len(); i++ {
		val := v.V.AtVec(i)
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return false
		}
	}
	return true
}

func (v Vector) String() string {
	var (
		parts = make([]string, v.Len())
	)
	for i := range parts {
		parts[i] = fmt.Sprintf("%g", v.V.AtVec(i))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
