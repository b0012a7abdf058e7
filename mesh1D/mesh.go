// Package mesh1D generates the uniform 1D meshes used to probe a scenario
// before it is handed to a solver.
package mesh1D

import (
	"fmt"

	"github.com/notargets/gohydro/scenario"
	"github.com/notargets/gohydro/utils"
)

type Mesh struct {
	K          int       // Number of cells
	XMin, XMax float64   // Domain bounds
	VX         []float64 // Vertex coordinates, K+1
	EToV       [][2]int  // Cell to vertex connectivity
}

// Uniform divides [xmin, xmax] into K equal cells. The end vertices are set
// to xmin and xmax exactly.
func Uniform(xmin, xmax float64, K int) (m *Mesh, err error) {
	if K < 1 {
		err = fmt.Errorf("mesh needs at least one cell, have %d", K)
		return
	}
	if !(xmax > xmin) {
		err = fmt.Errorf("mesh bounds out of order: [%v, %v]", xmin, xmax)
		return
	}
	var (
		dx = (xmax - xmin) / float64(K)
	)
	m = &Mesh{
		K:    K,
		XMin: xmin,
		XMax: xmax,
		VX:   make([]float64, K+1),
		EToV: make([][2]int, K),
	}
	for i := range m.VX {
		m.VX[i] = xmin + float64(i)*dx
	}
	m.VX[K] = xmax
	for k := 0; k < K; k++ {
		m.EToV[k] = [2]int{k, k + 1}
	}
	return
}

func (m *Mesh) Volume(k int) float64 {
	return m.VX[m.EToV[k][1]] - m.VX[m.EToV[k][0]]
}

func (m *Mesh) Volumes() (v []float64) {
	v = make([]float64, m.K)
	for k := range v {
		v[k] = m.Volume(k)
	}
	return
}

func (m *Mesh) Centroid(k int) utils.Vector {
	return utils.NewVector(0.5 * (m.VX[m.EToV[k][0]] + m.VX[m.EToV[k][1]]))
}

func (m *Mesh) Centroids() (c []utils.Vector) {
	c = make([]utils.Vector, m.K)
	for k := range c {
		c[k] = m.Centroid(k)
	}
	return
}

func (m *Mesh) Vertices() (v []utils.Vector) {
	v = make([]utils.Vector, len(m.VX))
	for i, x := range m.VX {
		v[i] = utils.NewVector(x)
	}
	return
}

// Entities lists every vertex, flagging the two end vertices as boundary,
// followed by every cell centroid.
func (m *Mesh) Entities() (me []scenario.MeshEntity) {
	me = make([]scenario.MeshEntity, 0, len(m.VX)+m.K)
	for i, x := range m.Vertices() {
		me = append(me, scenario.MeshEntity{
			X:          x,
			OnBoundary: i == 0 || i == len(m.VX)-1,
		})
	}
	for _, x := range m.Centroids() {
		me = append(me, scenario.MeshEntity{X: x})
	}
	return
}
