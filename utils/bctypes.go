package utils

import (
	"fmt"
	"strings"
)

// BCType is the catalog of boundary condition kinds a Lagrangian solver
// may be asked to apply at a boundary entity.
type BCType uint16

const (
	// BCNone marks an interior entity
	BCNone BCType = iota

	BCSymmetry // Zero normal velocity, mirror plane
	BCWall     // Prescribed velocity, zero by default
	BCPressure // Prescribed pressure, free surface or piston

	// Catalog entries the setup core knows by name but cannot build a
	// condition for. They belong to the solver.
	BCInflow
	BCOutflow
	BCPeriodic
)

func (bc BCType) String() string {
	names := map[BCType]string{
		BCNone:     "None",
		BCSymmetry: "Symmetry",
		BCWall:     "Wall",
		BCPressure: "Pressure",
		BCInflow:   "Inflow",
		BCOutflow:  "Outflow",
		BCPeriodic: "Periodic",
	}
	if name, ok := names[bc]; ok {
		return name
	}
	return "Unknown"
}

// BCNameMap maps lowercase input names onto the catalog.
var BCNameMap = map[string]BCType{
	"symmetry":  BCSymmetry,
	"symmetric": BCSymmetry,
	"slip":      BCSymmetry,
	"slip_wall": BCSymmetry,
	"wall":      BCWall,
	"no_slip":   BCWall,
	"noslip":    BCWall,
	"velocity":  BCWall,
	"piston":    BCWall,
	"pressure":  BCPressure,
	"free":      BCPressure,
	"inflow":    BCInflow,
	"inlet":     BCInflow,
	"outflow":   BCOutflow,
	"outlet":    BCOutflow,
	"periodic":  BCPeriodic,
}

// ParseBCName converts a boundary condition name to a BCType. Matching is
// case-insensitive and ignores surrounding whitespace. Unknown names are an
// error.
func ParseBCName(name string) (bc BCType, err error) {
	var (
		ok bool
	)
	lowerName := strings.ToLower(strings.TrimSpace(name))
	if bc, ok = BCNameMap[lowerName]; !ok {
		err = fmt.Errorf("unknown boundary condition name %q", name)
	}
	return
}

// ParseBCTag splits a tagged name such as "Pressure-left" into its catalog
// type and label. Untagged names have an empty label.
func ParseBCTag(tag string) (bc BCType, label string, err error) {
	var (
		name = strings.TrimSpace(tag)
	)
	if i := strings.Index(name, "-"); i >= 0 {
		name, label = name[:i], name[i+1:]
	}
	bc, err = ParseBCName(name)
	return
}
