package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBCTypes(t *testing.T) {
	{ // Names are case and whitespace insensitive
		for name, want := range map[string]BCType{
			"Symmetry":   BCSymmetry,
			" SLIP ":     BCSymmetry,
			"wall":       BCWall,
			"Pressure":   BCPressure,
			"periodic":   BCPeriodic,
			"\toutflow ": BCOutflow,
		} {
			bc, err := ParseBCName(name)
			require.NoError(t, err, name)
			assert.Equal(t, want, bc, name)
		}
		_, err := ParseBCName("reflective")
		assert.Error(t, err)
	}
	{ // Tagged names carry a label after the first dash
		tokens := []string{"Symmetry", "Pressure-left", "Wall-22", "wall-top-2"}
		flags := []BCType{BCSymmetry, BCPressure, BCWall, BCWall}
		labels := []string{"", "left", "22", "top-2"}
		for i, token := range tokens {
			bc, label, err := ParseBCTag(token)
			require.NoError(t, err)
			assert.Equal(t, flags[i], bc)
			assert.Equal(t, labels[i], label)
		}
		_, _, err := ParseBCTag("Mirror-1")
		assert.Error(t, err)
	}
	{
		assert.Equal(t, "Symmetry", BCSymmetry.String())
		assert.Equal(t, "None", BCNone.String())
		assert.Equal(t, "Unknown", BCType(999).String())
	}
}
