package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPartDimensions(t *testing.T) {
	dims, err := NewPartDimensions(2, 4, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, dims.StudsWidth)
	assert.Equal(t, 4, dims.StudsLength)
	assert.Equal(t, 3, dims.PlatesHeight)
}

func TestNewPartDimensionsRejectsDegenerate(t *testing.T) {
	for _, extents := range [][3]int{{0, 4, 3}, {2, 0, 3}, {2, 4, 0}, {-1, 4, 3}} {
		_, err := NewPartDimensions(extents[0], extents[1], extents[2])
		assert.Equal(t, ErrDegenerateDimensions, err)
	}
}

func TestBrickHeight(t *testing.T) {
	brick := PartDimensions{StudsWidth: 2, StudsLength: 4, PlatesHeight: 3}
	plate := PartDimensions{StudsWidth: 2, StudsLength: 4, PlatesHeight: 1}

	assert.Equal(t, 1.0, brick.BrickHeight())
	assert.InDelta(t, 1.0/3.0, plate.BrickHeight(), 1e-12)
}

func TestVolume(t *testing.T) {
	assert.Equal(t, 24, PartDimensions{StudsWidth: 2, StudsLength: 4, PlatesHeight: 3}.Volume())
}

func TestDimensionsString(t *testing.T) {
	assert.Equal(t, "2x4x3", PartDimensions{StudsWidth: 2, StudsLength: 4, PlatesHeight: 3}.String())
}
