package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maxwell1111/Lego-Interligence/catalog"
	"github.com/Maxwell1111/Lego-Interligence/model"
	"github.com/Maxwell1111/Lego-Interligence/validate"
)

// coveredCells collects every ground cell occupied by the given parts.
func coveredCells(parts []*model.PlacedPart) map[[2]int]int {
	cells := map[[2]int]int{}
	for _, part := range parts {
		box := part.Bounds()
		for x := box.Min.StudX; x < box.Max.StudX; x++ {
			for z := box.Min.StudZ; z < box.Max.StudZ; z++ {
				cells[[2]int{x, z}]++
			}
		}
	}
	return cells
}

func TestCreateBaseCoversRectangleExactly(t *testing.T) {
	for _, size := range [][2]int{{8, 8}, {7, 5}, {1, 1}, {3, 9}, {10, 2}} {
		build := model.NewBuildState("base")
		parts, err := CreateBase(build, catalog.NewCatalog(), 0, 0, size[0], size[1], 71)
		require.NoError(t, err)

		cells := coveredCells(parts)
		assert.Len(t, cells, size[0]*size[1], "size %v", size)
		for cell, count := range cells {
			assert.Equal(t, 1, count, "cell %v for size %v", cell, size)
			assert.GreaterOrEqual(t, cell[0], 0)
			assert.Less(t, cell[0], size[0])
			assert.GreaterOrEqual(t, cell[1], 0)
			assert.Less(t, cell[1], size[1])
		}
	}
}

func TestCreateBaseStaysOnGround(t *testing.T) {
	build := model.NewBuildState("base")
	parts, err := CreateBase(build, catalog.NewCatalog(), 2, 3, 6, 4, 71)
	require.NoError(t, err)

	for _, part := range parts {
		assert.Equal(t, 0, part.Position.PlateY)
		assert.Equal(t, 1, part.Dimensions.PlatesHeight)
	}
}

func TestCreateBasePassesValidation(t *testing.T) {
	build := model.NewBuildState("base")
	_, err := CreateBase(build, catalog.NewCatalog(), 0, 0, 8, 8, 71)
	require.NoError(t, err)

	result := validate.NewPhysicalValidator().ValidateBuild(build)
	assert.True(t, result.IsValid(), "errors: %v", result.Errors)
}
