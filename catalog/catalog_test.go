package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maxwell1111/Lego-Interligence/geometry"
)

func TestLookupKnownPart(t *testing.T) {
	cat := NewCatalog()

	info, err := cat.Lookup("3001", "")
	require.NoError(t, err)

	assert.Equal(t, "3001", info.LdrawID)
	assert.Equal(t, CategoryBrick, info.Category)
	assert.Equal(t, geometry.PartDimensions{StudsWidth: 2, StudsLength: 4, PlatesHeight: 3}, info.Dims)
	assert.False(t, info.Inferred)
}

func TestLookupStripsMoldVariantSuffix(t *testing.T) {
	cat := NewCatalog()

	info, err := cat.Lookup("3001a", "")
	require.NoError(t, err)
	assert.Equal(t, "3001", info.LdrawID)
}

func TestLookupInfersFromName(t *testing.T) {
	cat := NewCatalog()

	info, err := cat.Lookup("99999", "Brick 2 x 6 Special")
	require.NoError(t, err)

	assert.True(t, info.Inferred)
	assert.Equal(t, CategoryBrick, info.Category)
	assert.Equal(t, 2, info.Dims.StudsWidth)
	assert.Equal(t, 6, info.Dims.StudsLength)
	assert.Equal(t, 3, info.Dims.PlatesHeight)
}

func TestLookupUnknownPartWithoutName(t *testing.T) {
	cat := NewCatalog()

	_, err := cat.Lookup("99999", "")
	assert.ErrorIs(t, err, ErrUnknownPart)
}

func TestInferFromNameCategories(t *testing.T) {
	testCases := []struct {
		name     string
		category Category
		height   int
	}{
		{"Plate 4x4", CategoryPlate, 1},
		{"Tile 1x2", CategoryTile, 1},
		{"Slope 45 2x2", CategorySlope, 2},
		{"Technic Brick 1x4", CategoryTechnic, 3},
		{"Brick 2x2", CategoryBrick, 3},
	}

	for _, tc := range testCases {
		info := inferFromName(tc.name)
		assert.Equal(t, tc.category, info.Category, tc.name)
		assert.Equal(t, tc.height, info.Dims.PlatesHeight, tc.name)
	}
}

func TestInferFromNameWithoutDimensions(t *testing.T) {
	info := inferFromName("Minifig Head")

	assert.Equal(t, 1, info.Dims.StudsWidth)
	assert.Equal(t, 1, info.Dims.StudsLength)
}
