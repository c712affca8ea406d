package test

import (
	"github.com/Maxwell1111/Lego-Interligence/geometry"
	"github.com/Maxwell1111/Lego-Interligence/model"
)

// Brick2x4 returns the dimensions of a standard 2x4 brick.
func Brick2x4() geometry.PartDimensions {
	return geometry.PartDimensions{StudsWidth: 2, StudsLength: 4, PlatesHeight: 3}
}

// Plate2x4 returns the dimensions of a standard 2x4 plate.
func Plate2x4() geometry.PartDimensions {
	return geometry.PartDimensions{StudsWidth: 2, StudsLength: 4, PlatesHeight: 1}
}

// PlaceBrick appends a 2x4 brick at the given stud position without any
// validation.
func PlaceBrick(build *model.BuildState, x, z, y int, color int) *model.PlacedPart {
	return build.AddPart(
		"3001", "Brick 2 x 4", color,
		geometry.StudCoordinate{StudX: x, StudZ: z, PlateY: y},
		geometry.R0,
		Brick2x4(),
	)
}

// NewBuild returns a named empty build for tests.
func NewBuild(name string) *model.BuildState {
	return model.NewBuildState(name)
}
