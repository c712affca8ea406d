package patterns

import (
	"github.com/Maxwell1111/Lego-Interligence/catalog"
	"github.com/Maxwell1111/Lego-Interligence/geometry"
	"github.com/Maxwell1111/Lego-Interligence/model"
)

// columnBricks maps column thickness in studs to the 1xN brick used.
var columnBricks = map[int]string{
	1: "3005",
	2: "3004",
	3: "3622",
	4: "3010",
}

// CreateColumn stacks bricks into a vertical support column, alternating
// rotation every course for strength. Thickness is clamped to 1..4 studs.
func CreateColumn(
	build *model.BuildState, cat *catalog.Catalog,
	x, z, height, thickness, color int,
) ([]*model.PlacedPart, error) {
	if thickness < 1 {
		thickness = 1
	}
	if thickness > 4 {
		thickness = 4
	}
	partNum := columnBricks[thickness]

	var parts []*model.PlacedPart

	rotation := geometry.R0
	for y := 0; y < height; y += 3 {
		part, err := place(build, cat, partNum, color,
			geometry.StudCoordinate{StudX: x, StudZ: z, PlateY: y}, rotation)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)

		rotation = rotation.CW()
	}

	return parts, nil
}
