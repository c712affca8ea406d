package patterns

import (
	"github.com/Maxwell1111/Lego-Interligence/catalog"
	"github.com/Maxwell1111/Lego-Interligence/geometry"
	"github.com/Maxwell1111/Lego-Interligence/model"
)

// CreateWing lays out a swept wing from 2x4 plate rows, shifting each row
// along X according to the sweep angle, topped with a 45 degree slope at the
// leading edge.
func CreateWing(
	build *model.BuildState, cat *catalog.Catalog,
	startX, startZ, startY, length, sweepAngle, thickness, color int,
) ([]*model.PlacedPart, error) {
	var parts []*model.PlacedPart

	for layer := 0; layer < thickness; layer++ {
		for i := 0; i < length; i += 2 {
			sweepOffset := 0
			if length > 0 {
				sweepOffset = i * sweepAngle / length / 10
			}

			// Rotated so each plate spans two studs of wing depth.
			part, err := place(build, cat, "3037", color,
				geometry.StudCoordinate{
					StudX:  startX + sweepOffset,
					StudZ:  startZ + i,
					PlateY: startY + layer,
				}, geometry.R90)
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		}
	}

	part, err := place(build, cat, "3041", color,
		geometry.StudCoordinate{StudX: startX, StudZ: startZ, PlateY: startY + thickness}, geometry.R0)
	if err != nil {
		return nil, err
	}
	parts = append(parts, part)

	return parts, nil
}
