package patterns

import (
	"github.com/Maxwell1111/Lego-Interligence/catalog"
	"github.com/Maxwell1111/Lego-Interligence/geometry"
	"github.com/Maxwell1111/Lego-Interligence/model"
)

// CreateBase tiles a ground-level plate layer over the given rectangle with
// non-overlapping plates, preferring 2x4 plates and falling back to smaller
// ones at the edges.
func CreateBase(
	build *model.BuildState, cat *catalog.Catalog,
	startX, startZ, width, length, color int,
) ([]*model.PlacedPart, error) {
	var parts []*model.PlacedPart

	endX := startX + width
	endZ := startZ + length

	add := func(partNum string, x, z int, rotation geometry.Rotation) error {
		part, err := place(build, cat, partNum, color,
			geometry.StudCoordinate{StudX: x, StudZ: z, PlateY: 0}, rotation)
		if err != nil {
			return err
		}
		parts = append(parts, part)
		return nil
	}

	z := startZ
	for z < endZ {
		rowDepth := 1
		switch remaining := endZ - z; {
		case remaining >= 4:
			rowDepth = 4
		case remaining >= 2:
			rowDepth = 2
		}

		x := startX
		for x < endX {
			remaining := endX - x

			var err error
			switch rowDepth {
			case 4:
				// Plate 2x4 upright, Plate 1x4 for an odd last column.
				if remaining >= 2 {
					err = add("3037", x, z, geometry.R0)
					x += 2
				} else {
					err = add("3710", x, z, geometry.R0)
					x++
				}
			case 2:
				switch {
				case remaining >= 4:
					err = add("3037", x, z, geometry.R90)
					x += 4
				case remaining >= 2:
					err = add("3022", x, z, geometry.R0)
					x += 2
				default:
					err = add("3023", x, z, geometry.R0)
					x++
				}
			default:
				if remaining >= 4 {
					err = add("3710", x, z, geometry.R90)
					x += 4
				} else {
					err = add("3024", x, z, geometry.R0)
					x++
				}
			}
			if err != nil {
				return nil, err
			}
		}

		z += rowDepth
	}

	return parts, nil
}
