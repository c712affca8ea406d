package patterns

import (
	"fmt"

	"github.com/Maxwell1111/Lego-Interligence/catalog"
	"github.com/Maxwell1111/Lego-Interligence/geometry"
	"github.com/Maxwell1111/Lego-Interligence/model"
)

// Wall directions and styles accepted by CreateWall.
const (
	DirectionX = "x"
	DirectionZ = "z"

	StyleSolid  = "solid"
	StyleWindow = "window"
	StyleCastle = "castle"
)

// CreateWall builds a two-stud-thick wall of 2x4 bricks, course by course,
// with a running-bond offset on alternating courses. Direction selects the
// axis the wall extends along. Style "window" leaves a central gap on inner
// courses, "castle" crenellates the top course.
func CreateWall(
	build *model.BuildState, cat *catalog.Catalog,
	startX, startZ, startY, length, height int,
	direction, style string, color int,
) ([]*model.PlacedPart, error) {
	if direction != DirectionX && direction != DirectionZ {
		return nil, fmt.Errorf("wall direction must be %q or %q", DirectionX, DirectionZ)
	}
	if style != StyleSolid && style != StyleWindow && style != StyleCastle {
		return nil, fmt.Errorf("unknown wall style %q", style)
	}

	var parts []*model.PlacedPart

	courses := 0
	for y := startY; y < startY+height; y += 3 {
		courses++
	}

	course := 0
	for y := startY; y < startY+height; y += 3 {
		// Running bond: shift every other course by half a brick.
		offset := 0
		if course%2 == 0 {
			offset = 2
		}

		topCourse := course == courses-1
		innerCourse := course > 0 && !topCourse

		slot := 0
		pos := offset
		for pos < length {
			remaining := length - pos

			skip := false
			if style == StyleWindow && innerCourse && windowGap(pos, length) {
				skip = true
			}
			if style == StyleCastle && topCourse && slot%2 == 1 {
				skip = true
			}

			partNum, span := "3001", 4
			rotation := geometry.R90
			if direction == DirectionZ {
				rotation = geometry.R0
			}
			if remaining < 4 {
				if remaining < 2 {
					break
				}
				partNum, span = "3003", 2
				rotation = geometry.R0
			}

			if !skip {
				x, z := startX+pos, startZ
				if direction == DirectionZ {
					x, z = startX, startZ+pos
				}
				part, err := place(build, cat, partNum, color,
					geometry.StudCoordinate{StudX: x, StudZ: z, PlateY: y}, rotation)
				if err != nil {
					return nil, err
				}
				parts = append(parts, part)
			}

			pos += span
			slot++
		}

		course++
	}

	return parts, nil
}

// windowGap reports whether the wall segment starting at pos falls in the
// central window opening.
func windowGap(pos, length int) bool {
	center := length / 2
	return pos >= center-2 && pos < center+2
}
