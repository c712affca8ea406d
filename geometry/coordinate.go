// Package geometry provides the stud-grid coordinate model shared by every
// component that reasons about part placement.
package geometry

import (
	"fmt"
	"math"
)

// LDU conversion ratios. LDU is the linear unit of the LDraw export format.
const (
	LDUPerStud  = 20.0
	LDUPerPlate = 8.0
)

// StudCoordinate is an immutable position in stud-grid coordinates.
// StudX and StudZ are horizontal positions in studs, PlateY is the vertical
// position in plates (3 plates = 1 brick height unit, 0 = ground).
type StudCoordinate struct {
	StudX  int `json:"studX" bson:"studX"`
	StudZ  int `json:"studZ" bson:"studZ"`
	PlateY int `json:"plateY" bson:"plateY"`
}

// ToLDU converts the coordinate to LDraw Units.
// The conversion is exact: 1 stud = 20 LDU on the X/Z plane, 1 plate = 8 LDU
// on the Y axis.
func (c StudCoordinate) ToLDU() (x, y, z float64) {
	return float64(c.StudX) * LDUPerStud,
		float64(c.PlateY) * LDUPerPlate,
		float64(c.StudZ) * LDUPerStud
}

// FromLDU parses LDraw coordinates into the stud grid, rounding each axis to
// the nearest grid cell. Ties round away from zero (math.Round), so LDU x=30
// maps to stud 2. The round trip through ToLDU is exact only for coordinates
// that originated on the grid.
func FromLDU(x, y, z float64) StudCoordinate {
	return StudCoordinate{
		StudX:  int(math.Round(x / LDUPerStud)),
		StudZ:  int(math.Round(z / LDUPerStud)),
		PlateY: int(math.Round(y / LDUPerPlate)),
	}
}

// Offset returns a new coordinate shifted by the given deltas.
func (c StudCoordinate) Offset(dx, dz, dy int) StudCoordinate {
	return StudCoordinate{
		StudX:  c.StudX + dx,
		StudZ:  c.StudZ + dz,
		PlateY: c.PlateY + dy,
	}
}

// Add returns the component-wise sum of two coordinates.
func (c StudCoordinate) Add(other StudCoordinate) StudCoordinate {
	return StudCoordinate{
		StudX:  c.StudX + other.StudX,
		StudZ:  c.StudZ + other.StudZ,
		PlateY: c.PlateY + other.PlateY,
	}
}

// String ...
func (c StudCoordinate) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.StudX, c.StudZ, c.PlateY)
}
