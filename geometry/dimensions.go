package geometry

import (
	"fmt"
)

// ErrDegenerateDimensions is returned when part dimensions are constructed
// with a non-positive extent.
var ErrDegenerateDimensions = fmt.Errorf("part dimensions must be positive")

// PartDimensions are part extents in grid units: width and length in studs,
// height in plates.
type PartDimensions struct {
	StudsWidth   int `json:"width" bson:"width"`
	StudsLength  int `json:"length" bson:"length"`
	PlatesHeight int `json:"height" bson:"height"`
}

// NewPartDimensions constructs dimensions, rejecting degenerate extents.
func NewPartDimensions(width, length, height int) (PartDimensions, error) {
	dims := PartDimensions{StudsWidth: width, StudsLength: length, PlatesHeight: height}
	if err := dims.Validate(); err != nil {
		return PartDimensions{}, err
	}
	return dims, nil
}

// Validate ...
func (d PartDimensions) Validate() error {
	if d.StudsWidth <= 0 || d.StudsLength <= 0 || d.PlatesHeight <= 0 {
		return ErrDegenerateDimensions
	}
	return nil
}

// BrickHeight returns the height in brick units (1 brick = 3 plates).
func (d PartDimensions) BrickHeight() float64 {
	return float64(d.PlatesHeight) / 3.0
}

// Volume returns the occupied volume in stud*stud*plate cells, used as the
// mass proxy by the stability checker.
func (d PartDimensions) Volume() int {
	return d.StudsWidth * d.StudsLength * d.PlatesHeight
}

// ToLDU converts dimensions to LDraw Units.
func (d PartDimensions) ToLDU() (x, y, z float64) {
	return float64(d.StudsWidth) * LDUPerStud,
		float64(d.PlatesHeight) * LDUPerPlate,
		float64(d.StudsLength) * LDUPerStud
}

// String ...
func (d PartDimensions) String() string {
	return fmt.Sprintf("%dx%dx%d", d.StudsWidth, d.StudsLength, d.PlatesHeight)
}
