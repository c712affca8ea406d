package geometry

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidRotation is returned when a rotation is constructed from a value
// outside {0, 90, 180, 270}.
var ErrInvalidRotation = fmt.Errorf("rotation must be one of 0, 90, 180, 270 degrees")

// Rotation is a rotation around the vertical axis in 90 degree increments.
// The zero value is the identity rotation.
type Rotation int

// The four legal rotations.
const (
	R0   Rotation = 0
	R90  Rotation = 90
	R180 Rotation = 180
	R270 Rotation = 270
)

// NewRotation constructs a Rotation, rejecting any value outside the four
// legal orientations. Validation happens here, never later.
func NewRotation(degrees int) (Rotation, error) {
	switch degrees {
	case 0, 90, 180, 270:
		return Rotation(degrees), nil
	}
	return R0, ErrInvalidRotation
}

// Degrees ...
func (r Rotation) Degrees() int {
	return int(r)
}

// CW returns the rotation stepped 90 degrees clockwise, with wraparound.
func (r Rotation) CW() Rotation {
	return Rotation((int(r) + 90) % 360)
}

// CCW returns the rotation stepped 90 degrees counter-clockwise, with wraparound.
func (r Rotation) CCW() Rotation {
	return Rotation((int(r) + 270) % 360)
}

// Swaps reports whether the rotation swaps the horizontal part axes.
func (r Rotation) Swaps() bool {
	return r == R90 || r == R270
}

// Matrix returns the 3x3 rotation matrix around the vertical axis, used by the
// LDraw exporter.
func (r Rotation) Matrix() mgl64.Mat3 {
	rad := mgl64.DegToRad(float64(r))
	sin, cos := math.Sincos(rad)

	// mgl64 matrices are column-major; rows of the matrix are
	// (cos 0 sin), (0 1 0), (-sin 0 cos).
	return mgl64.Mat3{
		cos, 0, -sin,
		0, 1, 0,
		sin, 0, cos,
	}
}

// MarshalJSON ...
func (r Rotation) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(r))
}

// UnmarshalJSON validates the decoded value against the legal orientations.
func (r *Rotation) UnmarshalJSON(data []byte) error {
	var degrees int
	if err := json.Unmarshal(data, &degrees); err != nil {
		return err
	}
	rotation, rotationErr := NewRotation(degrees)
	if rotationErr != nil {
		return rotationErr
	}
	*r = rotation
	return nil
}
