package geometry

// Box is an axis-aligned bounding box on the stud grid. Intervals are
// half-open on every axis: a cell belongs to the box iff Min <= cell < Max.
// Two boxes sharing a face therefore do not overlap.
type Box struct {
	Min StudCoordinate `json:"min" bson:"min"`
	Max StudCoordinate `json:"max" bson:"max"`
}

// Bounds computes the box occupied by a part placed at position with the
// given rotation and dimensions. The stored position is the minimum corner;
// a 90 or 270 degree rotation swaps width and length, height is never
// affected. This is the single bounding-box implementation in the module;
// no other component derives box geometry on its own.
func Bounds(position StudCoordinate, rotation Rotation, dims PartDimensions) Box {
	width, length := dims.StudsWidth, dims.StudsLength
	if rotation.Swaps() {
		width, length = length, width
	}

	return Box{
		Min: position,
		Max: StudCoordinate{
			StudX:  position.StudX + width,
			StudZ:  position.StudZ + length,
			PlateY: position.PlateY + dims.PlatesHeight,
		},
	}
}

// Overlaps reports whether two boxes intersect on all three axes under
// half-open interval semantics. Touching faces do not count as overlap.
func (b Box) Overlaps(other Box) bool {
	return b.Min.StudX < other.Max.StudX && other.Min.StudX < b.Max.StudX &&
		b.Min.StudZ < other.Max.StudZ && other.Min.StudZ < b.Max.StudZ &&
		b.Min.PlateY < other.Max.PlateY && other.Min.PlateY < b.Max.PlateY
}

// TopStuds returns the grid cells of the box top surface, one per stud,
// all reported at the box maximum height.
func (b Box) TopStuds() []StudCoordinate {
	studs := make([]StudCoordinate, 0, (b.Max.StudX-b.Min.StudX)*(b.Max.StudZ-b.Min.StudZ))
	for x := b.Min.StudX; x < b.Max.StudX; x++ {
		for z := b.Min.StudZ; z < b.Max.StudZ; z++ {
			studs = append(studs, StudCoordinate{StudX: x, StudZ: z, PlateY: b.Max.PlateY})
		}
	}
	return studs
}

// Center returns the box center in continuous grid units.
func (b Box) Center() (x, y, z float64) {
	return float64(b.Min.StudX+b.Max.StudX) / 2,
		float64(b.Min.PlateY+b.Max.PlateY) / 2,
		float64(b.Min.StudZ+b.Max.StudZ) / 2
}

// Width ...
func (b Box) Width() int {
	return b.Max.StudX - b.Min.StudX
}

// Length ...
func (b Box) Length() int {
	return b.Max.StudZ - b.Min.StudZ
}

// Height ...
func (b Box) Height() int {
	return b.Max.PlateY - b.Min.PlateY
}
