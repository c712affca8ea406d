package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func brick2x4() PartDimensions {
	return PartDimensions{StudsWidth: 2, StudsLength: 4, PlatesHeight: 3}
}

func TestBounds(t *testing.T) {
	box := Bounds(StudCoordinate{StudX: 1, StudZ: 2, PlateY: 3}, R0, brick2x4())

	assert.Equal(t, StudCoordinate{StudX: 1, StudZ: 2, PlateY: 3}, box.Min)
	assert.Equal(t, StudCoordinate{StudX: 3, StudZ: 6, PlateY: 6}, box.Max)
}

func TestBoundsRotationSwapsFootprint(t *testing.T) {
	at := StudCoordinate{}

	straight := Bounds(at, R0, brick2x4())
	turned := Bounds(at, R90, brick2x4())

	assert.Equal(t, 2, straight.Width())
	assert.Equal(t, 4, straight.Length())
	assert.Equal(t, 4, turned.Width())
	assert.Equal(t, 2, turned.Length())
	assert.Equal(t, straight.Height(), turned.Height())
}

func TestOverlaps(t *testing.T) {
	base := Bounds(StudCoordinate{}, R0, brick2x4())

	overlapping := Bounds(StudCoordinate{StudX: 1, StudZ: 1}, R0, brick2x4())
	assert.True(t, base.Overlaps(overlapping))
	assert.True(t, overlapping.Overlaps(base))

	disjoint := Bounds(StudCoordinate{StudX: 10, StudZ: 10}, R0, brick2x4())
	assert.False(t, base.Overlaps(disjoint))
}

func TestTouchingFacesDoNotOverlap(t *testing.T) {
	base := Bounds(StudCoordinate{}, R0, brick2x4())

	beside := Bounds(StudCoordinate{StudX: 2}, R0, brick2x4())
	assert.False(t, base.Overlaps(beside))

	above := Bounds(StudCoordinate{PlateY: 3}, R0, brick2x4())
	assert.False(t, base.Overlaps(above))
}

func TestTopStuds(t *testing.T) {
	box := Bounds(StudCoordinate{StudX: 1, StudZ: 1}, R0, PartDimensions{
		StudsWidth: 2, StudsLength: 2, PlatesHeight: 3,
	})

	studs := box.TopStuds()
	assert.Len(t, studs, 4)
	for _, stud := range studs {
		assert.Equal(t, 3, stud.PlateY)
	}
	assert.Contains(t, studs, StudCoordinate{StudX: 1, StudZ: 1, PlateY: 3})
	assert.Contains(t, studs, StudCoordinate{StudX: 2, StudZ: 2, PlateY: 3})
}

func TestCenter(t *testing.T) {
	box := Bounds(StudCoordinate{}, R0, brick2x4())

	x, y, z := box.Center()
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 1.5, y)
	assert.Equal(t, 2.0, z)
}
