package model

import (
	"fmt"

	"gopkg.in/mgo.v2/bson"

	"github.com/Maxwell1111/Lego-Interligence/geometry"
)

// BuildState is the complete state of one build: the ordered sequence of
// placed parts plus metadata owned by the external generation loop.
// Part order is insertion order; ids are unique within a build and never
// reused, even after removal.
type BuildState struct {
	ID           bson.ObjectId `json:"id,omitempty" bson:"_id,omitempty"`
	BuildDetails `bson:",inline"`

	Parts []*PlacedPart `json:"parts" bson:"parts"`

	NextPartID int `json:"-" bson:"nextPartId"`
}

// BuildDetails holds build metadata. The generation counters are written by
// the external loop and only persisted here.
type BuildDetails struct {
	Name        string      `json:"name" bson:"name"`
	Description string      `json:"description" bson:"description"`
	Prompt      string      `json:"prompt" bson:"prompt"`
	Status      BuildStatus `json:"status" bson:"status"`

	IterationCount        int     `json:"iterationCount" bson:"iterationCount"`
	TotalTokensUsed       int64   `json:"totalTokensUsed" bson:"totalTokensUsed"`
	GenerationTimeSeconds float64 `json:"generationTimeSeconds" bson:"generationTimeSeconds"`
}

// NewBuildState constructs an empty build.
func NewBuildState(name string) *BuildState {
	return &BuildState{
		BuildDetails: BuildDetails{
			Name:   name,
			Status: StatusDesigning,
		},
		Parts:      []*PlacedPart{},
		NextPartID: 1,
	}
}

// AddPart assigns the next id, appends the part and returns it. It never
// validates; validation is invoked separately by the caller, which allows
// patterns to place whole batches before a single validation pass.
func (b *BuildState) AddPart(
	partID, partName string, color int,
	position geometry.StudCoordinate,
	rotation geometry.Rotation,
	dims geometry.PartDimensions,
) *PlacedPart {
	part := &PlacedPart{
		ID:         b.NextPartID,
		PartID:     partID,
		PartName:   partName,
		Color:      color,
		Position:   position,
		Rotation:   rotation,
		Dimensions: dims,
	}

	b.Parts = append(b.Parts, part)
	b.NextPartID++
	b.ClearConnections()

	return part
}

// RemovePart removes a part by id and reports whether it was found. The id
// is not reused for later parts.
func (b *BuildState) RemovePart(id int) bool {
	for i, part := range b.Parts {
		if part.ID == id {
			b.Parts = append(b.Parts[:i], b.Parts[i+1:]...)
			b.ClearConnections()
			return true
		}
	}
	return false
}

// GetPartByID ...
func (b *BuildState) GetPartByID(id int) *PlacedPart {
	for _, part := range b.Parts {
		if part.ID == id {
			return part
		}
	}
	return nil
}

// ClearConnections drops the cached support annotations. Called on every
// mutation so stale connectivity is never trusted.
func (b *BuildState) ClearConnections() {
	for _, part := range b.Parts {
		part.ConnectedTo = nil
	}
}

// Dimensions returns the overall build extents (studs, studs, plates),
// zero for an empty build.
func (b *BuildState) Dimensions() (width, length, height int) {
	if len(b.Parts) == 0 {
		return 0, 0, 0
	}

	first := b.Parts[0].Bounds()
	minC, maxC := first.Min, first.Max

	for _, part := range b.Parts[1:] {
		box := part.Bounds()
		if box.Min.StudX < minC.StudX {
			minC.StudX = box.Min.StudX
		}
		if box.Min.StudZ < minC.StudZ {
			minC.StudZ = box.Min.StudZ
		}
		if box.Min.PlateY < minC.PlateY {
			minC.PlateY = box.Min.PlateY
		}
		if box.Max.StudX > maxC.StudX {
			maxC.StudX = box.Max.StudX
		}
		if box.Max.StudZ > maxC.StudZ {
			maxC.StudZ = box.Max.StudZ
		}
		if box.Max.PlateY > maxC.PlateY {
			maxC.PlateY = box.Max.PlateY
		}
	}

	return maxC.StudX - minC.StudX, maxC.StudZ - minC.StudZ, maxC.PlateY - minC.PlateY
}

// BOMKey groups bill-of-materials entries by catalog part and color.
type BOMKey struct {
	PartID string
	Color  int
}

// BOM returns the bill of materials: part counts grouped by (part, color),
// independent of insertion order.
func (b *BuildState) BOM() map[BOMKey]int {
	bom := map[BOMKey]int{}
	for _, part := range b.Parts {
		bom[BOMKey{PartID: part.PartID, Color: part.Color}]++
	}
	return bom
}

// String ...
func (b *BuildState) String() string {
	w, l, h := b.Dimensions()
	return fmt.Sprintf("BuildState(%d parts, %dx%dx%d studs/plates)", len(b.Parts), w, l, h)
}
