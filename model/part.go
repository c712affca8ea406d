package model

import (
	"fmt"

	"github.com/Maxwell1111/Lego-Interligence/geometry"
)

// PlacedPart is one part instance in a build. Position, rotation and
// dimensions fully determine the occupied volume; everything else is
// metadata.
type PlacedPart struct {
	ID       int    `json:"id" bson:"id"`
	PartID   string `json:"partId" bson:"partId"`
	PartName string `json:"partName" bson:"partName"`
	Color    int    `json:"color" bson:"color"`

	Position   geometry.StudCoordinate `json:"position" bson:"position"`
	Rotation   geometry.Rotation       `json:"rotation" bson:"rotation"`
	Dimensions geometry.PartDimensions `json:"dimensions" bson:"dimensions"`

	Layer       int    `json:"layer" bson:"layer"`
	SubAssembly string `json:"subAssembly,omitempty" bson:"subAssembly,omitempty"`

	// ConnectedTo is a cache of supporting part ids filled in by the
	// connection validator. It is cleared whenever the build mutates and
	// is never a source of truth.
	ConnectedTo []int `json:"connectedTo,omitempty" bson:"connectedTo,omitempty"`
}

// Bounds returns the axis-aligned bounding box occupied by the part.
func (p *PlacedPart) Bounds() geometry.Box {
	return geometry.Bounds(p.Position, p.Rotation, p.Dimensions)
}

// TopStuds returns the stud cells on the part top surface.
func (p *PlacedPart) TopStuds() []geometry.StudCoordinate {
	return p.Bounds().TopStuds()
}

// String ...
func (p *PlacedPart) String() string {
	return fmt.Sprintf("PlacedPart(%s at %s, color=%d)", p.PartID, p.Position, p.Color)
}
