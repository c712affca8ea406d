package model

import (
	"fmt"

	"github.com/Maxwell1111/Lego-Interligence/geometry"
)

// BuildCreateInput ...
type BuildCreateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate ...
func (b BuildCreateInput) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("build name can't be empty")
	}
	return nil
}

// ToBuildState ...
func (b BuildCreateInput) ToBuildState() *BuildState {
	build := NewBuildState(b.Name)
	build.Description = b.Description
	return build
}

// BuildUpdateInput updates build metadata; nil fields are left unchanged.
type BuildUpdateInput struct {
	Name        *string      `json:"name,omitempty" bson:"name,omitempty"`
	Description *string      `json:"description,omitempty" bson:"description,omitempty"`
	Status      *BuildStatus `json:"status,omitempty" bson:"status,omitempty"`
}

// Validate ...
func (b BuildUpdateInput) Validate() error {
	if b.Name != nil && *b.Name == "" {
		return fmt.Errorf("build name can't be empty")
	}
	if b.Status != nil {
		return b.Status.Validate()
	}
	return nil
}

// PartInput describes a single requested placement. Part name and dimensions
// are resolved through the catalog, never trusted from the caller.
type PartInput struct {
	PartID   string `json:"partId"`
	Color    int    `json:"color"`
	X        int    `json:"x"`
	Z        int    `json:"z"`
	Y        int    `json:"y"`
	Rotation int    `json:"rotation"`

	Layer       int    `json:"layer,omitempty"`
	SubAssembly string `json:"subAssembly,omitempty"`
}

// Validate fails fast on structurally invalid input; a bad rotation can
// never be made geometrically meaningful.
func (p PartInput) Validate() error {
	if p.PartID == "" {
		return fmt.Errorf("partId can't be empty")
	}
	if p.Color < 0 {
		return fmt.Errorf("color must be a non-negative LDraw code")
	}
	if _, err := geometry.NewRotation(p.Rotation); err != nil {
		return err
	}
	return nil
}

// Position ...
func (p PartInput) Position() geometry.StudCoordinate {
	return geometry.StudCoordinate{StudX: p.X, StudZ: p.Z, PlateY: p.Y}
}
