// Package patterns expands parametric structure templates (bases, walls,
// columns, wings) into individual part placements on a build. Expansion
// never validates; callers run validation over the whole batch afterwards.
package patterns

import (
	"github.com/Maxwell1111/Lego-Interligence/catalog"
	"github.com/Maxwell1111/Lego-Interligence/geometry"
	"github.com/Maxwell1111/Lego-Interligence/model"
)

// place resolves a part through the catalog and appends it to the build.
func place(
	build *model.BuildState, cat *catalog.Catalog,
	partNum string, color int,
	position geometry.StudCoordinate, rotation geometry.Rotation,
) (*model.PlacedPart, error) {
	info, err := cat.Lookup(partNum, "")
	if err != nil {
		return nil, err
	}
	return build.AddPart(partNum, info.Name, color, position, rotation, info.Dims), nil
}
