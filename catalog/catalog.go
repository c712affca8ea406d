// Package catalog maps catalog part numbers to display names and grid
// dimensions. The catalog is an explicitly constructed value passed to its
// consumers; there is no process-wide catalog state.
package catalog

import (
	"fmt"
	"strings"

	"github.com/Maxwell1111/Lego-Interligence/geometry"
)

// ErrUnknownPart is returned when a part number cannot be resolved and no
// name is available for inference. Callers reject the placement before any
// part is constructed.
var ErrUnknownPart = fmt.Errorf("unknown catalog part")

// Category is the shallow part taxonomy.
type Category string

// Part categories.
const (
	CategoryBrick   Category = "brick"
	CategoryPlate   Category = "plate"
	CategoryTile    Category = "tile"
	CategorySlope   Category = "slope"
	CategoryTechnic Category = "technic"
	CategoryRound   Category = "round"
	CategoryWedge   Category = "wedge"
)

// PartInfo is the catalog record for one part number.
type PartInfo struct {
	LdrawID  string                  `json:"ldrawId"`
	Name     string                  `json:"name"`
	Category Category                `json:"category"`
	Dims     geometry.PartDimensions `json:"dimensions"`

	// Inferred marks records derived from the part name rather than the
	// catalog table.
	Inferred bool `json:"inferred,omitempty"`
}

// Catalog resolves part numbers to part records.
type Catalog struct {
	parts map[string]PartInfo
}

// NewCatalog constructs a catalog backed by the built-in part table.
func NewCatalog() *Catalog {
	return &Catalog{parts: builtinParts}
}

// Lookup resolves a part number. Unmapped numbers are retried with any
// trailing mold-variant letters stripped ("3001a" resolves as "3001"); as a
// last resort dimensions are inferred from the part name when one is given.
func (c *Catalog) Lookup(partNum, partName string) (PartInfo, error) {
	if info, ok := c.parts[partNum]; ok {
		return info, nil
	}

	base := strings.TrimRight(partNum, "abcdefghijklmnopqrstuvwxyz")
	if info, ok := c.parts[base]; ok {
		return info, nil
	}

	if partName != "" {
		return inferFromName(partName), nil
	}

	return PartInfo{}, fmt.Errorf("%w: %q", ErrUnknownPart, partNum)
}
