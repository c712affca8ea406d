package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Maxwell1111/Lego-Interligence/geometry"
)

var dimPattern = regexp.MustCompile(`(\d+)\s*[xX]\s*(\d+)`)

// inferFromName derives a part record from naming conventions like
// "Brick 2x4" or "Plate 1 x 2". Parts without recognizable dimensions fall
// back to a conservative 1x1 footprint.
func inferFromName(partName string) PartInfo {
	nameLower := strings.ToLower(partName)

	category := CategoryPlate
	defaultHeight := 1
	switch {
	case strings.Contains(nameLower, "plate"):
		category, defaultHeight = CategoryPlate, 1
	case strings.Contains(nameLower, "tile"):
		category, defaultHeight = CategoryTile, 1
	case strings.Contains(nameLower, "slope"):
		category, defaultHeight = CategorySlope, 2
	case strings.Contains(nameLower, "technic"):
		category, defaultHeight = CategoryTechnic, 3
	case strings.Contains(nameLower, "brick"):
		category, defaultHeight = CategoryBrick, 3
	}

	width, length := 1, 1
	if match := dimPattern.FindStringSubmatch(partName); match != nil {
		width, _ = strconv.Atoi(match[1])
		length, _ = strconv.Atoi(match[2])
	}

	return PartInfo{
		LdrawID:  "3001",
		Name:     partName,
		Category: category,
		Dims: geometry.PartDimensions{
			StudsWidth:   width,
			StudsLength:  length,
			PlatesHeight: defaultHeight,
		},
		Inferred: true,
	}
}
