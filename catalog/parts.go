package catalog

import "github.com/Maxwell1111/Lego-Interligence/geometry"

func part(ldrawID, name string, category Category, width, length, height int) PartInfo {
	return PartInfo{
		LdrawID:  ldrawID,
		Name:     name,
		Category: category,
		Dims: geometry.PartDimensions{
			StudsWidth:   width,
			StudsLength:  length,
			PlatesHeight: height,
		},
	}
}

// builtinParts is the built-in part table, keyed by catalog part number.
var builtinParts = map[string]PartInfo{
	// Basic bricks
	"3001": part("3001", "Brick 2x4", CategoryBrick, 2, 4, 3),
	"3002": part("3002", "Brick 2x3", CategoryBrick, 2, 3, 3),
	"3003": part("3003", "Brick 2x2", CategoryBrick, 2, 2, 3),
	"3004": part("3004", "Brick 1x2", CategoryBrick, 1, 2, 3),
	"3005": part("3005", "Brick 1x1", CategoryBrick, 1, 1, 3),
	"3006": part("3006", "Brick 2x10", CategoryBrick, 2, 10, 3),
	"3007": part("3007", "Brick 2x8", CategoryBrick, 2, 8, 3),
	"3008": part("3008", "Brick 1x8", CategoryBrick, 1, 8, 3),
	"3009": part("3009", "Brick 1x6", CategoryBrick, 1, 6, 3),
	"3010": part("3010", "Brick 1x4", CategoryBrick, 1, 4, 3),
	"3622": part("3622", "Brick 1x3", CategoryBrick, 1, 3, 3),
	"2357": part("2357", "Brick 2x2 Corner", CategoryBrick, 2, 2, 3),

	// Basic plates
	"3020": part("3020", "Plate 2x4", CategoryPlate, 2, 4, 1),
	"3021": part("3021", "Plate 2x3", CategoryPlate, 2, 3, 1),
	"3022": part("3022", "Plate 2x2", CategoryPlate, 2, 2, 1),
	"3023": part("3023", "Plate 1x2", CategoryPlate, 1, 2, 1),
	"3024": part("3024", "Plate 1x1", CategoryPlate, 1, 1, 1),
	"3026": part("3026", "Plate 6x6", CategoryPlate, 6, 6, 1),
	"3029": part("3029", "Plate 4x12", CategoryPlate, 4, 12, 1),
	"3030": part("3030", "Plate 4x10", CategoryPlate, 4, 10, 1),
	"3031": part("3031", "Plate 4x4", CategoryPlate, 4, 4, 1),
	"3032": part("3032", "Plate 4x6", CategoryPlate, 4, 6, 1),
	"3034": part("3034", "Plate 2x8", CategoryPlate, 2, 8, 1),
	"3035": part("3035", "Plate 4x8", CategoryPlate, 4, 8, 1),
	"3036": part("3036", "Plate 6x8", CategoryPlate, 6, 8, 1),
	"3037": part("3037", "Plate 2x4", CategoryPlate, 2, 4, 1),
	"3460": part("3460", "Plate 1x8", CategoryPlate, 1, 8, 1),
	"3666": part("3666", "Plate 1x6", CategoryPlate, 1, 6, 1),
	"3710": part("3710", "Plate 1x4", CategoryPlate, 1, 4, 1),
	"3623": part("3623", "Plate 1x3", CategoryPlate, 1, 3, 1),
	"3795": part("3795", "Plate 2x6", CategoryPlate, 2, 6, 1),
	"3832": part("3832", "Plate 2x10", CategoryPlate, 2, 10, 1),

	// Tiles
	"3068":  part("3068b", "Tile 2x2", CategoryTile, 2, 2, 1),
	"3068b": part("3068b", "Tile 2x2", CategoryTile, 2, 2, 1),
	"3069":  part("3069b", "Tile 1x2", CategoryTile, 1, 2, 1),
	"3069b": part("3069b", "Tile 1x2", CategoryTile, 1, 2, 1),
	"3070":  part("3070b", "Tile 1x1", CategoryTile, 1, 1, 1),
	"3070b": part("3070b", "Tile 1x1", CategoryTile, 1, 1, 1),
	"2431":  part("2431", "Tile 1x4", CategoryTile, 1, 4, 1),
	"6636":  part("6636", "Tile 1x6", CategoryTile, 1, 6, 1),

	// Slopes
	"3039": part("3039", "Slope 45 2x2", CategorySlope, 2, 2, 2),
	"3040": part("3040", "Slope 45 2x1", CategorySlope, 2, 1, 2),
	"3041": part("3041", "Slope 45 2x2 Double", CategorySlope, 2, 2, 3),
	"3044": part("3044", "Slope 45 1x2", CategorySlope, 1, 2, 2),
	"3298": part("3298", "Slope 33 3x2", CategorySlope, 3, 2, 2),
	"3299": part("3299", "Slope 33 2x4", CategorySlope, 2, 4, 2),
	"3660": part("3660", "Slope 45 2x2 Inverted", CategorySlope, 2, 2, 2),
	"3665": part("3665", "Slope 45 2x1 Inverted", CategorySlope, 2, 1, 2),

	// Technic
	"3700": part("3700", "Technic Brick 1x2", CategoryTechnic, 1, 2, 3),
	"3701": part("3701", "Technic Brick 1x4", CategoryTechnic, 1, 4, 3),
	"3702": part("3702", "Technic Brick 1x8", CategoryTechnic, 1, 8, 3),

	// Round
	"3062":  part("3062b", "Round Brick 1x1", CategoryRound, 1, 1, 3),
	"3062b": part("3062b", "Round Brick 1x1", CategoryRound, 1, 1, 3),
	"4073":  part("4073", "Round Plate 1x1", CategoryRound, 1, 1, 1),
	"4032":  part("4032", "Round Plate 2x2", CategoryRound, 2, 2, 1),

	// Wedges
	"41769": part("41769", "Wedge 2x4 Right", CategoryWedge, 2, 4, 1),
	"41770": part("41770", "Wedge 2x4 Left", CategoryWedge, 2, 4, 1),
}
