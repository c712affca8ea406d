package model

import "fmt"

// ldrawColorNames maps LDraw color codes to display names, used when
// rendering bills of materials.
var ldrawColorNames = map[int]string{
	0:   "Black",
	1:   "Blue",
	2:   "Green",
	3:   "Dark Turquoise",
	4:   "Red",
	5:   "Dark Pink",
	6:   "Brown",
	7:   "Light Gray",
	8:   "Dark Gray",
	9:   "Light Blue",
	10:  "Bright Green",
	11:  "Light Turquoise",
	12:  "Salmon",
	13:  "Pink",
	14:  "Yellow",
	15:  "White",
	17:  "Light Green",
	18:  "Light Yellow",
	19:  "Tan",
	20:  "Light Violet",
	22:  "Purple",
	23:  "Dark Blue Violet",
	25:  "Orange",
	26:  "Magenta",
	27:  "Lime",
	28:  "Dark Tan",
	29:  "Bright Pink",
	33:  "Trans Light Blue",
	34:  "Trans Green",
	36:  "Trans Red",
	41:  "Trans Light Purple",
	42:  "Trans Purple",
	46:  "Trans Yellow",
	47:  "Trans Clear",
	70:  "Reddish Brown",
	71:  "Light Bluish Gray",
	72:  "Dark Bluish Gray",
	78:  "Pearl Light Gold",
	85:  "Dark Purple",
	484: "Dark Orange",
}

// ColorName returns the display name for an LDraw color code.
func ColorName(code int) string {
	if name, ok := ldrawColorNames[code]; ok {
		return name
	}
	return fmt.Sprintf("Color %d", code)
}
