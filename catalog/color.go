package catalog

// rebrickableToLdraw maps Rebrickable color ids to LDraw color codes. Most
// ids match between the two systems; only the divergent ones are listed.
var rebrickableToLdraw = map[int]int{
	3:  10,
	85: 72,
}

// MapColor converts a Rebrickable color id to its LDraw code. Unmapped ids
// pass through unchanged.
func MapColor(rebrickableColor int) int {
	if ldraw, ok := rebrickableToLdraw[rebrickableColor]; ok {
		return ldraw
	}
	return rebrickableColor
}
