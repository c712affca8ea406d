package validate

import (
	"github.com/Maxwell1111/Lego-Interligence/geometry"
	"github.com/Maxwell1111/Lego-Interligence/model"
)

// ConnectionValidator verifies that every elevated part rests on at least
// one stud of another part.
//
// The check is a direct-support existence check only: it does not verify
// that the supporting part is itself transitively reachable from the
// ground, so two interlocked floating islands pass. Known limitation,
// kept pending a product decision.
type ConnectionValidator struct{}

// SupportGraph maps each supported part id to the ids of the parts whose
// top studs carry it.
type SupportGraph map[int][]int

// ValidateConnections checks every part for stud support and returns the
// findings together with the discovered support graph. Parts on the ground
// layer (plate 0) are always valid and get no graph entry.
func (v ConnectionValidator) ValidateConnections(build *model.BuildState) (*model.ValidationResult, SupportGraph) {
	result := model.NewValidationResult()
	graph := SupportGraph{}

	studMap := buildStudMap(build)

	for _, part := range build.Parts {
		if part.Position.PlateY == 0 {
			continue
		}

		supports := supportingParts(part, studMap)
		if len(supports) == 0 {
			result.AddError(
				"Part #%d (%s) at %s is not connected to the structure",
				part.ID, part.PartName, part.Position,
			)
			result.AddSuggestion(
				"Add support below part #%d or move to connected position", part.ID,
			)
			continue
		}

		graph[part.ID] = supports
	}

	return result, graph
}

// buildStudMap maps every occupied top-stud cell to the owning part id.
// Later parts win on overlap; overlap itself is the collision detector's
// concern.
func buildStudMap(build *model.BuildState) map[geometry.StudCoordinate]int {
	studMap := map[geometry.StudCoordinate]int{}

	for _, part := range build.Parts {
		for _, stud := range part.TopStuds() {
			studMap[stud] = part.ID
		}
	}

	return studMap
}

// supportingParts scans the part footprint at its own base height for studs
// of other parts. A stud at exactly the part's minimum plate means the
// supporting top surface touches the bottom face with no gap.
func supportingParts(part *model.PlacedPart, studMap map[geometry.StudCoordinate]int) []int {
	box := part.Bounds()

	var supports []int
	seen := map[int]bool{}

	for x := box.Min.StudX; x < box.Max.StudX; x++ {
		for z := box.Min.StudZ; z < box.Max.StudZ; z++ {
			cell := geometry.StudCoordinate{StudX: x, StudZ: z, PlateY: part.Position.PlateY}
			if ownerID, ok := studMap[cell]; ok && ownerID != part.ID {
				if !seen[ownerID] {
					seen[ownerID] = true
					supports = append(supports, ownerID)
				}
			}
		}
	}

	return supports
}
