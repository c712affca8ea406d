// Package validate implements physical validation of brick builds:
// collision detection, stud connection analysis and stability heuristics.
package validate

import (
	"github.com/Maxwell1111/Lego-Interligence/model"
)

// CollisionDetector detects overlapping parts using axis-aligned bounding
// boxes with half-open interval semantics.
type CollisionDetector struct{}

// CheckCollision reports whether the candidate part overlaps any existing
// part. This is the fast path used for single-placement checks, linear in
// the current part count.
func (d CollisionDetector) CheckCollision(build *model.BuildState, candidate *model.PlacedPart) bool {
	candidateBox := candidate.Bounds()

	for _, existing := range build.Parts {
		if candidateBox.Overlaps(existing.Bounds()) {
			return true
		}
	}

	return false
}

// ValidateAll checks every unordered pair of parts once and emits one error
// per colliding pair, naming both part ids and catalog ids. No warnings or
// suggestions are produced here.
func (d CollisionDetector) ValidateAll(build *model.BuildState) *model.ValidationResult {
	result := model.NewValidationResult()

	for i, first := range build.Parts {
		firstBox := first.Bounds()
		for _, second := range build.Parts[i+1:] {
			if firstBox.Overlaps(second.Bounds()) {
				result.AddError(
					"Collision between part #%d (%s) and part #%d (%s)",
					first.ID, first.PartID, second.ID, second.PartID,
				)
			}
		}
	}

	return result
}
