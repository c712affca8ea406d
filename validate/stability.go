package validate

import (
	"github.com/Maxwell1111/Lego-Interligence/geometry"
	"github.com/Maxwell1111/Lego-Interligence/model"
)

// Parts starting below this plate count as the structural base.
const basePlateCutoff = 3

// Height beyond this multiple of the smaller base extent is flagged.
const maxHeightToBaseRatio = 3.0

// StabilityChecker estimates whether a build is grossly top-heavy. Mass is
// approximated by box volume at uniform density; this is a coarse heuristic,
// not a physics model, so it only ever produces warnings.
type StabilityChecker struct{}

// CheckStability runs the center-of-gravity and aspect-ratio heuristics.
// The result never contains errors. Empty builds pass trivially.
func (c StabilityChecker) CheckStability(build *model.BuildState) *model.ValidationResult {
	result := model.NewValidationResult()

	if len(build.Parts) == 0 {
		return result
	}

	cogX, _, cogZ := centerOfGravity(build)
	minX, maxX, minZ, maxZ := baseBounds(build)

	if cogX < float64(minX) || cogX > float64(maxX) || cogZ < float64(minZ) || cogZ > float64(maxZ) {
		result.AddWarning(
			"Center of gravity (%.1f, %.1f) is outside base - structure may be unstable",
			cogX, cogZ,
		)
		result.AddSuggestion("Widen the base or add counterweight")
	}

	width, length, plates := build.Dimensions()
	if width > 0 && length > 0 {
		height := float64(plates) / 3.0
		baseSize := width
		if length < width {
			baseSize = length
		}

		if height > float64(baseSize)*maxHeightToBaseRatio {
			result.AddWarning(
				"Build is very tall (%.1f bricks) compared to base (%d studs) - may be unstable",
				height, baseSize,
			)
			result.AddSuggestion("Add wider base or internal support structure")
		}
	}

	return result
}

// centerOfGravity returns the volume-weighted average of part box centers in
// continuous grid units (x and z in studs, y in plates).
func centerOfGravity(build *model.BuildState) (x, y, z float64) {
	var totalMass, sumX, sumY, sumZ float64

	for _, part := range build.Parts {
		mass := float64(part.Dimensions.Volume())
		cx, cy, cz := part.Bounds().Center()

		sumX += mass * cx
		sumY += mass * cy
		sumZ += mass * cz
		totalMass += mass
	}

	if totalMass == 0 {
		return 0, 0, 0
	}
	return sumX / totalMass, sumY / totalMass, sumZ / totalMass
}

// baseBounds returns the horizontal rectangle spanned by the base parts.
// If nothing starts below the cutoff the whole build acts as the base.
func baseBounds(build *model.BuildState) (minX, maxX, minZ, maxZ int) {
	var baseBoxes []geometry.Box
	for _, part := range build.Parts {
		if part.Position.PlateY < basePlateCutoff {
			baseBoxes = append(baseBoxes, part.Bounds())
		}
	}
	if len(baseBoxes) == 0 {
		for _, part := range build.Parts {
			baseBoxes = append(baseBoxes, part.Bounds())
		}
	}

	minX, maxX = baseBoxes[0].Min.StudX, baseBoxes[0].Max.StudX
	minZ, maxZ = baseBoxes[0].Min.StudZ, baseBoxes[0].Max.StudZ
	for _, box := range baseBoxes[1:] {
		if box.Min.StudX < minX {
			minX = box.Min.StudX
		}
		if box.Max.StudX > maxX {
			maxX = box.Max.StudX
		}
		if box.Min.StudZ < minZ {
			minZ = box.Min.StudZ
		}
		if box.Max.StudZ > maxZ {
			maxZ = box.Max.StudZ
		}
	}

	return minX, maxX, minZ, maxZ
}
