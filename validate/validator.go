package validate

import (
	"fmt"
	"sort"

	"github.com/Maxwell1111/Lego-Interligence/model"
)

// PhysicalValidator composes collision, connection and stability checks
// into one report and offers the fast single-placement pre-check used by
// interactive and generation-driven placement.
type PhysicalValidator struct {
	collision  CollisionDetector
	connection ConnectionValidator
	stability  StabilityChecker
}

// NewPhysicalValidator ...
func NewPhysicalValidator() *PhysicalValidator {
	return &PhysicalValidator{}
}

// ValidateBuild runs all checks and merges their findings. Validity depends
// on collision and connection errors only; stability contributes warnings.
// As a side effect the cached ConnectedTo annotations on the build parts are
// refreshed from the discovered support graph.
func (v *PhysicalValidator) ValidateBuild(build *model.BuildState) *model.ValidationResult {
	result := model.NewValidationResult()

	result.Merge(v.collision.ValidateAll(build))

	connectionResult, graph := v.connection.ValidateConnections(build)
	result.Merge(connectionResult)

	build.ClearConnections()
	for id, supports := range graph {
		if part := build.GetPartByID(id); part != nil {
			sort.Ints(supports)
			part.ConnectedTo = supports
		}
	}

	result.Merge(v.stability.CheckStability(build))

	return result
}

// PlacementCheck is the outcome of a quick single-placement pre-check.
type PlacementCheck struct {
	Valid       bool     `json:"valid"`
	Error       string   `json:"error,omitempty"`
	Suggestions []string `json:"suggestions"`
}

// quickOffsets are the horizontally adjacent probe positions, enumerated in
// a fixed order so suggestions are reproducible across calls.
var quickOffsets = [][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// QuickValidatePlacement checks a single speculative placement against the
// build, running collision detection only: an in-progress placement cannot
// yet be judged for support or stability. On collision it probes the eight
// adjacent positions at the same elevation, then a single 90 degree
// clockwise rotation in place, and suggests up to two alternatives that
// clear collision. A suggested alternative is not guaranteed to also pass
// connection or stability in the full pass.
func (v *PhysicalValidator) QuickValidatePlacement(build *model.BuildState, candidate *model.PlacedPart) PlacementCheck {
	if !v.collision.CheckCollision(build, candidate) {
		return PlacementCheck{Valid: true, Suggestions: []string{}}
	}

	suggestions := []string{}

	for _, offset := range quickOffsets {
		if len(suggestions) >= 2 {
			break
		}

		alt := *candidate
		alt.ID = -1
		alt.Position = candidate.Position.Offset(offset[0], offset[1], 0)

		if !v.collision.CheckCollision(build, &alt) {
			suggestions = append(suggestions, "Try position "+alt.Position.String())
		}
	}

	if len(suggestions) < 2 {
		alt := *candidate
		alt.ID = -1
		alt.Rotation = candidate.Rotation.CW()

		if !v.collision.CheckCollision(build, &alt) {
			suggestions = append(suggestions, fmt.Sprintf("Try rotation %d°", alt.Rotation.Degrees()))
		}
	}

	return PlacementCheck{
		Valid:       false,
		Error:       "Collision at " + candidate.Position.String(),
		Suggestions: suggestions,
	}
}
