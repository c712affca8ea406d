package model

import "fmt"

// BuildStatus is the lifecycle stage of a build, driven by the external
// generation loop.
type BuildStatus string

// Build lifecycle stages.
const (
	StatusClarifying BuildStatus = "clarifying"
	StatusDesigning  BuildStatus = "designing"
	StatusValidating BuildStatus = "validating"
	StatusRefining   BuildStatus = "refining"
	StatusComplete   BuildStatus = "complete"
	StatusFailed     BuildStatus = "failed"
)

// Validate ...
func (s BuildStatus) Validate() error {
	switch s {
	case StatusClarifying, StatusDesigning, StatusValidating,
		StatusRefining, StatusComplete, StatusFailed:
		return nil
	}
	return fmt.Errorf("unknown build status %q", string(s))
}
