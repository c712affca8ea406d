package action

import (
	"gopkg.in/mgo.v2/bson"

	"github.com/Maxwell1111/Lego-Interligence/model"
	"github.com/Maxwell1111/Lego-Interligence/model/mongo"
	"github.com/Maxwell1111/Lego-Interligence/validate"
)

// BuildValidate runs the full physical validation pass and persists the
// refreshed support annotations.
func (r *Resolver) BuildValidate(
	db mongo.DB, buildID bson.ObjectId,
) (*model.ValidationResult, *model.BuildState, error) {
	build, getErr := r.BuildGet(db, buildID)
	if getErr != nil {
		return nil, nil, getErr
	}

	result := r.Validator.ValidateBuild(build)

	if saveErr := r.buildSave(db, build); saveErr != nil {
		return nil, nil, saveErr
	}
	return result, build, nil
}

// PlacementCheck runs the collision-only pre-check for a speculative
// placement. The part is never committed.
func (r *Resolver) PlacementCheck(
	db mongo.DB, buildID bson.ObjectId, input *model.PartInput,
) (validate.PlacementCheck, error) {
	candidate, build, err := r.resolvePart(db, buildID, input)
	if err != nil {
		return validate.PlacementCheck{}, err
	}

	return r.Validator.QuickValidatePlacement(build, candidate), nil
}
