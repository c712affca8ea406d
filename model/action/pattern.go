package action

import (
	"gopkg.in/mgo.v2/bson"

	"github.com/Maxwell1111/Lego-Interligence/errors"
	"github.com/Maxwell1111/Lego-Interligence/model"
	"github.com/Maxwell1111/Lego-Interligence/model/mongo"
	"github.com/Maxwell1111/Lego-Interligence/patterns"
)

// PatternBase expands a base plate layer into the build.
func (r *Resolver) PatternBase(
	db mongo.DB, buildID bson.ObjectId, input *model.BasePatternInput,
) ([]*model.PlacedPart, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, errors.FormError{"pattern": err.Error()}
	}

	build, getErr := r.BuildGet(db, buildID)
	if getErr != nil {
		return nil, getErr
	}

	parts, expandErr := patterns.CreateBase(
		build, r.Catalog,
		input.StartX, input.StartZ, input.Width, input.Length, input.Color,
	)
	if expandErr != nil {
		return nil, errors.FormError{"pattern": expandErr.Error()}
	}

	if saveErr := r.buildSave(db, build); saveErr != nil {
		return nil, saveErr
	}
	return parts, nil
}

// PatternWall expands a wall into the build.
func (r *Resolver) PatternWall(
	db mongo.DB, buildID bson.ObjectId, input *model.WallPatternInput,
) ([]*model.PlacedPart, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, errors.FormError{"pattern": err.Error()}
	}

	build, getErr := r.BuildGet(db, buildID)
	if getErr != nil {
		return nil, getErr
	}

	parts, expandErr := patterns.CreateWall(
		build, r.Catalog,
		input.StartX, input.StartZ, input.StartY,
		input.Length, input.Height,
		input.Direction, input.Style, input.Color,
	)
	if expandErr != nil {
		return nil, errors.FormError{"pattern": expandErr.Error()}
	}

	if saveErr := r.buildSave(db, build); saveErr != nil {
		return nil, saveErr
	}
	return parts, nil
}

// PatternColumn expands a support column into the build.
func (r *Resolver) PatternColumn(
	db mongo.DB, buildID bson.ObjectId, input *model.ColumnPatternInput,
) ([]*model.PlacedPart, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, errors.FormError{"pattern": err.Error()}
	}

	build, getErr := r.BuildGet(db, buildID)
	if getErr != nil {
		return nil, getErr
	}

	parts, expandErr := patterns.CreateColumn(
		build, r.Catalog,
		input.X, input.Z, input.Height, input.Thickness, input.Color,
	)
	if expandErr != nil {
		return nil, errors.FormError{"pattern": expandErr.Error()}
	}

	if saveErr := r.buildSave(db, build); saveErr != nil {
		return nil, saveErr
	}
	return parts, nil
}

// PatternWing expands a swept wing into the build.
func (r *Resolver) PatternWing(
	db mongo.DB, buildID bson.ObjectId, input *model.WingPatternInput,
) ([]*model.PlacedPart, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, errors.FormError{"pattern": err.Error()}
	}

	build, getErr := r.BuildGet(db, buildID)
	if getErr != nil {
		return nil, getErr
	}

	parts, expandErr := patterns.CreateWing(
		build, r.Catalog,
		input.StartX, input.StartZ, input.StartY,
		input.Length, input.SweepAngle, input.Thickness, input.Color,
	)
	if expandErr != nil {
		return nil, errors.FormError{"pattern": expandErr.Error()}
	}

	if saveErr := r.buildSave(db, build); saveErr != nil {
		return nil, saveErr
	}
	return parts, nil
}
