package action

import (
	"gopkg.in/mgo.v2/bson"

	"github.com/Maxwell1111/Lego-Interligence/errors"
	"github.com/Maxwell1111/Lego-Interligence/geometry"
	"github.com/Maxwell1111/Lego-Interligence/model"
	"github.com/Maxwell1111/Lego-Interligence/model/mongo"
)

// PartAdd resolves the part through the catalog, appends it to the build
// and persists the result. It never validates placement; callers either run
// PlacementCheck first or validate the whole build afterwards.
func (r *Resolver) PartAdd(
	db mongo.DB, buildID bson.ObjectId, input *model.PartInput,
) (*model.PlacedPart, error) {
	part, build, err := r.resolvePart(db, buildID, input)
	if err != nil {
		return nil, err
	}

	placed := build.AddPart(
		part.PartID, part.PartName, part.Color,
		part.Position, part.Rotation, part.Dimensions,
	)
	placed.Layer = input.Layer
	placed.SubAssembly = input.SubAssembly

	if saveErr := r.buildSave(db, build); saveErr != nil {
		return nil, saveErr
	}
	return placed, nil
}

// PartRemove ...
func (r *Resolver) PartRemove(db mongo.DB, buildID bson.ObjectId, partID int) (*model.BuildState, error) {
	build, getErr := r.BuildGet(db, buildID)
	if getErr != nil {
		return nil, getErr
	}

	if !build.RemovePart(partID) {
		return nil, errors.ErrNotFound
	}

	if saveErr := r.buildSave(db, build); saveErr != nil {
		return nil, saveErr
	}
	return build, nil
}

// PartGet ...
func (r *Resolver) PartGet(db mongo.DB, buildID bson.ObjectId, partID int) (*model.PlacedPart, error) {
	build, getErr := r.BuildGet(db, buildID)
	if getErr != nil {
		return nil, getErr
	}

	part := build.GetPartByID(partID)
	if part == nil {
		return nil, errors.ErrNotFound
	}
	return part, nil
}

// resolvePart validates the input and constructs the candidate part without
// committing it to the build.
func (r *Resolver) resolvePart(
	db mongo.DB, buildID bson.ObjectId, input *model.PartInput,
) (*model.PlacedPart, *model.BuildState, error) {
	if err := input.Validate(); err != nil {
		return nil, nil, errors.FormError{"part": err.Error()}
	}

	info, lookupErr := r.Catalog.Lookup(input.PartID, "")
	if lookupErr != nil {
		return nil, nil, errors.FormError{"partId": lookupErr.Error()}
	}

	rotation, rotationErr := geometry.NewRotation(input.Rotation)
	if rotationErr != nil {
		return nil, nil, errors.FormError{"rotation": rotationErr.Error()}
	}

	build, getErr := r.BuildGet(db, buildID)
	if getErr != nil {
		return nil, nil, getErr
	}

	return &model.PlacedPart{
		ID:         -1,
		PartID:     input.PartID,
		PartName:   info.Name,
		Color:      input.Color,
		Position:   input.Position(),
		Rotation:   rotation,
		Dimensions: info.Dims,
	}, build, nil
}
