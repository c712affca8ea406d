package action

import (
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	"github.com/Maxwell1111/Lego-Interligence/errors"
	"github.com/Maxwell1111/Lego-Interligence/model"
	"github.com/Maxwell1111/Lego-Interligence/model/mongo"
)

// BuildCreate ...
func (r *Resolver) BuildCreate(db mongo.DB, input *model.BuildCreateInput) (*model.BuildState, error) {
	if err := input.Validate(); err != nil {
		return nil, errors.FormError{"build": err.Error()}
	}

	build := input.ToBuildState()
	build.ID = bson.NewObjectId()

	if insertErr := db.Build().Insert(build); insertErr != nil {
		log.Errorf("build insert failed: %s", insertErr.Error())
		return nil, errors.ErrInternalServerError
	}

	return build, nil
}

// BuildGet ...
func (r *Resolver) BuildGet(db mongo.DB, buildID bson.ObjectId) (*model.BuildState, error) {
	build := &model.BuildState{}
	getErr := db.Build().FindID(buildID).One(build)
	if getErr == mgo.ErrNotFound {
		return nil, errors.ErrNotFound
	}
	if getErr != nil {
		log.Errorf("build lookup failed: %s", getErr.Error())
		return nil, errors.ErrInternalServerError
	}
	return build, nil
}

// BuildGetAll ...
func (r *Resolver) BuildGetAll(db mongo.DB) ([]model.BuildState, error) {
	builds := []model.BuildState{}
	if getErr := db.Build().Find(bson.M{}).All(&builds); getErr != nil {
		log.Errorf("build list failed: %s", getErr.Error())
		return nil, errors.ErrInternalServerError
	}
	return builds, nil
}

// BuildUpdate applies a metadata update and returns the updated build.
func (r *Resolver) BuildUpdate(
	db mongo.DB, buildID bson.ObjectId, input *model.BuildUpdateInput,
) (*model.BuildState, error) {
	if err := input.Validate(); err != nil {
		return nil, errors.FormError{"build": err.Error()}
	}

	build, getErr := r.BuildGet(db, buildID)
	if getErr != nil {
		return nil, getErr
	}

	if input.Name != nil {
		build.Name = *input.Name
	}
	if input.Description != nil {
		build.Description = *input.Description
	}
	if input.Status != nil {
		build.Status = *input.Status
	}

	if saveErr := r.buildSave(db, build); saveErr != nil {
		return nil, saveErr
	}
	return build, nil
}

// BuildRemove ...
func (r *Resolver) BuildRemove(db mongo.DB, buildID bson.ObjectId) error {
	removeErr := db.Build().RemoveID(buildID)
	if removeErr == mgo.ErrNotFound {
		return errors.ErrNotFound
	}
	if removeErr != nil {
		log.Errorf("build remove failed: %s", removeErr.Error())
		return errors.ErrInternalServerError
	}
	return nil
}

// BuildClear removes every part but keeps metadata and the id counter, so
// part ids are never reused within a build.
func (r *Resolver) BuildClear(db mongo.DB, buildID bson.ObjectId) (*model.BuildState, error) {
	build, getErr := r.BuildGet(db, buildID)
	if getErr != nil {
		return nil, getErr
	}

	build.Parts = []*model.PlacedPart{}

	if saveErr := r.buildSave(db, build); saveErr != nil {
		return nil, saveErr
	}
	return build, nil
}

func (r *Resolver) buildSave(db mongo.DB, build *model.BuildState) error {
	if updateErr := db.Build().UpdateID(build.ID, build); updateErr != nil {
		log.Errorf("build save failed: %s", updateErr.Error())
		return errors.ErrInternalServerError
	}
	return nil
}
