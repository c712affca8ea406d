package web

import (
	"net/http"

	"gopkg.in/mgo.v2/bson"

	"github.com/Maxwell1111/Lego-Interligence/model"
	"github.com/Maxwell1111/Lego-Interligence/model/mongo"
)

// patternResponse reports the parts a pattern expansion appended.
type patternResponse struct {
	Parts []*model.PlacedPart `json:"parts"`
	Added int                 `json:"added"`
}

func (h *handler) patternHandler(
	w http.ResponseWriter, r *http.Request,
	input interface{},
	expand func(db mongo.DB, buildID bson.ObjectId) ([]*model.PlacedPart, error),
) {
	buildID, idErr := extractBuildID(r)
	if idErr != nil {
		handleRequestErr(w, idErr)
		return
	}

	if err := decodeJSONRequest(r, input); err != nil {
		handleRequestErr(w, err)
		return
	}

	db := extractDBSession(r.Context())
	parts, err := expand(db, buildID)
	if err != nil {
		handleRequestErr(w, err)
		return
	}

	h.notifyBuild(db, buildID)
	_ = writeJSONResponse(w, http.StatusOK, patternResponse{Parts: parts, Added: len(parts)})
}

func (h *handler) patternBaseHandler(w http.ResponseWriter, r *http.Request) {
	input := &model.BasePatternInput{}
	h.patternHandler(w, r, input, func(db mongo.DB, buildID bson.ObjectId) ([]*model.PlacedPart, error) {
		return h.PatternBase(db, buildID, input)
	})
}

func (h *handler) patternWallHandler(w http.ResponseWriter, r *http.Request) {
	input := &model.WallPatternInput{}
	h.patternHandler(w, r, input, func(db mongo.DB, buildID bson.ObjectId) ([]*model.PlacedPart, error) {
		return h.PatternWall(db, buildID, input)
	})
}

func (h *handler) patternColumnHandler(w http.ResponseWriter, r *http.Request) {
	input := &model.ColumnPatternInput{}
	h.patternHandler(w, r, input, func(db mongo.DB, buildID bson.ObjectId) ([]*model.PlacedPart, error) {
		return h.PatternColumn(db, buildID, input)
	})
}

func (h *handler) patternWingHandler(w http.ResponseWriter, r *http.Request) {
	input := &model.WingPatternInput{}
	h.patternHandler(w, r, input, func(db mongo.DB, buildID bson.ObjectId) ([]*model.PlacedPart, error) {
		return h.PatternWing(db, buildID, input)
	})
}
