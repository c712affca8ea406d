package web

import (
	"net/http"

	"github.com/Maxwell1111/Lego-Interligence/model"
)

func (h *handler) addPartHandler(w http.ResponseWriter, r *http.Request) {
	buildID, idErr := extractBuildID(r)
	if idErr != nil {
		handleRequestErr(w, idErr)
		return
	}

	input := &model.PartInput{}
	if err := decodeJSONRequest(r, input); err != nil {
		handleRequestErr(w, err)
		return
	}

	db := extractDBSession(r.Context())
	part, err := h.PartAdd(db, buildID, input)
	if err != nil {
		handleRequestErr(w, err)
		return
	}

	h.notifyBuild(db, buildID)
	_ = writeJSONResponse(w, http.StatusOK, part)
}

func (h *handler) checkPlacementHandler(w http.ResponseWriter, r *http.Request) {
	buildID, idErr := extractBuildID(r)
	if idErr != nil {
		handleRequestErr(w, idErr)
		return
	}

	input := &model.PartInput{}
	if err := decodeJSONRequest(r, input); err != nil {
		handleRequestErr(w, err)
		return
	}

	check, err := h.PlacementCheck(extractDBSession(r.Context()), buildID, input)
	if err != nil {
		handleRequestErr(w, err)
		return
	}
	_ = writeJSONResponse(w, http.StatusOK, check)
}

func (h *handler) getPartHandler(w http.ResponseWriter, r *http.Request) {
	buildID, idErr := extractBuildID(r)
	if idErr != nil {
		handleRequestErr(w, idErr)
		return
	}
	partID, partErr := extractPartID(r)
	if partErr != nil {
		handleRequestErr(w, partErr)
		return
	}

	part, err := h.PartGet(extractDBSession(r.Context()), buildID, partID)
	if err != nil {
		handleRequestErr(w, err)
		return
	}
	_ = writeJSONResponse(w, http.StatusOK, part)
}

func (h *handler) removePartHandler(w http.ResponseWriter, r *http.Request) {
	buildID, idErr := extractBuildID(r)
	if idErr != nil {
		handleRequestErr(w, idErr)
		return
	}
	partID, partErr := extractPartID(r)
	if partErr != nil {
		handleRequestErr(w, partErr)
		return
	}

	build, err := h.PartRemove(extractDBSession(r.Context()), buildID, partID)
	if err != nil {
		handleRequestErr(w, err)
		return
	}

	h.live.broadcastBuild(build)
	_ = writeJSONResponse(w, http.StatusOK, newBuildResponse(build))
}
