package web

import (
	"net/http"

	"github.com/Maxwell1111/Lego-Interligence/model"
)

// buildResponse is the API shape of a build snapshot.
type buildResponse struct {
	*model.BuildState
	PartCount  int    `json:"partCount"`
	Dimensions [3]int `json:"dimensions"`
}

func newBuildResponse(build *model.BuildState) buildResponse {
	w, l, h := build.Dimensions()
	return buildResponse{
		BuildState: build,
		PartCount:  len(build.Parts),
		Dimensions: [3]int{w, l, h},
	}
}

func (h *handler) getBuildsHandler(w http.ResponseWriter, r *http.Request) {
	builds, err := h.BuildGetAll(extractDBSession(r.Context()))
	if err != nil {
		handleRequestErr(w, err)
		return
	}
	_ = writeJSONResponse(w, http.StatusOK, builds)
}

func (h *handler) createBuildHandler(w http.ResponseWriter, r *http.Request) {
	input := &model.BuildCreateInput{}
	if err := decodeJSONRequest(r, input); err != nil {
		handleRequestErr(w, err)
		return
	}

	build, err := h.BuildCreate(extractDBSession(r.Context()), input)
	if err != nil {
		handleRequestErr(w, err)
		return
	}
	_ = writeJSONResponse(w, http.StatusOK, newBuildResponse(build))
}

func (h *handler) getBuildHandler(w http.ResponseWriter, r *http.Request) {
	buildID, idErr := extractBuildID(r)
	if idErr != nil {
		handleRequestErr(w, idErr)
		return
	}

	build, err := h.BuildGet(extractDBSession(r.Context()), buildID)
	if err != nil {
		handleRequestErr(w, err)
		return
	}
	_ = writeJSONResponse(w, http.StatusOK, newBuildResponse(build))
}

func (h *handler) updateBuildHandler(w http.ResponseWriter, r *http.Request) {
	buildID, idErr := extractBuildID(r)
	if idErr != nil {
		handleRequestErr(w, idErr)
		return
	}

	input := &model.BuildUpdateInput{}
	if err := decodeJSONRequest(r, input); err != nil {
		handleRequestErr(w, err)
		return
	}

	build, err := h.BuildUpdate(extractDBSession(r.Context()), buildID, input)
	if err != nil {
		handleRequestErr(w, err)
		return
	}
	_ = writeJSONResponse(w, http.StatusOK, newBuildResponse(build))
}

func (h *handler) removeBuildHandler(w http.ResponseWriter, r *http.Request) {
	buildID, idErr := extractBuildID(r)
	if idErr != nil {
		handleRequestErr(w, idErr)
		return
	}

	if err := h.BuildRemove(extractDBSession(r.Context()), buildID); err != nil {
		handleRequestErr(w, err)
		return
	}
	_ = writeJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) clearBuildHandler(w http.ResponseWriter, r *http.Request) {
	buildID, idErr := extractBuildID(r)
	if idErr != nil {
		handleRequestErr(w, idErr)
		return
	}

	build, err := h.BuildClear(extractDBSession(r.Context()), buildID)
	if err != nil {
		handleRequestErr(w, err)
		return
	}

	h.live.broadcastBuild(build)
	_ = writeJSONResponse(w, http.StatusOK, newBuildResponse(build))
}
