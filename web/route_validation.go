package web

import (
	"net/http"

	"github.com/Maxwell1111/Lego-Interligence/model"
)

// validationResponse pairs the validation verdict with the annotated build.
type validationResponse struct {
	Result *model.ValidationResult `json:"result"`
	Build  buildResponse           `json:"build"`
}

func (h *handler) validateBuildHandler(w http.ResponseWriter, r *http.Request) {
	buildID, idErr := extractBuildID(r)
	if idErr != nil {
		handleRequestErr(w, idErr)
		return
	}

	result, build, err := h.BuildValidate(extractDBSession(r.Context()), buildID)
	if err != nil {
		handleRequestErr(w, err)
		return
	}

	_ = writeJSONResponse(w, http.StatusOK, validationResponse{
		Result: result,
		Build:  newBuildResponse(build),
	})
}
