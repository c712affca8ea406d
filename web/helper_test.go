package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maxwell1111/Lego-Interligence/errors"
	"github.com/Maxwell1111/Lego-Interligence/model"
)

func requestWithURLParam(key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)

	r := httptest.NewRequest("GET", "/", nil)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}

func TestExtractBuildID(t *testing.T) {
	id, err := extractBuildID(requestWithURLParam("buildId", "5a0c4c97a28f9f3b90a1d2e3"))
	require.NoError(t, err)
	assert.Equal(t, "5a0c4c97a28f9f3b90a1d2e3", id.Hex())

	_, err = extractBuildID(requestWithURLParam("buildId", "junk"))
	assert.Equal(t, errors.ErrNotFound, err)
}

func TestExtractPartID(t *testing.T) {
	id, err := extractPartID(requestWithURLParam("partId", "17"))
	require.NoError(t, err)
	assert.Equal(t, 17, id)

	_, err = extractPartID(requestWithURLParam("partId", "seventeen"))
	assert.Equal(t, errors.ErrNotFound, err)
}

func TestWriteJSONResponse(t *testing.T) {
	recorder := httptest.NewRecorder()

	err := writeJSONResponse(recorder, http.StatusCreated, map[string]int{"count": 3})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"count":3}`, recorder.Body.String())
}

func TestDecodeJSONRequest(t *testing.T) {
	input := &model.BuildCreateInput{}
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"house"}`))
	require.NoError(t, decodeJSONRequest(r, input))
	assert.Equal(t, "house", input.Name)

	r = httptest.NewRequest("POST", "/", strings.NewReader(`{broken`))
	assert.Equal(t, errors.ErrMalformed, decodeJSONRequest(r, input))
}

func TestHandleRequestErrStatusMapping(t *testing.T) {
	testCases := []struct {
		err    error
		status int
	}{
		{errors.ErrNotFound, http.StatusNotFound},
		{errors.ErrMalformed, http.StatusBadRequest},
		{errors.ErrInvalidForm, http.StatusBadRequest},
		{errors.FormError{"name": "empty"}, http.StatusBadRequest},
		{errors.ErrInternalServerError, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		recorder := httptest.NewRecorder()
		handleRequestErr(recorder, tc.err)

		assert.Equal(t, tc.status, recorder.Code, tc.err.Error())
		assert.Contains(t, recorder.Body.String(), "error")
	}
}
