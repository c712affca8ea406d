package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mgo "gopkg.in/mgo.v2"
)

var partTestCases = []apiTestCase{
	{
		name: "add part resolves catalog data",
		requests: []func(*testing.T, []response) request{
			createBuildRequest,
			addPartRequestFunc(0, M{"partId": "3001", "color": 4, "x": 1, "z": 2, "y": 0}),
		},
		validate: func(t *testing.T, responses []response, session *mgo.Session) {
			r := responses[1]
			assert.Equal(t, http.StatusOK, r.code)

			body, bodyOk := r.body.(map[string]interface{})
			require.True(t, bodyOk)
			assert.Equal(t, float64(1), body["id"])
			assert.Equal(t, "3001", body["partId"])
			assert.Equal(t, "Brick 2x4", body["partName"])
			assert.Equal(t, float64(4), body["color"])

			dims, dimsOk := body["dimensions"].(map[string]interface{})
			require.True(t, dimsOk)
			assert.Equal(t, float64(2), dims["width"])
			assert.Equal(t, float64(4), dims["length"])
			assert.Equal(t, float64(3), dims["height"])
		},
	},
	{
		name: "add part with invalid rotation fails",
		requests: []func(*testing.T, []response) request{
			createBuildRequest,
			addPartRequestFunc(0, M{"partId": "3001", "color": 4, "rotation": 45}),
		},
		validate: func(t *testing.T, responses []response, session *mgo.Session) {
			assert.Equal(t, http.StatusBadRequest, responses[1].code)
		},
	},
	{
		name: "add unknown part fails",
		requests: []func(*testing.T, []response) request{
			createBuildRequest,
			addPartRequestFunc(0, M{"partId": "99999", "color": 4}),
		},
		validate: func(t *testing.T, responses []response, session *mgo.Session) {
			assert.Equal(t, http.StatusBadRequest, responses[1].code)
		},
	},
	{
		name: "get part by id",
		requests: []func(*testing.T, []response) request{
			createBuildRequest,
			addPartRequestFunc(0, M{"partId": "3003", "color": 1}),
			buildPathRequestFunc(0, "GET", "/parts/1", nil),
		},
		validate: func(t *testing.T, responses []response, session *mgo.Session) {
			r := responses[2]
			assert.Equal(t, http.StatusOK, r.code)
			assert.Equal(t, "3003", extractFromMapInterface(t, r.body, "partId"))
		},
	},
	{
		name: "remove part",
		requests: []func(*testing.T, []response) request{
			createBuildRequest,
			addPartRequestFunc(0, M{"partId": "3001", "color": 4}),
			buildPathRequestFunc(0, "DELETE", "/parts/1", nil),
			buildPathRequestFunc(0, "GET", "/parts/1", nil),
		},
		validate: func(t *testing.T, responses []response, session *mgo.Session) {
			assert.Equal(t, http.StatusOK, responses[2].code)
			assert.Equal(t, http.StatusNotFound, responses[3].code)

			body, bodyOk := responses[2].body.(map[string]interface{})
			require.True(t, bodyOk)
			assert.Equal(t, float64(0), body["partCount"])
		},
	},
	{
		name: "part ids are not reused after removal",
		requests: []func(*testing.T, []response) request{
			createBuildRequest,
			addPartRequestFunc(0, M{"partId": "3001", "color": 4}),
			buildPathRequestFunc(0, "DELETE", "/parts/1", nil),
			addPartRequestFunc(0, M{"partId": "3001", "color": 4}),
		},
		validate: func(t *testing.T, responses []response, session *mgo.Session) {
			r := responses[3]
			assert.Equal(t, http.StatusOK, r.code)
			assert.Equal(t, float64(2), extractFromMapInterface(t, r.body, "id"))
		},
	},
	{
		name: "placement check reports collision without committing",
		requests: []func(*testing.T, []response) request{
			createBuildRequest,
			addPartRequestFunc(0, M{"partId": "3001", "color": 4, "x": 0, "z": 0, "y": 0}),
			buildPathRequestFunc(0, "POST", "/parts/check", M{
				"partId": "3001", "color": 4, "x": 1, "z": 1, "y": 0,
			}),
			getBuildRequestFunc(0),
		},
		validate: func(t *testing.T, responses []response, session *mgo.Session) {
			check := responses[2]
			assert.Equal(t, http.StatusOK, check.code)
			assert.Equal(t, false, extractFromMapInterface(t, check.body, "valid"))
			assert.Contains(
				t,
				extractStringFromInterface(t, check.body, "error"),
				"Collision",
			)

			build := responses[3]
			assert.Equal(t, float64(1), extractFromMapInterface(t, build.body, "partCount"))
		},
	},
	{
		name: "placement check accepts clear position",
		requests: []func(*testing.T, []response) request{
			createBuildRequest,
			buildPathRequestFunc(0, "POST", "/parts/check", M{
				"partId": "3001", "color": 4, "x": 0, "z": 0, "y": 0,
			}),
		},
		validate: func(t *testing.T, responses []response, session *mgo.Session) {
			r := responses[1]
			assert.Equal(t, http.StatusOK, r.code)
			assert.Equal(t, true, extractFromMapInterface(t, r.body, "valid"))
		},
	},
}

func TestPartRoutes(t *testing.T) {
	runTestCases(t, partTestCases)
}
