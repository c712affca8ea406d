package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mgo "gopkg.in/mgo.v2"
)

var patternTestCases = []apiTestCase{
	{
		name: "base pattern fills rectangle",
		requests: []func(*testing.T, []response) request{
			createBuildRequest,
			buildPathRequestFunc(0, "POST", "/patterns/base", M{
				"width": 8, "length": 8,
			}),
			buildPathRequestFunc(0, "GET", "/validation", nil),
		},
		validate: func(t *testing.T, responses []response, session *mgo.Session) {
			r := responses[1]
			assert.Equal(t, http.StatusOK, r.code)

			added := extractFromMapInterface(t, r.body, "added")
			assert.Greater(t, added, float64(0))

			result := extractFromMapInterface(t, responses[2].body, "result")
			assert.Equal(t, true, extractFromMapInterface(t, result, "isValid"))
		},
	},
	{
		name: "wall pattern defaults validate clean",
		requests: []func(*testing.T, []response) request{
			createBuildRequest,
			buildPathRequestFunc(0, "POST", "/patterns/wall", M{}),
			buildPathRequestFunc(0, "GET", "/validation", nil),
		},
		validate: func(t *testing.T, responses []response, session *mgo.Session) {
			assert.Equal(t, http.StatusOK, responses[1].code)

			result := extractFromMapInterface(t, responses[2].body, "result")
			assert.Equal(t, true, extractFromMapInterface(t, result, "isValid"))
		},
	},
	{
		name: "column pattern stacks alternating courses",
		requests: []func(*testing.T, []response) request{
			createBuildRequest,
			buildPathRequestFunc(0, "POST", "/patterns/column", M{
				"height": 12, "thickness": 2,
			}),
		},
		validate: func(t *testing.T, responses []response, session *mgo.Session) {
			r := responses[1]
			assert.Equal(t, http.StatusOK, r.code)

			parts, ok := extractFromMapInterface(t, r.body, "parts").([]interface{})
			require.True(t, ok)
			assert.Len(t, parts, 4)
		},
	},
	{
		name: "wing pattern places swept rows",
		requests: []func(*testing.T, []response) request{
			createBuildRequest,
			buildPathRequestFunc(0, "POST", "/patterns/wing", M{
				"length": 8, "sweepAngle": 15,
			}),
		},
		validate: func(t *testing.T, responses []response, session *mgo.Session) {
			r := responses[1]
			assert.Equal(t, http.StatusOK, r.code)
			assert.Equal(t, float64(5), extractFromMapInterface(t, r.body, "added"))
		},
	},
	{
		name: "pattern with invalid arguments fails",
		requests: []func(*testing.T, []response) request{
			createBuildRequest,
			buildPathRequestFunc(0, "POST", "/patterns/wall", M{
				"direction": "diagonal",
			}),
		},
		validate: func(t *testing.T, responses []response, session *mgo.Session) {
			assert.Equal(t, http.StatusBadRequest, responses[1].code)
		},
	},
}

func TestPatternRoutes(t *testing.T) {
	runTestCases(t, patternTestCases)
}
