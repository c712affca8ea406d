package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mgo "gopkg.in/mgo.v2"
)

var exportTestCases = []apiTestCase{
	{
		name: "ldraw export contains part lines",
		requests: []func(*testing.T, []response) request{
			createBuildRequest,
			addPartRequestFunc(0, M{"partId": "3001", "color": 4, "x": 0, "z": 0, "y": 0}),
			buildPathRequestFunc(0, "GET", "/export/ldraw", nil),
		},
		validate: func(t *testing.T, responses []response, session *mgo.Session) {
			r := responses[2]
			assert.Equal(t, http.StatusOK, r.code)

			assert.Equal(t, "build_name.ldr", extractStringFromInterface(t, r.body, "filename"))

			content := extractStringFromInterface(t, r.body, "content")
			assert.True(t, strings.HasPrefix(content, "0 build name\n"))
			assert.Contains(t, content, "\n1 4 ")
			assert.Contains(t, content, "3001.dat")
		},
	},
	{
		name: "bom groups parts by color",
		requests: []func(*testing.T, []response) request{
			createBuildRequest,
			addPartRequestFunc(0, M{"partId": "3001", "color": 4, "x": 0, "z": 0, "y": 0}),
			addPartRequestFunc(0, M{"partId": "3001", "color": 4, "x": 0, "z": 4, "y": 0}),
			addPartRequestFunc(0, M{"partId": "3001", "color": 1, "x": 0, "z": 8, "y": 0}),
			buildPathRequestFunc(0, "GET", "/export/bom", nil),
		},
		validate: func(t *testing.T, responses []response, session *mgo.Session) {
			r := responses[4]
			assert.Equal(t, http.StatusOK, r.code)

			assert.Equal(t, float64(3), extractFromMapInterface(t, r.body, "totalParts"))

			entries, ok := extractFromMapInterface(t, r.body, "entries").([]interface{})
			require.True(t, ok)
			require.Len(t, entries, 2)

			first := entries[0]
			assert.Equal(t, float64(2), extractFromMapInterface(t, first, "quantity"))
			assert.Equal(t, "Red", extractStringFromInterface(t, first, "colorName"))

			second := entries[1]
			assert.Equal(t, float64(1), extractFromMapInterface(t, second, "quantity"))
			assert.Equal(t, "Blue", extractStringFromInterface(t, second, "colorName"))
		},
	},
}

func TestExportRoutes(t *testing.T) {
	runTestCases(t, exportTestCases)
}
