package api

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mgo "gopkg.in/mgo.v2"
)

type M map[string]interface{}

func extractStringFromInterface(t *testing.T, object interface{}, field string) string {
	t.Helper()
	value, ok := object.(map[string]interface{})
	require.True(t, ok)
	element, ok := value[field]
	require.True(t, ok)
	str, isString := element.(string)
	require.True(t, isString)
	return str
}

func extractFromMapInterface(t *testing.T, object interface{}, field string) interface{} {
	t.Helper()
	value, ok := object.(map[string]interface{})
	require.True(t, ok)
	element, ok := value[field]
	require.True(t, ok)
	return element
}

func assertMongoID(t *testing.T, value interface{}) {
	t.Helper()
	str, ok := value.(string)
	require.True(t, ok)
	assert.Regexp(t, regexp.MustCompile("^[a-fA-F0-9]{24}$"), str)
}

func printEntireDB(t *testing.T, session *mgo.Session) {
	var builds []interface{}

	require.Nil(t, session.DB("").C("build").Find(M{}).All(&builds))
	t.Logf("builds :\n%s", spew.Sdump(builds))
}

var defaultBuildInput = map[string]interface{}{
	"name":        "build name",
	"description": "build description",
}

func createBuildRequest(t *testing.T, responses []response) request {
	return request{
		method: "POST",
		path:   "/builds",
		body:   defaultBuildInput,
	}
}

func getBuildRequestFunc(requestNumber int) func(*testing.T, []response) request {
	return func(t *testing.T, r []response) request {
		return request{
			method: "GET",
			path: fmt.Sprintf(
				"/builds/%s",
				extractStringFromInterface(t, r[requestNumber].body, "id"),
			),
			body: nil,
		}
	}
}

func addPartRequestFunc(requestNumber int, part map[string]interface{}) func(*testing.T, []response) request {
	return func(t *testing.T, r []response) request {
		return request{
			method: "POST",
			path: fmt.Sprintf(
				"/builds/%s/parts",
				extractStringFromInterface(t, r[requestNumber].body, "id"),
			),
			body: part,
		}
	}
}

func buildPathRequestFunc(
	requestNumber int, method, suffix string, body map[string]interface{},
) func(*testing.T, []response) request {
	return func(t *testing.T, r []response) request {
		return request{
			method: method,
			path: fmt.Sprintf(
				"/builds/%s%s",
				extractStringFromInterface(t, r[requestNumber].body, "id"),
				suffix,
			),
			body: body,
		}
	}
}
