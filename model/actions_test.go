package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maxwell1111/Lego-Interligence/geometry"
)

func TestBuildCreateInputValidate(t *testing.T) {
	assert.Error(t, BuildCreateInput{}.Validate())
	assert.NoError(t, BuildCreateInput{Name: "house"}.Validate())
}

func TestBuildCreateInputToBuildState(t *testing.T) {
	build := BuildCreateInput{Name: "house", Description: "red door"}.ToBuildState()

	assert.Equal(t, "house", build.Name)
	assert.Equal(t, "red door", build.Description)
	assert.Equal(t, StatusDesigning, build.Status)
}

func TestBuildUpdateInputValidate(t *testing.T) {
	name := "renamed"
	empty := ""
	good := StatusComplete
	bad := BuildStatus("melting")

	assert.NoError(t, BuildUpdateInput{}.Validate())
	assert.NoError(t, BuildUpdateInput{Name: &name, Status: &good}.Validate())
	assert.Error(t, BuildUpdateInput{Name: &empty}.Validate())
	assert.Error(t, BuildUpdateInput{Status: &bad}.Validate())
}

func TestPartInputValidate(t *testing.T) {
	valid := PartInput{PartID: "3001", Color: 4, Rotation: 90}
	require.NoError(t, valid.Validate())

	assert.Error(t, PartInput{Color: 4}.Validate())
	assert.Error(t, PartInput{PartID: "3001", Color: -1}.Validate())
	assert.Error(t, PartInput{PartID: "3001", Rotation: 45}.Validate())
}

func TestPartInputPosition(t *testing.T) {
	input := PartInput{PartID: "3001", X: 1, Z: 2, Y: 3}

	assert.Equal(t, geometry.StudCoordinate{StudX: 1, StudZ: 2, PlateY: 3}, input.Position())
}

func TestPatternInputDefaults(t *testing.T) {
	base := &BasePatternInput{}
	base.Normalize()
	assert.Equal(t, 8, base.Width)
	assert.Equal(t, 8, base.Length)
	assert.Equal(t, 71, base.Color)
	assert.NoError(t, base.Validate())

	wall := &WallPatternInput{}
	wall.Normalize()
	assert.Equal(t, 8, wall.Length)
	assert.Equal(t, 9, wall.Height)
	assert.Equal(t, "x", wall.Direction)
	assert.Equal(t, "solid", wall.Style)
	assert.NoError(t, wall.Validate())
}

func TestPatternInputValidateRejectsBadValues(t *testing.T) {
	base := &BasePatternInput{Width: -1}
	base.Normalize()
	assert.Error(t, base.Validate())

	wall := &WallPatternInput{Direction: "diagonal"}
	wall.Normalize()
	assert.Error(t, wall.Validate())
}
