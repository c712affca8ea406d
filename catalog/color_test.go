package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapColor(t *testing.T) {
	assert.Equal(t, 10, MapColor(3))
	assert.Equal(t, 72, MapColor(85))

	// Ids shared between the two systems pass through.
	assert.Equal(t, 4, MapColor(4))
	assert.Equal(t, 71, MapColor(71))
}
