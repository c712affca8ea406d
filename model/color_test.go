package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorName(t *testing.T) {
	assert.Equal(t, "Red", ColorName(4))
	assert.Equal(t, "Light Bluish Gray", ColorName(71))
	assert.Equal(t, "Color 999", ColorName(999))
}
