package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkip(t *testing.T) {
	assert.EqualValues(t, 0, Skip(10, 0))
	assert.EqualValues(t, 0, Skip(10, -3))
	assert.EqualValues(t, 0, Skip(10, 1))
	assert.EqualValues(t, 20, Skip(10, 3))
}

func TestPageOptions(t *testing.T) {
	opts := PageOptions(4, 2)
	if assert.NotNil(t, opts.Skip) && assert.NotNil(t, opts.Limit) {
		assert.EqualValues(t, 4, *opts.Skip)
		assert.EqualValues(t, 4, *opts.Limit)
	}

	unbounded := PageOptions(0, 1)
	assert.Nil(t, unbounded.Limit)
}
