package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErr(t *testing.T) {
	attr := Err(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "boom", attr.Value.String())

	assert.Equal(t, "", Err(nil).Value.String())
}

func TestNew(t *testing.T) {
	assert.NotNil(t, New(0).Logger)
	assert.NotNil(t, NewNoop().Logger)
}
