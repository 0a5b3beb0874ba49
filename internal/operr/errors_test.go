package operr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorAndErrorfMessages(t *testing.T) {
	err := Error("Dilate", "bad input")
	assert.Contains(t, err.Error(), "Dilate")
	assert.Contains(t, err.Error(), "bad input")

	errf := Errorf("Erode", "size %dx%d invalid", 3, 4)
	assert.Contains(t, errf.Error(), "3x4")
}

func TestWrapPreservesChainForErrorsIs(t *testing.T) {
	sentinel := errors.New("boom")
	wrapped := Wrap(sentinel, "Close", "inner step failed")
	assert.True(t, errors.Is(wrapped, sentinel))
	assert.Contains(t, wrapped.Error(), "Close")
	assert.Contains(t, wrapped.Error(), "boom")
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "Open", "x"))
	assert.NoError(t, Wrapf(nil, "Open", "x %d", 1))
}
