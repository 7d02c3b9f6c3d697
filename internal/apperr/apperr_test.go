package apperr

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTemplate = &Error{Message: "invalid mood %d"}

func TestFmt(t *testing.T) {
	err := errTemplate.Fmt(7)

	assert.Equal(t, "invalid mood 7", err.Error())
	assert.ErrorIs(t, err, errTemplate)
	assert.Equal(t, "invalid mood %d", errTemplate.Message)
}

func TestWrap(t *testing.T) {
	base := &Error{Message: "saving session failed"}

	err := base.Wrap(io.ErrUnexpectedEOF)

	assert.Equal(t, "saving session failed: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, base)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestIsUnrelated(t *testing.T) {
	other := &Error{Message: "invalid mood %d"}

	assert.False(t, errors.Is(errTemplate.Fmt(1), other))
}
