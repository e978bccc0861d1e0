package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrPatternInvalid, "bad pattern")

	assert.Equal(t, ErrPatternInvalid, err.Code)
	assert.Equal(t, "[PATTERN_INVALID] bad pattern", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("missing closing )")
	err := Wrapf(cause, ErrPatternInvalid, "invalid rule pattern %q", "(ax")

	assert.Equal(t, `[PATTERN_INVALID] invalid rule pattern "(ax": missing closing )`, err.Error())
	assert.True(t, stderrors.Is(err, cause))

	assert.Nil(t, Wrap(nil, ErrInternal, "ignored"))
}

func TestIsErrorCode(t *testing.T) {
	err := New(ErrConfigParse, "broken")

	assert.True(t, IsErrorCode(err, ErrConfigParse))
	assert.False(t, IsErrorCode(err, ErrConfigLoad))
	assert.False(t, IsErrorCode(stderrors.New("plain"), ErrConfigParse))
	assert.False(t, IsErrorCode(nil, ErrConfigParse))
}

func TestIsErrorCodeThroughWrapping(t *testing.T) {
	inner := New(ErrPatternInvalid, "bad pattern")
	outer := Wrap(inner, ErrConfigParse, "locale en")
	wrapped := fmt.Errorf("loading: %w", outer)

	// errors.As finds the outermost FlexionError.
	assert.True(t, IsErrorCode(wrapped, ErrConfigParse))
	assert.Equal(t, ErrConfigParse, GetErrorCode(wrapped))

	// The inner cause stays reachable via errors.Is.
	require.True(t, stderrors.Is(wrapped, inner))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrNotFound, GetErrorCode(New(ErrNotFound, "x")))
	assert.Equal(t, ErrUnknown, GetErrorCode(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrInvalidInput, "bad").WithDetail("field", "locale")
	assert.Equal(t, "locale", err.Details["field"])
}
