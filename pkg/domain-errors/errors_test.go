package dErrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesCode(t *testing.T) {
	err := New(CodeConflict, "aadhaar already registered")
	assert.True(t, Is(err, CodeConflict))
	assert.False(t, Is(err, CodeNotFound))
	assert.False(t, Is(errors.New("plain"), CodeConflict))
}

func TestIsSeesThroughWrapping(t *testing.T) {
	inner := New(CodeUnavailable, "persistence unreachable")
	wrapped := fmt.Errorf("submit step 1: %w", inner)
	assert.True(t, Is(wrapped, CodeUnavailable))
	assert.Equal(t, CodeUnavailable, CodeOf(wrapped))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Wrap(CodeUnavailable, "schema source unreachable", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "schema source unreachable", MessageOf(err))
}

func TestToHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeBadRequest:         http.StatusBadRequest,
		CodeValidation:         http.StatusBadRequest,
		CodeNotFound:           http.StatusNotFound,
		CodeConflict:           http.StatusConflict,
		CodeUnavailable:        http.StatusServiceUnavailable,
		CodeInvariantViolation: http.StatusInternalServerError,
		CodeInternal:           http.StatusInternalServerError,
		Code("mystery"):        http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, ToHTTPStatus(code), string(code))
	}
}
