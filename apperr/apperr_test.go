package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusOf(NotFound("User profile not found")))
	assert.Equal(t, http.StatusUnauthorized, StatusOf(fmt.Errorf("wrapped: %w", Unauthorized("Unauthorized"))))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("boom")))
	assert.True(t, IsNotFound(NotFound("x")))
}

func TestAppError_MessageIncludesCause(t *testing.T) {
	cause := errors.New("email already registered")
	err := BadRequest("Auth error during signup", cause)

	assert.Equal(t, "Auth error during signup: email already registered", err.Error())
	assert.ErrorIs(t, err, cause)
}
