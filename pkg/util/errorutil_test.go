package util_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hr-service/pkg/util"
)

func TestDomainErrorCodes(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{util.NewInvalidCredentials(), "INVALID_EMAIL_OR_PASSWORD", http.StatusUnauthorized},
		{util.NewDeniedUser(), "DENIED_USER", http.StatusForbidden},
		{util.NewUserNotFound("u1"), "NOTFOUND_USER", http.StatusNotFound},
		{util.NewInvalidToken(), "INVALID_TOKEN", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			var domainErr *util.DomainError
			require.ErrorAs(t, tc.err, &domainErr)
			assert.Equal(t, tc.code, domainErr.Code)
			assert.Equal(t, tc.status, domainErr.HTTPStatus)
		})
	}
}

func TestToDomainErrorPassesThrough(t *testing.T) {
	original := util.NewDeniedUser()
	mapped := util.ToDomainError(original)
	assert.Equal(t, "DENIED_USER", mapped.Code)
}

func TestToDomainErrorWrapsUnknownErrors(t *testing.T) {
	mapped := util.ToDomainError(errors.New("disk on fire"))
	require.NotNil(t, mapped)
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, util.ToDomainError(nil))
}
