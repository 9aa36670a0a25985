package services

import (
	"errors"

	"github.com/ashish-aa/skillmesh/internal/client/api"
	"github.com/ashish-aa/skillmesh/internal/common"
)

// errorMessage turns a remote failure into the text shown on the form.
// Remote errors never escape a service; they end up here.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return "invalid email or password"
	case errors.Is(err, common.ErrEmailTaken):
		return "an account with this email already exists"
	case errors.Is(err, common.ErrWeakPassword):
		return "password is too weak"
	case errors.Is(err, api.ErrUnauthorized):
		return "session expired, please sign in again"
	case errors.Is(err, api.ErrUnavailable):
		return "service unavailable, please try again"
	case errors.Is(err, common.ErrUpload):
		return "image upload failed"
	default:
		return "request failed, please try again"
	}
}
