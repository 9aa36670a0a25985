// Package common defines shared constants and sentinel errors used across
// the SkillMesh client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors are produced locally, before any remote call.
	ErrValidation = errors.New("validation error")

	// Auth gateway errors.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrNotAuthenticated   = errors.New("user not authenticated")

	// Remote store errors.
	ErrNotFound = errors.New("not found")
	ErrStore    = errors.New("store error")

	// Blob storage errors.
	ErrUpload = errors.New("image upload failed")

	// Device location errors.
	ErrPermissionDenied = errors.New("location permission denied")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
