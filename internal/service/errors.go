package service

import "errors"

var (
	// ErrNotFound covers unknown ids, unknown emails and records not
	// owned by the requester.
	ErrNotFound = errors.New("not found")
	// ErrConflict is a duplicate email or (owner, slug) pair.
	ErrConflict = errors.New("conflict")
	// ErrFieldRequired is a missing media file on first creation.
	ErrFieldRequired = errors.New("field required")
	// ErrInvalidCredential is a failed password comparison.
	ErrInvalidCredential = errors.New("invalid credential")
	// ErrSessionInvalid marks a refresh token that was rotated out,
	// cleared by logout, or presented concurrently with another rotation.
	ErrSessionInvalid = errors.New("session invalid")
	// ErrTokenExpired and ErrTokenInvalid distinguish verification
	// failures internally; both render as 401 outward.
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")

	ErrMisconfigured = errors.New("auth config invalid")
)
