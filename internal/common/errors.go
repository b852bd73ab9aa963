// Package common defines shared constants and sentinel errors used across
// launcher components. Callers should match these values with errors.Is.
package common

import "errors"

var (
	// Credential store errors.
	ErrUserExists         = errors.New("user with this login or email already exists")
	ErrInvalidCredentials = errors.New("invalid login or password")

	// Session errors.
	ErrInvalidSessionToken = errors.New("invalid session token")

	// Simulation errors.
	ErrInvalidNickname = errors.New("invalid nickname format")
	ErrFlowActive      = errors.New("operation already in progress")
)
