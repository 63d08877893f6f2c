// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"errors"

	"youthcup_backend/internal/shared/apperror"
)

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = apperror.NotFound("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = apperror.Conflict("email already exists")

	// ErrInvalidCredentials is returned for an unknown email or a wrong password at login.
	ErrInvalidCredentials = apperror.Unauthorized("invalid email or password")

	// ErrInvalidRefreshToken is returned when a refresh token fails verification,
	// or has been superseded by rotation or revoked by logout.
	ErrInvalidRefreshToken = apperror.Unauthorized("invalid refresh token")

	// ErrWrongPassword is returned by ChangePassword when the old password does not match.
	ErrWrongPassword = apperror.Validation("old password is incorrect")

	// ErrRefreshTokenNotFound is returned by a RefreshTokenStore with no entry for the user.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
)
