package usecase

import "youthcup_backend/internal/shared/apperror"

var (
	// ErrGameNotFound is returned when no game has the requested id.
	ErrGameNotFound = apperror.NotFound("game not found")

	// ErrTeamCount is returned unless exactly two distinct teams are given.
	ErrTeamCount = apperror.Validation("game must have exactly 2 distinct teams")

	// ErrTeamsNotFound is returned when a referenced team does not exist.
	ErrTeamsNotFound = apperror.NotFound("one or more teams not found")

	// ErrMVPNotFound is returned when the mvp references an unknown player.
	ErrMVPNotFound = apperror.NotFound("mvp player not found")
)
