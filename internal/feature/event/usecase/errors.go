package usecase

import "youthcup_backend/internal/shared/apperror"

var (
	// ErrEventNotFound is returned when no event has the requested id.
	ErrEventNotFound = apperror.NotFound("event not found")

	// ErrGameNotFound is returned when the referenced game does not exist.
	ErrGameNotFound = apperror.NotFound("game not found")

	// ErrPlayerNotFound is returned when the referenced player does not exist.
	ErrPlayerNotFound = apperror.NotFound("player not found")

	// ErrTeamNotFound is returned when the referenced team does not exist.
	ErrTeamNotFound = apperror.NotFound("team not found")
)
