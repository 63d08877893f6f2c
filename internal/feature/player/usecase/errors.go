package usecase

import "youthcup_backend/internal/shared/apperror"

var (
	// ErrPlayerNotFound is returned when no player has the requested id.
	ErrPlayerNotFound = apperror.NotFound("player not found")

	// ErrTeamNotFound is returned when the referenced team does not exist.
	ErrTeamNotFound = apperror.NotFound("team not found")

	// ErrPlayerExists is returned when the team already has a player with
	// the same name and number.
	ErrPlayerExists = apperror.Conflict("player with this name and number already exists in the team")
)
