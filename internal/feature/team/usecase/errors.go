package usecase

import "youthcup_backend/internal/shared/apperror"

var (
	// ErrTeamNotFound is returned when no team has the requested id.
	ErrTeamNotFound = apperror.NotFound("team not found")

	// ErrTeamNameTaken is returned when another team already uses the name.
	ErrTeamNameTaken = apperror.Conflict("team name already exists")

	// ErrPlayerNotFound is returned when a roster references an unknown player.
	ErrPlayerNotFound = apperror.NotFound("player not found")

	// ErrRosterConflict is returned when the roster would hold two players
	// with the same name and number.
	ErrRosterConflict = apperror.Conflict("a player with that name and number is already on this team")
)
