// Package usecase computes the league table from recorded results.
package usecase

import (
	"context"
	"fmt"

	"youthcup_backend/internal/domain/entity"
)

// StandingsRepository loads the inputs of the table.
type StandingsRepository interface {
	// Teams returns every team ordered by id.
	Teams(ctx context.Context) ([]entity.Team, error)
	// CompletedGames returns games whose status is completed.
	CompletedGames(ctx context.Context) ([]entity.Game, error)
}

type standingsUsecase struct {
	repo StandingsRepository
}

// NewStandingsUsecase creates a standings usecase.
func NewStandingsUsecase(repo StandingsRepository) *standingsUsecase {
	return &standingsUsecase{repo: repo}
}

// Table returns the current league table.
func (u *standingsUsecase) Table(ctx context.Context) ([]Row, error) {
	teams, err := u.repo.Teams(ctx)
	if err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}
	games, err := u.repo.CompletedGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("load games: %w", err)
	}
	return Compute(teams, games), nil
}
