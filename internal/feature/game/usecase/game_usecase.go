// Package usecase implements game scheduling and results.
package usecase

import (
	"context"

	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/shared/patch"
	"youthcup_backend/internal/shared/validation"
)

// GameRepository abstracts game persistence.
type GameRepository interface {
	Create(ctx context.Context, game *entity.Game) error
	// FindAll returns games newest first with teams and events.
	FindAll(ctx context.Context) ([]entity.Game, error)
	// FindByID returns ErrGameNotFound when missing.
	FindByID(ctx context.Context, id uint) (*entity.Game, error)
	Save(ctx context.Context, game *entity.Game) error
	// Delete removes the game together with its events.
	Delete(ctx context.Context, id uint) error
	CountTeams(ctx context.Context, ids []uint) (int64, error)
	PlayerExists(ctx context.Context, id uint) (bool, error)
}

// CreateInput holds a new game. Teams[0] plays at home.
type CreateInput struct {
	Teams  []uint
	Status entity.GameStatus
}

// UpdateInput is a partial update. Null scores or mvp clear them.
type UpdateInput struct {
	Teams     patch.Field[[]uint]
	Status    patch.Field[entity.GameStatus]
	HomeScore patch.Field[int]
	AwayScore patch.Field[int]
	MVP       patch.Field[uint]
}

type gameFields struct {
	Status    string `json:"status" validate:"required,oneof=scheduled in_progress completed"`
	HomeScore *int   `json:"homeScore" validate:"omitempty,min=0"`
	AwayScore *int   `json:"awayScore" validate:"omitempty,min=0"`
}

type gameUsecase struct {
	games     GameRepository
	validator *validation.Validator
}

// NewGameUsecase creates a game usecase.
func NewGameUsecase(games GameRepository, v *validation.Validator) *gameUsecase {
	return &gameUsecase{games: games, validator: v}
}

func (u *gameUsecase) validate(ctx context.Context, g *entity.Game) error {
	return u.validator.Struct(ctx, gameFields{
		Status:    string(g.Status),
		HomeScore: g.HomeScore,
		AwayScore: g.AwayScore,
	})
}

// resolveTeams checks the pair and returns it as (home, away).
func (u *gameUsecase) resolveTeams(ctx context.Context, teams []uint) (uint, uint, error) {
	if len(teams) != 2 || teams[0] == 0 || teams[1] == 0 || teams[0] == teams[1] {
		return 0, 0, ErrTeamCount
	}
	n, err := u.games.CountTeams(ctx, teams)
	if err != nil {
		return 0, 0, err
	}
	if n != 2 {
		return 0, 0, ErrTeamsNotFound
	}
	return teams[0], teams[1], nil
}

// Create schedules a game between two existing teams.
func (u *gameUsecase) Create(ctx context.Context, in CreateInput) (*entity.Game, error) {
	game := &entity.Game{Status: in.Status}
	if game.Status == "" {
		game.Status = entity.GameScheduled
	}
	if err := u.validate(ctx, game); err != nil {
		return nil, err
	}
	home, away, err := u.resolveTeams(ctx, in.Teams)
	if err != nil {
		return nil, err
	}
	game.HomeTeamID, game.AwayTeamID = home, away

	if err := u.games.Create(ctx, game); err != nil {
		return nil, err
	}
	return u.games.FindByID(ctx, game.ID)
}

// List returns all games.
func (u *gameUsecase) List(ctx context.Context) ([]entity.Game, error) {
	return u.games.FindAll(ctx)
}

// Get returns one game with teams and events.
func (u *gameUsecase) Get(ctx context.Context, id uint) (*entity.Game, error) {
	return u.games.FindByID(ctx, id)
}

// Update applies the present fields, re-checking teams and mvp.
func (u *gameUsecase) Update(ctx context.Context, id uint, in UpdateInput) (*entity.Game, error) {
	if err := in.Status.NotNull("status"); err != nil {
		return nil, err
	}
	game, err := u.games.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Status.Set {
		game.Status = in.Status.Value
	}
	if in.HomeScore.Set {
		game.HomeScore = in.HomeScore.Ptr()
	}
	if in.AwayScore.Set {
		game.AwayScore = in.AwayScore.Ptr()
	}
	if err := u.validate(ctx, game); err != nil {
		return nil, err
	}

	if in.Teams.Set {
		home, away, err := u.resolveTeams(ctx, in.Teams.Value)
		if err != nil {
			return nil, err
		}
		game.HomeTeamID, game.AwayTeamID = home, away
		game.HomeTeam, game.AwayTeam = nil, nil
	}
	if in.MVP.Set {
		if in.MVP.HasValue() {
			ok, err := u.games.PlayerExists(ctx, in.MVP.Value)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, ErrMVPNotFound
			}
		}
		game.MVPID = in.MVP.Ptr()
		game.MVP = nil
	}

	if err := u.games.Save(ctx, game); err != nil {
		return nil, err
	}
	return u.games.FindByID(ctx, id)
}

// Delete removes a game and its events.
func (u *gameUsecase) Delete(ctx context.Context, id uint) error {
	return u.games.Delete(ctx, id)
}
