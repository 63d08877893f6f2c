// Package usecase implements player management.
package usecase

import (
	"context"
	"errors"

	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/shared/patch"
	"youthcup_backend/internal/shared/validation"
)

// PlayerRepository abstracts player persistence.
type PlayerRepository interface {
	Create(ctx context.Context, player *entity.Player) error
	// FindAll returns players by position rank, then number.
	FindAll(ctx context.Context) ([]entity.Player, error)
	// FindByID returns the player with its team and events, or ErrPlayerNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Player, error)
	Save(ctx context.Context, player *entity.Player) error
	Delete(ctx context.Context, id uint) error
	TeamExists(ctx context.Context, id uint) (bool, error)
}

// CreateInput holds the fields of a new player.
type CreateInput struct {
	Name     string
	Position entity.Position
	Number   int
	TeamID   uint
}

// UpdateInput is a partial update. A null Team detaches the player.
type UpdateInput struct {
	Name     patch.Field[string]
	Position patch.Field[entity.Position]
	Number   patch.Field[int]
	Team     patch.Field[uint]
}

type playerFields struct {
	Name     string `json:"name" validate:"required,max=255"`
	Position string `json:"position" validate:"required,oneof=goalkeeper defender midfielder forward"`
	Number   int    `json:"number" validate:"min=1,max=99"`
}

type teamRef struct {
	Team uint `json:"team" validate:"required"`
}

type playerUsecase struct {
	players   PlayerRepository
	validator *validation.Validator
}

// NewPlayerUsecase creates a player usecase.
func NewPlayerUsecase(players PlayerRepository, v *validation.Validator) *playerUsecase {
	return &playerUsecase{players: players, validator: v}
}

func (u *playerUsecase) validate(ctx context.Context, p *entity.Player) error {
	return u.validator.Struct(ctx, playerFields{Name: p.Name, Position: string(p.Position), Number: p.Number})
}

func (u *playerUsecase) checkTeam(ctx context.Context, id uint) error {
	ok, err := u.players.TeamExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrTeamNotFound
	}
	return nil
}

// Create validates the player and stores it on an existing team.
func (u *playerUsecase) Create(ctx context.Context, in CreateInput) (*entity.Player, error) {
	player := &entity.Player{Name: in.Name, Position: in.Position, Number: in.Number}
	if err := u.validate(ctx, player); err != nil {
		return nil, err
	}
	if err := u.validator.Struct(ctx, teamRef{Team: in.TeamID}); err != nil {
		return nil, err
	}
	if err := u.checkTeam(ctx, in.TeamID); err != nil {
		return nil, err
	}

	teamID := in.TeamID
	player.TeamID = &teamID
	if err := u.players.Create(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// List returns every player.
func (u *playerUsecase) List(ctx context.Context) ([]entity.Player, error) {
	return u.players.FindAll(ctx)
}

// Get returns a player with its team and events.
func (u *playerUsecase) Get(ctx context.Context, id uint) (*entity.Player, error) {
	return u.players.FindByID(ctx, id)
}

// Update applies the present fields and re-validates the player.
func (u *playerUsecase) Update(ctx context.Context, id uint, in UpdateInput) (*entity.Player, error) {
	if err := errors.Join(
		in.Name.NotNull("name"),
		in.Position.NotNull("position"),
		in.Number.NotNull("number"),
	); err != nil {
		return nil, err
	}
	player, err := u.players.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name.Set {
		player.Name = in.Name.Value
	}
	if in.Position.Set {
		player.Position = in.Position.Value
	}
	if in.Number.Set {
		player.Number = in.Number.Value
	}
	if err := u.validate(ctx, player); err != nil {
		return nil, err
	}
	if in.Team.Set {
		if in.Team.Null {
			player.TeamID = nil
		} else {
			if err := u.checkTeam(ctx, in.Team.Value); err != nil {
				return nil, err
			}
			player.TeamID = in.Team.Ptr()
		}
		player.Team = nil
	}

	if err := u.players.Save(ctx, player); err != nil {
		return nil, err
	}
	return u.players.FindByID(ctx, id)
}

// Delete removes a player.
func (u *playerUsecase) Delete(ctx context.Context, id uint) error {
	return u.players.Delete(ctx, id)
}
