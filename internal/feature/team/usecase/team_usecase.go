// Package usecase implements team management.
package usecase

import (
	"context"
	"fmt"
	"io"

	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/shared/besteffort"
	"youthcup_backend/internal/shared/patch"
	"youthcup_backend/internal/shared/validation"
)

// TeamRepository abstracts team persistence.
type TeamRepository interface {
	Create(ctx context.Context, team *entity.Team) error
	// FindAll returns teams newest first with their rosters.
	FindAll(ctx context.Context) ([]entity.Team, error)
	// FindByID returns ErrTeamNotFound when missing.
	FindByID(ctx context.Context, id uint) (*entity.Team, error)
	// Save writes the team's own columns, not its roster.
	Save(ctx context.Context, team *entity.Team) error
	// Delete removes the team and detaches its players.
	Delete(ctx context.Context, id uint) error
	// AssignRoster makes playerIDs the team's roster.
	AssignRoster(ctx context.Context, teamID uint, playerIDs []uint) error
	// ExistingPlayerIDs returns the subset of ids that exist.
	ExistingPlayerIDs(ctx context.Context, ids []uint) ([]uint, error)
}

// AssetStore stores uploaded images.
type AssetStore interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
	Destroy(ctx context.Context, url string) error
}

// CreateInput holds the fields of a new team.
type CreateInput struct {
	Name    string
	Country string
	Players []uint
}

// UpdateInput is a partial update; unset fields are left alone.
type UpdateInput struct {
	Name    patch.Field[string]
	Country patch.Field[string]
	Players patch.Field[[]uint]
}

type teamFields struct {
	Name    string `json:"name" validate:"required,max=255"`
	Country string `json:"country" validate:"max=255"`
}

type teamUsecase struct {
	teams     TeamRepository
	assets    AssetStore
	validator *validation.Validator
}

// NewTeamUsecase creates a team usecase.
func NewTeamUsecase(teams TeamRepository, assets AssetStore, v *validation.Validator) *teamUsecase {
	return &teamUsecase{teams: teams, assets: assets, validator: v}
}

// Create validates and stores a team, then assigns its initial roster.
func (u *teamUsecase) Create(ctx context.Context, in CreateInput) (*entity.Team, error) {
	if err := u.validator.Struct(ctx, teamFields{Name: in.Name, Country: in.Country}); err != nil {
		return nil, err
	}
	if err := u.checkPlayers(ctx, in.Players); err != nil {
		return nil, err
	}

	team := &entity.Team{Name: in.Name, Country: in.Country}
	if err := u.teams.Create(ctx, team); err != nil {
		return nil, err
	}
	if len(in.Players) > 0 {
		if err := u.teams.AssignRoster(ctx, team.ID, in.Players); err != nil {
			return nil, fmt.Errorf("assign roster: %w", err)
		}
	}
	return u.teams.FindByID(ctx, team.ID)
}

// List returns all teams.
func (u *teamUsecase) List(ctx context.Context) ([]entity.Team, error) {
	return u.teams.FindAll(ctx)
}

// Get returns one team with its roster.
func (u *teamUsecase) Get(ctx context.Context, id uint) (*entity.Team, error) {
	return u.teams.FindByID(ctx, id)
}

// Update merges in into the stored team and re-validates it.
func (u *teamUsecase) Update(ctx context.Context, id uint, in UpdateInput) (*entity.Team, error) {
	if err := in.Name.NotNull("name"); err != nil {
		return nil, err
	}
	team, err := u.teams.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name.Set {
		team.Name = in.Name.Value
	}
	if in.Country.Set {
		team.Country = in.Country.Value
	}
	if err := u.validator.Struct(ctx, teamFields{Name: team.Name, Country: team.Country}); err != nil {
		return nil, err
	}
	if in.Players.HasValue() {
		if err := u.checkPlayers(ctx, in.Players.Value); err != nil {
			return nil, err
		}
	}

	if err := u.teams.Save(ctx, team); err != nil {
		return nil, err
	}
	if in.Players.Set {
		if err := u.teams.AssignRoster(ctx, team.ID, in.Players.Value); err != nil {
			return nil, fmt.Errorf("assign roster: %w", err)
		}
	}
	return u.teams.FindByID(ctx, id)
}

// Delete removes the team and, best-effort, its image.
func (u *teamUsecase) Delete(ctx context.Context, id uint) error {
	team, err := u.teams.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.teams.Delete(ctx, id); err != nil {
		return err
	}
	u.destroyImage(ctx, team.Image)
	return nil
}

// UploadImage replaces the team's image.
func (u *teamUsecase) UploadImage(ctx context.Context, id uint, filename string, r io.Reader) (*entity.Team, error) {
	team, err := u.teams.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	url, err := u.assets.Upload(ctx, filename, r)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	old := team.Image
	team.Image = url
	if err := u.teams.Save(ctx, team); err != nil {
		u.destroyImage(ctx, url)
		return nil, err
	}
	u.destroyImage(ctx, old)
	return team, nil
}

func (u *teamUsecase) destroyImage(ctx context.Context, url string) {
	if url == "" {
		return
	}
	besteffort.Do(ctx, "destroy_team_image", func(ctx context.Context) error {
		return u.assets.Destroy(ctx, url)
	})
}

func (u *teamUsecase) checkPlayers(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := u.teams.ExistingPlayerIDs(ctx, ids)
	if err != nil {
		return err
	}
	have := make(map[uint]struct{}, len(found))
	for _, id := range found {
		have[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := have[id]; !ok {
			return fmt.Errorf("player %d: %w", id, ErrPlayerNotFound)
		}
	}
	return nil
}
