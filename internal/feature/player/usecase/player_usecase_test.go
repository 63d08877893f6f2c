package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/shared/apperror"
	"youthcup_backend/internal/shared/patch"
	"youthcup_backend/internal/shared/validation"
)

// mockPlayerRepository is a mock implementation of the PlayerRepository interface.
type mockPlayerRepository struct {
	CreateFunc     func(ctx context.Context, player *entity.Player) error
	FindAllFunc    func(ctx context.Context) ([]entity.Player, error)
	FindByIDFunc   func(ctx context.Context, id uint) (*entity.Player, error)
	SaveFunc       func(ctx context.Context, player *entity.Player) error
	DeleteFunc     func(ctx context.Context, id uint) error
	TeamExistsFunc func(ctx context.Context, id uint) (bool, error)

	saved *entity.Player
}

func (m *mockPlayerRepository) Create(ctx context.Context, player *entity.Player) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, player)
	}
	player.ID = 1
	return nil
}

func (m *mockPlayerRepository) FindAll(ctx context.Context) ([]entity.Player, error) {
	return m.FindAllFunc(ctx)
}

func (m *mockPlayerRepository) FindByID(ctx context.Context, id uint) (*entity.Player, error) {
	if m.saved != nil {
		cp := *m.saved
		return &cp, nil
	}
	return m.FindByIDFunc(ctx, id)
}

func (m *mockPlayerRepository) Save(ctx context.Context, player *entity.Player) error {
	if m.SaveFunc != nil {
		if err := m.SaveFunc(ctx, player); err != nil {
			return err
		}
	}
	cp := *player
	m.saved = &cp
	return nil
}

func (m *mockPlayerRepository) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockPlayerRepository) TeamExists(ctx context.Context, id uint) (bool, error) {
	if m.TeamExistsFunc != nil {
		return m.TeamExistsFunc(ctx, id)
	}
	return true, nil
}

func teamID(id uint) *uint { return &id }

func TestPlayerUsecase_Create(t *testing.T) {
	tests := []struct {
		name        string
		input       CreateInput
		teamExists  bool
		createErr   error
		expectedErr error
		expectedMsg string
	}{
		{
			name:       "success",
			input:      CreateInput{Name: "Ana", Position: entity.PositionForward, Number: 9, TeamID: 2},
			teamExists: true,
		},
		{
			name:        "missing name",
			input:       CreateInput{Position: entity.PositionForward, Number: 9, TeamID: 2},
			teamExists:  true,
			expectedMsg: "name is required",
		},
		{
			name:        "unknown position",
			input:       CreateInput{Name: "Ana", Position: "striker", Number: 9, TeamID: 2},
			teamExists:  true,
			expectedMsg: "position must be one of [goalkeeper defender midfielder forward]",
		},
		{
			name:        "number out of range",
			input:       CreateInput{Name: "Ana", Position: entity.PositionForward, Number: 100, TeamID: 2},
			teamExists:  true,
			expectedMsg: "number must be at most 99",
		},
		{
			name:        "missing team",
			input:       CreateInput{Name: "Ana", Position: entity.PositionForward, Number: 9},
			teamExists:  true,
			expectedMsg: "team is required",
		},
		{
			name:        "team does not exist",
			input:       CreateInput{Name: "Ana", Position: entity.PositionForward, Number: 9, TeamID: 404},
			teamExists:  false,
			expectedErr: ErrTeamNotFound,
		},
		{
			name:        "duplicate in team",
			input:       CreateInput{Name: "Ana", Position: entity.PositionForward, Number: 9, TeamID: 2},
			teamExists:  true,
			createErr:   apperror.Wrap(ErrPlayerExists, errors.New("duplicated key")),
			expectedErr: ErrPlayerExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockPlayerRepository{
				TeamExistsFunc: func(ctx context.Context, id uint) (bool, error) { return tt.teamExists, nil },
			}
			if tt.createErr != nil {
				repo.CreateFunc = func(ctx context.Context, player *entity.Player) error { return tt.createErr }
			}
			uc := NewPlayerUsecase(repo, validation.New())

			player, err := uc.Create(context.Background(), tt.input)

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.expectedMsg != "":
				assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
				assert.Equal(t, tt.expectedMsg, apperror.MessageOf(err))
			default:
				require.NoError(t, err)
				require.NotNil(t, player.TeamID)
				assert.Equal(t, tt.input.TeamID, *player.TeamID)
			}
		})
	}
}

func TestPlayerUsecase_Update(t *testing.T) {
	stored := func() *entity.Player {
		return &entity.Player{ID: 3, Name: "Ana", Position: entity.PositionForward, Number: 9, TeamID: teamID(2)}
	}

	t.Run("absent fields stay untouched", func(t *testing.T) {
		repo := &mockPlayerRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Player, error) { return stored(), nil },
		}
		uc := NewPlayerUsecase(repo, validation.New())

		player, err := uc.Update(context.Background(), 3, UpdateInput{Number: patch.Of(10)})

		require.NoError(t, err)
		assert.Equal(t, "Ana", player.Name)
		assert.Equal(t, entity.PositionForward, player.Position)
		assert.Equal(t, 10, player.Number)
		assert.Equal(t, uint(2), *player.TeamID)
	})

	t.Run("null team detaches", func(t *testing.T) {
		repo := &mockPlayerRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Player, error) { return stored(), nil },
		}
		uc := NewPlayerUsecase(repo, validation.New())

		player, err := uc.Update(context.Background(), 3, UpdateInput{Team: patch.Null[uint]()})

		require.NoError(t, err)
		assert.Nil(t, player.TeamID)
	})

	t.Run("move to unknown team", func(t *testing.T) {
		repo := &mockPlayerRepository{
			FindByIDFunc:   func(ctx context.Context, id uint) (*entity.Player, error) { return stored(), nil },
			TeamExistsFunc: func(ctx context.Context, id uint) (bool, error) { return false, nil },
		}
		uc := NewPlayerUsecase(repo, validation.New())

		_, err := uc.Update(context.Background(), 3, UpdateInput{Team: patch.Of[uint](9)})

		assert.ErrorIs(t, err, ErrTeamNotFound)
		assert.Nil(t, repo.saved)
	})

	t.Run("invalid number", func(t *testing.T) {
		repo := &mockPlayerRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Player, error) { return stored(), nil },
		}
		uc := NewPlayerUsecase(repo, validation.New())

		_, err := uc.Update(context.Background(), 3, UpdateInput{Number: patch.Of(0)})

		assert.Equal(t, "number must be at least 1", apperror.MessageOf(err))
	})

	t.Run("player not found", func(t *testing.T) {
		repo := &mockPlayerRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Player, error) { return nil, ErrPlayerNotFound },
		}
		uc := NewPlayerUsecase(repo, validation.New())

		_, err := uc.Update(context.Background(), 3, UpdateInput{})

		assert.ErrorIs(t, err, ErrPlayerNotFound)
	})
}

func TestPlayerUsecase_Delete(t *testing.T) {
	repo := &mockPlayerRepository{
		DeleteFunc: func(ctx context.Context, id uint) error { return ErrPlayerNotFound },
	}
	uc := NewPlayerUsecase(repo, validation.New())

	assert.ErrorIs(t, uc.Delete(context.Background(), 3), ErrPlayerNotFound)
}
