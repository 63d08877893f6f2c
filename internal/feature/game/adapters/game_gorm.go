// Package adapters provides the GORM implementation of game persistence.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/feature/game/usecase"
)

type gameGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure gameGorm implements GameRepository.
var _ usecase.GameRepository = (*gameGorm)(nil)

// NewGameGorm creates a new instance of gameGorm.
func NewGameGorm(db *gorm.DB) *gameGorm {
	return &gameGorm{db: db}
}

func (r *gameGorm) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("HomeTeam").
		Preload("AwayTeam").
		Preload("MVP").
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "time"}}).Order("id ASC")
		})
}

func (r *gameGorm) Create(ctx context.Context, game *entity.Game) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(game).Error
}

func (r *gameGorm) FindAll(ctx context.Context) ([]entity.Game, error) {
	var games []entity.Game
	err := r.withRelations(ctx).Order("created_at DESC").Order("id DESC").Find(&games).Error
	return games, err
}

func (r *gameGorm) FindByID(ctx context.Context, id uint) (*entity.Game, error) {
	var game entity.Game
	if err := r.withRelations(ctx).First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (r *gameGorm) Save(ctx context.Context, game *entity.Game) error {
	return r.db.WithContext(ctx).Model(game).
		Select("home_team_id", "away_team_id", "status", "home_score", "away_score", "mvp_id", "updated_at").
		Updates(map[string]any{
			"home_team_id": game.HomeTeamID,
			"away_team_id": game.AwayTeamID,
			"status":       game.Status,
			"home_score":   game.HomeScore,
			"away_score":   game.AwayScore,
			"mvp_id":       game.MVPID,
		}).Error
}

// Delete removes the game's events, then the game. The writes are
// sequential and not transactional.
func (r *gameGorm) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	var count int64
	if err := db.Model(&entity.Game{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return usecase.ErrGameNotFound
	}
	if err := db.Where("game_id = ?", id).Delete(&entity.Event{}).Error; err != nil {
		return err
	}
	return db.Delete(&entity.Game{}, id).Error
}

func (r *gameGorm) CountTeams(ctx context.Context, ids []uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Team{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

func (r *gameGorm) PlayerExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Player{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
