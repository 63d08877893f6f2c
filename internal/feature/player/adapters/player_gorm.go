// Package adapters provides the GORM implementation of player persistence.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/feature/player/usecase"
	"youthcup_backend/internal/shared/apperror"
)

type playerGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure playerGorm implements PlayerRepository.
var _ usecase.PlayerRepository = (*playerGorm)(nil)

// NewPlayerGorm creates a new instance of playerGorm.
func NewPlayerGorm(db *gorm.DB) *playerGorm {
	return &playerGorm{db: db}
}

func eventsByTime(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "time"}}).Order("id ASC")
}

func duplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.Wrap(usecase.ErrPlayerExists, err)
	}
	return err
}

func (r *playerGorm) Create(ctx context.Context, player *entity.Player) error {
	return duplicate(r.db.WithContext(ctx).Omit("Team", "Events").Create(player).Error)
}

func (r *playerGorm) FindAll(ctx context.Context) ([]entity.Player, error) {
	var players []entity.Player
	err := r.db.WithContext(ctx).
		Preload("Team").
		Preload("Events", eventsByTime).
		Order(entity.PositionOrderSQL).Order("number ASC").Order("id ASC").
		Find(&players).Error
	return players, err
}

func (r *playerGorm) FindByID(ctx context.Context, id uint) (*entity.Player, error) {
	var player entity.Player
	err := r.db.WithContext(ctx).
		Preload("Team").
		Preload("Events", eventsByTime).
		First(&player, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

func (r *playerGorm) Save(ctx context.Context, player *entity.Player) error {
	err := r.db.WithContext(ctx).Model(player).
		Select("name", "position", "number", "team_id", "updated_at").
		Updates(map[string]any{
			"name":     player.Name,
			"position": player.Position,
			"number":   player.Number,
			"team_id":  player.TeamID,
		}).Error
	return duplicate(err)
}

func (r *playerGorm) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Player{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrPlayerNotFound
	}
	return nil
}

func (r *playerGorm) TeamExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Team{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
