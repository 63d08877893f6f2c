// Package adapters loads standings inputs with GORM.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/feature/standings/usecase"
)

type standingsGorm struct {
	db *gorm.DB
}

var _ usecase.StandingsRepository = (*standingsGorm)(nil)

// NewStandingsGorm creates a new instance of standingsGorm.
func NewStandingsGorm(db *gorm.DB) *standingsGorm {
	return &standingsGorm{db: db}
}

func (r *standingsGorm) Teams(ctx context.Context) ([]entity.Team, error) {
	var teams []entity.Team
	err := r.db.WithContext(ctx).Order("id ASC").Find(&teams).Error
	return teams, err
}

func (r *standingsGorm) CompletedGames(ctx context.Context) ([]entity.Game, error) {
	var games []entity.Game
	err := r.db.WithContext(ctx).
		Where("status = ?", entity.GameCompleted).
		Order("id ASC").
		Find(&games).Error
	return games, err
}
