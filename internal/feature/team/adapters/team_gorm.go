// Package adapters provides the GORM implementation of team persistence.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/feature/team/usecase"
	"youthcup_backend/internal/shared/apperror"
)

type teamGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure teamGorm implements TeamRepository.
var _ usecase.TeamRepository = (*teamGorm)(nil)

// NewTeamGorm creates a new instance of teamGorm.
func NewTeamGorm(db *gorm.DB) *teamGorm {
	return &teamGorm{db: db}
}

func rosterOrder(db *gorm.DB) *gorm.DB {
	return db.Order(entity.PositionOrderSQL).Order("number ASC")
}

func (r *teamGorm) Create(ctx context.Context, team *entity.Team) error {
	if err := r.db.WithContext(ctx).Omit("Players").Create(team).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.Wrap(usecase.ErrTeamNameTaken, err)
		}
		return err
	}
	return nil
}

func (r *teamGorm) FindAll(ctx context.Context) ([]entity.Team, error) {
	var teams []entity.Team
	err := r.db.WithContext(ctx).
		Preload("Players", rosterOrder).
		Order("created_at DESC").Order("id DESC").
		Find(&teams).Error
	return teams, err
}

func (r *teamGorm) FindByID(ctx context.Context, id uint) (*entity.Team, error) {
	var team entity.Team
	if err := r.db.WithContext(ctx).Preload("Players", rosterOrder).First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamGorm) Save(ctx context.Context, team *entity.Team) error {
	err := r.db.WithContext(ctx).Model(team).Select("name", "country", "image", "updated_at").Updates(map[string]any{
		"name":    team.Name,
		"country": team.Country,
		"image":   team.Image,
	}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.Wrap(usecase.ErrTeamNameTaken, err)
	}
	return err
}

// Delete detaches the roster first, then removes the team. The two writes
// are sequential and not transactional.
func (r *teamGorm) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Model(&entity.Player{}).Where("team_id = ?", id).Update("team_id", nil).Error; err != nil {
		return err
	}
	result := db.Delete(&entity.Team{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrTeamNotFound
	}
	return nil
}

func (r *teamGorm) AssignRoster(ctx context.Context, teamID uint, playerIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		release := tx.Model(&entity.Player{}).Where("team_id = ?", teamID)
		if len(playerIDs) > 0 {
			release = release.Where("id NOT IN ?", playerIDs)
		}
		if err := release.Update("team_id", nil).Error; err != nil {
			return err
		}
		if len(playerIDs) == 0 {
			return nil
		}
		return tx.Model(&entity.Player{}).Where("id IN ?", playerIDs).Update("team_id", teamID).Error
	})
	// 同名・同背番号の選手が同じチームに揃うと unique index に当たる
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.Wrap(usecase.ErrRosterConflict, err)
	}
	return err
}

func (r *teamGorm) ExistingPlayerIDs(ctx context.Context, ids []uint) ([]uint, error) {
	var found []uint
	if len(ids) == 0 {
		return found, nil
	}
	err := r.db.WithContext(ctx).Model(&entity.Player{}).Where("id IN ?", ids).Pluck("id", &found).Error
	return found, err
}
