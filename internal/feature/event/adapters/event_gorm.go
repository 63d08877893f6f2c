// Package adapters provides the GORM implementation of event persistence.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/feature/event/usecase"
)

type eventGorm struct {
	db *gorm.DB
}

// Compile-time checks to ensure eventGorm implements the usecase ports.
var (
	_ usecase.EventRepository  = (*eventGorm)(nil)
	_ usecase.ReferenceChecker = (*eventGorm)(nil)
)

// NewEventGorm creates a new instance of eventGorm.
func NewEventGorm(db *gorm.DB) *eventGorm {
	return &eventGorm{db: db}
}

func (r *eventGorm) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Player").Preload("Team").Preload("Game")
}

func (r *eventGorm) Create(ctx context.Context, event *entity.Event) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(event).Error
}

func (r *eventGorm) FindAll(ctx context.Context) ([]entity.Event, error) {
	var events []entity.Event
	err := r.withRelations(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "time"}}).Order("id ASC").
		Find(&events).Error
	return events, err
}

func (r *eventGorm) FindByID(ctx context.Context, id uint) (*entity.Event, error) {
	var event entity.Event
	if err := r.withRelations(ctx).First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventGorm) Save(ctx context.Context, event *entity.Event) error {
	return r.db.WithContext(ctx).Model(event).
		Select("type", "time", "updated_at").
		Updates(map[string]any{"type": event.Type, "time": event.Time}).Error
}

func (r *eventGorm) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrEventNotFound
	}
	return nil
}

func (r *eventGorm) exists(ctx context.Context, model any, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *eventGorm) GameExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &entity.Game{}, id)
}

func (r *eventGorm) PlayerExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &entity.Player{}, id)
}

func (r *eventGorm) TeamExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &entity.Team{}, id)
}
