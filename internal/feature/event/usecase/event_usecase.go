// Package usecase implements match event recording.
package usecase

import (
	"context"
	"errors"

	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/shared/patch"
	"youthcup_backend/internal/shared/validation"
)

// EventRepository abstracts event persistence.
type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	// FindAll returns events by minute, earliest first.
	FindAll(ctx context.Context) ([]entity.Event, error)
	// FindByID returns ErrEventNotFound when missing.
	FindByID(ctx context.Context, id uint) (*entity.Event, error)
	Save(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id uint) error
}

// ReferenceChecker reports whether referenced rows exist.
type ReferenceChecker interface {
	GameExists(ctx context.Context, id uint) (bool, error)
	PlayerExists(ctx context.Context, id uint) (bool, error)
	TeamExists(ctx context.Context, id uint) (bool, error)
}

// CreateInput holds a new event.
type CreateInput struct {
	Type     entity.EventType
	Time     int
	PlayerID uint
	TeamID   uint
	GameID   uint
}

// UpdateInput changes the type and minute of an event.
type UpdateInput struct {
	Type patch.Field[entity.EventType]
	Time patch.Field[int]
}

type eventFields struct {
	Type string `json:"type" validate:"required,oneof=yellow-card red-card goal own-goal"`
	Time int    `json:"time" validate:"min=0,max=130"`
}

type eventRefs struct {
	Player uint `json:"player" validate:"required"`
	Team   uint `json:"team" validate:"required"`
	Game   uint `json:"game" validate:"required"`
}

type eventUsecase struct {
	events    EventRepository
	refs      ReferenceChecker
	validator *validation.Validator
}

// NewEventUsecase creates an event usecase.
func NewEventUsecase(events EventRepository, refs ReferenceChecker, v *validation.Validator) *eventUsecase {
	return &eventUsecase{events: events, refs: refs, validator: v}
}

func (u *eventUsecase) validate(ctx context.Context, e *entity.Event) error {
	return u.validator.Struct(ctx, eventFields{Type: string(e.Type), Time: e.Time})
}

func (u *eventUsecase) mustExist(ctx context.Context, exists func(context.Context, uint) (bool, error), id uint, notFound error) error {
	ok, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound
	}
	return nil
}

// Create records an event once its game, player and team are confirmed.
func (u *eventUsecase) Create(ctx context.Context, in CreateInput) (*entity.Event, error) {
	event := &entity.Event{
		Type:     in.Type,
		Time:     in.Time,
		PlayerID: in.PlayerID,
		TeamID:   in.TeamID,
		GameID:   in.GameID,
	}
	if err := u.validate(ctx, event); err != nil {
		return nil, err
	}
	if err := u.validator.Struct(ctx, eventRefs{Player: in.PlayerID, Team: in.TeamID, Game: in.GameID}); err != nil {
		return nil, err
	}

	if err := u.mustExist(ctx, u.refs.GameExists, in.GameID, ErrGameNotFound); err != nil {
		return nil, err
	}
	if err := u.mustExist(ctx, u.refs.PlayerExists, in.PlayerID, ErrPlayerNotFound); err != nil {
		return nil, err
	}
	if err := u.mustExist(ctx, u.refs.TeamExists, in.TeamID, ErrTeamNotFound); err != nil {
		return nil, err
	}

	if err := u.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// List returns all events.
func (u *eventUsecase) List(ctx context.Context) ([]entity.Event, error) {
	return u.events.FindAll(ctx)
}

// Get returns one event.
func (u *eventUsecase) Get(ctx context.Context, id uint) (*entity.Event, error) {
	return u.events.FindByID(ctx, id)
}

// Update changes the type or minute of an event.
func (u *eventUsecase) Update(ctx context.Context, id uint, in UpdateInput) (*entity.Event, error) {
	if err := errors.Join(in.Type.NotNull("type"), in.Time.NotNull("time")); err != nil {
		return nil, err
	}
	event, err := u.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Type.Set {
		event.Type = in.Type.Value
	}
	if in.Time.Set {
		event.Time = in.Time.Value
	}
	if err := u.validate(ctx, event); err != nil {
		return nil, err
	}
	if err := u.events.Save(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes an event. It no longer appears under its game or player.
func (u *eventUsecase) Delete(ctx context.Context, id uint) error {
	return u.events.Delete(ctx, id)
}
