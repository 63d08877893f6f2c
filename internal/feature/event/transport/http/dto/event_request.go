// Package dto defines request bodies for the event endpoints.
package dto

import (
	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/shared/patch"
)

// CreateEventReq is the body of POST /events. Time is a pointer so that
// minute 0 is accepted while an absent time is rejected.
type CreateEventReq struct {
	Type   entity.EventType `json:"type" binding:"required"`
	Time   *int             `json:"time" binding:"required"`
	Player uint             `json:"player" binding:"required"`
	Team   uint             `json:"team" binding:"required"`
	Game   uint             `json:"game" binding:"required"`
}

// UpdateEventReq is the body of PUT /events/:id.
type UpdateEventReq struct {
	Type patch.Field[entity.EventType] `json:"type"`
	Time patch.Field[int]              `json:"time"`
}
