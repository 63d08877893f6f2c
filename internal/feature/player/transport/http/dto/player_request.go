// Package dto defines request bodies for the player endpoints.
package dto

import (
	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/shared/patch"
)

// CreatePlayerReq is the body of POST /players.
type CreatePlayerReq struct {
	Name     string          `json:"name" binding:"required"`
	Position entity.Position `json:"position" binding:"required"`
	Number   int             `json:"number" binding:"required"`
	Team     uint            `json:"team" binding:"required"`
}

// UpdatePlayerReq is the body of PUT /players/:id.
type UpdatePlayerReq struct {
	Name     patch.Field[string]          `json:"name"`
	Position patch.Field[entity.Position] `json:"position"`
	Number   patch.Field[int]             `json:"number"`
	Team     patch.Field[uint]            `json:"team"`
}
