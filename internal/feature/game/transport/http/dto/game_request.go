// Package dto defines request bodies for the game endpoints.
package dto

import (
	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/shared/patch"
)

// CreateGameReq is the body of POST /games. Teams holds [home, away].
type CreateGameReq struct {
	Teams  []uint            `json:"teams" binding:"required"`
	Status entity.GameStatus `json:"status"`
}

// UpdateGameReq is the body of PUT /games/:id.
type UpdateGameReq struct {
	Teams     patch.Field[[]uint]            `json:"teams"`
	Status    patch.Field[entity.GameStatus] `json:"status"`
	HomeScore patch.Field[int]               `json:"homeScore"`
	AwayScore patch.Field[int]               `json:"awayScore"`
	MVP       patch.Field[uint]              `json:"mvp"`
}
