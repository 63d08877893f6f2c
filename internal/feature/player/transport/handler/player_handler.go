// Package handler exposes the player usecase over HTTP.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/feature/player/transport/http/dto"
	"youthcup_backend/internal/feature/player/usecase"
	"youthcup_backend/internal/platform/http/response"
)

// PlayerUsecase is the consumer-side view of the player usecase.
type PlayerUsecase interface {
	Create(ctx context.Context, in usecase.CreateInput) (*entity.Player, error)
	List(ctx context.Context) ([]entity.Player, error)
	Get(ctx context.Context, id uint) (*entity.Player, error)
	Update(ctx context.Context, id uint, in usecase.UpdateInput) (*entity.Player, error)
	Delete(ctx context.Context, id uint) error
}

// PlayerHandler handles /players requests.
type PlayerHandler struct {
	players PlayerUsecase
}

// NewPlayerHandler creates a PlayerHandler.
func NewPlayerHandler(players PlayerUsecase) *PlayerHandler {
	return &PlayerHandler{players: players}
}

// List handles GET /players.
func (h *PlayerHandler) List(c *gin.Context) {
	players, err := h.players.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if players == nil {
		players = []entity.Player{}
	}
	c.JSON(http.StatusOK, gin.H{"players": players})
}

// Get handles GET /players/:id.
func (h *PlayerHandler) Get(c *gin.Context) {
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	player, err := h.players.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// Create handles POST /players.
func (h *PlayerHandler) Create(c *gin.Context) {
	var req dto.CreatePlayerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	player, err := h.players.Create(c.Request.Context(), usecase.CreateInput{
		Name:     req.Name,
		Position: req.Position,
		Number:   req.Number,
		TeamID:   req.Team,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, player)
}

// Update handles PUT /players/:id.
func (h *PlayerHandler) Update(c *gin.Context) {
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdatePlayerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	player, err := h.players.Update(c.Request.Context(), id, usecase.UpdateInput{
		Name:     req.Name,
		Position: req.Position,
		Number:   req.Number,
		Team:     req.Team,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// Delete handles DELETE /players/:id.
func (h *PlayerHandler) Delete(c *gin.Context) {
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.players.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message{Message: "Player deleted successfully"})
}
