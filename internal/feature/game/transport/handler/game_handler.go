// Package handler exposes the game usecase over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/feature/game/transport/http/dto"
	"youthcup_backend/internal/feature/game/usecase"
	"youthcup_backend/internal/platform/http/response"
)

// GameUsecase is the consumer-side view of the game usecase.
type GameUsecase interface {
	Create(ctx context.Context, in usecase.CreateInput) (*entity.Game, error)
	List(ctx context.Context) ([]entity.Game, error)
	Get(ctx context.Context, id uint) (*entity.Game, error)
	Update(ctx context.Context, id uint, in usecase.UpdateInput) (*entity.Game, error)
	Delete(ctx context.Context, id uint) error
}

// GameHandler handles /games requests.
type GameHandler struct {
	games GameUsecase
}

// NewGameHandler creates a GameHandler.
func NewGameHandler(games GameUsecase) *GameHandler {
	return &GameHandler{games: games}
}

// List handles GET /games.
func (h *GameHandler) List(c *gin.Context) {
	games, err := h.games.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if games == nil {
		games = []entity.Game{}
	}
	c.JSON(http.StatusOK, gin.H{"games": games})
}

// Get handles GET /games/:id.
func (h *GameHandler) Get(c *gin.Context) {
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	game, err := h.games.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// Create handles POST /games.
func (h *GameHandler) Create(c *gin.Context) {
	var req dto.CreateGameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	game, err := h.games.Create(c.Request.Context(), usecase.CreateInput{Teams: req.Teams, Status: req.Status})
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("game created", "game_id", game.ID, "home_team_id", game.HomeTeamID, "away_team_id", game.AwayTeamID)
	c.JSON(http.StatusCreated, game)
}

// Update handles PUT /games/:id.
func (h *GameHandler) Update(c *gin.Context) {
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdateGameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	game, err := h.games.Update(c.Request.Context(), id, usecase.UpdateInput{
		Teams:     req.Teams,
		Status:    req.Status,
		HomeScore: req.HomeScore,
		AwayScore: req.AwayScore,
		MVP:       req.MVP,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// Delete handles DELETE /games/:id.
func (h *GameHandler) Delete(c *gin.Context) {
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.games.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message{Message: "Game deleted successfully"})
}
