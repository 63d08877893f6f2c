// Package handler serves the league table.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"youthcup_backend/internal/feature/standings/usecase"
	"youthcup_backend/internal/platform/http/response"
)

// StandingsUsecase is the consumer-side view of the standings usecase.
type StandingsUsecase interface {
	Table(ctx context.Context) ([]usecase.Row, error)
}

// StandingsHandler handles GET /standings.
type StandingsHandler struct {
	standings StandingsUsecase
}

// NewStandingsHandler creates a StandingsHandler.
func NewStandingsHandler(standings StandingsUsecase) *StandingsHandler {
	return &StandingsHandler{standings: standings}
}

// Get returns the table as a JSON array.
func (h *StandingsHandler) Get(c *gin.Context) {
	rows, err := h.standings.Table(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if rows == nil {
		rows = []usecase.Row{}
	}
	c.JSON(http.StatusOK, rows)
}
