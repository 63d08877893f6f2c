// Package handler exposes the event usecase over HTTP.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/feature/event/transport/http/dto"
	"youthcup_backend/internal/feature/event/usecase"
	"youthcup_backend/internal/platform/http/response"
)

// EventUsecase is the consumer-side view of the event usecase.
type EventUsecase interface {
	Create(ctx context.Context, in usecase.CreateInput) (*entity.Event, error)
	List(ctx context.Context) ([]entity.Event, error)
	Get(ctx context.Context, id uint) (*entity.Event, error)
	Update(ctx context.Context, id uint, in usecase.UpdateInput) (*entity.Event, error)
	Delete(ctx context.Context, id uint) error
}

// EventHandler handles /events requests.
type EventHandler struct {
	events EventUsecase
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(events EventUsecase) *EventHandler {
	return &EventHandler{events: events}
}

// List handles GET /events.
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.events.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if events == nil {
		events = []entity.Event{}
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// Get handles GET /events/:id.
func (h *EventHandler) Get(c *gin.Context) {
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	event, err := h.events.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// Create handles POST /events.
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	event, err := h.events.Create(c.Request.Context(), usecase.CreateInput{
		Type:     req.Type,
		Time:     *req.Time,
		PlayerID: req.Player,
		TeamID:   req.Team,
		GameID:   req.Game,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// Update handles PUT /events/:id.
func (h *EventHandler) Update(c *gin.Context) {
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	event, err := h.events.Update(c.Request.Context(), id, usecase.UpdateInput{Type: req.Type, Time: req.Time})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// Delete handles DELETE /events/:id.
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.events.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message{Message: "Event deleted successfully"})
}
