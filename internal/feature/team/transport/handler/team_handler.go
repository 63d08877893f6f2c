// Package handler exposes the team usecase over HTTP.
package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/feature/team/transport/http/dto"
	"youthcup_backend/internal/feature/team/usecase"
	"youthcup_backend/internal/platform/http/response"
	"youthcup_backend/internal/platform/storage"
	"youthcup_backend/internal/shared/apperror"
)

// TeamUsecase is the consumer-side view of the team usecase.
type TeamUsecase interface {
	Create(ctx context.Context, in usecase.CreateInput) (*entity.Team, error)
	List(ctx context.Context) ([]entity.Team, error)
	Get(ctx context.Context, id uint) (*entity.Team, error)
	Update(ctx context.Context, id uint, in usecase.UpdateInput) (*entity.Team, error)
	Delete(ctx context.Context, id uint) error
	UploadImage(ctx context.Context, id uint, filename string, r io.Reader) (*entity.Team, error)
}

const (
	// imageField is the multipart form field carrying a team image.
	imageField = "image"

	// maxUploadBody leaves room for multipart headers around one image.
	maxUploadBody = storage.MaxImageSize + 1<<20
)

var errNoImage = apperror.Validation("image file is required")

// TeamHandler handles /teams requests.
type TeamHandler struct {
	teams TeamUsecase
}

// NewTeamHandler creates a TeamHandler.
func NewTeamHandler(teams TeamUsecase) *TeamHandler {
	return &TeamHandler{teams: teams}
}

// List handles GET /teams.
func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.teams.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if teams == nil {
		teams = []entity.Team{}
	}
	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// Get handles GET /teams/:id.
func (h *TeamHandler) Get(c *gin.Context) {
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	team, err := h.teams.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// Create handles POST /teams.
func (h *TeamHandler) Create(c *gin.Context) {
	var req dto.CreateTeamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	team, err := h.teams.Create(c.Request.Context(), usecase.CreateInput{
		Name:    req.Name,
		Country: req.Country,
		Players: req.Players,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("team created", "team_id", team.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, team)
}

// Update handles PUT /teams/:id.
func (h *TeamHandler) Update(c *gin.Context) {
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdateTeamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	team, err := h.teams.Update(c.Request.Context(), id, usecase.UpdateInput{
		Name:    req.Name,
		Country: req.Country,
		Players: req.Players,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// Delete handles DELETE /teams/:id.
func (h *TeamHandler) Delete(c *gin.Context) {
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.teams.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("team deleted", "team_id", id, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, response.Message{Message: "Team deleted successfully"})
}

// UploadImage handles POST /teams/:id/image with a multipart "image" file.
func (h *TeamHandler) UploadImage(c *gin.Context) {
	id, err := response.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBody)
	fh, err := c.FormFile(imageField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, storage.ErrImageTooLarge)
			return
		}
		response.Error(c, errNoImage)
		return
	}
	if fh.Size > storage.MaxImageSize {
		response.Error(c, storage.ErrImageTooLarge)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error(c, fmt.Errorf("open upload: %w", err))
		return
	}
	defer f.Close()

	team, err := h.teams.UploadImage(c.Request.Context(), id, fh.Filename, f)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}
