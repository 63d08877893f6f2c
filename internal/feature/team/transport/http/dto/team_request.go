// Package dto defines request bodies for the team endpoints.
package dto

import "youthcup_backend/internal/shared/patch"

// CreateTeamReq is the body of POST /teams.
type CreateTeamReq struct {
	Name    string `json:"name" binding:"required"`
	Country string `json:"country"`
	Players []uint `json:"players"`
}

// UpdateTeamReq is the body of PUT /teams/:id. Absent keys are left alone;
// "players": null empties the roster.
type UpdateTeamReq struct {
	Name    patch.Field[string] `json:"name"`
	Country patch.Field[string] `json:"country"`
	Players patch.Field[[]uint] `json:"players"`
}
