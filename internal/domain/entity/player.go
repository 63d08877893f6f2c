package entity

import "time"

// Position is a player's field position.
type Position string

const (
	PositionGoalkeeper Position = "goalkeeper"
	PositionDefender   Position = "defender"
	PositionMidfielder Position = "midfielder"
	PositionForward    Position = "forward"
)

// Rank orders positions from goal outwards. Unknown positions sort last.
func (p Position) Rank() int {
	switch p {
	case PositionGoalkeeper:
		return 0
	case PositionDefender:
		return 1
	case PositionMidfielder:
		return 2
	case PositionForward:
		return 3
	default:
		return 4
	}
}

// PositionOrderSQL sorts rows by position rank inside an ORDER BY clause.
const PositionOrderSQL = "CASE position WHEN 'goalkeeper' THEN 0 WHEN 'defender' THEN 1 WHEN 'midfielder' THEN 2 WHEN 'forward' THEN 3 ELSE 4 END"

// Player belongs to at most one team. (TeamID, Name, Number) is unique.
type Player struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex:idx_player_team_name_number" json:"name"`
	Position  Position  `gorm:"size:32;not null" json:"position"`
	Number    int       `gorm:"not null;uniqueIndex:idx_player_team_name_number" json:"number"`
	TeamID    *uint     `gorm:"index;uniqueIndex:idx_player_team_name_number" json:"teamId"`
	Team      *Team     `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	Events    []Event   `gorm:"foreignKey:PlayerID" json:"events,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
