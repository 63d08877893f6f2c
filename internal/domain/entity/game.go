package entity

import "time"

// GameStatus is the lifecycle state of a game.
type GameStatus string

const (
	GameScheduled  GameStatus = "scheduled"
	GameInProgress GameStatus = "in_progress"
	GameCompleted  GameStatus = "completed"
)

// Game is a match between a home and an away team. A result exists only
// once both scores are set.
type Game struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	HomeTeamID uint       `gorm:"index;not null" json:"homeTeamId"`
	HomeTeam   *Team      `gorm:"foreignKey:HomeTeamID" json:"homeTeam,omitempty"`
	AwayTeamID uint       `gorm:"index;not null" json:"awayTeamId"`
	AwayTeam   *Team      `gorm:"foreignKey:AwayTeamID" json:"awayTeam,omitempty"`
	Status     GameStatus `gorm:"size:32;not null;default:scheduled" json:"status"`
	HomeScore  *int       `json:"homeScore"`
	AwayScore  *int       `json:"awayScore"`
	MVPID      *uint      `gorm:"column:mvp_id;index" json:"mvpId"`
	MVP        *Player    `gorm:"foreignKey:MVPID" json:"mvp,omitempty"`
	Events     []Event    `gorm:"foreignKey:GameID" json:"events"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// HasResult reports whether both scores are recorded.
func (g *Game) HasResult() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}

// TeamIDs returns the ordered pair of team references.
func (g *Game) TeamIDs() [2]uint {
	return [2]uint{g.HomeTeamID, g.AwayTeamID}
}
