package entity

import "time"

// EventType is the kind of an in-game incident.
type EventType string

const (
	EventYellowCard EventType = "yellow-card"
	EventRedCard    EventType = "red-card"
	EventGoal       EventType = "goal"
	EventOwnGoal    EventType = "own-goal"
)

// Event is a goal or card at a given minute of a game. It appears in the
// event lists of both its game and its player.
type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      EventType `gorm:"size:32;not null" json:"type"`
	Time      int       `gorm:"not null" json:"time"`
	PlayerID  uint      `gorm:"index;not null" json:"playerId"`
	Player    *Player   `gorm:"foreignKey:PlayerID" json:"player,omitempty"`
	TeamID    uint      `gorm:"index;not null" json:"teamId"`
	Team      *Team     `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	GameID    uint      `gorm:"index;not null" json:"gameId"`
	Game      *Game     `gorm:"foreignKey:GameID" json:"game,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
