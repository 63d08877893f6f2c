package entity

import "time"

// Team is a tournament participant. Its roster is the set of players whose
// TeamID points at it.
type Team struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:255;not null" json:"name"`
	Country   string    `gorm:"size:255" json:"country"`
	Image     string    `gorm:"size:1024" json:"image"`
	Players   []Player  `gorm:"foreignKey:TeamID" json:"players"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
