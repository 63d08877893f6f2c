package entity

import "time"

// Product is a merchandise item. IsFeatured may only be true while
// Quantity is positive.
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Images      []string  `gorm:"serializer:json" json:"images"`
	Category    string    `gorm:"size:255;index;not null" json:"category"`
	Quantity    int       `gorm:"not null;default:0" json:"quantity"`
	IsFeatured  bool      `gorm:"not null;default:false" json:"isFeatured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Normalize floors quantity at zero and unfeatures empty stock.
func (p *Product) Normalize() {
	if p.Quantity < 0 {
		p.Quantity = 0
	}
	if p.Quantity == 0 {
		p.IsFeatured = false
	}
}
