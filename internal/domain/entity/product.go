package entity

import (
	"encoding/json"
	"time"
)

// Product is a catalog entry: a furniture type in a given material.
// Per-meter products carry price 0 here; their price comes from the
// per-meter configuration looked up by material name.
type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"nombre"`
	Material  string    `gorm:"size:100;not null" json:"material"`
	Price     int64     `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	PerMeter  bool      `gorm:"default:false" json:"por_metro"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"precio"`
	}{
		Alias: Alias(p),
		Price: float64(p.Price) / 100,
	})
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "productos"
}
