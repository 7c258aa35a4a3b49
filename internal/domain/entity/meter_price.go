package entity

import (
	"encoding/json"
	"time"
)

// MeterPrice is the configured price per linear meter for a material
type MeterPrice struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Material  string    `gorm:"size:120;uniqueIndex;not null" json:"material"`
	Price     int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (m MeterPrice) MarshalJSON() ([]byte, error) {
	type Alias MeterPrice
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"precio"`
	}{
		Alias: Alias(m),
		Price: float64(m.Price) / 100,
	})
}

// TableName returns the table name for the MeterPrice model
func (MeterPrice) TableName() string {
	return "precios_por_metro"
}
