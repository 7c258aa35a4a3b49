package request

// CreateProductRequest is the typed body for adding a catalog entry
type CreateProductRequest struct {
	Name     string  `json:"nombre" binding:"required"`
	Material string  `json:"material" binding:"required"`
	Price    float64 `json:"precio" binding:"omitempty,gte=0"`
	PerMeter bool    `json:"por_metro"`
}

// MeterPriceRow is one material row in the configuration screen
type MeterPriceRow struct {
	Material string  `json:"material"`
	Price    float64 `json:"precio"`
}

// ReplacePricesRequest swaps the whole per-meter price configuration
type ReplacePricesRequest struct {
	Prices []MeterPriceRow `json:"precios" binding:"required,dive"`
}
