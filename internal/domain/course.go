package domain

import "github.com/shopspring/decimal"

// Course representa um curso vendido na plataforma.
type Course struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
