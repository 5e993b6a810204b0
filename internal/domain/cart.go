package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is a single carted product. Name and price are copied from the
// catalog at add-time, so a later catalog price change never alters what an
// already-carted item will be charged at.
type CartLine struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	AddedAt     time.Time       `json:"added_at"`
}
