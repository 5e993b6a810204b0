package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is immutable once placed. Lines are copies of the cart lines at
// checkout time, Total is the sum of their unit prices computed once.
type Order struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Lines     []CartLine      `json:"lines"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}
