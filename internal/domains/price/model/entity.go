package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is applied when a quote arrives without a currency code.
const DefaultCurrency = "USD"

// Price is a retailer price quote for a whisky. Quotes are independent
// observations; they go stale, which LastChecked tracks.
type Price struct {
	ID           uuid.UUID        `json:"id"`
	WhiskyID     uuid.UUID        `json:"whisky"`
	Retailer     string           `json:"retailer"`
	Price        decimal.Decimal  `json:"price"`
	Currency     string           `json:"currency"`
	URL          string           `json:"url"`
	InStock      bool             `json:"inStock"`
	LastChecked  time.Time        `json:"lastChecked"`
	Country      *string          `json:"country,omitempty"`
	IsOnSale     bool             `json:"isOnSale"`
	RegularPrice *decimal.Decimal `json:"regularPrice,omitempty"`
}
