package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePriceRequest is the payload for recording a price quote.
type CreatePriceRequest struct {
	WhiskyID     uuid.UUID        `json:"whisky"`
	Retailer     string           `json:"retailer"`
	Price        *decimal.Decimal `json:"price"`
	Currency     string           `json:"currency"`
	URL          string           `json:"url"`
	InStock      *bool            `json:"inStock"`
	Country      *string          `json:"country"`
	IsOnSale     bool             `json:"isOnSale"`
	RegularPrice *decimal.Decimal `json:"regularPrice"`
}

func (r CreatePriceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.WhiskyID, validation.By(requiredUUID)),
		validation.Field(&r.Retailer, validation.Required.Error("retailer is required")),
		validation.Field(&r.Price,
			validation.NotNil.Error("price is required"),
			validation.By(nonNegativeDecimal),
		),
		validation.Field(&r.URL, validation.Required.Error("url is required")),
		validation.Field(&r.RegularPrice, validation.By(nonNegativeDecimal)),
	)
}

// ToPrice builds the entity with defaults: currency USD, inStock true,
// lastChecked now.
func (r CreatePriceRequest) ToPrice(now time.Time) *Price {
	p := &Price{
		ID:           uuid.New(),
		WhiskyID:     r.WhiskyID,
		Retailer:     r.Retailer,
		Currency:     r.Currency,
		URL:          r.URL,
		InStock:      true,
		LastChecked:  now,
		Country:      r.Country,
		IsOnSale:     r.IsOnSale,
		RegularPrice: r.RegularPrice,
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Currency == "" {
		p.Currency = DefaultCurrency
	}
	if r.InStock != nil {
		p.InStock = *r.InStock
	}
	return p
}

// UpdatePriceRequest is a partial update. Whichever fields change, the
// store refreshes lastChecked to the update time.
type UpdatePriceRequest struct {
	Retailer     *string          `json:"retailer"`
	Price        *decimal.Decimal `json:"price"`
	Currency     *string          `json:"currency"`
	URL          *string          `json:"url"`
	InStock      *bool            `json:"inStock"`
	Country      *string          `json:"country"`
	IsOnSale     *bool            `json:"isOnSale"`
	RegularPrice *decimal.Decimal `json:"regularPrice"`
}

func (r UpdatePriceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Retailer, validation.NilOrNotEmpty.Error("retailer cannot be empty")),
		validation.Field(&r.Price, validation.By(nonNegativeDecimal)),
		validation.Field(&r.Currency, validation.NilOrNotEmpty.Error("currency cannot be empty")),
		validation.Field(&r.URL, validation.NilOrNotEmpty.Error("url cannot be empty")),
		validation.Field(&r.RegularPrice, validation.By(nonNegativeDecimal)),
	)
}

func requiredUUID(value interface{}) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return errors.New("is required")
	}
	return nil
}

func nonNegativeDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		if p, isPtr := value.(*decimal.Decimal); isPtr {
			if p == nil {
				return nil
			}
			d = *p
		} else {
			return nil
		}
	}
	if d.IsNegative() {
		return errors.New("must be non-negative")
	}
	return nil
}
