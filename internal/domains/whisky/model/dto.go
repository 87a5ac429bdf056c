package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateWhiskyRequest is the payload for creating a catalog item.
// Derived rating fields are not accepted; they always start at zero.
type CreateWhiskyRequest struct {
	Name         string   `json:"name"`
	Distillery   string   `json:"distillery"`
	Country      string   `json:"country"`
	Region       *string  `json:"region"`
	Type         string   `json:"type"`
	Age          *int     `json:"age"`
	ABV          *float64 `json:"abv"`
	Bottler      *string  `json:"bottler"`
	CaskType     []string `json:"caskType"`
	Color        *string  `json:"color"`
	Nose         *string  `json:"nose"`
	Palate       *string  `json:"palate"`
	Finish       *string  `json:"finish"`
	Description  string   `json:"description"`
	ImageURL     *string  `json:"imageUrl"`
	Limited      bool     `json:"limited"`
	Discontinued bool     `json:"discontinued"`
	ReleaseYear  *int     `json:"releaseYear"`
	BottleSize   *int     `json:"bottleSize"`
}

func (r CreateWhiskyRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Distillery, validation.Required.Error("distillery is required")),
		validation.Field(&r.Country, validation.Required.Error("country is required")),
		validation.Field(&r.Type,
			validation.In(Types()...).Error("type must be one of the accepted whisky types"),
		),
		validation.Field(&r.Age, validation.Min(0).Error("age must be non-negative")),
		validation.Field(&r.ABV,
			validation.NotNil.Error("abv is required"),
			validation.Min(0.0).Error("abv must be at least 0"),
			validation.Max(100.0).Error("abv must be at most 100"),
		),
		validation.Field(&r.Description, validation.Required.Error("description is required")),
		validation.Field(&r.BottleSize, validation.Min(1).Error("bottleSize must be positive")),
	)
}

// ToWhisky builds the entity, applying defaults for type, cask list and
// bottle size.
func (r CreateWhiskyRequest) ToWhisky(now time.Time) *Whisky {
	w := &Whisky{
		ID:           uuid.New(),
		Name:         r.Name,
		Distillery:   r.Distillery,
		Country:      r.Country,
		Region:       r.Region,
		Type:         r.Type,
		Age:          r.Age,
		Bottler:      r.Bottler,
		CaskType:     r.CaskType,
		Color:        r.Color,
		Nose:         r.Nose,
		Palate:       r.Palate,
		Finish:       r.Finish,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		Limited:      r.Limited,
		Discontinued: r.Discontinued,
		ReleaseYear:  r.ReleaseYear,
		BottleSize:   DefaultBottleSize,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if r.ABV != nil {
		w.ABV = *r.ABV
	}
	if r.Type == "" {
		w.Type = TypeSingleMalt
	}
	if r.CaskType == nil {
		w.CaskType = []string{}
	}
	if r.BottleSize != nil {
		w.BottleSize = *r.BottleSize
	}
	return w
}

// UpdateWhiskyRequest is a partial update; only non-nil fields are applied.
// A nil CaskType means "leave unchanged", an empty slice clears the list.
type UpdateWhiskyRequest struct {
	Name         *string  `json:"name"`
	Distillery   *string  `json:"distillery"`
	Country      *string  `json:"country"`
	Region       *string  `json:"region"`
	Type         *string  `json:"type"`
	Age          *int     `json:"age"`
	ABV          *float64 `json:"abv"`
	Bottler      *string  `json:"bottler"`
	CaskType     []string `json:"caskType"`
	Color        *string  `json:"color"`
	Nose         *string  `json:"nose"`
	Palate       *string  `json:"palate"`
	Finish       *string  `json:"finish"`
	Description  *string  `json:"description"`
	ImageURL     *string  `json:"imageUrl"`
	Limited      *bool    `json:"limited"`
	Discontinued *bool    `json:"discontinued"`
	ReleaseYear  *int     `json:"releaseYear"`
	BottleSize   *int     `json:"bottleSize"`
}

func (r UpdateWhiskyRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty.Error("name cannot be empty")),
		validation.Field(&r.Distillery, validation.NilOrNotEmpty.Error("distillery cannot be empty")),
		validation.Field(&r.Country, validation.NilOrNotEmpty.Error("country cannot be empty")),
		validation.Field(&r.Type,
			validation.In(Types()...).Error("type must be one of the accepted whisky types"),
		),
		validation.Field(&r.Age, validation.Min(0).Error("age must be non-negative")),
		validation.Field(&r.ABV,
			validation.Min(0.0).Error("abv must be at least 0"),
			validation.Max(100.0).Error("abv must be at most 100"),
		),
		validation.Field(&r.Description, validation.NilOrNotEmpty.Error("description cannot be empty")),
		validation.Field(&r.BottleSize, validation.Min(1).Error("bottleSize must be positive")),
	)
}

// ListWhiskiesResponse is the paginated listing payload.
type ListWhiskiesResponse struct {
	Whiskies    []Whisky `json:"whiskies"`
	TotalPages  int      `json:"totalPages"`
	CurrentPage int      `json:"currentPage"`
	Total       int      `json:"total"`
}
