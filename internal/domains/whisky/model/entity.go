package model

import (
	"time"

	"github.com/google/uuid"
)

// Whisky types. The catalog only accepts this closed set.
const (
	TypeSingleMalt  = "Single Malt"
	TypeBlendedMalt = "Blended Malt"
	TypeBlended     = "Blended"
	TypeBourbon     = "Bourbon"
	TypeRye         = "Rye"
	TypeIrish       = "Irish"
	TypeJapanese    = "Japanese"
	TypeOther       = "Other"
)

// Types returns the closed set of accepted whisky types.
func Types() []interface{} {
	return []interface{}{
		TypeSingleMalt, TypeBlendedMalt, TypeBlended, TypeBourbon,
		TypeRye, TypeIrish, TypeJapanese, TypeOther,
	}
}

const (
	// DefaultBottleSize is the bottle volume in ml applied when none is given.
	DefaultBottleSize = 700

	// SearchLimit caps the number of rows a text search may return.
	SearchLimit = 20

	// Listing defaults applied when the caller omits paging parameters.
	DefaultPage  = 1
	DefaultLimit = 10
)

// Whisky is a catalog item. AverageRating and TotalReviews are derived from
// the review set and maintained by the rating aggregator; they are never
// authored directly.
type Whisky struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Distillery string    `json:"distillery"`
	Country    string    `json:"country"`
	Region     *string   `json:"region,omitempty"`
	Type       string    `json:"type"`
	Age        *int      `json:"age,omitempty"`
	ABV        float64   `json:"abv"`
	Bottler    *string   `json:"bottler,omitempty"`
	CaskType   []string  `json:"caskType"`

	// Sensory notes
	Color  *string `json:"color,omitempty"`
	Nose   *string `json:"nose,omitempty"`
	Palate *string `json:"palate,omitempty"`
	Finish *string `json:"finish,omitempty"`

	Description  string  `json:"description"`
	ImageURL     *string `json:"imageUrl,omitempty"`
	Limited      bool    `json:"limited"`
	Discontinued bool    `json:"discontinued"`
	ReleaseYear  *int    `json:"releaseYear,omitempty"`
	BottleSize   int     `json:"bottleSize"`

	// Derived aggregate, see the review domain.
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
