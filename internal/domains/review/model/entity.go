package model

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds shared by the overall score and the per-aspect scores.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a user review of a whisky. The overall Rating feeds the whisky's
// denormalized averageRating/totalReviews; the aspect scores are informational
// and stay out of the aggregate.
type Review struct {
	ID        uuid.UUID  `json:"id"`
	WhiskyID  uuid.UUID  `json:"whisky"`
	UserID    *uuid.UUID `json:"user,omitempty"`
	Username  string     `json:"username"`
	Rating    int        `json:"rating"`
	Title     string     `json:"title"`
	Comment   string     `json:"comment"`
	Nose      *int       `json:"nose,omitempty"`
	Palate    *int       `json:"palate,omitempty"`
	Finish    *int       `json:"finish,omitempty"`
	Value     *int       `json:"value,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
