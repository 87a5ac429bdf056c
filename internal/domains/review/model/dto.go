package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateReviewRequest is the payload for posting a review.
type CreateReviewRequest struct {
	WhiskyID uuid.UUID  `json:"whisky"`
	UserID   *uuid.UUID `json:"user"`
	Username string     `json:"username"`
	Rating   int        `json:"rating"`
	Title    string     `json:"title"`
	Comment  string     `json:"comment"`
	Nose     *int       `json:"nose"`
	Palate   *int       `json:"palate"`
	Finish   *int       `json:"finish"`
	Value    *int       `json:"value"`
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.WhiskyID, validation.By(requiredUUID)),
		validation.Field(&r.Username, validation.Required.Error("username is required")),
		validation.Field(&r.Rating,
			validation.Required.Error("rating is required"),
			validation.Min(MinRating), validation.Max(MaxRating),
		),
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Comment, validation.Required.Error("comment is required")),
		validation.Field(&r.Nose, validation.Min(MinRating), validation.Max(MaxRating)),
		validation.Field(&r.Palate, validation.Min(MinRating), validation.Max(MaxRating)),
		validation.Field(&r.Finish, validation.Min(MinRating), validation.Max(MaxRating)),
		validation.Field(&r.Value, validation.Min(MinRating), validation.Max(MaxRating)),
	)
}

func (r CreateReviewRequest) ToReview(now time.Time) *Review {
	return &Review{
		ID:        uuid.New(),
		WhiskyID:  r.WhiskyID,
		UserID:    r.UserID,
		Username:  r.Username,
		Rating:    r.Rating,
		Title:     r.Title,
		Comment:   r.Comment,
		Nose:      r.Nose,
		Palate:    r.Palate,
		Finish:    r.Finish,
		Value:     r.Value,
		CreatedAt: now,
	}
}

// UpdateReviewRequest is a partial update. The owning whisky is immutable and
// deliberately absent here.
type UpdateReviewRequest struct {
	Username *string `json:"username"`
	Rating   *int    `json:"rating"`
	Title    *string `json:"title"`
	Comment  *string `json:"comment"`
	Nose     *int    `json:"nose"`
	Palate   *int    `json:"palate"`
	Finish   *int    `json:"finish"`
	Value    *int    `json:"value"`
}

func (r UpdateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.NilOrNotEmpty.Error("username cannot be empty")),
		validation.Field(&r.Rating, validation.Min(MinRating), validation.Max(MaxRating)),
		validation.Field(&r.Title, validation.NilOrNotEmpty.Error("title cannot be empty")),
		validation.Field(&r.Comment, validation.NilOrNotEmpty.Error("comment cannot be empty")),
		validation.Field(&r.Nose, validation.Min(MinRating), validation.Max(MaxRating)),
		validation.Field(&r.Palate, validation.Min(MinRating), validation.Max(MaxRating)),
		validation.Field(&r.Finish, validation.Min(MinRating), validation.Max(MaxRating)),
		validation.Field(&r.Value, validation.Min(MinRating), validation.Max(MaxRating)),
	)
}

func requiredUUID(value interface{}) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return errors.New("is required")
	}
	return nil
}
