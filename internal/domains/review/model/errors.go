package model

import "errors"

var (
	ErrReviewNotFound = errors.New("review not found")
)
