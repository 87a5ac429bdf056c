package model

import "errors"

var (
	ErrWhiskyNotFound = errors.New("whisky not found")
)
