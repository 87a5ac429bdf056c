package model

import "errors"

var (
	ErrPriceNotFound = errors.New("price not found")
)
