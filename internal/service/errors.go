package service

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrUserIDRequired  = errors.New("userId is required")
)
