package entity

import "errors"

var (
	ErrEmptyText    = errors.New("text is required")
	ErrPostNotFound = errors.New("post not found")
)
