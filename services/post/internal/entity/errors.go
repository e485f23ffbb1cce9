package entity

import "errors"

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrForbidden        = errors.New("you can only modify your own posts")
	ErrTitleRequired    = errors.New("title is required")
	ErrContentRequired  = errors.New("content is required")
	ErrImageTooLarge    = errors.New("image must be 10MB or smaller")
	ErrInvalidImageType = errors.New("only image files are allowed")
)
