package entity

import "errors"

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrSelfFollow      = errors.New("cannot follow yourself")
	ErrEmptyComment    = errors.New("comment content is required")
	ErrInvalidParent   = errors.New("replies must target a top-level comment on the same post")
	ErrInvalidTarget   = errors.New("invalid like target")
	ErrForbidden       = errors.New("forbidden")
)
