package entity

import "errors"

var ErrInvalidScope = errors.New("scope must be one of all, posts, users")
