package entity

import "errors"

var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrInvalidUsername   = errors.New("username must be 3-30 characters of letters, digits, '_' or '.'")
	ErrInvalidLanguage   = errors.New("language must be 2-8 characters")
	ErrAvatarTooLarge    = errors.New("avatar must be 500KB or smaller")
	ErrInvalidAvatarType = errors.New("only jpg, jpeg, png, gif and webp avatars are allowed")
)
