package service

import "errors"

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrProfileExists      = errors.New("user already has a profile")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrPostNameTaken      = errors.New("post name is already taken")

	// ErrForbidden is returned when a caller attempts to mutate a resource
	// owned by someone else.
	ErrForbidden = errors.New("forbidden")
)
