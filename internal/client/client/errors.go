package client

import "errors"

var (
	ErrUnavailable   = errors.New("server unavailable")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotOwner      = errors.New("not the record owner")
	ErrNotFound      = errors.New("combo not found")
	ErrAlreadyExists = errors.New("combo already exists")
)
