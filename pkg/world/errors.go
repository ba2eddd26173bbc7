package world

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrNotPermitted = errors.New("not permitted")
	ErrDuplicate    = errors.New("duplicate item name")
	ErrNoSuchPort   = errors.New("no such port")
	ErrPortClosed   = errors.New("port is closed")
)
