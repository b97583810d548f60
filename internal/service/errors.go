package service

import "errors"

var (
	ErrEmptyTitle       = errors.New("title must not be empty")
	ErrInvalidTime      = errors.New("time must be HH:MM")
	ErrInvalidEventType = errors.New("unknown event type")
	ErrNoValidData      = errors.New("no valid data found")
)
