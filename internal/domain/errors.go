package domain

import "errors"

var (
	ErrRosterNotFound   = errors.New("roster not found")
	ErrEmployeeExists   = errors.New("employee is already in the roster")
	ErrEmployeeNotFound = errors.New("employee not found in roster")
	ErrInvalidPublisher = errors.New("invalid publish settings")
)
