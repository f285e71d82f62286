package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrReferenced        = errors.New("is still referenced by other records")
	ErrInsufficientFunds = errors.New("not enough money")

	// ErrInvalidReference is returned when a write points at a row that does not exist.
	ErrInvalidReference = fmt.Errorf("referenced record %w", ErrNotFound)
)
