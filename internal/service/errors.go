package service

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// fromStore maps a repository miss to the service-level sentinel and
// passes every other store failure through untouched.
func fromStore(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
