package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrQuantityLimit: the add would push a cart line past domain.MaxCartQuantity.
	ErrQuantityLimit = errors.New("cart quantity limit exceeded")
)

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
