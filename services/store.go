package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"resort-admin/utils"
)

// findByID loads one row of T, turning a missing row into a NotFoundError
// carrying notFound as its message.
func findByID[T any](ctx context.Context, db *gorm.DB, id uint, notFound string) (*T, error) {
	var row T
	err := db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NewNotFoundError(notFound)
	}
	if err != nil {
		return nil, utils.NewStorageError(err)
	}
	return &row, nil
}
