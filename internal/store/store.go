// Package store provides tenant-scoped persistence. Every query filters on
// the owning user id, so cross-tenant reads and writes are impossible at this
// layer regardless of what the API above it does.
package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a record does not exist for the given owner.
// A record owned by another tenant yields the same error as a missing one,
// so callers cannot learn whether a foreign id exists.
var ErrNotFound = errors.New("record not found")

func listOwned[T any](ctx context.Context, db *gorm.DB, owner uint, order string) ([]T, error) {
	q := db.WithContext(ctx).Where("user_id = ?", owner)
	if order != "" {
		q = q.Order(order)
	}
	out := []T{}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func getOwned[T any](ctx context.Context, db *gorm.DB, owner, id uint) (*T, error) {
	var out T
	err := db.WithContext(ctx).Where("id = ? AND user_id = ?", id, owner).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// deleteOwned removes a row by (id, owner). Deleting a missing or foreign id
// is a silent no-op, matching the delete contract of the whole API.
func deleteOwned[T any](ctx context.Context, db *gorm.DB, owner, id uint) error {
	var zero T
	return db.WithContext(ctx).Where("id = ? AND user_id = ?", id, owner).Delete(&zero).Error
}
