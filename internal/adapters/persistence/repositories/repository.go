package repositories

import (
	"context"
	"errors"
	"fmt"

	"schoolconnect/internal/core/domain"

	"gorm.io/gorm"
)

// Repository implements ResourceRepository for any GORM model with an "id" column
type Repository[T any] struct {
	db *gorm.DB
}

// NewRepository creates a repository over model T
func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// Create inserts a new record
func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	return translate(r.db.WithContext(ctx).Create(entity).Error)
}

// GetByID gets a record by ID
func (r *Repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		return nil, translate(err)
	}
	return &entity, nil
}

// List returns one page of matching records and the total match count
func (r *Repository[T]) List(ctx context.Context, q Query) ([]T, int64, error) {
	db, err := applyFilters(r.db.WithContext(ctx).Model(new(T)), q.Filters)
	if err != nil {
		return nil, 0, err
	}
	if db, err = applySearch(db, q.Search); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if db, err = applyOrder(db, q.Order); err != nil {
		return nil, 0, err
	}
	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}
	if q.Offset > 0 {
		db = db.Offset(q.Offset)
	}

	items := make([]T, 0)
	if err := db.Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// Update replaces every column of an existing record
func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	return translate(r.db.WithContext(ctx).Save(entity).Error)
}

// Count counts records matching filters
func (r *Repository[T]) Count(ctx context.Context, filters Filters) (int64, error) {
	db, err := applyFilters(r.db.WithContext(ctx).Model(new(T)), filters)
	if err != nil {
		return 0, err
	}

	var count int64
	err = db.Count(&count).Error
	return count, err
}

// Sum totals a numeric column over records matching filters
func (r *Repository[T]) Sum(ctx context.Context, column string, filters Filters) (float64, error) {
	if err := checkColumn(column); err != nil {
		return 0, err
	}
	db, err := applyFilters(r.db.WithContext(ctx).Model(new(T)), filters)
	if err != nil {
		return 0, err
	}

	var total float64
	err = db.Select("COALESCE(SUM(" + column + "), 0)").Scan(&total).Error
	return total, err
}

// translate maps GORM errors onto domain errors
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", domain.ErrDuplicateEntry, err)
	default:
		return err
	}
}
