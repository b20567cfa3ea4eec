package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// contentStore collapses the per-entity CRUD that all content tables share.
// The type parameter is the database model; the default ordering is fixed at
// construction. Entity services wrap it with validation and anything
// entity-specific.
type contentStore[T any] struct {
	db      *gorm.DB
	name    string
	orderBy string
}

func newContentStore[T any](gdb *gorm.DB, name, orderBy string) contentStore[T] {
	return contentStore[T]{db: gdb, name: name, orderBy: orderBy}
}

// list returns all records in the default order. Read failures degrade to an
// empty slice and are logged; callers never see an error from a list.
func (s *contentStore[T]) list(scopes ...func(*gorm.DB) *gorm.DB) []T {
	items := []T{}
	query := s.db.Scopes(scopes...).Order(s.orderBy)
	if err := query.Find(&items).Error; err != nil {
		logger.Warn("list degraded to empty result",
			zap.String("entity", s.name),
			zap.Error(err))
		return []T{}
	}
	return items
}

// create inserts the record and propagates any store failure.
func (s *contentStore[T]) create(item *T) error {
	if err := s.db.Create(item).Error; err != nil {
		return fmt.Errorf("create %s: %w", s.name, err)
	}
	return nil
}

// remove deletes by primary key; absent ids surface as notFound.
func (s *contentStore[T]) remove(id uint, notFound error) error {
	var item T
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound
		}
		return fmt.Errorf("find %s: %w", s.name, err)
	}
	if err := s.db.Delete(&item).Error; err != nil {
		return fmt.Errorf("delete %s: %w", s.name, err)
	}
	return nil
}

// count reports the current number of rows, used to assign order_index as the
// collection length at insert time.
func (s *contentStore[T]) count() (int64, error) {
	var model T
	var total int64
	if err := s.db.Model(&model).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", s.name, err)
	}
	return total, nil
}
