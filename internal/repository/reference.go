package repository

import (
	"context"

	"github.com/sokha-dev/showfolio/internal/apperror"
	"github.com/sokha-dev/showfolio/internal/constant"
	"gorm.io/gorm"
)

// ReferenceRepository is shared by every lookup entity (Country, City,
// Department, Position, Category, Tag, Status, Action). Callers derive the
// slug with util.Slugify before handing the entity over; the unique indexes
// on name and slug are the collision authority.
type ReferenceRepository[T any] struct {
	*baseRepository
}

func (rr ReferenceRepository[T]) Create(ctx context.Context, tx *gorm.DB, entity *T) (*T, error) {
	rr.logger.Debugf("Create reference entity: %+v", entity)

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(entity).Error; err != nil {
		return nil, apperror.FromGorm(err)
	}

	return entity, nil
}

func (rr ReferenceRepository[T]) GetById(ctx context.Context, tx *gorm.DB, id string) (*T, error) {
	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var entity T
	if err := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, apperror.FromGorm(err)
	}

	return &entity, nil
}

func (rr ReferenceRepository[T]) GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*T, error) {
	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var entity T
	if err := db.WithContext(ctx).Model(new(T)).Where("slug = ?", slug).First(&entity).Error; err != nil {
		return nil, apperror.FromGorm(err)
	}

	return &entity, nil
}

// GetBySlugs is a membership filter: slugs without a matching row are
// silently dropped, the result only holds what exists.
func (rr ReferenceRepository[T]) GetBySlugs(ctx context.Context, tx *gorm.DB, slugs []string) ([]T, error) {
	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var entities []T
	if len(slugs) == 0 {
		return entities, nil
	}

	if err := db.WithContext(ctx).Model(new(T)).Where("slug IN ?", slugs).Find(&entities).Error; err != nil {
		return nil, apperror.FromGorm(err)
	}

	return entities, nil
}

func (rr ReferenceRepository[T]) List(ctx context.Context, tx *gorm.DB) ([]T, error) {
	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var entities []T
	if err := db.WithContext(ctx).Model(new(T)).Order("name ASC").Find(&entities).Error; err != nil {
		return nil, apperror.FromGorm(err)
	}

	return entities, nil
}

// Update persists a rename; the caller recomputes the slug first.
func (rr ReferenceRepository[T]) Update(ctx context.Context, tx *gorm.DB, entity *T) (*T, error) {
	rr.logger.Debugf("Update reference entity: %+v", entity)

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Save(entity).Error; err != nil {
		return nil, apperror.FromGorm(err)
	}

	return entity, nil
}

func (rr ReferenceRepository[T]) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	rr.logger.Debugf("Delete reference entity with id: %s", id)

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return apperror.FromGorm(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NewNotFound("record not found")
	}

	return nil
}
