package repository

import (
	"context"

	"github.com/sokha-dev/showfolio/internal/apperror"
	"github.com/sokha-dev/showfolio/internal/constant"
	"github.com/sokha-dev/showfolio/internal/model"
	"gorm.io/gorm"
)

type RatingRepository struct {
	*baseRepository
}

func (rr *RatingRepository) Create(ctx context.Context, tx *gorm.DB, rating *model.Rating) (*model.Rating, error) {
	rr.logger.Debugf("Create rating for project %s by user %s", rating.ProjectID, rating.UserID)

	if rating.Value < constant.RatingMinValue || rating.Value > constant.RatingMaxValue {
		return nil, apperror.NewValidation("rating value must be between %d and %d", constant.RatingMinValue, constant.RatingMaxValue)
	}

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(rating).Error; err != nil {
		return nil, apperror.FromGorm(err)
	}

	return rating, nil
}

func (rr RatingRepository) ListByProject(ctx context.Context, tx *gorm.DB, projectId string) ([]model.Rating, error) {
	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var ratings []model.Rating
	if err := db.WithContext(ctx).
		Preload("User").
		Where("project_id = ?", projectId).
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {
		return nil, apperror.FromGorm(err)
	}

	return ratings, nil
}

// Average returns the mean rating value for a project, 0 when unrated.
func (rr RatingRepository) Average(ctx context.Context, tx *gorm.DB, projectId string) (float64, error) {
	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var avg *float64
	if err := db.WithContext(ctx).
		Model(&model.Rating{}).
		Select("AVG(value)").
		Where("project_id = ?", projectId).
		Scan(&avg).Error; err != nil {
		return 0, apperror.FromGorm(err)
	}

	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}
