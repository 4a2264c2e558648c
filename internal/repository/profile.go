package repository

import (
	"context"

	"github.com/sokha-dev/showfolio/internal/apperror"
	"github.com/sokha-dev/showfolio/internal/constant"
	"github.com/sokha-dev/showfolio/internal/model"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	*baseRepository
}

func (pr ProfileRepository) GetByUserId(ctx context.Context, tx *gorm.DB, userId string) (*model.Profile, error) {
	pr.logger.Debugf("Get profile by user id: %s", userId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var profile model.Profile
	if err := db.WithContext(ctx).
		Preload("Country").
		Preload("City").
		Preload("Department").
		Preload("Position").
		Where("user_id = ?", userId).
		First(&profile).Error; err != nil {
		return nil, apperror.FromGorm(err)
	}

	return &profile, nil
}

func (pr ProfileRepository) Update(ctx context.Context, tx *gorm.DB, profile *model.Profile) error {
	pr.logger.Debugf("Update profile: %s", profile.ID)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).
		Model(profile).
		Select("BirthDate", "Bio", "CountryID", "CityID", "DepartmentID", "PositionID", "Avatar").
		Updates(profile).Error; err != nil {
		return apperror.FromGorm(err)
	}

	return nil
}
