package repository

import (
	"context"

	"github.com/sokha-dev/showfolio/internal/apperror"
	"github.com/sokha-dev/showfolio/internal/constant"
	"github.com/sokha-dev/showfolio/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	*baseRepository
}

func (ur UserRepository) GetById(ctx context.Context, tx *gorm.DB, userId string) (*model.User, error) {
	ur.logger.Debugf("Get user by id: %s", userId)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var user model.User
	if err := db.WithContext(ctx).Where("id = ?", userId).First(&user).Error; err != nil {
		return nil, apperror.FromGorm(err)
	}

	return &user, nil
}

func (ur UserRepository) GetByUsername(ctx context.Context, tx *gorm.DB, username string) (*model.User, error) {
	ur.logger.Debugf("Get user by username: %s", username)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var user model.User
	if err := db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, apperror.FromGorm(err)
	}

	return &user, nil
}

// GetByUsernames is a membership filter: unknown usernames are silently
// dropped from the result.
func (ur UserRepository) GetByUsernames(ctx context.Context, tx *gorm.DB, usernames []string) ([]model.User, error) {
	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var users []model.User
	if len(usernames) == 0 {
		return users, nil
	}

	if err := db.WithContext(ctx).Where("username IN ?", usernames).Find(&users).Error; err != nil {
		return nil, apperror.FromGorm(err)
	}

	return users, nil
}

func (ur *UserRepository) Create(ctx context.Context, tx *gorm.DB, newUser *model.User) (*model.User, error) {
	ur.logger.Debugf("Create user with username: %s", newUser.Username)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(newUser).Error; err != nil {
		return nil, apperror.FromGorm(err)
	}

	return newUser, nil
}

// Register creates the user and its profile in one transaction: the
// explicit post-registration step that keeps the two rows consistent.
func (ur *UserRepository) Register(ctx context.Context, tx *gorm.DB, newUser *model.User) (*model.User, error) {
	ur.logger.Debugf("Register user with username: %s", newUser.Username)

	db := ur.getDB(tx)
	txErr := ur.withTx(db, func(tx *gorm.DB) error {
		if _, err := ur.Create(ctx, tx, newUser); err != nil {
			return err
		}

		if err := tx.WithContext(ctx).Create(&model.Profile{UserID: newUser.ID}).Error; err != nil {
			return apperror.FromGorm(err)
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return newUser, nil
}
