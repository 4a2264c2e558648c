package repository

import (
	"context"

	"github.com/sokha-dev/showfolio/internal/apperror"
	"github.com/sokha-dev/showfolio/internal/constant"
	"github.com/sokha-dev/showfolio/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository struct {
	*baseRepository
}

// Upsert keeps one like row per user/project pair; re-liking flips IsLike
// in place instead of inserting a duplicate.
func (lr *LikeRepository) Upsert(ctx context.Context, tx *gorm.DB, like *model.Like) (*model.Like, error) {
	lr.logger.Debugf("Upsert like for project %s by user %s", like.ProjectID, like.UserID)

	db := lr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "project_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_like", "updated_at"}),
	}).Create(like).Error; err != nil {
		return nil, apperror.FromGorm(err)
	}

	return like, nil
}

type LikeCounts struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}

func (lr LikeRepository) CountsByProject(ctx context.Context, tx *gorm.DB, projectId string) (LikeCounts, error) {
	db := lr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var counts LikeCounts
	if err := db.WithContext(ctx).
		Model(&model.Like{}).
		Where("project_id = ? AND is_like = ?", projectId, true).
		Count(&counts.Likes).Error; err != nil {
		return counts, apperror.FromGorm(err)
	}

	if err := db.WithContext(ctx).
		Model(&model.Like{}).
		Where("project_id = ? AND is_like = ?", projectId, false).
		Count(&counts.Dislikes).Error; err != nil {
		return counts, apperror.FromGorm(err)
	}

	return counts, nil
}
