package repository

import (
	"context"

	"github.com/sokha-dev/showfolio/internal/apperror"
	"github.com/sokha-dev/showfolio/internal/constant"
	"github.com/sokha-dev/showfolio/internal/model"
	"gorm.io/gorm"
)

type CommentRepository struct {
	*baseRepository
}

func (cr *CommentRepository) Create(ctx context.Context, tx *gorm.DB, comment *model.Comment) (*model.Comment, error) {
	cr.logger.Debugf("Create comment on project %s by user %s", comment.ProjectID, comment.UserID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(comment).Error; err != nil {
		return nil, apperror.FromGorm(err)
	}

	return comment, nil
}

// ListByProject returns one page of comments, newest first, with the total
// row count for pagination.
func (cr CommentRepository) ListByProject(ctx context.Context, tx *gorm.DB, projectId string, page, pageSize uint) ([]model.Comment, int64, error) {
	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var total int64
	if err := db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("project_id = ?", projectId).
		Count(&total).Error; err != nil {
		return nil, 0, apperror.FromGorm(err)
	}

	var comments []model.Comment
	if err := db.WithContext(ctx).
		Preload("User").
		Preload("Images").
		Preload("Files").
		Where("project_id = ?", projectId).
		Order("created_at DESC").
		Offset(int((page - 1) * pageSize)).
		Limit(int(pageSize)).
		Find(&comments).Error; err != nil {
		return nil, 0, apperror.FromGorm(err)
	}

	return comments, total, nil
}
