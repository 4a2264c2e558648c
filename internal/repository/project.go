package repository

import (
	"context"

	"github.com/sokha-dev/showfolio/internal/apperror"
	"github.com/sokha-dev/showfolio/internal/constant"
	"github.com/sokha-dev/showfolio/internal/model"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	*baseRepository
}

// preloadAssociations pulls in everything the serializer needs in one read.
func (pr ProjectRepository) preloadAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Authors").
		Preload("Tags").
		Preload("Images").
		Preload("Files").
		Preload("Category").
		Preload("Status")
}

func (pr ProjectRepository) Create(ctx context.Context, tx *gorm.DB, project *model.Project) (*model.Project, error) {
	pr.logger.Debugf("Create project with title: %s", project.Title)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(project).Error; err != nil {
		return nil, apperror.FromGorm(err)
	}

	return project, nil
}

func (pr ProjectRepository) GetById(ctx context.Context, tx *gorm.DB, projectId string) (*model.Project, error) {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var project model.Project
	if err := pr.preloadAssociations(db.WithContext(ctx)).
		Where("id = ?", projectId).
		First(&project).Error; err != nil {
		return nil, apperror.FromGorm(err)
	}

	return &project, nil
}

// List returns active projects only, newest first. Soft-deleted rows stay
// reachable through GetById.
func (pr ProjectRepository) List(ctx context.Context, tx *gorm.DB) ([]model.Project, error) {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var projects []model.Project
	if err := pr.preloadAssociations(db.WithContext(ctx)).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, apperror.FromGorm(err)
	}

	return projects, nil
}

// Save persists scalar field changes on an already-loaded project.
// UpdatedAt refreshes through the gorm autoUpdateTime hook.
func (pr ProjectRepository) Save(ctx context.Context, tx *gorm.DB, project *model.Project) error {
	pr.logger.Debugf("Save project: %s", project.ID)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).
		Model(project).
		Select("Title", "Description", "IsActive", "CategoryID", "StatusID").
		Updates(project).Error; err != nil {
		return apperror.FromGorm(err)
	}

	return nil
}

// Replace semantics for the many-to-many sets: the supplied rows become the
// full association, prior links are removed.

func (pr ProjectRepository) ReplaceAuthors(ctx context.Context, tx *gorm.DB, project *model.Project, authors []model.User) error {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(project).Association("Authors").Replace(authors); err != nil {
		return apperror.FromGorm(err)
	}
	project.Authors = authors
	return nil
}

func (pr ProjectRepository) ReplaceTags(ctx context.Context, tx *gorm.DB, project *model.Project, tags []model.Tag) error {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(project).Association("Tags").Replace(tags); err != nil {
		return apperror.FromGorm(err)
	}
	project.Tags = tags
	return nil
}

func (pr ProjectRepository) ReplaceImages(ctx context.Context, tx *gorm.DB, project *model.Project, images []model.Image) error {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(project).Association("Images").Replace(images); err != nil {
		return apperror.FromGorm(err)
	}
	project.Images = images
	return nil
}

func (pr ProjectRepository) ReplaceFiles(ctx context.Context, tx *gorm.DB, project *model.Project, files []model.File) error {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(project).Association("Files").Replace(files); err != nil {
		return apperror.FromGorm(err)
	}
	project.Files = files
	return nil
}

// SetActive flips the soft-delete flag. The row and its associations stay
// in place either way.
func (pr ProjectRepository) SetActive(ctx context.Context, tx *gorm.DB, projectId string, active bool) error {
	pr.logger.Debugf("Set project %s active=%v", projectId, active)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).
		Model(&model.Project{}).
		Where("id = ?", projectId).
		Update("is_active", active)
	if res.Error != nil {
		return apperror.FromGorm(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NewNotFound("project not found")
	}

	return nil
}
