package repository

import (
	"context"
	"path/filepath"

	"github.com/sokha-dev/showfolio/internal/apperror"
	"github.com/sokha-dev/showfolio/internal/constant"
	"github.com/sokha-dev/showfolio/internal/model"
	"gorm.io/gorm"
)

type ImageRepository struct {
	*baseRepository
}

func (ir *ImageRepository) Create(ctx context.Context, tx *gorm.DB, image *model.Image) (*model.Image, error) {
	ir.logger.Debugf("Create image record: %s", image.UniqueFileName)

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(image).Error; err != nil {
		return nil, apperror.FromGorm(err)
	}

	return image, nil
}

// GetOrCreateByRefs mirrors FileRepository.GetOrCreateByRefs for images.
func (ir *ImageRepository) GetOrCreateByRefs(ctx context.Context, tx *gorm.DB, refs []string, bucket string) ([]model.Image, error) {
	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	images := make([]model.Image, 0, len(refs))
	if len(refs) == 0 {
		return images, nil
	}

	for _, ref := range refs {
		candidate := model.Image{
			FileName:       filepath.Base(ref),
			UniqueFileName: ref,
			BucketName:     bucket,
		}
		if !candidate.HasAllowedExtension() {
			return nil, apperror.NewValidation("image %q must be one of %v", ref, constant.AllowedImageExtensions)
		}
	}

	var existing []model.Image
	if err := db.WithContext(ctx).Where("unique_file_name IN ?", refs).Find(&existing).Error; err != nil {
		return nil, apperror.FromGorm(err)
	}

	known := make(map[string]model.Image, len(existing))
	for _, img := range existing {
		known[img.UniqueFileName] = img
	}

	var missing []model.Image
	for _, ref := range refs {
		if img, ok := known[ref]; ok {
			images = append(images, img)
			continue
		}
		missing = append(missing, model.Image{
			FileName:       filepath.Base(ref),
			UniqueFileName: ref,
			BucketName:     bucket,
		})
	}

	if len(missing) > 0 {
		if err := db.WithContext(ctx).Create(&missing).Error; err != nil {
			return nil, apperror.FromGorm(err)
		}
		images = append(images, missing...)
	}

	return images, nil
}
