package repository

import (
	"context"
	"path/filepath"

	"github.com/sokha-dev/showfolio/internal/apperror"
	"github.com/sokha-dev/showfolio/internal/constant"
	"github.com/sokha-dev/showfolio/internal/model"
	"gorm.io/gorm"
)

type FileRepository struct {
	*baseRepository
}

func (fr *FileRepository) Create(ctx context.Context, tx *gorm.DB, file *model.File) (*model.File, error) {
	fr.logger.Debugf("Create file record: %s", file.UniqueFileName)

	db := fr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(file).Error; err != nil {
		return nil, apperror.FromGorm(err)
	}

	return file, nil
}

// GetOrCreateByRefs resolves asset reference strings to file rows, creating
// rows for references seen for the first time. References carrying a
// disallowed extension fail validation before anything is written.
func (fr *FileRepository) GetOrCreateByRefs(ctx context.Context, tx *gorm.DB, refs []string, bucket string) ([]model.File, error) {
	db := fr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	files := make([]model.File, 0, len(refs))
	if len(refs) == 0 {
		return files, nil
	}

	for _, ref := range refs {
		candidate := model.File{
			FileName:       filepath.Base(ref),
			UniqueFileName: ref,
			BucketName:     bucket,
		}
		if !candidate.HasAllowedExtension() {
			return nil, apperror.NewValidation("file %q must be one of %v", ref, constant.AllowedFileExtensions)
		}
	}

	var existing []model.File
	if err := db.WithContext(ctx).Where("unique_file_name IN ?", refs).Find(&existing).Error; err != nil {
		return nil, apperror.FromGorm(err)
	}

	known := make(map[string]model.File, len(existing))
	for _, f := range existing {
		known[f.UniqueFileName] = f
	}

	var missing []model.File
	for _, ref := range refs {
		if f, ok := known[ref]; ok {
			files = append(files, f)
			continue
		}
		missing = append(missing, model.File{
			FileName:       filepath.Base(ref),
			UniqueFileName: ref,
			BucketName:     bucket,
		})
	}

	if len(missing) > 0 {
		if err := db.WithContext(ctx).Create(&missing).Error; err != nil {
			return nil, apperror.FromGorm(err)
		}
		files = append(files, missing...)
	}

	return files, nil
}
