package repository

import (
	"github.com/minio/minio-go/v7"
	"github.com/sokha-dev/showfolio/internal/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type baseRepository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
	s3     *minio.Client
}

type Repository struct {
	// DB can be used for transaction. Example usage:
	// tx := r.DB.Begin()
	// defer tx.Commit()
	// Then pass tx to the repository function. and use tx.Rollback() if error occurred
	DB      *gorm.DB
	User    *UserRepository
	Profile *ProfileRepository
	Project *ProjectRepository
	Image   *ImageRepository
	File    *FileRepository
	Rating  *RatingRepository
	Like    *LikeRepository
	Comment *CommentRepository

	Country    *ReferenceRepository[model.Country]
	City       *ReferenceRepository[model.City]
	Department *ReferenceRepository[model.Department]
	Position   *ReferenceRepository[model.Position]
	Category   *ReferenceRepository[model.Category]
	Tag        *ReferenceRepository[model.Tag]
	Status     *ReferenceRepository[model.Status]
	Action     *ReferenceRepository[model.Action]
}

func newBaseRepository(db *gorm.DB, logger *zap.SugaredLogger, s3 *minio.Client) *baseRepository {
	return &baseRepository{db: db, logger: logger, s3: s3}
}

func NewRepository(db *gorm.DB, logger *zap.SugaredLogger, s3 *minio.Client) *Repository {
	br := newBaseRepository(db, logger, s3)

	return &Repository{
		DB:      db,
		User:    &UserRepository{baseRepository: br},
		Profile: &ProfileRepository{baseRepository: br},
		Project: &ProjectRepository{baseRepository: br},
		Image:   &ImageRepository{baseRepository: br},
		File:    &FileRepository{baseRepository: br},
		Rating:  &RatingRepository{baseRepository: br},
		Like:    &LikeRepository{baseRepository: br},
		Comment: &CommentRepository{baseRepository: br},

		Country:    &ReferenceRepository[model.Country]{baseRepository: br},
		City:       &ReferenceRepository[model.City]{baseRepository: br},
		Department: &ReferenceRepository[model.Department]{baseRepository: br},
		Position:   &ReferenceRepository[model.Position]{baseRepository: br},
		Category:   &ReferenceRepository[model.Category]{baseRepository: br},
		Tag:        &ReferenceRepository[model.Tag]{baseRepository: br},
		Status:     &ReferenceRepository[model.Status]{baseRepository: br},
		Action:     &ReferenceRepository[model.Action]{baseRepository: br},
	}
}

// Docs: https://gorm.io/docs/transactions.html
func (b baseRepository) withTx(db *gorm.DB, fn func(*gorm.DB) error) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})

	if err != nil {
		b.logger.Errorf("withTx Transaction error: %v", err)
	}

	return err
}

func (b baseRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return b.db
}
