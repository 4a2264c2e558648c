package model

import (
	"context"
	"errors"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/sokha-dev/showfolio/internal/constant"
	"github.com/sokha-dev/showfolio/internal/util"
)

// Image is a stored picture asset, same shape as File but with its own
// allowed extension set.
type Image struct {
	BaseModel
	FileName       string `gorm:"type:text;not null" json:"fileName" form:"fileName" binding:"required"`
	UniqueFileName string `gorm:"type:text;not null;uniqueIndex" json:"uniqueFileName" form:"uniqueFileName" binding:"required"`
	BucketName     string `gorm:"type:text;not null" json:"bucketName" form:"bucketName" binding:"required"`
	Size           int64  `gorm:"type:bigint;not null" json:"size" form:"size"`
}

func (i Image) TableName() string {
	return "images"
}

// Ref returns the asset reference string used in serialized payloads.
func (i Image) Ref() string {
	return i.UniqueFileName
}

func (i Image) HasAllowedExtension() bool {
	return util.ExtensionAllowed(i.UniqueFileName, constant.AllowedImageExtensions)
}

func (i Image) ToPresignedUrl(ctx context.Context, s3 *minio.Client) (string, error) {
	if i.BucketName == "" || i.UniqueFileName == "" {
		return "", errors.New("bucket name and unique file name cannot be empty")
	}

	// 60min expiration time
	presignedURL, err := s3.PresignedGetObject(ctx, i.BucketName, i.UniqueFileName, time.Minute*60, nil)
	if err != nil {
		return "", err
	}
	return presignedURL.String(), nil
}
