package model

import (
	"context"
	"errors"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/sokha-dev/showfolio/internal/constant"
	"github.com/sokha-dev/showfolio/internal/util"
)

// File is a stored document asset. UniqueFileName is the stable reference
// string handed out by the upload endpoint and stored on projects/comments.
type File struct {
	BaseModel
	FileName       string `gorm:"type:text;not null" json:"fileName" form:"fileName" binding:"required"`
	UniqueFileName string `gorm:"type:text;not null;uniqueIndex" json:"uniqueFileName" form:"uniqueFileName" binding:"required"`
	BucketName     string `gorm:"type:text;not null" json:"bucketName" form:"bucketName" binding:"required"`
	Size           int64  `gorm:"type:bigint;not null" json:"size" form:"size"`
}

func (f File) TableName() string {
	return "files"
}

// Ref returns the asset reference string used in serialized payloads.
func (f File) Ref() string {
	return f.UniqueFileName
}

func (f File) HasAllowedExtension() bool {
	return util.ExtensionAllowed(f.UniqueFileName, constant.AllowedFileExtensions)
}

func (f File) ToPresignedUrl(ctx context.Context, s3 *minio.Client) (string, error) {
	if f.BucketName == "" || f.UniqueFileName == "" {
		return "", errors.New("bucket name and unique file name cannot be empty")
	}

	// 60min expiration time
	presignedURL, err := s3.PresignedGetObject(ctx, f.BucketName, f.UniqueFileName, time.Minute*60, nil)
	if err != nil {
		return "", err
	}
	return presignedURL.String(), nil
}

func (f File) Delete(ctx context.Context, s3 *minio.Client) error {
	if f.BucketName == "" || f.UniqueFileName == "" {
		return errors.New("bucket name and unique file name cannot be empty")
	}

	return s3.RemoveObject(ctx, f.BucketName, f.UniqueFileName, minio.RemoveObjectOptions{})
}
