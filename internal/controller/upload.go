package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sokha-dev/showfolio/internal/apperror"
	"github.com/sokha-dev/showfolio/internal/constant"
	"github.com/sokha-dev/showfolio/internal/model"
	"github.com/sokha-dev/showfolio/internal/util"
)

type UploadController struct {
	*baseController
}

// UploadImage stores a picture in the bucket under "images/" and records
// the row. The returned ref is what project and comment payloads carry.
func (uc UploadController) UploadImage(ctx *gin.Context) {
	if _, err := uc.getAuthUser(ctx); err != nil {
		util.ResponseError(ctx, apperror.NewAuthorization("authentication required"))
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.ResponseError(ctx, apperror.NewValidation("file is required"))
		return
	}

	if !util.ExtensionAllowed(fileHeader.Filename, constant.AllowedImageExtensions) {
		util.ResponseError(ctx, apperror.NewValidation("image must be one of %v", constant.AllowedImageExtensions))
		return
	}

	info, err := util.UploadFileToS3ByFileHeader(fileHeader, &util.FileUploadOptions{
		DirectoryPath: util.GetImageDirectoryPath(),
		UniquePrefix:  true,
		Bucket:        uc.app.Config.Minio.BUCKET,
		S3:            uc.app.S3,
	})
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, err)
		return
	}

	image := model.Image{
		FileName:       fileHeader.Filename,
		UniqueFileName: info.Key,
		BucketName:     info.Bucket,
		Size:           info.Size,
	}
	created, err := uc.app.Repository.Image.Create(ctx, nil, &image)
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseCreated(ctx, gin.H{
		"ref":      created.Ref(),
		"fileName": created.FileName,
		"size":     created.Size,
	})
}

// UploadFile is the document flavor of UploadImage, stored under "files/".
func (uc UploadController) UploadFile(ctx *gin.Context) {
	if _, err := uc.getAuthUser(ctx); err != nil {
		util.ResponseError(ctx, apperror.NewAuthorization("authentication required"))
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.ResponseError(ctx, apperror.NewValidation("file is required"))
		return
	}

	if !util.ExtensionAllowed(fileHeader.Filename, constant.AllowedFileExtensions) {
		util.ResponseError(ctx, apperror.NewValidation("file must be one of %v", constant.AllowedFileExtensions))
		return
	}

	info, err := util.UploadFileToS3ByFileHeader(fileHeader, &util.FileUploadOptions{
		DirectoryPath: util.GetFileDirectoryPath(),
		UniquePrefix:  true,
		Bucket:        uc.app.Config.Minio.BUCKET,
		S3:            uc.app.S3,
	})
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, err)
		return
	}

	file := model.File{
		FileName:       fileHeader.Filename,
		UniqueFileName: info.Key,
		BucketName:     info.Bucket,
		Size:           info.Size,
	}
	created, err := uc.app.Repository.File.Create(ctx, nil, &file)
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseCreated(ctx, gin.H{
		"ref":      created.Ref(),
		"fileName": created.FileName,
		"size":     created.Size,
	})
}
