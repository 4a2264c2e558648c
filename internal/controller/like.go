package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/sokha-dev/showfolio/internal/apperror"
	"github.com/sokha-dev/showfolio/internal/model"
	"github.com/sokha-dev/showfolio/internal/util"
)

type LikeController struct {
	*baseController
}

type upsertLikeRequest struct {
	IsLike *bool `json:"is_like" form:"isLike" binding:"required"`
}

// Upsert records the caller's like or dislike. Repeating the call with a
// different value flips the existing row rather than adding another.
func (lc LikeController) Upsert(ctx *gin.Context) {
	authUser, err := lc.getAuthUser(ctx)
	if err != nil {
		util.ResponseError(ctx, apperror.NewAuthorization("authentication required"))
		return
	}

	projectId := ctx.Params.ByName("projectId")

	var body upsertLikeRequest
	if err := ctx.ShouldBind(&body); err != nil {
		lc.app.Logger.Error(err)
		util.ResponseError(ctx, apperror.NewValidation("%s", util.GenerateErrorMessage(err)))
		return
	}

	if _, err := lc.app.Repository.Project.GetById(ctx, nil, projectId); err != nil {
		util.ResponseError(ctx, err)
		return
	}

	like := model.Like{
		UserID:    authUser.ID,
		ProjectID: projectId,
		IsLike:    *body.IsLike,
	}
	saved, err := lc.app.Repository.Like.Upsert(ctx, nil, &like)
	if err != nil {
		lc.app.Logger.Error(err)
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"project_id": saved.ProjectID,
		"is_like":    saved.IsLike,
	})
}

func (lc LikeController) CountsByProject(ctx *gin.Context) {
	projectId := ctx.Params.ByName("projectId")

	counts, err := lc.app.Repository.Like.CountsByProject(ctx, nil, projectId)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, counts)
}
