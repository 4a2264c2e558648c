package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sokha-dev/showfolio/internal/apperror"
	"github.com/sokha-dev/showfolio/internal/constant"
	"github.com/sokha-dev/showfolio/internal/model"
	"github.com/sokha-dev/showfolio/internal/util"
)

type CommentController struct {
	*baseController
}

type CommentResponse struct {
	ID        string   `json:"id"`
	User      string   `json:"user"`
	ProjectID string   `json:"project_id"`
	Text      string   `json:"text"`
	Images    []string `json:"images"`
	Files     []string `json:"files"`
	CreatedAt string   `json:"created_at"`
}

func toCommentResponse(comment *model.Comment) CommentResponse {
	res := CommentResponse{
		ID:        comment.ID,
		User:      comment.User.Username,
		ProjectID: comment.ProjectID,
		Text:      comment.Text,
		Images:    make([]string, 0, len(comment.Images)),
		Files:     make([]string, 0, len(comment.Files)),
		CreatedAt: comment.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	for _, image := range comment.Images {
		res.Images = append(res.Images, image.Ref())
	}
	for _, file := range comment.Files {
		res.Files = append(res.Files, file.Ref())
	}
	return res
}

type createCommentRequest struct {
	Text   string `json:"text" form:"text" binding:"required,strNotEmpty"`
	Images string `json:"images" form:"images"`
	Files  string `json:"files" form:"files"`
}

func (cc CommentController) Create(ctx *gin.Context) {
	authUser, err := cc.getAuthUser(ctx)
	if err != nil {
		util.ResponseError(ctx, apperror.NewAuthorization("authentication required"))
		return
	}

	projectId := ctx.Params.ByName("projectId")

	var body createCommentRequest
	if err := ctx.ShouldBind(&body); err != nil {
		cc.app.Logger.Error(err)
		util.ResponseError(ctx, apperror.NewValidation("%s", util.GenerateErrorMessage(err)))
		return
	}

	if _, err := cc.app.Repository.Project.GetById(ctx, nil, projectId); err != nil {
		util.ResponseError(ctx, err)
		return
	}

	tx := cc.app.Repository.DB.Begin()

	images, err := cc.app.Repository.Image.GetOrCreateByRefs(ctx, tx, util.SplitCommaSeparated(body.Images), cc.app.Config.Minio.BUCKET)
	if err != nil {
		tx.Rollback()
		util.ResponseError(ctx, err)
		return
	}

	files, err := cc.app.Repository.File.GetOrCreateByRefs(ctx, tx, util.SplitCommaSeparated(body.Files), cc.app.Config.Minio.BUCKET)
	if err != nil {
		tx.Rollback()
		util.ResponseError(ctx, err)
		return
	}

	comment := model.Comment{
		UserID:    authUser.ID,
		ProjectID: projectId,
		Text:      body.Text,
		Images:    images,
		Files:     files,
	}
	created, err := cc.app.Repository.Comment.Create(ctx, tx, &comment)
	if err != nil {
		tx.Rollback()
		cc.app.Logger.Error(err)
		util.ResponseError(ctx, err)
		return
	}

	if err := tx.Commit().Error; err != nil {
		cc.app.Logger.Error(err)
		util.ResponseError(ctx, err)
		return
	}

	created.User = model.User{Username: authUser.Username}
	util.ResponseCreated(ctx, toCommentResponse(created))
}

func (cc CommentController) ListByProject(ctx *gin.Context) {
	projectId := ctx.Params.ByName("projectId")

	page64, err := strconv.ParseUint(ctx.DefaultQuery("page", "1"), 10, 32)
	if err != nil || page64 < 1 {
		page64 = 1
	}
	page := uint(page64)

	size64, err := strconv.ParseUint(ctx.Query("pageSize"), 10, 32)
	if err != nil || size64 < 1 {
		size64 = uint64(constant.DefaultPageSize)
	}
	pageSize := uint(size64)
	if pageSize > constant.MaxPageSize {
		pageSize = constant.MaxPageSize
	}

	comments, total, err := cc.app.Repository.Comment.ListByProject(ctx, nil, projectId, page, pageSize)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	res := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		res = append(res, toCommentResponse(&comments[i]))
	}

	util.ResponseSuccess(ctx, gin.H{
		"comments":  res,
		"total":     total,
		"page":      page,
		"pageSize":  pageSize,
		"totalPage": util.CalculateTotalPage(total, pageSize),
	})
}
