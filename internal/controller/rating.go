package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/sokha-dev/showfolio/internal/apperror"
	"github.com/sokha-dev/showfolio/internal/model"
	"github.com/sokha-dev/showfolio/internal/util"
)

type RatingController struct {
	*baseController
}

type RatingResponse struct {
	ID        string `json:"id"`
	User      string `json:"user"`
	ProjectID string `json:"project_id"`
	Value     int    `json:"value"`
	CreatedAt string `json:"created_at"`
}

func toRatingResponse(rating *model.Rating) RatingResponse {
	return RatingResponse{
		ID:        rating.ID,
		User:      rating.User.Username,
		ProjectID: rating.ProjectID,
		Value:     rating.Value,
		CreatedAt: rating.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

type createRatingRequest struct {
	Value int `json:"value" form:"value" binding:"required,gte=1,lte=5"`
}

func (rc RatingController) Create(ctx *gin.Context) {
	authUser, err := rc.getAuthUser(ctx)
	if err != nil {
		util.ResponseError(ctx, apperror.NewAuthorization("authentication required"))
		return
	}

	projectId := ctx.Params.ByName("projectId")

	var body createRatingRequest
	if err := ctx.ShouldBind(&body); err != nil {
		rc.app.Logger.Error(err)
		util.ResponseError(ctx, apperror.NewValidation("%s", util.GenerateErrorMessage(err)))
		return
	}

	// The project must exist before the rating is written.
	if _, err := rc.app.Repository.Project.GetById(ctx, nil, projectId); err != nil {
		util.ResponseError(ctx, err)
		return
	}

	rating := model.Rating{
		UserID:    authUser.ID,
		ProjectID: projectId,
		Value:     body.Value,
	}
	created, err := rc.app.Repository.Rating.Create(ctx, nil, &rating)
	if err != nil {
		rc.app.Logger.Error(err)
		util.ResponseError(ctx, err)
		return
	}

	created.User = model.User{Username: authUser.Username}
	util.ResponseCreated(ctx, toRatingResponse(created))
}

func (rc RatingController) ListByProject(ctx *gin.Context) {
	projectId := ctx.Params.ByName("projectId")

	ratings, err := rc.app.Repository.Rating.ListByProject(ctx, nil, projectId)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	average, err := rc.app.Repository.Rating.Average(ctx, nil, projectId)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	res := make([]RatingResponse, 0, len(ratings))
	for i := range ratings {
		res = append(res, toRatingResponse(&ratings[i]))
	}

	util.ResponseSuccess(ctx, gin.H{
		"ratings": res,
		"average": average,
	})
}
