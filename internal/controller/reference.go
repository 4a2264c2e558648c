package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/sokha-dev/showfolio/internal/apperror"
	"github.com/sokha-dev/showfolio/internal/model"
	"github.com/sokha-dev/showfolio/internal/repository"
	"github.com/sokha-dev/showfolio/internal/util"
)

// ReferenceController serves the admin CRUD surface shared by every lookup
// entity. T is the concrete model, PT its pointer type carrying the
// ReferenceEntity methods.
type ReferenceController[T any, PT interface {
	*T
	model.ReferenceEntity
}] struct {
	*baseController
	repo *repository.ReferenceRepository[T]
}

type referenceRequest struct {
	Name        string `json:"name" form:"name" binding:"required,strNotEmpty"`
	Description string `json:"description" form:"description"`
}

func (rc ReferenceController[T, PT]) List(ctx *gin.Context) {
	entities, err := rc.repo.List(ctx, nil)
	if err != nil {
		rc.app.Logger.Error(err)
		util.ResponseError(ctx, err)
		return
	}

	if entities == nil {
		entities = []T{}
	}

	util.ResponseSuccess(ctx, entities)
}

func (rc ReferenceController[T, PT]) GetBySlug(ctx *gin.Context) {
	slug := ctx.Params.ByName("slug")

	entity, err := rc.repo.GetBySlug(ctx, nil, slug)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, entity)
}

func (rc ReferenceController[T, PT]) Create(ctx *gin.Context) {
	var body referenceRequest
	if err := ctx.ShouldBind(&body); err != nil {
		rc.app.Logger.Error(err)
		util.ResponseError(ctx, apperror.NewValidation("%s", util.GenerateErrorMessage(err)))
		return
	}

	var entity T
	ptr := PT(&entity)

	if !util.ValidateReferenceName(body.Name, ptr.NameMaxLength()) {
		util.ResponseError(ctx, apperror.NewValidation("name must be between 1 and %d characters", ptr.NameMaxLength()))
		return
	}

	// The slug is derived from the name before every persist.
	ptr.SetNameSlug(body.Name, util.Slugify(body.Name))
	if setter, ok := any(ptr).(interface{ SetDescription(string) }); ok && body.Description != "" {
		setter.SetDescription(body.Description)
	}

	created, err := rc.repo.Create(ctx, nil, &entity)
	if err != nil {
		rc.app.Logger.Error(err)
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseCreated(ctx, created)
}

func (rc ReferenceController[T, PT]) Update(ctx *gin.Context) {
	slug := ctx.Params.ByName("slug")

	var body referenceRequest
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseError(ctx, apperror.NewValidation("%s", util.GenerateErrorMessage(err)))
		return
	}

	entity, err := rc.repo.GetBySlug(ctx, nil, slug)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	ptr := PT(entity)
	if !util.ValidateReferenceName(body.Name, ptr.NameMaxLength()) {
		util.ResponseError(ctx, apperror.NewValidation("name must be between 1 and %d characters", ptr.NameMaxLength()))
		return
	}

	// Renaming recomputes the slug; unchanged names keep their slug.
	ptr.SetNameSlug(body.Name, util.Slugify(body.Name))
	if setter, ok := any(ptr).(interface{ SetDescription(string) }); ok && body.Description != "" {
		setter.SetDescription(body.Description)
	}

	updated, err := rc.repo.Update(ctx, nil, entity)
	if err != nil {
		rc.app.Logger.Error(err)
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, updated)
}

func (rc ReferenceController[T, PT]) Delete(ctx *gin.Context) {
	slug := ctx.Params.ByName("slug")

	entity, err := rc.repo.GetBySlug(ctx, nil, slug)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	if err := rc.repo.Delete(ctx, nil, PT(entity).GetID()); err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseNoContent(ctx)
}
