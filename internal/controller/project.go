package controller

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sokha-dev/showfolio/internal/apperror"
	"github.com/sokha-dev/showfolio/internal/constant"
	"github.com/sokha-dev/showfolio/internal/model"
	"github.com/sokha-dev/showfolio/internal/util"
)

type ProjectController struct {
	*baseController
}

// ProjectResponse is the serialization contract of the aggregate: names and
// reference strings instead of nested rows, empty lists when no related
// rows exist.
type ProjectResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Authors     []string  `json:"authors"`
	Category    *string   `json:"category"`
	Tags        []string  `json:"tags"`
	Images      []string  `json:"images"`
	Files       []string  `json:"files"`
	Status      *string   `json:"status"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toProjectResponse(project *model.Project) ProjectResponse {
	res := ProjectResponse{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Authors:     make([]string, 0, len(project.Authors)),
		Tags:        make([]string, 0, len(project.Tags)),
		Images:      make([]string, 0, len(project.Images)),
		Files:       make([]string, 0, len(project.Files)),
		IsActive:    project.IsActive,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}

	for _, author := range project.Authors {
		res.Authors = append(res.Authors, author.Username)
	}
	for _, tag := range project.Tags {
		res.Tags = append(res.Tags, tag.Name)
	}
	for _, image := range project.Images {
		res.Images = append(res.Images, image.Ref())
	}
	for _, file := range project.Files {
		res.Files = append(res.Files, file.Ref())
	}
	if project.Category != nil {
		res.Category = &project.Category.Name
	}
	if project.Status != nil {
		res.Status = &project.Status.Name
	}

	return res
}

func (pc ProjectController) List(ctx *gin.Context) {
	projects, err := pc.app.Repository.Project.List(ctx, nil)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseError(ctx, err)
		return
	}

	res := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		res = append(res, toProjectResponse(&projects[i]))
	}

	util.ResponseSuccess(ctx, res)
}

func (pc ProjectController) GetById(ctx *gin.Context) {
	projectId := ctx.Params.ByName("projectId")
	if projectId == "" {
		util.ResponseError(ctx, apperror.NewValidation("project id is required"))
		return
	}

	project, err := pc.app.Repository.Project.GetById(ctx, nil, projectId)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, toProjectResponse(project))
}

type createProjectRequest struct {
	Title       string `json:"title" form:"title" binding:"required,strNotEmpty,cmax=150"`
	Description string `json:"description" form:"description"`
	// Category and status are single slugs; the rest are comma separated
	// lists (tag slugs, author usernames, asset references).
	Category string `json:"category" form:"category"`
	Status   string `json:"status" form:"status"`
	Tags     string `json:"tags" form:"tags"`
	Authors  string `json:"authors" form:"authors"`
	Images   string `json:"images" form:"images"`
	Files    string `json:"files" form:"files"`
}

func (pc ProjectController) Create(ctx *gin.Context) {
	var body createProjectRequest
	if err := ctx.ShouldBind(&body); err != nil {
		pc.app.Logger.Error(err)
		util.ResponseError(ctx, apperror.NewValidation("%s", util.GenerateErrorMessage(err)))
		return
	}

	project := model.Project{
		Title:       body.Title,
		Description: body.Description,
		IsActive:    false,
	}
	if project.Description == "" {
		project.Description = constant.DefaultDescription
	}

	// Resolve lookups before anything is written. A missing category or
	// status aborts the whole create; unknown tag slugs and author
	// usernames are silently dropped.
	if body.Category != "" {
		category, err := pc.app.Repository.Category.GetBySlug(ctx, nil, body.Category)
		if err != nil {
			if apperror.IsNotFound(err) {
				err = apperror.NewNotFound("category %q not found", body.Category)
			}
			util.ResponseError(ctx, err)
			return
		}
		project.CategoryID = &category.ID
	}

	if body.Status != "" {
		status, err := pc.app.Repository.Status.GetBySlug(ctx, nil, body.Status)
		if err != nil {
			if apperror.IsNotFound(err) {
				err = apperror.NewNotFound("status %q not found", body.Status)
			}
			util.ResponseError(ctx, err)
			return
		}
		project.StatusID = &status.ID
	}

	tags, err := pc.app.Repository.Tag.GetBySlugs(ctx, nil, util.SplitCommaSeparated(body.Tags))
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}
	project.Tags = tags

	authors, err := pc.app.Repository.User.GetByUsernames(ctx, nil, util.SplitCommaSeparated(body.Authors))
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}
	project.Authors = authors

	tx := pc.app.Repository.DB.Begin()

	images, err := pc.app.Repository.Image.GetOrCreateByRefs(ctx, tx, util.SplitCommaSeparated(body.Images), pc.app.Config.Minio.BUCKET)
	if err != nil {
		tx.Rollback()
		util.ResponseError(ctx, err)
		return
	}
	project.Images = images

	files, err := pc.app.Repository.File.GetOrCreateByRefs(ctx, tx, util.SplitCommaSeparated(body.Files), pc.app.Config.Minio.BUCKET)
	if err != nil {
		tx.Rollback()
		util.ResponseError(ctx, err)
		return
	}
	project.Files = files

	created, err := pc.app.Repository.Project.Create(ctx, tx, &project)
	if err != nil {
		tx.Rollback()
		pc.app.Logger.Error(err)
		util.ResponseError(ctx, err)
		return
	}

	if err := tx.Commit().Error; err != nil {
		pc.app.Logger.Error(err)
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseCreated(ctx, toProjectResponse(created))
}

type updateProjectRequest struct {
	Title       *string `json:"title" form:"title" binding:"omitempty,strNotEmpty,cmax=150"`
	Description *string `json:"description" form:"description"`
	Category    *string `json:"category" form:"category"`
	Status      *string `json:"status" form:"status"`
	Tags        *string `json:"tags" form:"tags"`
	Authors     *string `json:"authors" form:"authors"`
	Images      *string `json:"images" form:"images"`
	Files       *string `json:"files" form:"files"`
	IsActive    *bool   `json:"is_active" form:"isActive"`
}

// Update applies partial replace semantics: only supplied fields change,
// supplied association lists replace the prior set outright.
func (pc ProjectController) Update(ctx *gin.Context) {
	projectId := ctx.Params.ByName("projectId")
	if projectId == "" {
		util.ResponseError(ctx, apperror.NewValidation("project id is required"))
		return
	}

	var body updateProjectRequest
	if err := ctx.ShouldBind(&body); err != nil {
		pc.app.Logger.Error(err)
		util.ResponseError(ctx, apperror.NewValidation("%s", util.GenerateErrorMessage(err)))
		return
	}

	project, err := pc.app.Repository.Project.GetById(ctx, nil, projectId)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	if body.Title != nil {
		project.Title = *body.Title
	}
	if body.Description != nil {
		project.Description = *body.Description
		if project.Description == "" {
			project.Description = constant.DefaultDescription
		}
	}
	if body.IsActive != nil {
		project.IsActive = *body.IsActive
	}

	// An empty supplied slug clears the reference, a non-empty one must
	// resolve.
	if body.Category != nil {
		if *body.Category == "" {
			project.CategoryID = nil
			project.Category = nil
		} else {
			category, err := pc.app.Repository.Category.GetBySlug(ctx, nil, *body.Category)
			if err != nil {
				if apperror.IsNotFound(err) {
					err = apperror.NewNotFound("category %q not found", *body.Category)
				}
				util.ResponseError(ctx, err)
				return
			}
			project.CategoryID = &category.ID
			project.Category = category
		}
	}

	if body.Status != nil {
		if *body.Status == "" {
			project.StatusID = nil
			project.Status = nil
		} else {
			status, err := pc.app.Repository.Status.GetBySlug(ctx, nil, *body.Status)
			if err != nil {
				if apperror.IsNotFound(err) {
					err = apperror.NewNotFound("status %q not found", *body.Status)
				}
				util.ResponseError(ctx, err)
				return
			}
			project.StatusID = &status.ID
			project.Status = status
		}
	}

	var tags []model.Tag
	if body.Tags != nil {
		tags, err = pc.app.Repository.Tag.GetBySlugs(ctx, nil, util.SplitCommaSeparated(*body.Tags))
		if err != nil {
			util.ResponseError(ctx, err)
			return
		}
	}

	var authors []model.User
	if body.Authors != nil {
		authors, err = pc.app.Repository.User.GetByUsernames(ctx, nil, util.SplitCommaSeparated(*body.Authors))
		if err != nil {
			util.ResponseError(ctx, err)
			return
		}
	}

	tx := pc.app.Repository.DB.Begin()

	if body.Images != nil {
		images, err := pc.app.Repository.Image.GetOrCreateByRefs(ctx, tx, util.SplitCommaSeparated(*body.Images), pc.app.Config.Minio.BUCKET)
		if err != nil {
			tx.Rollback()
			util.ResponseError(ctx, err)
			return
		}
		if err := pc.app.Repository.Project.ReplaceImages(ctx, tx, project, images); err != nil {
			tx.Rollback()
			util.ResponseError(ctx, err)
			return
		}
	}

	if body.Files != nil {
		files, err := pc.app.Repository.File.GetOrCreateByRefs(ctx, tx, util.SplitCommaSeparated(*body.Files), pc.app.Config.Minio.BUCKET)
		if err != nil {
			tx.Rollback()
			util.ResponseError(ctx, err)
			return
		}
		if err := pc.app.Repository.Project.ReplaceFiles(ctx, tx, project, files); err != nil {
			tx.Rollback()
			util.ResponseError(ctx, err)
			return
		}
	}

	if body.Tags != nil {
		if err := pc.app.Repository.Project.ReplaceTags(ctx, tx, project, tags); err != nil {
			tx.Rollback()
			util.ResponseError(ctx, err)
			return
		}
	}

	if body.Authors != nil {
		if err := pc.app.Repository.Project.ReplaceAuthors(ctx, tx, project, authors); err != nil {
			tx.Rollback()
			util.ResponseError(ctx, err)
			return
		}
	}

	if err := pc.app.Repository.Project.Save(ctx, tx, project); err != nil {
		tx.Rollback()
		pc.app.Logger.Error(err)
		util.ResponseError(ctx, err)
		return
	}

	if err := tx.Commit().Error; err != nil {
		pc.app.Logger.Error(err)
		util.ResponseError(ctx, err)
		return
	}

	// Re-read so the response carries the refreshed updated_at and the
	// association state exactly as persisted.
	updated, err := pc.app.Repository.Project.GetById(ctx, nil, projectId)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, toProjectResponse(updated))
}

// Delete is a soft delete: the project drops out of List but stays
// reachable through GetById, associations intact.
func (pc ProjectController) Delete(ctx *gin.Context) {
	projectId := ctx.Params.ByName("projectId")
	if projectId == "" {
		util.ResponseError(ctx, apperror.NewValidation("project id is required"))
		return
	}

	if err := pc.app.Repository.Project.SetActive(ctx, nil, projectId, false); err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseNoContent(ctx)
}
