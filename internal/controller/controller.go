package controller

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	appcontext "github.com/sokha-dev/showfolio/internal/app_context"
	"github.com/sokha-dev/showfolio/internal/auth"
	"github.com/sokha-dev/showfolio/internal/model"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index   *IndexController
	Auth    *AuthController
	User    *UserController
	Project *ProjectController
	Rating  *RatingController
	Like    *LikeController
	Comment *CommentController
	Upload  *UploadController

	Category *ReferenceController[model.Category, *model.Category]
	Tag      *ReferenceController[model.Tag, *model.Tag]
	Status   *ReferenceController[model.Status, *model.Status]
	Action   *ReferenceController[model.Action, *model.Action]
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:   &IndexController{baseController: bc},
		Auth:    &AuthController{baseController: bc},
		User:    &UserController{baseController: bc},
		Project: &ProjectController{baseController: bc},
		Rating:  &RatingController{baseController: bc},
		Like:    &LikeController{baseController: bc},
		Comment: &CommentController{baseController: bc},
		Upload:  &UploadController{baseController: bc},

		Category: &ReferenceController[model.Category, *model.Category]{baseController: bc, repo: app.Repository.Category},
		Tag:      &ReferenceController[model.Tag, *model.Tag]{baseController: bc, repo: app.Repository.Tag},
		Status:   &ReferenceController[model.Status, *model.Status]{baseController: bc, repo: app.Repository.Status},
		Action:   &ReferenceController[model.Action, *model.Action]{baseController: bc, repo: app.Repository.Action},
	}
}

func (b *baseController) getAuthUser(ctx *gin.Context) (*auth.JWTPayload, error) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, errors.New("user not found in context")
	}

	jsonUser, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	var authUser *auth.JWTPayload
	err = json.Unmarshal(jsonUser, &authUser)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return authUser, nil
}
