package controller

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sokha-dev/showfolio/internal/apperror"
	"github.com/sokha-dev/showfolio/internal/model"
	"github.com/sokha-dev/showfolio/internal/util"
)

type UserController struct {
	*baseController
}

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func toUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

type ProfileResponse struct {
	BirthDate  *string `json:"birth_date"`
	Bio        string  `json:"bio"`
	Country    *string `json:"country"`
	City       *string `json:"city"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	Avatar     string  `json:"avatar"`
}

func toProfileResponse(profile *model.Profile) ProfileResponse {
	res := ProfileResponse{
		Bio:    profile.Bio,
		Avatar: profile.Avatar,
	}
	if profile.BirthDate != nil {
		birthDate := profile.BirthDate.Format("2006-01-02")
		res.BirthDate = &birthDate
	}
	if profile.Country != nil {
		res.Country = &profile.Country.Name
	}
	if profile.City != nil {
		res.City = &profile.City.Name
	}
	if profile.Department != nil {
		res.Department = &profile.Department.Name
	}
	if profile.Position != nil {
		res.Position = &profile.Position.Name
	}
	return res
}

// GetMe answers with the authenticated user's account and profile.
func (uc UserController) GetMe(ctx *gin.Context) {
	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		util.ResponseError(ctx, apperror.NewAuthorization("authentication required"))
		return
	}

	user, err := uc.app.Repository.User.GetById(ctx, nil, authUser.ID)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	profile, err := uc.app.Repository.Profile.GetByUserId(ctx, nil, authUser.ID)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user":    toUserResponse(user),
		"profile": toProfileResponse(profile),
	})
}

type updateProfileRequest struct {
	BirthDate  *string `json:"birth_date" form:"birthDate"`
	Bio        *string `json:"bio" form:"bio"`
	Country    *string `json:"country" form:"country"`
	City       *string `json:"city" form:"city"`
	Department *string `json:"department" form:"department"`
	Position   *string `json:"position" form:"position"`
	Avatar     *string `json:"avatar" form:"avatar"`
}

// UpdateProfile applies partial update semantics. Lookup fields take a
// slug; an empty supplied slug clears the reference, a non-empty one must
// resolve.
func (uc UserController) UpdateProfile(ctx *gin.Context) {
	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		util.ResponseError(ctx, apperror.NewAuthorization("authentication required"))
		return
	}

	var body updateProfileRequest
	if err := ctx.ShouldBind(&body); err != nil {
		uc.app.Logger.Error(err)
		util.ResponseError(ctx, apperror.NewValidation("%s", util.GenerateErrorMessage(err)))
		return
	}

	profile, err := uc.app.Repository.Profile.GetByUserId(ctx, nil, authUser.ID)
	if err != nil {
		util.ResponseError(ctx, err)
		return
	}

	if body.BirthDate != nil {
		if *body.BirthDate == "" {
			profile.BirthDate = nil
		} else {
			birthDate, err := time.Parse("2006-01-02", *body.BirthDate)
			if err != nil {
				util.ResponseError(ctx, apperror.NewValidation("birth_date must use the YYYY-MM-DD format"))
				return
			}
			profile.BirthDate = &birthDate
		}
	}
	if body.Bio != nil {
		profile.Bio = *body.Bio
	}
	if body.Avatar != nil {
		profile.Avatar = *body.Avatar
	}

	if body.Country != nil {
		if *body.Country == "" {
			profile.CountryID = nil
			profile.Country = nil
		} else {
			country, err := uc.app.Repository.Country.GetBySlug(ctx, nil, *body.Country)
			if err != nil {
				if apperror.IsNotFound(err) {
					err = apperror.NewNotFound("country %q not found", *body.Country)
				}
				util.ResponseError(ctx, err)
				return
			}
			profile.CountryID = &country.ID
			profile.Country = country
		}
	}

	if body.City != nil {
		if *body.City == "" {
			profile.CityID = nil
			profile.City = nil
		} else {
			city, err := uc.app.Repository.City.GetBySlug(ctx, nil, *body.City)
			if err != nil {
				if apperror.IsNotFound(err) {
					err = apperror.NewNotFound("city %q not found", *body.City)
				}
				util.ResponseError(ctx, err)
				return
			}
			profile.CityID = &city.ID
			profile.City = city
		}
	}

	if body.Department != nil {
		if *body.Department == "" {
			profile.DepartmentID = nil
			profile.Department = nil
		} else {
			department, err := uc.app.Repository.Department.GetBySlug(ctx, nil, *body.Department)
			if err != nil {
				if apperror.IsNotFound(err) {
					err = apperror.NewNotFound("department %q not found", *body.Department)
				}
				util.ResponseError(ctx, err)
				return
			}
			profile.DepartmentID = &department.ID
			profile.Department = department
		}
	}

	if body.Position != nil {
		if *body.Position == "" {
			profile.PositionID = nil
			profile.Position = nil
		} else {
			position, err := uc.app.Repository.Position.GetBySlug(ctx, nil, *body.Position)
			if err != nil {
				if apperror.IsNotFound(err) {
					err = apperror.NewNotFound("position %q not found", *body.Position)
				}
				util.ResponseError(ctx, err)
				return
			}
			profile.PositionID = &position.ID
			profile.Position = position
		}
	}

	if err := uc.app.Repository.Profile.Update(ctx, nil, profile); err != nil {
		uc.app.Logger.Error(err)
		util.ResponseError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, toProfileResponse(profile))
}
