package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sokha-dev/showfolio/internal/apperror"
	"github.com/sokha-dev/showfolio/internal/auth"
	"github.com/sokha-dev/showfolio/internal/constant"
	"github.com/sokha-dev/showfolio/internal/model"
	"github.com/sokha-dev/showfolio/internal/util"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	*baseController
}

func jwtPayloadOf(user *model.User) auth.JWTPayload {
	return auth.JWTPayload{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

type registerRequest struct {
	Username  string `json:"username" form:"username" binding:"required,strNotEmpty"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Password  string `json:"password" form:"password" binding:"required,cmin=8"`
	FirstName string `json:"first_name" form:"firstName"`
	LastName  string `json:"last_name" form:"lastName"`
}

// Register creates the account together with its empty profile, then signs
// the caller in.
func (ac AuthController) Register(ctx *gin.Context) {
	var body registerRequest
	if err := ctx.ShouldBind(&body); err != nil {
		ac.app.Logger.Error(err)
		util.ResponseError(ctx, apperror.NewValidation("%s", util.GenerateErrorMessage(err)))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, err)
		return
	}

	user := model.User{
		Username:  body.Username,
		Email:     body.Email,
		Password:  string(hashed),
		FirstName: body.FirstName,
		LastName:  body.LastName,
	}
	created, err := ac.app.Repository.User.Register(ctx, nil, &user)
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseError(ctx, err)
		return
	}

	refreshToken, accessToken, err := ac.app.JWTService.GenerateRefreshAndAccessToken(jwtPayloadOf(created))
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, err)
		return
	}

	util.ResponseCreated(ctx, gin.H{
		"user":         toUserResponse(created),
		"refreshToken": refreshToken,
		"accessToken":  accessToken,
	})
}

type loginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

func (ac AuthController) Login(ctx *gin.Context) {
	var body loginRequest
	if err := ctx.ShouldBind(&body); err != nil {
		ac.app.Logger.Error(err)
		util.ResponseError(ctx, apperror.NewValidation("%s", util.GenerateErrorMessage(err)))
		return
	}

	user, err := ac.app.Repository.User.GetByUsername(ctx, nil, body.Username)
	if err != nil {
		// Unknown username and wrong password answer the same way.
		util.ResponseError(ctx, apperror.NewAuthorization("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		util.ResponseError(ctx, apperror.NewAuthorization("invalid credentials"))
		return
	}

	refreshToken, accessToken, err := ac.app.JWTService.GenerateRefreshAndAccessToken(jwtPayloadOf(user))
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user":         toUserResponse(user),
		"refreshToken": refreshToken,
		"accessToken":  accessToken,
	})
}

// RefreshAccessToken exchanges a valid refresh token for a fresh pair.
func (ac AuthController) RefreshAccessToken(ctx *gin.Context) {
	token, err := util.ReadBearerToken(ctx)
	if err != nil {
		util.ResponseError(ctx, apperror.NewAuthorization("%s", err.Error()))
		return
	}

	jwtClaims, err := ac.app.JWTService.VerifyJwtToken(token)
	if err != nil || jwtClaims == nil {
		util.ResponseError(ctx, apperror.NewAuthorization("invalid refresh token"))
		return
	}

	if jwtClaims.Type != constant.JWT_TYPE_REFRESH {
		util.ResponseError(ctx, apperror.NewAuthorization("invalid jwt token type"))
		return
	}

	// The account may have been removed since the token was issued.
	user, err := ac.app.Repository.User.GetById(ctx, nil, jwtClaims.User.ID)
	if err != nil {
		util.ResponseError(ctx, apperror.NewAuthorization("invalid credentials"))
		return
	}

	refreshToken, accessToken, err := ac.app.JWTService.GenerateRefreshAndAccessToken(jwtPayloadOf(user))
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"refreshToken": refreshToken,
		"accessToken":  accessToken,
	})
}

func (ac AuthController) VerifyJwtAccessToken(ctx *gin.Context) {
	token, err := util.ReadBearerToken(ctx)
	if err != nil {
		util.ResponseError(ctx, apperror.NewAuthorization("%s", err.Error()))
		return
	}

	jwtClaims, err := ac.app.JWTService.VerifyJwtToken(token)
	if err != nil || jwtClaims == nil || jwtClaims.Type != constant.JWT_TYPE_ACCESS {
		util.ResponseSuccess(ctx, gin.H{"tokenValid": false})
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"tokenValid": true,
		"payload":    jwtClaims.User,
	})
}
