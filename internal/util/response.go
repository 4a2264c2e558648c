package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sokha-dev/showfolio/internal/apperror"
)

// Every endpoint answers with one of two envelopes: {"data": ...} on
// success or {"error": "..."} on failure.

func ResponseSuccess(ctx *gin.Context, data any) {
	if data == nil {
		data = gin.H{}
	}

	ctx.JSON(http.StatusOK, gin.H{"data": data})
	ctx.Abort()
}

func ResponseCreated(ctx *gin.Context, data any) {
	if data == nil {
		data = gin.H{}
	}

	ctx.JSON(http.StatusCreated, gin.H{"data": data})
	ctx.Abort()
}

func ResponseNoContent(ctx *gin.Context) {
	ctx.Status(http.StatusNoContent)
	ctx.Abort()
}

func ResponseFailed(ctx *gin.Context, code int, err error) {
	message := "request unsuccessful"
	if err != nil {
		message = GenerateErrorMessage(err)
	}

	ctx.JSON(code, gin.H{"error": message})
	ctx.Abort()
}

// ResponseError derives the status code from the error taxonomy.
func ResponseError(ctx *gin.Context, err error) {
	ResponseFailed(ctx, apperror.StatusCode(err), err)
}
