package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type IndexController struct {
	*baseController
}

// Home renders the landing page.
func (ic IndexController) Home(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "index.html", gin.H{
		"title": "Showfolio",
	})
}

// Echo answers every method on the api root with a small liveness payload.
func (ic IndexController) Echo(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": "OK",
		"method":  ctx.Request.Method,
	})
}
