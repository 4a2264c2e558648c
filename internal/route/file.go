package route

import (
	"github.com/gin-gonic/gin"
	"github.com/sokha-dev/showfolio/internal/controller"
	"github.com/sokha-dev/showfolio/internal/middleware"
)

func Uploads(r *gin.RouterGroup, uploadController *controller.UploadController, middleware *middleware.Middleware) {
	uploads := r.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware)
	{
		uploads.POST("/images", uploadController.UploadImage)
		uploads.POST("/files", uploadController.UploadFile)
	}
}
