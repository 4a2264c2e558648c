package route

import (
	"github.com/gin-gonic/gin"
	"github.com/sokha-dev/showfolio/internal/controller"
	"github.com/sokha-dev/showfolio/internal/middleware"
)

func Me(r *gin.RouterGroup, userController *controller.UserController, middleware *middleware.Middleware) {
	me := r.Group("/me")
	me.Use(middleware.AuthMiddleware)
	{
		me.GET("", userController.GetMe)
		me.PUT("/profile", userController.UpdateProfile)
	}
}
