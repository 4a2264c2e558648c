package route

import (
	"github.com/gin-gonic/gin"
	"github.com/sokha-dev/showfolio/internal/controller"
)

func Auth(r *gin.RouterGroup, authController *controller.AuthController) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/jwt/refresh", authController.RefreshAccessToken)
		auth.POST("/jwt/access/verify", authController.VerifyJwtAccessToken)
	}
}
