package route

import (
	"github.com/gin-gonic/gin"
	"github.com/sokha-dev/showfolio/internal/controller"
	"github.com/sokha-dev/showfolio/internal/middleware"
)

// Projects mounts the project aggregate and its nested engagement
// endpoints. Project routes require an access token, engagement reads
// stay open.
func Projects(r *gin.RouterGroup, pc *controller.ProjectController, rc *controller.RatingController, lc *controller.LikeController, cc *controller.CommentController, middleware *middleware.Middleware) {
	projects := r.Group("/projects")
	{
		projects.GET("/:projectId/ratings", rc.ListByProject)
		projects.GET("/:projectId/likes", lc.CountsByProject)
		projects.GET("/:projectId/comments", cc.ListByProject)
	}

	protected := r.Group("/projects")
	protected.Use(middleware.AuthMiddleware)
	{
		protected.GET("", pc.List)
		protected.GET("/:projectId", pc.GetById)
		protected.POST("", pc.Create)
		protected.PUT("/:projectId", pc.Update)
		protected.DELETE("/:projectId", pc.Delete)
		protected.POST("/:projectId/ratings", rc.Create)
		protected.POST("/:projectId/likes", lc.Upsert)
		protected.POST("/:projectId/comments", cc.Create)
	}
}
