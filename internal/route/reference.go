package route

import (
	"github.com/gin-gonic/gin"
	"github.com/sokha-dev/showfolio/internal/controller"
	"github.com/sokha-dev/showfolio/internal/middleware"
	"github.com/sokha-dev/showfolio/internal/model"
)

func mountReference[T any, PT interface {
	*T
	model.ReferenceEntity
}](r *gin.RouterGroup, path string, rc *controller.ReferenceController[T, PT], middleware *middleware.Middleware) {
	open := r.Group(path)
	{
		open.GET("", rc.List)
		open.GET("/:slug", rc.GetBySlug)
	}

	protected := r.Group(path)
	protected.Use(middleware.AuthMiddleware)
	{
		protected.POST("", rc.Create)
		protected.PUT("/:slug", rc.Update)
		protected.DELETE("/:slug", rc.Delete)
	}
}

// References mounts the lookup entity endpoints. Each behaves the same:
// slugs address rows, renames recompute the slug.
func References(r *gin.RouterGroup, c *controller.Controller, middleware *middleware.Middleware) {
	mountReference(r, "/categories", c.Category, middleware)
	mountReference(r, "/tags", c.Tag, middleware)
	mountReference(r, "/statuses", c.Status, middleware)
	mountReference(r, "/actions", c.Action, middleware)
}
