package route

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	appcontext "github.com/sokha-dev/showfolio/internal/app_context"
	"github.com/sokha-dev/showfolio/internal/auth"
	"github.com/sokha-dev/showfolio/internal/config"
	"github.com/sokha-dev/showfolio/internal/controller"
	"github.com/sokha-dev/showfolio/internal/database"
	"github.com/sokha-dev/showfolio/internal/middleware"
	ratelimiter "github.com/sokha-dev/showfolio/internal/rate_limiter"
	"github.com/sokha-dev/showfolio/internal/repository"
	"github.com/sokha-dev/showfolio/internal/util"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newProjectRouter(t *testing.T) (*gin.Engine, *appcontext.Application) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	logger := util.NewLogger()
	cfg := config.Config{
		ENV:  "test",
		Auth: config.AuthConfig{JWT_SECRET: "test-secret"},
	}
	app := &appcontext.Application{
		Config:     &cfg,
		Logger:     logger,
		Repository: repository.NewRepository(db, logger, nil),
		JWTService: auth.NewJwt(cfg.Auth, logger),
	}

	m := middleware.NewMiddleware(app, ratelimiter.NewRateLimiter(cfg.RateLimiter, logger))
	c := controller.NewController(app)

	r := gin.New()
	rApi := r.Group("/api")
	Projects(rApi, c.Project, c.Rating, c.Like, c.Comment, m)

	return r, app
}

// Every project endpoint sits behind the auth middleware, including the
// two reads. Listing without a bearer token must be rejected.
func TestProjectRoutesRequireAuth(t *testing.T) {
	router, _ := newProjectRouter(t)

	endpoints := []struct {
		method string
		url    string
	}{
		{http.MethodGet, "/api/projects"},
		{http.MethodGet, "/api/projects/some-id"},
		{http.MethodPost, "/api/projects"},
		{http.MethodPut, "/api/projects/some-id"},
		{http.MethodDelete, "/api/projects/some-id"},
	}

	for _, e := range endpoints {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(e.method, e.url, nil)
		router.ServeHTTP(w, req)
		require.Equalf(t, http.StatusUnauthorized, w.Code, "%s %s without a token", e.method, e.url)
	}
}

func TestProjectListAcceptsValidAccessToken(t *testing.T) {
	router, app := newProjectRouter(t)

	_, accessToken, err := app.JWTService.GenerateRefreshAndAccessToken(auth.JWTPayload{
		ID:       "id1",
		Username: "sokha",
		Email:    "sokha@example.com",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("Authorization", "Bearer "+*accessToken)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

// Engagement reads stay open so visitors can see ratings, likes and
// comments without logging in.
func TestEngagementReadsStayOpen(t *testing.T) {
	router, _ := newProjectRouter(t)

	for _, url := range []string{
		"/api/projects/some-id/ratings",
		"/api/projects/some-id/likes",
		"/api/projects/some-id/comments",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, url, nil)
		router.ServeHTTP(w, req)
		require.NotEqualf(t, http.StatusUnauthorized, w.Code, "GET %s should not demand a token", url)
	}
}
