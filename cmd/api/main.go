package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	appcontext "github.com/sokha-dev/showfolio/internal/app_context"
	"github.com/sokha-dev/showfolio/internal/auth"
	"github.com/sokha-dev/showfolio/internal/config"
	"github.com/sokha-dev/showfolio/internal/controller"
	"github.com/sokha-dev/showfolio/internal/database"
	"github.com/sokha-dev/showfolio/internal/env"
	filestorage "github.com/sokha-dev/showfolio/internal/file_storage"
	"github.com/sokha-dev/showfolio/internal/middleware"
	ratelimiter "github.com/sokha-dev/showfolio/internal/rate_limiter"
	"github.com/sokha-dev/showfolio/internal/repository"
	"github.com/sokha-dev/showfolio/internal/route"
	"github.com/sokha-dev/showfolio/internal/util"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	logger.Debugf("Configuration: %+v \n", cfg)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	s3, err := filestorage.NewMinioClient(&cfg.Minio)
	if err != nil {
		logger.Error("Error connecting to minio")
		logger.Panic(err)
	}

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("strNotEmpty", util.StrNotEmpty); err != nil {
			return
		}
		if err = v.RegisterValidation("cmin", util.CustomMin); err != nil {
			return
		}
		if err = v.RegisterValidation("cmax", util.CustomMax); err != nil {
			return
		}
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	jwtService := auth.NewJwt(cfg.Auth, logger)
	repo := repository.NewRepository(db, logger, s3)
	app := appcontext.Application{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		JWTService: jwtService,
		S3:         s3,
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.RateLimiterMiddleware)

	r.LoadHTMLGlob("web/templates/*.html")

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Home)

	rApi := r.Group("/api")
	rApi.Any("", _controller.Index.Echo)
	rApi.Any("/", _controller.Index.Echo)

	route.Projects(rApi, _controller.Project, _controller.Rating, _controller.Like, _controller.Comment, _middleware)
	route.References(rApi, _controller, _middleware)
	route.Auth(rApi, _controller.Auth)
	route.Me(rApi, _controller.User, _middleware)
	route.Uploads(rApi, _controller.Upload, _middleware)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panic("Error running server: %v \n", err)
	}
}
