package appcontext

import (
	"github.com/minio/minio-go/v7"
	"github.com/sokha-dev/showfolio/internal/auth"
	"github.com/sokha-dev/showfolio/internal/config"
	"github.com/sokha-dev/showfolio/internal/repository"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// JWTService manages JWT operations for authentication such as generate, verify token.
	JWTService auth.JWTInterface

	S3 *minio.Client
}
