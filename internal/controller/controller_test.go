package controller

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	appcontext "github.com/sokha-dev/showfolio/internal/app_context"
	"github.com/sokha-dev/showfolio/internal/auth"
	"github.com/sokha-dev/showfolio/internal/config"
	"github.com/sokha-dev/showfolio/internal/database"
	"github.com/sokha-dev/showfolio/internal/repository"
	"github.com/sokha-dev/showfolio/internal/util"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var registerValidatorsOnce sync.Once

func registerTestValidators(t *testing.T) {
	t.Helper()

	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			t.Fatal("failed to access the binding validator engine")
		}
		if err := v.RegisterValidation("strNotEmpty", util.StrNotEmpty); err != nil {
			t.Fatalf("failed to register strNotEmpty: %v", err)
		}
		if err := v.RegisterValidation("cmin", util.CustomMin); err != nil {
			t.Fatalf("failed to register cmin: %v", err)
		}
		if err := v.RegisterValidation("cmax", util.CustomMax); err != nil {
			t.Fatalf("failed to register cmax: %v", err)
		}
	})
}

// newTestApp wires a full Application over an in-memory database so the
// handlers run against the real repository layer.
func newTestApp(t *testing.T) *appcontext.Application {
	t.Helper()

	gin.SetMode(gin.TestMode)
	registerTestValidators(t)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	logger := util.NewLogger()
	cfg := config.Config{
		ENV: "test",
		Minio: config.MinioConfig{
			BUCKET: "test-bucket",
		},
		Auth: config.AuthConfig{JWT_SECRET: "test-secret"},
	}

	return &appcontext.Application{
		Config:     &cfg,
		Logger:     logger,
		Repository: repository.NewRepository(db, logger, nil),
		JWTService: auth.NewJwt(cfg.Auth, logger),
	}
}

// asUser injects the authenticated identity the way the auth middleware
// does after verifying a token.
func asUser(payload auth.JWTPayload) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set("user", payload)
		ctx.Next()
	}
}

func performJSON(t *testing.T, router *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return envelope.Data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return envelope.Error
}
