package controller

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	appcontext "github.com/sokha-dev/showfolio/internal/app_context"
	"github.com/sokha-dev/showfolio/internal/model"
	"github.com/sokha-dev/showfolio/internal/util"
	"github.com/stretchr/testify/suite"
)

type ProjectControllerTestSuite struct {
	suite.Suite
	app    *appcontext.Application
	router *gin.Engine
}

func (suite *ProjectControllerTestSuite) SetupTest() {
	suite.app = newTestApp(suite.T())
	c := NewController(suite.app)

	suite.router = gin.New()
	api := suite.router.Group("/api")
	api.GET("/projects", c.Project.List)
	api.GET("/projects/:projectId", c.Project.GetById)
	api.POST("/projects", c.Project.Create)
	api.PUT("/projects/:projectId", c.Project.Update)
	api.DELETE("/projects/:projectId", c.Project.Delete)
}

func (suite *ProjectControllerTestSuite) createTag(name string) {
	tag := model.Tag{}
	tag.SetNameSlug(name, util.Slugify(name))
	_, err := suite.app.Repository.Tag.Create(context.Background(), nil, &tag)
	suite.Require().NoError(err)
}

func (suite *ProjectControllerTestSuite) createCategory(name string) {
	category := model.Category{}
	category.SetNameSlug(name, util.Slugify(name))
	_, err := suite.app.Repository.Category.Create(context.Background(), nil, &category)
	suite.Require().NoError(err)
}

func (suite *ProjectControllerTestSuite) registerUser(username string) {
	user := model.User{Username: username, Email: username + "@example.com", Password: "hashedpassword"}
	_, err := suite.app.Repository.User.Register(context.Background(), nil, &user)
	suite.Require().NoError(err)
}

func (suite *ProjectControllerTestSuite) TestCreateAppliesDefaults() {
	w := performJSON(suite.T(), suite.router, http.MethodPost, "/api/projects", gin.H{
		"title": "Weather Station",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	data := decodeData(suite.T(), w)
	suite.Equal("Weather Station", data["title"])
	suite.Equal("No description", data["description"])
	suite.Equal(false, data["is_active"])
	suite.Nil(data["category"])
	suite.Nil(data["status"])
	suite.Equal([]any{}, data["tags"])
	suite.Equal([]any{}, data["authors"])
}

func (suite *ProjectControllerTestSuite) TestCreateRejectsOversizedTitle() {
	w := performJSON(suite.T(), suite.router, http.MethodPost, "/api/projects", gin.H{
		"title": strings.Repeat("a", 151),
	})
	suite.Require().Equal(http.StatusBadRequest, w.Code)
	suite.NotEmpty(decodeError(suite.T(), w))
}

// Title length is counted in runes, so a multibyte title at the limit passes.
func (suite *ProjectControllerTestSuite) TestCreateAcceptsMultibyteTitleAtLimit() {
	w := performJSON(suite.T(), suite.router, http.MethodPost, "/api/projects", gin.H{
		"title": strings.Repeat("é", 150),
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	data := decodeData(suite.T(), w)
	suite.Equal(strings.Repeat("é", 150), data["title"])
}

func (suite *ProjectControllerTestSuite) TestCreateRejectsOversizedMultibyteTitle() {
	w := performJSON(suite.T(), suite.router, http.MethodPost, "/api/projects", gin.H{
		"title": strings.Repeat("é", 151),
	})
	suite.Require().Equal(http.StatusBadRequest, w.Code)
	suite.NotEmpty(decodeError(suite.T(), w))
}

func (suite *ProjectControllerTestSuite) TestCreateRejectsBlankTitle() {
	w := performJSON(suite.T(), suite.router, http.MethodPost, "/api/projects", gin.H{
		"title": "   ",
	})
	suite.Require().Equal(http.StatusBadRequest, w.Code)
}

func (suite *ProjectControllerTestSuite) TestCreateAcceptsMaxLengthTitle() {
	w := performJSON(suite.T(), suite.router, http.MethodPost, "/api/projects", gin.H{
		"title": strings.Repeat("a", 150),
	})
	suite.Require().Equal(http.StatusCreated, w.Code)
}

func (suite *ProjectControllerTestSuite) TestCreateDropsUnknownTags() {
	suite.createTag("Go")

	w := performJSON(suite.T(), suite.router, http.MethodPost, "/api/projects", gin.H{
		"title": "Tagged",
		"tags":  "go,rust,zig",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	data := decodeData(suite.T(), w)
	suite.Equal([]any{"Go"}, data["tags"])
}

func (suite *ProjectControllerTestSuite) TestCreateUnknownCategoryPersistsNothing() {
	w := performJSON(suite.T(), suite.router, http.MethodPost, "/api/projects", gin.H{
		"title":    "Orphan",
		"category": "missing",
	})
	suite.Require().Equal(http.StatusBadRequest, w.Code)

	var projectCount int64
	suite.app.Repository.DB.Model(&model.Project{}).Count(&projectCount)
	suite.Equal(int64(0), projectCount)
}

func (suite *ProjectControllerTestSuite) TestCreateResolvesAuthorsByUsername() {
	suite.registerUser("alice")
	suite.registerUser("bob")

	w := performJSON(suite.T(), suite.router, http.MethodPost, "/api/projects", gin.H{
		"title":   "Shared Work",
		"authors": "alice,bob,ghost",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	data := decodeData(suite.T(), w)
	suite.ElementsMatch([]any{"alice", "bob"}, data["authors"])
}

func (suite *ProjectControllerTestSuite) TestUpdateOnlyChangesSuppliedFields() {
	suite.createCategory("Web")
	created := performJSON(suite.T(), suite.router, http.MethodPost, "/api/projects", gin.H{
		"title":       "Original",
		"description": "Keep me",
		"category":    "web",
	})
	suite.Require().Equal(http.StatusCreated, created.Code)
	projectId := decodeData(suite.T(), created)["id"].(string)

	w := performJSON(suite.T(), suite.router, http.MethodPut, "/api/projects/"+projectId, gin.H{
		"title": "Renamed",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	data := decodeData(suite.T(), w)
	suite.Equal("Renamed", data["title"])
	suite.Equal("Keep me", data["description"])
	suite.Equal("Web", data["category"])
}

func (suite *ProjectControllerTestSuite) TestUpdateReplacesTagSet() {
	suite.createTag("Go")
	suite.createTag("Gin")
	suite.createTag("Gorm")

	created := performJSON(suite.T(), suite.router, http.MethodPost, "/api/projects", gin.H{
		"title": "Tagged",
		"tags":  "go,gin",
	})
	projectId := decodeData(suite.T(), created)["id"].(string)

	w := performJSON(suite.T(), suite.router, http.MethodPut, "/api/projects/"+projectId, gin.H{
		"tags": "gorm",
	})
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal([]any{"Gorm"}, decodeData(suite.T(), w)["tags"])
}

func (suite *ProjectControllerTestSuite) TestUpdateClearsCategoryWithEmptySlug() {
	suite.createCategory("Web")
	created := performJSON(suite.T(), suite.router, http.MethodPost, "/api/projects", gin.H{
		"title":    "Categorized",
		"category": "web",
	})
	projectId := decodeData(suite.T(), created)["id"].(string)

	w := performJSON(suite.T(), suite.router, http.MethodPut, "/api/projects/"+projectId, gin.H{
		"category": "",
	})
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Nil(decodeData(suite.T(), w)["category"])
}

func (suite *ProjectControllerTestSuite) TestDeleteSoftDeletes() {
	created := performJSON(suite.T(), suite.router, http.MethodPost, "/api/projects", gin.H{
		"title":    "Doomed",
		"isActive": true,
	})
	projectId := decodeData(suite.T(), created)["id"].(string)

	activate := performJSON(suite.T(), suite.router, http.MethodPut, "/api/projects/"+projectId, gin.H{
		"is_active": true,
	})
	suite.Require().Equal(http.StatusOK, activate.Code)

	w := performJSON(suite.T(), suite.router, http.MethodDelete, "/api/projects/"+projectId, nil)
	suite.Require().Equal(http.StatusNoContent, w.Code)

	list := performJSON(suite.T(), suite.router, http.MethodGet, "/api/projects", nil)
	suite.Require().Equal(http.StatusOK, list.Code)
	suite.NotContains(list.Body.String(), "Doomed")

	get := performJSON(suite.T(), suite.router, http.MethodGet, "/api/projects/"+projectId, nil)
	suite.Require().Equal(http.StatusOK, get.Code)
	suite.Equal(false, decodeData(suite.T(), get)["is_active"])
}

func (suite *ProjectControllerTestSuite) TestGetUnknownProject() {
	w := performJSON(suite.T(), suite.router, http.MethodGet, "/api/projects/missing-id", nil)
	suite.Require().Equal(http.StatusBadRequest, w.Code)
}

func TestProjectControllerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectControllerTestSuite))
}
