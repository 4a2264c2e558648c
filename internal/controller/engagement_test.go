package controller

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	appcontext "github.com/sokha-dev/showfolio/internal/app_context"
	"github.com/sokha-dev/showfolio/internal/auth"
	"github.com/sokha-dev/showfolio/internal/model"
	"github.com/stretchr/testify/suite"
)

type EngagementControllerTestSuite struct {
	suite.Suite
	app       *appcontext.Application
	router    *gin.Engine
	projectId string
}

func (suite *EngagementControllerTestSuite) SetupTest() {
	suite.app = newTestApp(suite.T())
	c := NewController(suite.app)

	user := model.User{Username: "fan", Email: "fan@example.com", Password: "hashedpassword"}
	created, err := suite.app.Repository.User.Register(context.Background(), nil, &user)
	suite.Require().NoError(err)

	project := model.Project{Title: "Popular Project", IsActive: true}
	createdProject, err := suite.app.Repository.Project.Create(context.Background(), nil, &project)
	suite.Require().NoError(err)
	suite.projectId = createdProject.ID

	payload := auth.JWTPayload{ID: created.ID, Username: created.Username, Email: created.Email}

	suite.router = gin.New()
	api := suite.router.Group("/api")
	api.GET("/projects/:projectId/ratings", c.Rating.ListByProject)
	api.GET("/projects/:projectId/likes", c.Like.CountsByProject)
	api.GET("/projects/:projectId/comments", c.Comment.ListByProject)

	protected := api.Group("", asUser(payload))
	protected.POST("/projects/:projectId/ratings", c.Rating.Create)
	protected.POST("/projects/:projectId/likes", c.Like.Upsert)
	protected.POST("/projects/:projectId/comments", c.Comment.Create)
}

func (suite *EngagementControllerTestSuite) TestRateProject() {
	w := performJSON(suite.T(), suite.router, http.MethodPost, "/api/projects/"+suite.projectId+"/ratings", gin.H{
		"value": 4,
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	data := decodeData(suite.T(), w)
	suite.Equal("fan", data["user"])
	suite.Equal(float64(4), data["value"])

	list := performJSON(suite.T(), suite.router, http.MethodGet, "/api/projects/"+suite.projectId+"/ratings", nil)
	suite.Require().Equal(http.StatusOK, list.Code)
	suite.Equal(float64(4), decodeData(suite.T(), list)["average"])
}

func (suite *EngagementControllerTestSuite) TestRatingOutOfBounds() {
	w := performJSON(suite.T(), suite.router, http.MethodPost, "/api/projects/"+suite.projectId+"/ratings", gin.H{
		"value": 6,
	})
	suite.Require().Equal(http.StatusBadRequest, w.Code)
}

func (suite *EngagementControllerTestSuite) TestRatingUnknownProject() {
	w := performJSON(suite.T(), suite.router, http.MethodPost, "/api/projects/missing-id/ratings", gin.H{
		"value": 3,
	})
	suite.Require().Equal(http.StatusBadRequest, w.Code)
}

func (suite *EngagementControllerTestSuite) TestLikeThenDislike() {
	like := performJSON(suite.T(), suite.router, http.MethodPost, "/api/projects/"+suite.projectId+"/likes", gin.H{
		"is_like": true,
	})
	suite.Require().Equal(http.StatusOK, like.Code)

	dislike := performJSON(suite.T(), suite.router, http.MethodPost, "/api/projects/"+suite.projectId+"/likes", gin.H{
		"is_like": false,
	})
	suite.Require().Equal(http.StatusOK, dislike.Code)

	counts := performJSON(suite.T(), suite.router, http.MethodGet, "/api/projects/"+suite.projectId+"/likes", nil)
	suite.Require().Equal(http.StatusOK, counts.Code)

	data := decodeData(suite.T(), counts)
	suite.Equal(float64(0), data["likes"])
	suite.Equal(float64(1), data["dislikes"])
}

func (suite *EngagementControllerTestSuite) TestCommentOnProject() {
	w := performJSON(suite.T(), suite.router, http.MethodPost, "/api/projects/"+suite.projectId+"/comments", gin.H{
		"text": "Great work",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	data := decodeData(suite.T(), w)
	suite.Equal("Great work", data["text"])
	suite.Equal("fan", data["user"])

	list := performJSON(suite.T(), suite.router, http.MethodGet, "/api/projects/"+suite.projectId+"/comments", nil)
	suite.Require().Equal(http.StatusOK, list.Code)
	suite.Equal(float64(1), decodeData(suite.T(), list)["total"])
}

func (suite *EngagementControllerTestSuite) TestCommentRequiresText() {
	w := performJSON(suite.T(), suite.router, http.MethodPost, "/api/projects/"+suite.projectId+"/comments", gin.H{
		"text": "  ",
	})
	suite.Require().Equal(http.StatusBadRequest, w.Code)
}

func TestEngagementControllerTestSuite(t *testing.T) {
	suite.Run(t, new(EngagementControllerTestSuite))
}
