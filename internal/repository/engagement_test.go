package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/sokha-dev/showfolio/internal/apperror"
	"github.com/sokha-dev/showfolio/internal/model"
	"github.com/stretchr/testify/suite"
)

type EngagementRepositoryTestSuite struct {
	suite.Suite
	repo    *Repository
	ctx     context.Context
	user    *model.User
	project *model.Project
}

func (suite *EngagementRepositoryTestSuite) SetupTest() {
	suite.repo = newTestRepository(suite.T())
	suite.ctx = context.Background()

	user := model.User{Username: "rater", Email: "rater@example.com", Password: "hashedpassword"}
	created, err := suite.repo.User.Register(suite.ctx, nil, &user)
	suite.Require().NoError(err)
	suite.user = created

	project := model.Project{Title: "Rated Project", IsActive: true}
	createdProject, err := suite.repo.Project.Create(suite.ctx, nil, &project)
	suite.Require().NoError(err)
	suite.project = createdProject
}

func (suite *EngagementRepositoryTestSuite) TestRatingBounds() {
	for _, value := range []int{0, 6, -1} {
		rating := model.Rating{UserID: suite.user.ID, ProjectID: suite.project.ID, Value: value}
		_, err := suite.repo.Rating.Create(suite.ctx, nil, &rating)
		suite.Require().Error(err)

		var ve *apperror.ValidationError
		suite.True(errors.As(err, &ve))
	}

	rating := model.Rating{UserID: suite.user.ID, ProjectID: suite.project.ID, Value: 5}
	_, err := suite.repo.Rating.Create(suite.ctx, nil, &rating)
	suite.Require().NoError(err)
}

func (suite *EngagementRepositoryTestSuite) TestRatingAverage() {
	average, err := suite.repo.Rating.Average(suite.ctx, nil, suite.project.ID)
	suite.Require().NoError(err)
	suite.Zero(average)

	for _, value := range []int{2, 4} {
		rating := model.Rating{UserID: suite.user.ID, ProjectID: suite.project.ID, Value: value}
		_, err := suite.repo.Rating.Create(suite.ctx, nil, &rating)
		suite.Require().NoError(err)
	}

	average, err = suite.repo.Rating.Average(suite.ctx, nil, suite.project.ID)
	suite.Require().NoError(err)
	suite.InDelta(3.0, average, 0.001)
}

func (suite *EngagementRepositoryTestSuite) TestLikeUpsertFlipsInPlace() {
	like := model.Like{UserID: suite.user.ID, ProjectID: suite.project.ID, IsLike: true}
	_, err := suite.repo.Like.Upsert(suite.ctx, nil, &like)
	suite.Require().NoError(err)

	dislike := model.Like{UserID: suite.user.ID, ProjectID: suite.project.ID, IsLike: false}
	_, err = suite.repo.Like.Upsert(suite.ctx, nil, &dislike)
	suite.Require().NoError(err)

	var rowCount int64
	suite.repo.DB.Model(&model.Like{}).Count(&rowCount)
	suite.Equal(int64(1), rowCount)

	counts, err := suite.repo.Like.CountsByProject(suite.ctx, nil, suite.project.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(0), counts.Likes)
	suite.Equal(int64(1), counts.Dislikes)
}

func (suite *EngagementRepositoryTestSuite) TestCommentPagination() {
	for i := 0; i < 3; i++ {
		comment := model.Comment{UserID: suite.user.ID, ProjectID: suite.project.ID, Text: "nice work"}
		_, err := suite.repo.Comment.Create(suite.ctx, nil, &comment)
		suite.Require().NoError(err)
	}

	comments, total, err := suite.repo.Comment.ListByProject(suite.ctx, nil, suite.project.ID, 1, 2)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(comments, 2)

	comments, total, err = suite.repo.Comment.ListByProject(suite.ctx, nil, suite.project.ID, 2, 2)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(comments, 1)
}

func TestEngagementRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EngagementRepositoryTestSuite))
}
