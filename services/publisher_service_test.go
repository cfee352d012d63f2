package services

import (
	"testing"

	"newshub-cms/models"
	"newshub-cms/repositories"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type PublisherServiceTestSuite struct {
	suite.Suite
	db            *gorm.DB
	userRepo      repositories.UserRepository
	publisherRepo repositories.PublisherRepository
	service       PublisherService
}

func (suite *PublisherServiceTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())
	suite.userRepo = repositories.NewUserRepository(suite.db)
	suite.publisherRepo = repositories.NewPublisherRepository(suite.db)
	suite.service = NewPublisherService(suite.publisherRepo, suite.userRepo)
}

func (suite *PublisherServiceTestSuite) createUser(username string, role models.UserRole) *models.User {
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Role:     role,
	}
	suite.Require().NoError(suite.userRepo.Create(user))
	return user
}

func (suite *PublisherServiceTestSuite) TestBecomePublisherAsReaderFails() {
	reader := suite.createUser("rita", models.RoleReader)

	_, err := suite.service.BecomePublisher(reader, models.BecomePublisherRequest{Name: "Daily Rita"})
	suite.IsType(models.ErrorPermission{}, err)

	var count int64
	suite.db.Model(&models.Publisher{}).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *PublisherServiceTestSuite) TestBecomePublisherSelfAssignsEditor() {
	editor := suite.createUser("ed", models.RoleEditor)

	publisher, err := suite.service.BecomePublisher(editor, models.BecomePublisherRequest{Name: "The Daily"})
	suite.Require().NoError(err)

	suite.Equal("The Daily", publisher.Name)
	suite.Equal(editor.Email, publisher.Email)
	suite.Require().Len(publisher.Editors, 1)
	suite.Equal(editor.ID, publisher.Editors[0].ID)
	suite.Empty(publisher.Journalists)
}

func (suite *PublisherServiceTestSuite) TestBecomePublisherSelfAssignsJournalist() {
	journalist := suite.createUser("jo", models.RoleJournalist)

	publisher, err := suite.service.BecomePublisher(journalist, models.BecomePublisherRequest{Name: "Jo's Wire"})
	suite.Require().NoError(err)

	suite.Require().Len(publisher.Journalists, 1)
	suite.Equal(journalist.ID, publisher.Journalists[0].ID)
	suite.Empty(publisher.Editors)
}

func (suite *PublisherServiceTestSuite) TestAddEditorRoleMismatchIsNoOp() {
	editor := suite.createUser("ed", models.RoleEditor)
	journalist := suite.createUser("jo", models.RoleJournalist)

	publisher, err := suite.service.BecomePublisher(editor, models.BecomePublisherRequest{Name: "The Daily"})
	suite.Require().NoError(err)

	// A journalist cannot land in the editor slot; no error either.
	suite.NoError(suite.service.AddEditor(publisher.ID, journalist.ID))

	reloaded, err := suite.service.GetPublisher(publisher.ID)
	suite.Require().NoError(err)
	suite.Len(reloaded.Editors, 1)
}

func (suite *PublisherServiceTestSuite) TestAddEditorIsIdempotent() {
	founder := suite.createUser("ed", models.RoleEditor)
	second := suite.createUser("emma", models.RoleEditor)

	publisher, err := suite.service.BecomePublisher(founder, models.BecomePublisherRequest{Name: "The Daily"})
	suite.Require().NoError(err)

	suite.NoError(suite.service.AddEditor(publisher.ID, second.ID))
	suite.NoError(suite.service.AddEditor(publisher.ID, second.ID))

	reloaded, err := suite.service.GetPublisher(publisher.ID)
	suite.Require().NoError(err)
	suite.Len(reloaded.Editors, 2)
}

func (suite *PublisherServiceTestSuite) TestAddJournalistRoleMismatchIsNoOp() {
	editor := suite.createUser("ed", models.RoleEditor)
	reader := suite.createUser("rita", models.RoleReader)

	publisher, err := suite.service.BecomePublisher(editor, models.BecomePublisherRequest{Name: "The Daily"})
	suite.Require().NoError(err)

	suite.NoError(suite.service.AddJournalist(publisher.ID, reader.ID))

	reloaded, err := suite.service.GetPublisher(publisher.ID)
	suite.Require().NoError(err)
	suite.Empty(reloaded.Journalists)
}

func (suite *PublisherServiceTestSuite) TestDeletePublisherClearsArticleReference() {
	editor := suite.createUser("ed", models.RoleEditor)
	publisher, err := suite.service.BecomePublisher(editor, models.BecomePublisherRequest{Name: "The Daily"})
	suite.Require().NoError(err)

	article := &models.Article{
		Headline:    "Orphaned",
		Body:        "body",
		PublisherID: &publisher.ID,
	}
	suite.Require().NoError(suite.db.Create(article).Error)

	suite.Require().NoError(suite.service.DeletePublisher(editor, publisher.ID))

	var reloaded models.Article
	suite.Require().NoError(suite.db.First(&reloaded, article.ID).Error)
	suite.Nil(reloaded.PublisherID)
}

func TestPublisherServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PublisherServiceTestSuite))
}
