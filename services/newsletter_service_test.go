package services

import (
	"testing"

	"newshub-cms/models"
	"newshub-cms/repositories"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type NewsletterServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	userRepo repositories.UserRepository
	service  NewsletterService
	articles ArticleService
}

func (suite *NewsletterServiceTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())
	suite.userRepo = repositories.NewUserRepository(suite.db)

	articleRepo := repositories.NewArticleRepository(suite.db)
	publisherRepo := repositories.NewPublisherRepository(suite.db)
	notifications := NewNotificationService(suite.userRepo, &fakeMailer{}, nil, nil)

	suite.articles = NewArticleService(articleRepo, publisherRepo, notifications)
	suite.service = NewNewsletterService(repositories.NewNewsletterRepository(suite.db), articleRepo)
}

func (suite *NewsletterServiceTestSuite) createUser(username string, role models.UserRole) *models.User {
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Role:     role,
	}
	suite.Require().NoError(suite.userRepo.Create(user))
	return user
}

func (suite *NewsletterServiceTestSuite) TestCreateMixesDraftAndApproved() {
	journalist := suite.createUser("jo", models.RoleJournalist)
	editor := suite.createUser("ed", models.RoleEditor)

	draft, err := suite.articles.CreateArticle(journalist, models.CreateArticleRequest{
		Headline: "Still a draft", Body: "body",
	})
	suite.Require().NoError(err)

	published, err := suite.articles.CreateArticle(journalist, models.CreateArticleRequest{
		Headline: "Published", Body: "body",
	})
	suite.Require().NoError(err)
	_, err = suite.articles.ApproveArticle(editor, published.ID)
	suite.Require().NoError(err)

	newsletter, err := suite.service.CreateNewsletter(journalist, models.CreateNewsletterRequest{
		Title:      "Weekly Issue",
		IssueDate:  "2025-06-01",
		ArticleIDs: []uint{draft.ID, published.ID},
	})
	suite.Require().NoError(err)

	// Drafts are allowed in an issue; both members are present.
	suite.Len(newsletter.Articles, 2)
}

func (suite *NewsletterServiceTestSuite) TestCreateRequiresPermission() {
	reader := suite.createUser("rita", models.RoleReader)

	_, err := suite.service.CreateNewsletter(reader, models.CreateNewsletterRequest{
		Title:     "Nope",
		IssueDate: "2025-06-01",
	})
	suite.IsType(models.ErrorPermission{}, err)
}

func (suite *NewsletterServiceTestSuite) TestCreateRejectsBadIssueDate() {
	journalist := suite.createUser("jo", models.RoleJournalist)

	_, err := suite.service.CreateNewsletter(journalist, models.CreateNewsletterRequest{
		Title:     "Weekly Issue",
		IssueDate: "June 1st",
	})
	suite.IsType(models.ErrorValidation{}, err)
}

func (suite *NewsletterServiceTestSuite) TestCreateRejectsMissingArticle() {
	journalist := suite.createUser("jo", models.RoleJournalist)

	_, err := suite.service.CreateNewsletter(journalist, models.CreateNewsletterRequest{
		Title:      "Weekly Issue",
		IssueDate:  "2025-06-01",
		ArticleIDs: []uint{999},
	})
	suite.IsType(models.ErrorNotFound{}, err)
}

func (suite *NewsletterServiceTestSuite) TestUpdateAndDelete() {
	journalist := suite.createUser("jo", models.RoleJournalist)

	newsletter, err := suite.service.CreateNewsletter(journalist, models.CreateNewsletterRequest{
		Title:     "Weekly Issue",
		IssueDate: "2025-06-01",
	})
	suite.Require().NoError(err)

	updated, err := suite.service.UpdateNewsletter(journalist, newsletter.ID, models.CreateNewsletterRequest{
		Title:     "Renamed Issue",
		IssueDate: "2025-06-08",
	})
	suite.Require().NoError(err)
	suite.Equal("Renamed Issue", updated.Title)

	suite.NoError(suite.service.DeleteNewsletter(journalist, newsletter.ID))

	_, err = suite.service.GetNewsletter(newsletter.ID)
	suite.IsType(models.ErrorNotFound{}, err)
}

func (suite *NewsletterServiceTestSuite) TestDeleteRequiresPermission() {
	journalist := suite.createUser("jo", models.RoleJournalist)
	reader := suite.createUser("rita", models.RoleReader)

	newsletter, err := suite.service.CreateNewsletter(journalist, models.CreateNewsletterRequest{
		Title:     "Weekly Issue",
		IssueDate: "2025-06-01",
	})
	suite.Require().NoError(err)

	err = suite.service.DeleteNewsletter(reader, newsletter.ID)
	suite.IsType(models.ErrorPermission{}, err)
}

func TestNewsletterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NewsletterServiceTestSuite))
}
