package services

import (
	"fmt"
	"testing"

	"newshub-cms/models"
	"newshub-cms/repositories"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ArticleServiceTestSuite struct {
	suite.Suite
	db            *gorm.DB
	userRepo      repositories.UserRepository
	publisherRepo repositories.PublisherRepository
	articleRepo   repositories.ArticleRepository
	mailer        *fakeMailer
	poster        *fakePoster

	articles      ArticleService
	publishers    PublisherService
	subscriptions SubscriptionService
	notifications NotificationService
}

func (suite *ArticleServiceTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())
	suite.userRepo = repositories.NewUserRepository(suite.db)
	suite.publisherRepo = repositories.NewPublisherRepository(suite.db)
	suite.articleRepo = repositories.NewArticleRepository(suite.db)
	suite.mailer = &fakeMailer{}
	suite.poster = &fakePoster{}

	suite.notifications = NewNotificationService(suite.userRepo, suite.mailer, suite.poster, nil)
	suite.articles = NewArticleService(suite.articleRepo, suite.publisherRepo, suite.notifications)
	suite.publishers = NewPublisherService(suite.publisherRepo, suite.userRepo)
	suite.subscriptions = NewSubscriptionService(suite.userRepo, suite.publisherRepo)
}

func (suite *ArticleServiceTestSuite) createUser(username string, role models.UserRole) *models.User {
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Role:     role,
	}
	suite.Require().NoError(suite.userRepo.Create(user))
	return user
}

// newsroom sets up publisher P with journalist J and editor E as members.
func (suite *ArticleServiceTestSuite) newsroom() (journalist, editor *models.User, publisher *models.Publisher) {
	journalist = suite.createUser("jo", models.RoleJournalist)
	editor = suite.createUser("ed", models.RoleEditor)

	publisher, err := suite.publishers.BecomePublisher(editor, models.BecomePublisherRequest{Name: "The Daily"})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.publishers.AddJournalist(publisher.ID, journalist.ID))

	return journalist, editor, publisher
}

func (suite *ArticleServiceTestSuite) draft(author *models.User, publisherID *uint) *models.Article {
	article, err := suite.articles.CreateArticle(author, models.CreateArticleRequest{
		Headline:    "Breaking News",
		Body:        "The body.",
		Conclusion:  "The conclusion.",
		PublisherID: publisherID,
	})
	suite.Require().NoError(err)
	return article
}

func (suite *ArticleServiceTestSuite) TestCreateArticleStartsAsDraft() {
	journalist, _, publisher := suite.newsroom()

	article := suite.draft(journalist, &publisher.ID)
	suite.False(article.Approved)
	suite.Equal("jo", article.Byline)
	suite.Equal(journalist.ID, *article.AuthorID)
	suite.Equal(publisher.ID, *article.PublisherID)
}

func (suite *ArticleServiceTestSuite) TestCreateArticleByReaderFails() {
	reader := suite.createUser("rita", models.RoleReader)

	_, err := suite.articles.CreateArticle(reader, models.CreateArticleRequest{
		Headline: "Nope",
		Body:     "body",
	})
	suite.IsType(models.ErrorPermission{}, err)
}

func (suite *ArticleServiceTestSuite) TestCreateArticleRequiresMembership() {
	suite.newsroom()
	outsider := suite.createUser("out", models.RoleJournalist)

	var publisherID uint = 1
	_, err := suite.articles.CreateArticle(outsider, models.CreateArticleRequest{
		Headline:    "Infiltration",
		Body:        "body",
		PublisherID: &publisherID,
	})
	suite.IsType(models.ErrorPermission{}, err)

	// Independent authorship is always open.
	article, err := suite.articles.CreateArticle(outsider, models.CreateArticleRequest{
		Headline: "Freelance",
		Body:     "body",
	})
	suite.NoError(err)
	suite.Nil(article.PublisherID)
}

func (suite *ArticleServiceTestSuite) TestSubmitReviewOnDraftOnly() {
	journalist, editor, publisher := suite.newsroom()
	article := suite.draft(journalist, &publisher.ID)

	review, err := suite.articles.SubmitReview(editor, article.ID, "needs a stronger lede")
	suite.Require().NoError(err)
	suite.Equal(editor.ID, review.EditorID)

	// The review did not move the state.
	reloaded, err := suite.articles.GetArticle(article.ID)
	suite.Require().NoError(err)
	suite.False(reloaded.Approved)

	_, err = suite.articles.ApproveArticle(editor, article.ID)
	suite.Require().NoError(err)

	_, err = suite.articles.SubmitReview(editor, article.ID, "too late")
	suite.IsType(models.ErrorValidation{}, err)
}

func (suite *ArticleServiceTestSuite) TestSubmitReviewRequiresPermission() {
	journalist, _, publisher := suite.newsroom()
	article := suite.draft(journalist, &publisher.ID)

	_, err := suite.articles.SubmitReview(journalist, article.ID, "self review")
	suite.IsType(models.ErrorPermission{}, err)
}

func (suite *ArticleServiceTestSuite) TestApproveRequiresPermission() {
	journalist, _, publisher := suite.newsroom()
	article := suite.draft(journalist, &publisher.ID)

	_, err := suite.articles.ApproveArticle(journalist, article.ID)
	suite.IsType(models.ErrorPermission{}, err)
}

func (suite *ArticleServiceTestSuite) TestApproveNotifiesPublisherSubscriber() {
	journalist, editor, publisher := suite.newsroom()
	reader := suite.createUser("rita", models.RoleReader)
	suite.Require().NoError(suite.subscriptions.SubscribeToPublisher(reader, publisher.ID))

	article := suite.draft(journalist, &publisher.ID)

	approved, err := suite.articles.ApproveArticle(editor, article.ID)
	suite.Require().NoError(err)
	suite.True(approved.Approved)

	suite.Require().Len(suite.mailer.Sent, 1)
	mail := suite.mailer.Sent[0]
	suite.Equal(fmt.Sprintf("New Article: %s", article.Headline), mail.Subject)
	suite.Equal("The body.\n\nThe conclusion.", mail.Body)
	suite.Equal([]string{"rita@example.com"}, mail.To)

	suite.Require().Len(suite.poster.Posts, 1)
	suite.Equal("New article posted on NewsHub!\nBreaking News", suite.poster.Posts[0])
}

func (suite *ArticleServiceTestSuite) TestApproveTwiceNotifiesOnce() {
	journalist, editor, publisher := suite.newsroom()
	reader := suite.createUser("rita", models.RoleReader)
	suite.Require().NoError(suite.subscriptions.SubscribeToPublisher(reader, publisher.ID))

	article := suite.draft(journalist, &publisher.ID)

	_, err := suite.articles.ApproveArticle(editor, article.ID)
	suite.Require().NoError(err)

	again, err := suite.articles.ApproveArticle(editor, article.ID)
	suite.Require().NoError(err)
	suite.True(again.Approved)

	suite.Len(suite.mailer.Sent, 1)
	suite.Len(suite.poster.Posts, 1)
}

func (suite *ArticleServiceTestSuite) TestApproveSurvivesNotificationFailure() {
	journalist, editor, publisher := suite.newsroom()
	reader := suite.createUser("rita", models.RoleReader)
	suite.Require().NoError(suite.subscriptions.SubscribeToPublisher(reader, publisher.ID))

	article := suite.draft(journalist, &publisher.ID)

	suite.mailer.Fail = true
	approved, err := suite.articles.ApproveArticle(editor, article.ID)

	suite.IsType(models.ErrorExternalService{}, err)
	suite.Require().NotNil(approved)
	suite.True(approved.Approved)

	// The approval is durable despite the failed fan-out.
	reloaded, err := suite.articles.GetArticle(article.ID)
	suite.Require().NoError(err)
	suite.True(reloaded.Approved)
}

func (suite *ArticleServiceTestSuite) TestNoEmailWithoutRecipients() {
	journalist, editor, publisher := suite.newsroom()
	article := suite.draft(journalist, &publisher.ID)

	_, err := suite.articles.ApproveArticle(editor, article.ID)
	suite.Require().NoError(err)

	suite.Empty(suite.mailer.Sent)
	// The social broadcast still goes out.
	suite.Len(suite.poster.Posts, 1)
}

func (suite *ArticleServiceTestSuite) TestRecipientsDeduplicatedByEmail() {
	journalist, _, publisher := suite.newsroom()
	reader := suite.createUser("rita", models.RoleReader)

	suite.Require().NoError(suite.subscriptions.SubscribeToPublisher(reader, publisher.ID))
	suite.Require().NoError(suite.subscriptions.SubscribeToJournalist(reader, journalist.ID))

	article := suite.draft(journalist, &publisher.ID)

	recipients, err := suite.notifications.RecipientsFor(article)
	suite.Require().NoError(err)
	suite.Equal([]string{"rita@example.com"}, recipients)
}

func (suite *ArticleServiceTestSuite) TestRecipientsWithoutPublisher() {
	journalist := suite.createUser("jo", models.RoleJournalist)
	reader := suite.createUser("rita", models.RoleReader)
	suite.Require().NoError(suite.subscriptions.SubscribeToJournalist(reader, journalist.ID))

	article := suite.draft(journalist, nil)

	recipients, err := suite.notifications.RecipientsFor(article)
	suite.Require().NoError(err)
	suite.Equal([]string{"rita@example.com"}, recipients)
}

func (suite *ArticleServiceTestSuite) TestSubscribeToNonJournalistFails() {
	reader := suite.createUser("rita", models.RoleReader)
	other := suite.createUser("randy", models.RoleReader)

	err := suite.subscriptions.SubscribeToJournalist(reader, other.ID)
	suite.IsType(models.ErrorValidation{}, err)
}

func (suite *ArticleServiceTestSuite) TestUpdateByAuthorKeepsApprovalState() {
	journalist, editor, publisher := suite.newsroom()
	article := suite.draft(journalist, &publisher.ID)

	_, err := suite.articles.ApproveArticle(editor, article.ID)
	suite.Require().NoError(err)

	updated, err := suite.articles.UpdateArticle(journalist, article.ID, models.UpdateArticleRequest{
		Headline:   "Corrected News",
		Byline:     "jo",
		Body:       "Corrected body.",
		Conclusion: "Same conclusion.",
	})
	suite.Require().NoError(err)
	suite.Equal("Corrected News", updated.Headline)
	suite.True(updated.Approved)

	// No second notification from the edit.
	suite.Len(suite.poster.Posts, 1)
}

func (suite *ArticleServiceTestSuite) TestUpdateByStrangerFails() {
	journalist, _, publisher := suite.newsroom()
	stranger := suite.createUser("sam", models.RoleJournalist)
	article := suite.draft(journalist, &publisher.ID)

	_, err := suite.articles.UpdateArticle(stranger, article.ID, models.UpdateArticleRequest{
		Headline: "Hijacked",
		Body:     "body",
	})
	suite.IsType(models.ErrorPermission{}, err)
}

func (suite *ArticleServiceTestSuite) TestDeleteByAuthorAndEditorOverride() {
	journalist, editor, publisher := suite.newsroom()

	first := suite.draft(journalist, &publisher.ID)
	suite.NoError(suite.articles.DeleteArticle(journalist, first.ID))

	second := suite.draft(journalist, &publisher.ID)
	suite.NoError(suite.articles.DeleteArticle(editor, second.ID))

	third := suite.draft(journalist, &publisher.ID)
	stranger := suite.createUser("sam", models.RoleJournalist)
	err := suite.articles.DeleteArticle(stranger, third.ID)
	suite.IsType(models.ErrorPermission{}, err)
}

func (suite *ArticleServiceTestSuite) TestPendingListsDraftsOnly() {
	journalist, editor, publisher := suite.newsroom()

	first := suite.draft(journalist, &publisher.ID)
	suite.draft(journalist, &publisher.ID)

	_, err := suite.articles.ApproveArticle(editor, first.ID)
	suite.Require().NoError(err)

	pending, err := suite.articles.GetPendingArticles(editor)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.False(pending[0].Approved)

	_, err = suite.articles.GetPendingArticles(journalist)
	suite.IsType(models.ErrorPermission{}, err)
}

func TestArticleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ArticleServiceTestSuite))
}
