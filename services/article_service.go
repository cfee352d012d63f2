package services

import (
	"errors"

	"newshub-cms/metrics"
	"newshub-cms/models"
	"newshub-cms/repositories"

	"gorm.io/gorm"
)

type ArticleService interface {
	CreateArticle(actor *models.User, req models.CreateArticleRequest) (*models.Article, error)
	GetArticle(id uint) (*models.Article, error)
	GetArticles(params models.ArticleListParams, isPublic bool) ([]models.Article, int64, error)
	GetAllArticles() ([]models.Article, error)
	GetPendingArticles(actor *models.User) ([]models.Article, error)
	SubmitReview(actor *models.User, articleID uint, comments string) (*models.Review, error)
	GetReviews(articleID uint) ([]models.Review, error)
	ApproveArticle(actor *models.User, articleID uint) (*models.Article, error)
	UpdateArticle(actor *models.User, articleID uint, req models.UpdateArticleRequest) (*models.Article, error)
	DeleteArticle(actor *models.User, articleID uint) error
}

type articleService struct {
	articleRepo   repositories.ArticleRepository
	publisherRepo repositories.PublisherRepository
	notifications NotificationService
}

func NewArticleService(articleRepo repositories.ArticleRepository, publisherRepo repositories.PublisherRepository, notifications NotificationService) ArticleService {
	return &articleService{
		articleRepo:   articleRepo,
		publisherRepo: publisherRepo,
		notifications: notifications,
	}
}

// CreateArticle produces a draft. Publishing under a publisher's byline
// requires membership in one of its slots; omitting the publisher is the
// independent-author fallback and is always allowed.
func (s *articleService) CreateArticle(actor *models.User, req models.CreateArticleRequest) (*models.Article, error) {
	if !HasPermission(actor.Role, PermAddArticle) {
		return nil, models.ErrorPermission{Message: "you don't have permission to create articles"}
	}

	if req.PublisherID != nil {
		publisher, err := s.publisherRepo.GetByID(*req.PublisherID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrorNotFound{Message: "publisher not found"}
			}
			return nil, err
		}
		if !publisher.HasMember(actor.ID) {
			return nil, models.ErrorPermission{Message: "you are not a member of this publisher"}
		}
	}

	byline := req.Byline
	if byline == "" {
		byline = actor.Username
	}

	article := &models.Article{
		Headline:    req.Headline,
		Byline:      byline,
		Body:        req.Body,
		Conclusion:  req.Conclusion,
		Approved:    false,
		AuthorID:    &actor.ID,
		PublisherID: req.PublisherID,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) GetArticle(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "article not found"}
		}
		return nil, err
	}
	return article, nil
}

func (s *articleService) GetArticles(params models.ArticleListParams, isPublic bool) ([]models.Article, int64, error) {
	return s.articleRepo.GetList(params, isPublic)
}

func (s *articleService) GetAllArticles() ([]models.Article, error) {
	return s.articleRepo.GetAll()
}

func (s *articleService) GetPendingArticles(actor *models.User) ([]models.Article, error) {
	if !HasPermission(actor.Role, PermReviewArticles) {
		return nil, models.ErrorPermission{Message: "you don't have permission to review articles"}
	}
	return s.articleRepo.GetPending()
}

// SubmitReview records an editor's comments on a draft without touching the
// approval state.
func (s *articleService) SubmitReview(actor *models.User, articleID uint, comments string) (*models.Review, error) {
	if !HasPermission(actor.Role, PermReviewArticles) {
		return nil, models.ErrorPermission{Message: "you don't have permission to review articles"}
	}

	article, err := s.GetArticle(articleID)
	if err != nil {
		return nil, err
	}

	if article.Approved {
		return nil, models.ErrorValidation{Message: "reviews are only accepted on draft articles"}
	}

	review := &models.Review{
		ArticleID: article.ID,
		EditorID:  actor.ID,
		Comments:  comments,
	}

	if err := s.articleRepo.CreateReview(review); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *articleService) GetReviews(articleID uint) ([]models.Review, error) {
	if _, err := s.GetArticle(articleID); err != nil {
		return nil, err
	}
	return s.articleRepo.GetReviews(articleID)
}

// ApproveArticle transitions a draft to approved and fans out notification.
// The flag flip is a compare-and-set, so of any number of concurrent
// approvals only one dispatches notification; approving an already-approved
// article is a no-op. The approval write is committed before any outbound
// call, a notification failure never reverts it.
func (s *articleService) ApproveArticle(actor *models.User, articleID uint) (*models.Article, error) {
	if !HasPermission(actor.Role, PermApproveArticle) {
		return nil, models.ErrorPermission{Message: "you don't have permission to approve articles"}
	}

	if _, err := s.GetArticle(articleID); err != nil {
		return nil, err
	}

	transitioned, err := s.articleRepo.MarkApproved(articleID)
	if err != nil {
		return nil, err
	}

	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		return nil, err
	}

	if !transitioned {
		return article, nil
	}

	metrics.ArticlesApprovedTotal.Inc()

	if err := s.notifications.Notify(article); err != nil {
		// Surfaced to the caller, the approval stands.
		return article, err
	}

	return article, nil
}

func (s *articleService) UpdateArticle(actor *models.User, articleID uint, req models.UpdateArticleRequest) (*models.Article, error) {
	if !HasPermission(actor.Role, PermChangeArticle) {
		return nil, models.ErrorPermission{Message: "you don't have permission to edit articles"}
	}

	article, err := s.GetArticle(articleID)
	if err != nil {
		return nil, err
	}

	if !s.canModify(actor, article) {
		return nil, models.ErrorPermission{Message: "you don't have permission to edit this article"}
	}

	article.Headline = req.Headline
	article.Byline = req.Byline
	article.Body = req.Body
	article.Conclusion = req.Conclusion
	// Approval state is only ever changed through ApproveArticle.

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	return article, nil
}

func (s *articleService) DeleteArticle(actor *models.User, articleID uint) error {
	if !HasPermission(actor.Role, PermDeleteArticle) {
		return models.ErrorPermission{Message: "you don't have permission to delete articles"}
	}

	article, err := s.GetArticle(articleID)
	if err != nil {
		return err
	}

	if !s.canModify(actor, article) {
		return models.ErrorPermission{Message: "you don't have permission to delete this article"}
	}

	return s.articleRepo.Delete(articleID)
}

// canModify holds for the article's author and for editors, who carry the
// override role.
func (s *articleService) canModify(actor *models.User, article *models.Article) bool {
	if article.AuthorID != nil && *article.AuthorID == actor.ID {
		return true
	}
	return actor.IsEditor()
}
