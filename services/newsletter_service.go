package services

import (
	"errors"
	"time"

	"newshub-cms/models"
	"newshub-cms/repositories"

	"gorm.io/gorm"
)

const issueDateLayout = "2006-01-02"

type NewsletterService interface {
	CreateNewsletter(actor *models.User, req models.CreateNewsletterRequest) (*models.Newsletter, error)
	GetNewsletter(id uint) (*models.Newsletter, error)
	GetNewsletters() ([]models.Newsletter, error)
	UpdateNewsletter(actor *models.User, id uint, req models.CreateNewsletterRequest) (*models.Newsletter, error)
	DeleteNewsletter(actor *models.User, id uint) error
}

type newsletterService struct {
	newsletterRepo repositories.NewsletterRepository
	articleRepo    repositories.ArticleRepository
}

func NewNewsletterService(newsletterRepo repositories.NewsletterRepository, articleRepo repositories.ArticleRepository) NewsletterService {
	return &newsletterService{
		newsletterRepo: newsletterRepo,
		articleRepo:    articleRepo,
	}
}

// CreateNewsletter aggregates articles into an issue. Member articles are not
// checked for approval, a draft may appear in an issue.
func (s *newsletterService) CreateNewsletter(actor *models.User, req models.CreateNewsletterRequest) (*models.Newsletter, error) {
	if !HasPermission(actor.Role, PermAddNewsletter) {
		return nil, models.ErrorPermission{Message: "you don't have permission to create newsletters"}
	}

	issueDate, err := time.Parse(issueDateLayout, req.IssueDate)
	if err != nil {
		return nil, models.ErrorValidation{Message: "issue_date must be formatted as YYYY-MM-DD"}
	}

	articles, err := s.collectArticles(req.ArticleIDs)
	if err != nil {
		return nil, err
	}

	newsletter := &models.Newsletter{
		Title:     req.Title,
		IssueDate: issueDate,
		Articles:  articles,
	}

	if err := s.newsletterRepo.Create(newsletter); err != nil {
		return nil, err
	}

	return s.newsletterRepo.GetByID(newsletter.ID)
}

func (s *newsletterService) GetNewsletter(id uint) (*models.Newsletter, error) {
	newsletter, err := s.newsletterRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "newsletter not found"}
		}
		return nil, err
	}
	return newsletter, nil
}

func (s *newsletterService) GetNewsletters() ([]models.Newsletter, error) {
	return s.newsletterRepo.GetAll()
}

func (s *newsletterService) UpdateNewsletter(actor *models.User, id uint, req models.CreateNewsletterRequest) (*models.Newsletter, error) {
	if !HasPermission(actor.Role, PermChangeNewsletter) {
		return nil, models.ErrorPermission{Message: "you don't have permission to edit newsletters"}
	}

	newsletter, err := s.GetNewsletter(id)
	if err != nil {
		return nil, err
	}

	issueDate, err := time.Parse(issueDateLayout, req.IssueDate)
	if err != nil {
		return nil, models.ErrorValidation{Message: "issue_date must be formatted as YYYY-MM-DD"}
	}

	articles, err := s.collectArticles(req.ArticleIDs)
	if err != nil {
		return nil, err
	}

	newsletter.Title = req.Title
	newsletter.IssueDate = issueDate

	if err := s.newsletterRepo.Update(newsletter); err != nil {
		return nil, err
	}

	if err := s.newsletterRepo.ReplaceArticles(newsletter, articles); err != nil {
		return nil, err
	}

	return s.newsletterRepo.GetByID(id)
}

func (s *newsletterService) DeleteNewsletter(actor *models.User, id uint) error {
	if !HasPermission(actor.Role, PermDeleteNewsletter) {
		return models.ErrorPermission{Message: "you don't have permission to delete newsletters"}
	}

	if _, err := s.GetNewsletter(id); err != nil {
		return err
	}

	return s.newsletterRepo.Delete(id)
}

func (s *newsletterService) collectArticles(ids []uint) ([]models.Article, error) {
	var articles []models.Article
	for _, id := range ids {
		article, err := s.articleRepo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrorNotFound{Message: "article not found"}
			}
			return nil, err
		}
		articles = append(articles, *article)
	}
	return articles, nil
}
