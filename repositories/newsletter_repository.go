package repositories

import (
	"newshub-cms/models"

	"gorm.io/gorm"
)

type NewsletterRepository interface {
	Create(newsletter *models.Newsletter) error
	GetByID(id uint) (*models.Newsletter, error)
	GetAll() ([]models.Newsletter, error)
	Update(newsletter *models.Newsletter) error
	ReplaceArticles(newsletter *models.Newsletter, articles []models.Article) error
	Delete(id uint) error
}

type newsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) Create(newsletter *models.Newsletter) error {
	return r.db.Create(newsletter).Error
}

func (r *newsletterRepository) GetByID(id uint) (*models.Newsletter, error) {
	var newsletter models.Newsletter
	err := r.db.Preload("Articles").First(&newsletter, id).Error
	return &newsletter, err
}

func (r *newsletterRepository) GetAll() ([]models.Newsletter, error) {
	var newsletters []models.Newsletter
	err := r.db.Preload("Articles").Order("issue_date desc").Find(&newsletters).Error
	return newsletters, err
}

func (r *newsletterRepository) Update(newsletter *models.Newsletter) error {
	return r.db.Save(newsletter).Error
}

func (r *newsletterRepository) ReplaceArticles(newsletter *models.Newsletter, articles []models.Article) error {
	return r.db.Model(newsletter).Association("Articles").Replace(articles)
}

func (r *newsletterRepository) Delete(id uint) error {
	return r.db.Delete(&models.Newsletter{}, id).Error
}
