package repositories

import (
	"newshub-cms/models"

	"gorm.io/gorm"
)

type PublisherRepository interface {
	Create(publisher *models.Publisher) error
	GetByID(id uint) (*models.Publisher, error)
	GetAll() ([]models.Publisher, error)
	AddEditor(publisher *models.Publisher, user *models.User) error
	AddJournalist(publisher *models.Publisher, user *models.User) error
	Delete(id uint) error
}

type publisherRepository struct {
	db *gorm.DB
}

func NewPublisherRepository(db *gorm.DB) PublisherRepository {
	return &publisherRepository{db: db}
}

func (r *publisherRepository) Create(publisher *models.Publisher) error {
	return r.db.Create(publisher).Error
}

func (r *publisherRepository) GetByID(id uint) (*models.Publisher, error) {
	var publisher models.Publisher
	err := r.db.Preload("Editors").Preload("Journalists").First(&publisher, id).Error
	return &publisher, err
}

func (r *publisherRepository) GetAll() ([]models.Publisher, error) {
	var publishers []models.Publisher
	err := r.db.Order("name asc").Find(&publishers).Error
	return publishers, err
}

func (r *publisherRepository) AddEditor(publisher *models.Publisher, user *models.User) error {
	return r.db.Model(publisher).Association("Editors").Append(user)
}

func (r *publisherRepository) AddJournalist(publisher *models.Publisher, user *models.User) error {
	return r.db.Model(publisher).Association("Journalists").Append(user)
}

func (r *publisherRepository) Delete(id uint) error {
	// Articles keep existing with their publisher reference cleared.
	if err := r.db.Model(&models.Article{}).
		Where("publisher_id = ?", id).
		Update("publisher_id", nil).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Publisher{}, id).Error
}
