package repositories

import (
	"newshub-cms/models"

	"gorm.io/gorm"
)

type ResetTokenRepository interface {
	Create(token *models.ResetToken) error
	GetByHash(hash string) (*models.ResetToken, error)
	Delete(id uint) error
}

type resetTokenRepository struct {
	db *gorm.DB
}

func NewResetTokenRepository(db *gorm.DB) ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

func (r *resetTokenRepository) Create(token *models.ResetToken) error {
	return r.db.Create(token).Error
}

func (r *resetTokenRepository) GetByHash(hash string) (*models.ResetToken, error) {
	var token models.ResetToken
	err := r.db.Where("token = ?", hash).First(&token).Error
	return &token, err
}

func (r *resetTokenRepository) Delete(id uint) error {
	return r.db.Delete(&models.ResetToken{}, id).Error
}
