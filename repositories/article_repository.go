package repositories

import (
	"fmt"

	"newshub-cms/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetList(params models.ArticleListParams, isPublic bool) ([]models.Article, int64, error)
	GetAll() ([]models.Article, error)
	GetPending() ([]models.Article, error)
	Update(article *models.Article) error
	Delete(id uint) error
	MarkApproved(id uint) (bool, error)
	CreateReview(review *models.Review) error
	GetReviews(articleID uint) ([]models.Review, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").
		Preload("Publisher").
		First(&article, id).Error
	return &article, err
}

func (r *articleRepository) GetList(params models.ArticleListParams, isPublic bool) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{}).Preload("Author").Preload("Publisher")

	// The public surface only ever sees approved articles.
	if isPublic {
		query = query.Where("approved = ?", true)
	} else if params.Approved != nil {
		query = query.Where("approved = ?", *params.Approved)
	}

	if params.AuthorID > 0 {
		query = query.Where("author_id = ?", params.AuthorID)
	}

	query.Count(&total)

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}

	sortOrder := params.SortOrder
	if sortOrder == "" {
		sortOrder = "desc"
	}

	query = query.Order(fmt.Sprintf("articles.%s %s", sortBy, sortOrder))

	offset := (params.Page - 1) * params.Limit
	err := query.Offset(offset).Limit(params.Limit).Find(&articles).Error

	return articles, total, err
}

func (r *articleRepository) GetAll() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Order("created_at desc").Find(&articles).Error
	return articles, err
}

func (r *articleRepository) GetPending() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Author").Preload("Publisher").
		Where("approved = ?", false).
		Order("created_at asc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}

// MarkApproved flips the approval flag with a compare-and-set so that
// concurrent approvals of the same article transition it exactly once. It
// returns true only for the request that performed the transition.
func (r *articleRepository) MarkApproved(id uint) (bool, error) {
	result := r.db.Model(&models.Article{}).
		Where("id = ? AND approved = ?", id, false).
		Update("approved", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *articleRepository) CreateReview(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *articleRepository) GetReviews(articleID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("Editor").
		Where("article_id = ?", articleID).
		Order("created_at asc").
		Find(&reviews).Error
	return reviews, err
}
