package repositories

import (
	"newshub-cms/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	Save(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UpdatePassword(userID uint, hashed string) error
	SubscribeToPublisher(user *models.User, publisher *models.Publisher) error
	SubscribeToJournalist(user *models.User, journalist *models.User) error
	SubscribersOfPublisher(publisherID uint) ([]models.User, error)
	SubscribersOfJournalist(journalistID uint) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return err
	}
	return r.applyRoleInvariant(user)
}

func (r *userRepository) Save(user *models.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return err
	}
	return r.applyRoleInvariant(user)
}

// applyRoleInvariant clears associations that are meaningless for the user's
// role. It runs on every persist so stale cross-role data cannot survive a
// save, whatever path wrote the row.
func (r *userRepository) applyRoleInvariant(user *models.User) error {
	switch user.Role {
	case models.RoleReader:
		// Readers hold no authored content.
		return r.db.Model(&models.Article{}).
			Where("author_id = ?", user.ID).
			Update("author_id", nil).Error
	case models.RoleJournalist:
		// Journalists hold no subscriptions.
		if err := r.db.Model(user).Association("SubscriptionsToPublishers").Clear(); err != nil {
			return err
		}
		return r.db.Model(user).Association("SubscriptionsToJournalists").Clear()
	}
	return nil
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *userRepository) UpdatePassword(userID uint, hashed string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("password", hashed).Error
}

func (r *userRepository) SubscribeToPublisher(user *models.User, publisher *models.Publisher) error {
	return r.db.Model(user).Association("SubscriptionsToPublishers").Append(publisher)
}

func (r *userRepository) SubscribeToJournalist(user *models.User, journalist *models.User) error {
	return r.db.Model(user).Association("SubscriptionsToJournalists").Append(journalist)
}

func (r *userRepository) SubscribersOfPublisher(publisherID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("JOIN publisher_subscriptions ps ON ps.user_id = users.id").
		Where("ps.publisher_id = ?", publisherID).
		Find(&users).Error
	return users, err
}

func (r *userRepository) SubscribersOfJournalist(journalistID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("JOIN journalist_subscriptions js ON js.follower_id = users.id").
		Where("js.journalist_id = ?", journalistID).
		Find(&users).Error
	return users, err
}
