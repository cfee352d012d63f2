package services

import (
	"errors"

	"newshub-cms/models"
	"newshub-cms/repositories"

	"gorm.io/gorm"
)

type PublisherService interface {
	BecomePublisher(actor *models.User, req models.BecomePublisherRequest) (*models.Publisher, error)
	GetPublisher(id uint) (*models.Publisher, error)
	GetPublishers() ([]models.Publisher, error)
	AddEditor(publisherID, userID uint) error
	AddJournalist(publisherID, userID uint) error
	DeletePublisher(actor *models.User, id uint) error
}

type publisherService struct {
	publisherRepo repositories.PublisherRepository
	userRepo      repositories.UserRepository
}

func NewPublisherService(publisherRepo repositories.PublisherRepository, userRepo repositories.UserRepository) PublisherService {
	return &publisherService{
		publisherRepo: publisherRepo,
		userRepo:      userRepo,
	}
}

// BecomePublisher creates a publishing organization and self-assigns the
// requesting account to the membership slot matching its role. Readers may
// not found publishers. The publisher carries the founder's contact email
// only, never a credential.
func (s *publisherService) BecomePublisher(actor *models.User, req models.BecomePublisherRequest) (*models.Publisher, error) {
	if !actor.IsEditor() && !actor.IsJournalist() {
		return nil, models.ErrorPermission{Message: "you don't have permission to become a publisher"}
	}

	publisher := &models.Publisher{
		Name:  req.Name,
		Email: actor.Email,
	}

	if err := s.publisherRepo.Create(publisher); err != nil {
		return nil, err
	}

	if actor.IsEditor() {
		if err := s.publisherRepo.AddEditor(publisher, actor); err != nil {
			return nil, err
		}
	} else {
		if err := s.publisherRepo.AddJournalist(publisher, actor); err != nil {
			return nil, err
		}
	}

	return s.publisherRepo.GetByID(publisher.ID)
}

func (s *publisherService) GetPublisher(id uint) (*models.Publisher, error) {
	publisher, err := s.publisherRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "publisher not found"}
		}
		return nil, err
	}
	return publisher, nil
}

func (s *publisherService) GetPublishers() ([]models.Publisher, error) {
	return s.publisherRepo.GetAll()
}

// AddEditor puts the user in the publisher's editor slot. A role mismatch is
// a silent no-op, not an error; adding an existing member changes nothing.
func (s *publisherService) AddEditor(publisherID, userID uint) error {
	publisher, err := s.GetPublisher(publisherID)
	if err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "user not found"}
		}
		return err
	}

	if !user.IsEditor() {
		return nil
	}

	return s.publisherRepo.AddEditor(publisher, user)
}

// AddJournalist mirrors AddEditor for the journalist slot.
func (s *publisherService) AddJournalist(publisherID, userID uint) error {
	publisher, err := s.GetPublisher(publisherID)
	if err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "user not found"}
		}
		return err
	}

	if !user.IsJournalist() {
		return nil
	}

	return s.publisherRepo.AddJournalist(publisher, user)
}

func (s *publisherService) DeletePublisher(actor *models.User, id uint) error {
	publisher, err := s.GetPublisher(id)
	if err != nil {
		return err
	}

	if !actor.IsEditor() || !publisher.HasMember(actor.ID) {
		return models.ErrorPermission{Message: "only a member editor can delete a publisher"}
	}

	return s.publisherRepo.Delete(id)
}
