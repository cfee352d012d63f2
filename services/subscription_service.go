package services

import (
	"errors"

	"newshub-cms/models"
	"newshub-cms/repositories"

	"gorm.io/gorm"
)

type SubscriptionService interface {
	SubscribeToPublisher(user *models.User, publisherID uint) error
	SubscribeToJournalist(user *models.User, journalistID uint) error
}

type subscriptionService struct {
	userRepo      repositories.UserRepository
	publisherRepo repositories.PublisherRepository
}

func NewSubscriptionService(userRepo repositories.UserRepository, publisherRepo repositories.PublisherRepository) SubscriptionService {
	return &subscriptionService{
		userRepo:      userRepo,
		publisherRepo: publisherRepo,
	}
}

func (s *subscriptionService) SubscribeToPublisher(user *models.User, publisherID uint) error {
	publisher, err := s.publisherRepo.GetByID(publisherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "publisher not found"}
		}
		return err
	}

	// Set-add: subscribing twice is the same as subscribing once.
	return s.userRepo.SubscribeToPublisher(user, publisher)
}

func (s *subscriptionService) SubscribeToJournalist(user *models.User, journalistID uint) error {
	journalist, err := s.userRepo.GetByID(journalistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "journalist not found"}
		}
		return err
	}

	if !journalist.IsJournalist() {
		return models.ErrorValidation{Message: "subscriptions are only possible to journalists"}
	}

	return s.userRepo.SubscribeToJournalist(user, journalist)
}
