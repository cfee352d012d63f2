package services

import (
	"fmt"
	"log"

	"newshub-cms/clients"
	"newshub-cms/metrics"
	"newshub-cms/models"
	"newshub-cms/repositories"
)

type NotificationService interface {
	RecipientsFor(article *models.Article) ([]string, error)
	Notify(article *models.Article) error
}

type notificationService struct {
	userRepo repositories.UserRepository
	mailer   clients.Mailer
	poster   clients.SocialPoster
	events   clients.EventPublisher
}

// NewNotificationService wires the injected collaborators. poster and events
// may be nil when the corresponding integration is not configured.
func NewNotificationService(userRepo repositories.UserRepository, mailer clients.Mailer, poster clients.SocialPoster, events clients.EventPublisher) NotificationService {
	return &notificationService{
		userRepo: userRepo,
		mailer:   mailer,
		poster:   poster,
		events:   events,
	}
}

// RecipientsFor computes the notification audience for an article: everyone
// subscribed to its publisher plus everyone subscribed to its author,
// de-duplicated by email address. Evaluated at approval time, never cached.
func (s *notificationService) RecipientsFor(article *models.Article) ([]string, error) {
	seen := make(map[string]bool)
	var emails []string

	collect := func(users []models.User) {
		for _, u := range users {
			if u.Email == "" || seen[u.Email] {
				continue
			}
			seen[u.Email] = true
			emails = append(emails, u.Email)
		}
	}

	if article.PublisherID != nil {
		subs, err := s.userRepo.SubscribersOfPublisher(*article.PublisherID)
		if err != nil {
			return nil, err
		}
		collect(subs)
	}

	if article.AuthorID != nil {
		subs, err := s.userRepo.SubscribersOfJournalist(*article.AuthorID)
		if err != nil {
			return nil, err
		}
		collect(subs)
	}

	return emails, nil
}

// Notify fans an approved article out to email subscribers, the social
// broadcast client and the event broker. The approval is already committed
// when this runs; failures are surfaced but leave the article approved.
func (s *notificationService) Notify(article *models.Article) error {
	if !article.Approved {
		return nil
	}

	recipients, err := s.RecipientsFor(article)
	if err != nil {
		return err
	}

	var failure error

	if len(recipients) > 0 {
		subject := fmt.Sprintf("New Article: %s", article.Headline)
		body := fmt.Sprintf("%s\n\n%s", article.Body, article.Conclusion)
		if err := s.mailer.Send(subject, body, recipients); err != nil {
			log.Printf("Failed to email %d subscribers for article %d: %v", len(recipients), article.ID, err)
			metrics.NotificationsSentTotal.WithLabelValues("email", "failure").Inc()
			failure = models.ErrorExternalService{Message: "email dispatch failed", Err: err}
		} else {
			metrics.NotificationsSentTotal.WithLabelValues("email", "success").Inc()
		}
	}

	if s.poster != nil {
		text := fmt.Sprintf("New article posted on NewsHub!\n%s", article.Headline)
		if _, err := s.poster.Post(text); err != nil {
			log.Printf("Failed to post article %d to social: %v", article.ID, err)
			metrics.NotificationsSentTotal.WithLabelValues("social", "failure").Inc()
			if failure == nil {
				failure = models.ErrorExternalService{Message: "social post failed", Err: err}
			}
		} else {
			metrics.NotificationsSentTotal.WithLabelValues("social", "success").Inc()
		}
	}

	if s.events != nil {
		if err := s.events.PublishApproved(article); err != nil {
			log.Printf("Failed to publish approval event for article %d: %v", article.ID, err)
			if failure == nil {
				failure = models.ErrorExternalService{Message: "event publish failed", Err: err}
			}
		}
	}

	return failure
}
