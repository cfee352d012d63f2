package clients

import (
	"encoding/json"
	"log"
	"time"

	"newshub-cms/models"

	"github.com/nats-io/nats.go"
)

// EventPublisher broadcasts approved articles to interested services.
type EventPublisher interface {
	PublishApproved(article *models.Article) error
	Close()
}

// ArticleEvent is the envelope published on the broker.
type ArticleEvent struct {
	Article   models.ArticleResponse `json:"article"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
}

type natsPublisher struct {
	conn    *nats.Conn
	subject string
}

func NewNATSPublisher(url, subject string) (EventPublisher, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}

	return &natsPublisher{conn: nc, subject: subject}, nil
}

func (np *natsPublisher) PublishApproved(article *models.Article) error {
	event := ArticleEvent{
		Article:   article.ToResponse(),
		Timestamp: time.Now(),
		Source:    "newshub-cms",
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := np.conn.Publish(np.subject, data); err != nil {
		return err
	}

	log.Printf("Published approved article to NATS: %s", article.Headline)
	return nil
}

func (np *natsPublisher) Close() {
	if np.conn != nil {
		np.conn.Close()
	}
}
