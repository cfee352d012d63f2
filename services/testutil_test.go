package services

import (
	"errors"
	"testing"

	"newshub-cms/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal("Failed to open test database:", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Publisher{},
		&models.Article{},
		&models.Review{},
		&models.Newsletter{},
		&models.ResetToken{},
	)
	if err != nil {
		t.Fatal("Failed to migrate test database:", err)
	}

	return db
}

type sentMail struct {
	Subject string
	Body    string
	To      []string
}

type fakeMailer struct {
	Sent []sentMail
	Fail bool
}

func (m *fakeMailer) Send(subject, body string, to []string) error {
	if m.Fail {
		return errors.New("smtp unavailable")
	}
	m.Sent = append(m.Sent, sentMail{Subject: subject, Body: body, To: to})
	return nil
}

type fakePoster struct {
	Posts []string
	Fail  bool
}

func (p *fakePoster) Post(text string) (string, error) {
	if p.Fail {
		return "", errors.New("broadcast unavailable")
	}
	p.Posts = append(p.Posts, text)
	return "post-1", nil
}
