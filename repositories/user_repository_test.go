package repositories

import (
	"testing"

	"newshub-cms/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Publisher{},
		&models.Article{},
		&models.Review{},
		&models.Newsletter{},
		&models.ResetToken{},
	))

	return db
}

func TestSaveClearsSubscriptionsForJournalists(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	journalist := &models.User{Username: "jo", Email: "jo@example.com", Password: "x", Role: models.RoleJournalist}
	other := &models.User{Username: "kim", Email: "kim@example.com", Password: "x", Role: models.RoleJournalist}
	require.NoError(t, repo.Create(journalist))
	require.NoError(t, repo.Create(other))

	publisher := &models.Publisher{Name: "The Daily"}
	require.NoError(t, db.Create(publisher).Error)

	// Plant cross-role state behind the repository's back.
	require.NoError(t, db.Exec(
		"INSERT INTO publisher_subscriptions (user_id, publisher_id) VALUES (?, ?)",
		journalist.ID, publisher.ID).Error)
	require.NoError(t, db.Exec(
		"INSERT INTO journalist_subscriptions (follower_id, journalist_id) VALUES (?, ?)",
		journalist.ID, other.ID).Error)

	require.NoError(t, repo.Save(journalist))

	subs, err := repo.SubscribersOfPublisher(publisher.ID)
	require.NoError(t, err)
	require.Empty(t, subs)

	follows, err := repo.SubscribersOfJournalist(other.ID)
	require.NoError(t, err)
	require.Empty(t, follows)
}

func TestSaveDetachesAuthoredArticlesForReaders(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	reader := &models.User{Username: "rita", Email: "rita@example.com", Password: "x", Role: models.RoleReader}
	require.NoError(t, repo.Create(reader))

	article := &models.Article{Headline: "Stray", Body: "body", AuthorID: &reader.ID}
	require.NoError(t, db.Create(article).Error)

	require.NoError(t, repo.Save(reader))

	var reloaded models.Article
	require.NoError(t, db.First(&reloaded, article.ID).Error)
	require.Nil(t, reloaded.AuthorID)
}

func TestMarkApprovedTransitionsExactlyOnce(t *testing.T) {
	db := openTestDB(t)
	repo := NewArticleRepository(db)

	article := &models.Article{Headline: "Race", Body: "body"}
	require.NoError(t, repo.Create(article))

	first, err := repo.MarkApproved(article.ID)
	require.NoError(t, err)
	require.True(t, first)

	second, err := repo.MarkApproved(article.ID)
	require.NoError(t, err)
	require.False(t, second)

	missing, err := repo.MarkApproved(9999)
	require.NoError(t, err)
	require.False(t, missing)
}
