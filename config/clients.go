package config

import (
	"os"
	"strconv"
)

// SMTPConfig carries the outbound mail settings.
type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
}

// SocialConfig carries the OAuth1 credentials for the social broadcast client.
type SocialConfig struct {
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	AccessSecret   string
	PostURL        string
}

// ResetConfig carries password-reset link settings.
type ResetConfig struct {
	BaseURL string
}

func LoadSMTP() SMTPConfig {
	port, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		port = 587
	}
	return SMTPConfig{
		Host:        getEnv("SMTP_HOST", "localhost"),
		Port:        port,
		Username:    os.Getenv("SMTP_USERNAME"),
		Password:    os.Getenv("SMTP_PASSWORD"),
		FromAddress: getEnv("SMTP_FROM", "newshub@example.com"),
	}
}

func LoadSocial() SocialConfig {
	return SocialConfig{
		ConsumerKey:    os.Getenv("SOCIAL_CONSUMER_KEY"),
		ConsumerSecret: os.Getenv("SOCIAL_CONSUMER_SECRET"),
		AccessToken:    os.Getenv("SOCIAL_ACCESS_TOKEN"),
		AccessSecret:   os.Getenv("SOCIAL_ACCESS_SECRET"),
		PostURL:        getEnv("SOCIAL_POST_URL", "https://api.twitter.com/2/tweets"),
	}
}

func LoadReset() ResetConfig {
	return ResetConfig{
		BaseURL: getEnv("RESET_BASE_URL", "http://localhost:8080/reset-password"),
	}
}

// NATSURL returns the event broker address, empty when events are disabled.
func NATSURL() string {
	return os.Getenv("NATS_URL")
}

func NATSSubject() string {
	return getEnv("NATS_SUBJECT", "newshub.articles.approved")
}
