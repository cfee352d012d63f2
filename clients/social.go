package clients

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"newshub-cms/config"

	"github.com/dghubble/oauth1"
)

// SocialPoster is the external broadcast capability. The production
// implementation signs requests with OAuth1; it is constructed once at
// startup and injected, there is no lazy shared state.
type SocialPoster interface {
	Post(text string) (string, error)
}

type oauthPoster struct {
	httpClient *http.Client
	postURL    string
}

func NewSocialPoster(cfg config.SocialConfig) SocialPoster {
	oauthConfig := oauth1.NewConfig(cfg.ConsumerKey, cfg.ConsumerSecret)
	token := oauth1.NewToken(cfg.AccessToken, cfg.AccessSecret)

	return &oauthPoster{
		httpClient: oauthConfig.Client(oauth1.NoContext, token),
		postURL:    cfg.PostURL,
	}
}

func (p *oauthPoster) Post(text string) (string, error) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return "", err
	}

	resp, err := p.httpClient.Post(p.postURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("post returned %d: %s", resp.StatusCode, body)
	}

	var result struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	return result.Data.ID, nil
}
