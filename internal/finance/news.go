package finance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

type newsResp struct {
	Articles []struct {
		Title string `json:"title"`
	} `json:"articles"`
}

// NewsClient fetches business headlines from NewsAPI.
type NewsClient struct {
	apiKey  string
	client  *http.Client
	baseURL string
	log     zerolog.Logger
}

func NewNewsClient(apiKey string, log zerolog.Logger) *NewsClient {
	return &NewsClient{
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://newsapi.org",
		log:     log.With().Str("component", "news").Logger(),
	}
}

// TopHeadlines returns up to limit headline titles for Indian business news.
func (n *NewsClient) TopHeadlines(ctx context.Context, limit int) ([]string, error) {
	q := url.Values{}
	q.Set("category", "business")
	q.Set("country", "in")
	q.Set("apiKey", n.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/v2/top-headlines?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := n.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi returned %d", resp.StatusCode)
	}
	var nr newsResp
	if err := json.NewDecoder(resp.Body).Decode(&nr); err != nil {
		return nil, err
	}
	if len(nr.Articles) == 0 {
		return nil, errors.New("no articles")
	}

	titles := make([]string, 0, limit)
	for _, a := range nr.Articles {
		if len(titles) == limit {
			break
		}
		if a.Title == "" {
			continue
		}
		titles = append(titles, a.Title)
	}
	return titles, nil
}
