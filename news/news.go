package news

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/arcanusdsp/server/config"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// ErrUnavailable is returned whenever the forum cannot produce a post list.
var ErrUnavailable = errors.New("failed to obtain latest news posts")

const maxBody = 1 << 20

// Service fetches the latest news posts from the forum news script.
type Service struct {
	cfg    config.NewsConfig
	client *http.Client
	logger *zap.Logger
}

func NewService(cfg config.NewsConfig, logger *zap.Logger) *Service {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Service{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (s *Service) Name() string { return "newsservice" }

func (s *Service) Initialize(context.Context) error { return nil }

// URL returns the news script address for the configured forum.
func (s *Service) URL() string {
	q := url.Values{}
	q.Set("a", "news")
	q.Set("id", fmt.Sprint(s.cfg.ForumID))
	q.Set("l", fmt.Sprint(s.cfg.Count))
	q.Set("p", s.cfg.Path)
	return s.cfg.Path + s.cfg.Script + "?" + q.Encode()
}

// Posts returns the raw JSON document served by the forum. Anything that
// is not valid JSON is treated as a failure.
func (s *Service) Posts(ctx context.Context) (string, error) {
	if s.cfg.Path == "" {
		return "", fmt.Errorf("%w: news path not configured", ErrUnavailable)
	}
	u := s.URL()
	s.logger.Debug("fetching news posts", zap.String("url", u))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("news request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !gjson.ValidBytes(body) {
		s.logger.Warn("news response is not json", zap.Int("status", resp.StatusCode), zap.Int("bytes", len(body)))
		return "", ErrUnavailable
	}
	return string(body), nil
}
