package collector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"CommodityPulse/internal/model"
)

// HTTPSource fetches the source document with a single GET of a static
// URL, mirroring the client-side fetch the dashboard replaces. Failures
// are returned as-is; retrying is deliberately not this layer's job.
type HTTPSource struct {
	URL    string
	Client *http.Client
	log    *zap.Logger
}

// NewHTTPSource creates an HTTP-backed source with optional proxy
// support.
func NewHTTPSource(rawURL, proxyURL string, timeout time.Duration, log *zap.Logger) *HTTPSource {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPSource{
		URL: rawURL,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		log: log,
	}
}

func (s *HTTPSource) Name() string { return "http" }

func (s *HTTPSource) Fetch(ctx context.Context) ([]model.RawObservation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch document: status %d, body: %s", resp.StatusCode, string(body))
	}
	observations, err := decodeDocument(resp.Body, s.log)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.URL, err)
	}
	return observations, nil
}
