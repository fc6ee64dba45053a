package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/seo-optimizer/backend/analyzer"
)

const maxResponseBytes = 1 << 20

// Remote delegates scoring to an external analysis service over HTTP.
type Remote struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

// NewRemote creates a scorer posting snapshots to endpoint.
func NewRemote(endpoint string, timeout time.Duration, logger *zap.Logger) *Remote {
	if logger == nil {
		logger = zap.NewNop()
	}
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &Remote{
		endpoint: endpoint,
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		logger: logger,
	}
}

// Score implements analyzer.Scorer.
func (r *Remote) Score(ctx context.Context, snapshot analyzer.ContentSnapshot) (analyzer.Scores, error) {
	body, err := json.Marshal(snapshot)
	if err != nil {
		return analyzer.Scores{}, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return analyzer.Scores{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "SEOAnalyzer/1.0")

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		return analyzer.Scores{}, fmt.Errorf("scoring service unreachable: %w", err)
	}
	defer resp.Body.Close()

	r.logger.Debug("scoring service responded",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return analyzer.Scores{}, fmt.Errorf("scoring service returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var scores analyzer.Scores
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&scores); err != nil {
		return analyzer.Scores{}, fmt.Errorf("failed to decode scoring response: %w", err)
	}
	return scores, nil
}
