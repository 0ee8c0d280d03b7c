package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// TranslationClient calls an external translation endpoint. On any failure the
// source text comes back unchanged: a missing translation is a display
// degradation, never a reason to reject a product write.
type TranslationClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewTranslationClient(baseURL string, timeout time.Duration, logger *zap.Logger) *TranslationClient {
	return &TranslationClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type translateRequest struct {
	Text   string `json:"text"`
	Target string `json:"target"`
}

type translateResponse struct {
	Text string `json:"text"`
}

func (c *TranslationClient) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if c.baseURL == "" || text == "" {
		return text, nil
	}

	payload, err := json.Marshal(translateRequest{Text: text, Target: targetLang})
	if err != nil {
		return text, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", bytes.NewReader(payload))
	if err != nil {
		return text, nil
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("translation request failed", zap.String("target", targetLang), zap.Error(err))
		return text, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("translation service error",
			zap.String("target", targetLang),
			zap.Int("status", resp.StatusCode),
		)
		return text, fmt.Errorf("translation service returned status %d", resp.StatusCode)
	}

	var out translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return text, nil
	}
	if out.Text == "" {
		return text, nil
	}
	return out.Text, nil
}
