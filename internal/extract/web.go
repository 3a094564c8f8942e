package extract

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"legalyze/internal/util"

	"github.com/PuerkitoBio/goquery"
)

// WebExtractor fetches a URL and returns its markup-stripped text.
type WebExtractor struct {
	client *http.Client
}

func NewWebExtractor(timeout time.Duration) *WebExtractor {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &WebExtractor{client: &http.Client{Timeout: timeout}}
}

func (w *WebExtractor) Extract(ctx context.Context, rawURL string, maxChars int) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w: %w", util.ErrExtraction, err)
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w: %w", rawURL, util.ErrExtraction, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch %s: %w: status %d", rawURL, util.ErrExtraction, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse html: %w: %w", util.ErrExtraction, err)
	}
	doc.Find("script, style, noscript").Remove()

	text := util.NormalizeWhitespace(doc.Text())
	text = util.SanitizeText(text)
	if text == "" {
		return "", util.ErrNoExtractableText
	}
	return util.Truncate(text, maxChars), nil
}
