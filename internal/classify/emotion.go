package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const EmotionNeutral = "neutral"

// emotionOrder fixes the tie-break between equal scores.
var emotionOrder = []string{"happy", "sad", "angry", "fear", "surprise"}

var emotionLexicon = map[string][]string{
	"happy":    {"happy", "glad", "great", "good", "relieved", "thank", "thanks", "wonderful", "won", "justice"},
	"sad":      {"sad", "unhappy", "cry", "crying", "depressed", "hopeless", "lost", "grief", "miserable"},
	"angry":    {"angry", "furious", "cheated", "fraud", "unfair", "harassed", "harassment", "outraged", "betrayed"},
	"fear":     {"afraid", "scared", "fear", "worried", "threat", "threatened", "arrest", "police", "panic", "anxious"},
	"surprise": {"shocked", "surprised", "sudden", "suddenly", "unexpected", "unbelievable"},
}

// LexicalEmotion scores text against a small emotion wordlist and returns the
// highest-scoring label, or "neutral" when nothing matches. Informational only;
// the result never feeds back into a prompt.
func LexicalEmotion(text string) string {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return EmotionNeutral
	}
	present := make(map[string]struct{}, len(words))
	for _, w := range words {
		present[strings.Trim(w, ",.;:!?()\"'")] = struct{}{}
	}

	scores := make(map[string]int, len(emotionLexicon))
	for emotion, lexicon := range emotionLexicon {
		for _, term := range lexicon {
			if _, ok := present[term]; ok {
				scores[emotion]++
			}
		}
	}

	best, bestScore := EmotionNeutral, 0
	for _, emotion := range emotionOrder {
		if scores[emotion] > bestScore {
			best, bestScore = emotion, scores[emotion]
		}
	}
	return best
}

// Classifier labels a piece of text. Failures are absorbed by callers, which
// fall back to "neutral".
type Classifier interface {
	Classify(ctx context.Context, text string) (string, error)
}

// HTTPClassifier calls a hosted text-classification endpoint that follows the
// common inference-API shape: POST {"inputs": text} returning ranked labels.
type HTTPClassifier struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewHTTPClassifier(endpoint, apiKey string) *HTTPClassifier {
	return &HTTPClassifier{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClassifier) Classify(ctx context.Context, text string) (string, error) {
	payload, _ := json.Marshal(map[string]any{"inputs": text})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("classify request failed: %w", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("classify error %d: %s", resp.StatusCode, string(body))
	}

	var parsed [][]struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode classify response: %w", err)
	}
	if len(parsed) == 0 || len(parsed[0]) == 0 {
		return "", fmt.Errorf("classifier returned no labels")
	}
	return strings.ToLower(parsed[0][0].Label), nil
}

// Emotion labels text with whichever strategy is configured. With a hosted
// classifier wired in, any failure of it yields "neutral" outright; the
// lexical scorer is the strategy for deployments without one, not a fallback
// for a broken endpoint.
func Emotion(ctx context.Context, c Classifier, text string) string {
	if c != nil {
		label, err := c.Classify(ctx, text)
		if err != nil || label == "" {
			return EmotionNeutral
		}
		return label
	}
	return LexicalEmotion(text)
}
