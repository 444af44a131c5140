package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/yourname/axis/internal"
)

type Kind string

const (
	KindHabit   Kind = "HABIT"
	KindJournal Kind = "JOURNAL"
	KindOrder   Kind = "ORDER"
)

// FallbackInsight is returned whenever the completion call fails.
const FallbackInsight = "Focus on the present moment."

// FallbackQuestions is returned whenever the identity-questions call fails.
var FallbackQuestions = []string{
	"Who do you want to be in 5 years?",
	"What habits are destroying you?",
	"Define your ultimate responsibility.",
}

// Service is the boundary to the hosted completion model. Both
// operations degrade to fixed fallbacks and never return an error.
type Service interface {
	BehavioralInsight(ctx context.Context, contextText string, kind Kind) string
	IdentityQuestions(ctx context.Context) []string
}

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com"
	geminiModel   = "gemini-2.5-flash"
)

type GeminiClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  internal.Logger
}

type geminiRequest struct {
	Contents         []geminiContent   `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func NewGeminiClient(apiKey, baseURL string, logger internal.Logger) *GeminiClient {
	if baseURL == "" {
		baseURL = geminiBaseURL
	}
	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

func promptFor(contextText string, kind Kind) string {
	switch kind {
	case KindHabit:
		return fmt.Sprintf(`Act as a behavioral scientist. The user is struggling with this context: %q. Provide one specific, micro-behavioral adjustment to increase success probability. Keep it under 20 words.`, contextText)
	case KindJournal:
		return fmt.Sprintf(`Act as a stoic philosopher and psychologist. Read this journal entry: %q. Provide one hard truth or reframing perspective to build mental clarity. Max 2 sentences.`, contextText)
	case KindOrder:
		return fmt.Sprintf(`The user needs to declutter or organize their life. Context/Room: %q. Give a strictly 10-minute specific micro-task to restore order. Imperative mood.`, contextText)
	}
	return contextText
}

// BehavioralInsight returns a short model-generated tip for the given
// context, or FallbackInsight on any failure.
func (c *GeminiClient) BehavioralInsight(ctx context.Context, contextText string, kind Kind) string {
	text, err := c.generate(ctx, promptFor(contextText, kind), false)
	if err != nil {
		c.logger.Warnf("insight: completion failed: %v", err)
		return FallbackInsight
	}
	return strings.TrimSpace(text)
}

// IdentityQuestions returns three reflective questions as structured
// output, or FallbackQuestions on any failure.
func (c *GeminiClient) IdentityQuestions(ctx context.Context) []string {
	const prompt = "Generate 3 profound, Jordan Peterson-style self-authoring questions for someone building their long-term identity. Return as JSON array of strings."
	text, err := c.generate(ctx, prompt, true)
	if err != nil {
		c.logger.Warnf("insight: identity questions failed: %v", err)
		return FallbackQuestions
	}
	var questions []string
	if err := json.Unmarshal([]byte(text), &questions); err != nil || len(questions) == 0 {
		c.logger.Warnf("insight: malformed identity questions payload: %v", err)
		return FallbackQuestions
	}
	return questions
}

func (c *GeminiClient) generate(ctx context.Context, prompt string, structured bool) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("GEMINI_API_KEY not set")
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	if structured {
		reqBody.GenerationConfig = &generationConfig{ResponseMimeType: "application/json"}
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, geminiModel)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("insight: completion endpoint returned %d", resp.StatusCode)
	}

	var body geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if len(body.Candidates) == 0 || len(body.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("insight: empty completion response")
	}
	return body.Candidates[0].Content.Parts[0].Text, nil
}

var _ Service = (*GeminiClient)(nil)
