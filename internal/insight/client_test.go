package insight

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/yourname/axis/internal"
)

func testLogger() internal.Logger {
	return internal.NewZapLogger(zap.NewNop().Sugar())
}

func completionServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NotEmpty(t, r.Header.Get("x-goog-api-key"))
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestBehavioralInsight_TrimsResponse(t *testing.T) {
	srv := completionServer(t, 200, `{"candidates":[{"content":{"parts":[{"text":"  Shrink the habit to two minutes. \n"}]}}]}`)
	defer srv.Close()

	c := NewGeminiClient("test-key", srv.URL, testLogger())
	got := c.BehavioralInsight(context.Background(), "daily reading", KindHabit)
	assert.Equal(t, "Shrink the habit to two minutes.", got)
}

func TestBehavioralInsight_FallbackOnServerError(t *testing.T) {
	srv := completionServer(t, 500, `{"error":{"message":"boom"}}`)
	defer srv.Close()

	c := NewGeminiClient("test-key", srv.URL, testLogger())
	for _, kind := range []Kind{KindHabit, KindJournal, KindOrder} {
		got := c.BehavioralInsight(context.Background(), "anything", kind)
		assert.Equal(t, "Focus on the present moment.", got)
	}
}

func TestBehavioralInsight_FallbackOnMalformedResponse(t *testing.T) {
	srv := completionServer(t, 200, `{"candidates":[]}`)
	defer srv.Close()

	c := NewGeminiClient("test-key", srv.URL, testLogger())
	got := c.BehavioralInsight(context.Background(), "anything", KindJournal)
	assert.Equal(t, FallbackInsight, got)
}

func TestBehavioralInsight_FallbackWithoutAPIKey(t *testing.T) {
	c := NewGeminiClient("", "http://127.0.0.1:0", testLogger())
	got := c.BehavioralInsight(context.Background(), "anything", KindOrder)
	assert.Equal(t, FallbackInsight, got)
}

func TestIdentityQuestions_ParsesArray(t *testing.T) {
	srv := completionServer(t, 200, `{"candidates":[{"content":{"parts":[{"text":"[\"Q1?\",\"Q2?\",\"Q3?\"]"}]}}]}`)
	defer srv.Close()

	c := NewGeminiClient("test-key", srv.URL, testLogger())
	got := c.IdentityQuestions(context.Background())
	assert.Equal(t, []string{"Q1?", "Q2?", "Q3?"}, got)
}

func TestIdentityQuestions_FallbackList(t *testing.T) {
	srv := completionServer(t, 503, ``)
	defer srv.Close()

	c := NewGeminiClient("test-key", srv.URL, testLogger())
	got := c.IdentityQuestions(context.Background())
	assert.Equal(t, []string{
		"Who do you want to be in 5 years?",
		"What habits are destroying you?",
		"Define your ultimate responsibility.",
	}, got)
}

func TestIdentityQuestions_FallbackOnNonArrayPayload(t *testing.T) {
	srv := completionServer(t, 200, `{"candidates":[{"content":{"parts":[{"text":"not json"}]}}]}`)
	defer srv.Close()

	c := NewGeminiClient("test-key", srv.URL, testLogger())
	got := c.IdentityQuestions(context.Background())
	assert.Equal(t, FallbackQuestions, got)
}
