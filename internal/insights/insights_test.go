package insights

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remindpro/internal/task"
)

func testClient(baseURL string) *Client {
	c := NewClient("test-key", "test-model", time.Second, zerolog.Nop())
	c.baseURL = baseURL
	return c
}

func testTasks() []task.Task {
	return []task.Task{{
		Title:    "File VAT",
		Category: task.CategoryTaxes,
		DueDate:  time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC),
	}}
}

func generateBody(t *testing.T, inner any) []byte {
	t.Helper()
	text, err := json.Marshal(inner)
	require.NoError(t, err)
	body, err := json.Marshal(map[string]any{
		"candidates": []map[string]any{{
			"content": map[string]any{
				"parts": []map[string]any{{"text": string(text)}},
			},
		}},
	})
	require.NoError(t, err)
	return body
}

func TestSuggestions(t *testing.T) {
	var gotPath, gotKey string
	var gotReq generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write(generateBody(t, []Suggestion{
			{Title: "Quarterly filing", Description: "VAT is overdue", Urgency: "high"},
		}))
	}))
	defer srv.Close()

	got := testClient(srv.URL).Suggestions(context.Background(), testTasks())

	require.Len(t, got, 1)
	assert.Equal(t, "Quarterly filing", got[0].Title)
	assert.Equal(t, "high", got[0].Urgency)

	assert.Equal(t, "/models/test-model:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "application/json", gotReq.GenerationConfig.ResponseMIMEType)
	require.Len(t, gotReq.Contents, 1)
	prompt := gotReq.Contents[0].Parts[0].Text
	// only the minimal projection goes out: title, date, category
	assert.Contains(t, prompt, `"title":"File VAT"`)
	assert.Contains(t, prompt, `"category":"Taxes"`)
	assert.NotContains(t, prompt, "isCompleted")
}

func TestSuggestionsWithoutKey(t *testing.T) {
	c := NewClient("", "m", time.Second, zerolog.Nop())
	assert.Empty(t, c.Suggestions(context.Background(), testTasks()))
}

func TestSuggestionsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	assert.Empty(t, testClient(srv.URL).Suggestions(context.Background(), testTasks()))
}

func TestSuggestionsMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	assert.Empty(t, testClient(srv.URL).Suggestions(context.Background(), testTasks()))
}

func TestSuggestionsMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(generateBody(t, map[string]string{"oops": "object, not array"}))
	}))
	defer srv.Close()

	assert.Empty(t, testClient(srv.URL).Suggestions(context.Background(), testTasks()))
}

func TestSuggestionsNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	assert.Empty(t, testClient(srv.URL).Suggestions(context.Background(), testTasks()))
}

func TestSuggestionsUnreachableHost(t *testing.T) {
	c := testClient("http://127.0.0.1:1")
	assert.Empty(t, c.Suggestions(context.Background(), testTasks()))
}
