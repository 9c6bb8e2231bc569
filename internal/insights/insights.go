// Package insights asks a generative language model for smart reminders
// derived from the current tasks. The call is best-effort: any failure
// surfaces as an empty result, never as an error.
package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"remindpro/internal/task"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-3-flash-preview"
)

// Suggestion is one generated reminder. Only these three fields are read
// from the model output.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Urgency     string `json:"urgency"`
}

type Client struct {
	http    *http.Client
	log     zerolog.Logger
	baseURL string
	apiKey  string
	model   string
}

func NewClient(apiKey, model string, timeout time.Duration, log zerolog.Logger) *Client {
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		log:     log,
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		model:   model,
	}
}

// taskBrief is the minimal projection sent to the model.
type taskBrief struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Category string `json:"category"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType"`
	ResponseSchema   schema `json:"responseSchema"`
}

type schema struct {
	Type       string            `json:"type"`
	Items      *schema           `json:"items,omitempty"`
	Properties map[string]schema `json:"properties,omitempty"`
	Required   []string          `json:"required,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Suggestions requests smart reminders for the given tasks. Overlapping calls
// are allowed to race; sequencing is the caller's concern.
func (c *Client) Suggestions(ctx context.Context, tasks []task.Task) []Suggestion {
	if c.apiKey == "" {
		c.log.Warn().Msg("insights requested without an API key")
		return nil
	}

	briefs := make([]taskBrief, 0, len(tasks))
	for _, t := range tasks {
		briefs = append(briefs, taskBrief{
			Title:    t.Title,
			Date:     t.DueDate.Format(time.RFC3339),
			Category: string(t.Category),
		})
	}
	briefJSON, err := json.Marshal(briefs)
	if err != nil {
		c.log.Warn().Err(err).Msg("insights request encoding failed")
		return nil
	}

	prompt := fmt.Sprintf(`Analyze these user tasks and provide 3 "Smart Reminders" or efficiency tips for a business professional.
Focus on tax deadlines, bill payments, and priority management.
Tasks: %s`, briefJSON)

	str := schema{Type: "STRING"}
	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema: schema{
				Type: "ARRAY",
				Items: &schema{
					Type: "OBJECT",
					Properties: map[string]schema{
						"title":       str,
						"description": str,
						"urgency":     str,
					},
					Required: []string{"title", "description", "urgency"},
				},
			},
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		c.log.Warn().Err(err).Msg("insights request encoding failed")
		return nil
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.log.Warn().Err(err).Msg("insights request build failed")
		return nil
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Warn().Err(err).Msg("insights request failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode).Msg("insights request rejected")
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn().Err(err).Msg("insights response unreadable")
		return nil
	}

	var gen generateResponse
	if err := json.Unmarshal(data, &gen); err != nil {
		c.log.Warn().Err(err).Msg("insights response malformed")
		return nil
	}
	if len(gen.Candidates) == 0 || len(gen.Candidates[0].Content.Parts) == 0 {
		return nil
	}

	var suggestions []Suggestion
	if err := json.Unmarshal([]byte(gen.Candidates[0].Content.Parts[0].Text), &suggestions); err != nil {
		c.log.Warn().Err(err).Msg("insights payload malformed")
		return nil
	}
	return suggestions
}
