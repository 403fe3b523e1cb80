package stops

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/platform/obs"
)

// LLMGenerator produces candidate stops for destinations the catalog
// does not cover, using an OpenAI-compatible chat completions endpoint.
//
// The model is asked for a bare JSON array; because models wrap output
// in markdown fences or prose anyway, parsing extracts the outermost
// array before decoding. Entries without a name are dropped and missing
// optional fields are defaulted, never rejected.
type LLMGenerator struct {
	session *http.Client
	apiKey  string
	model   string
	baseURL string
}

const defaultChatModel = "gpt-3.5-turbo"

func NewLLMGenerator(apiKey, model, baseURL string) (*LLMGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("llm api key is empty")
	}
	if model == "" {
		model = defaultChatModel
	}
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	return &LLMGenerator{
		session: &http.Client{Timeout: 60 * time.Second},
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (g *LLMGenerator) ListStops(ctx context.Context, destination string, interests []string) (_ []domain.Stop, err error) {
	defer obs.Time(ctx, "llm.ListStops")(&err)

	payload, err := json.Marshal(chatRequest{
		Model:       g.model,
		Temperature: 0,
		Messages: []chatMessage{
			{Role: "user", Content: stopPrompt(destination, interests)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("chat request status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("decode chat response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return nil, errors.New("chat response has no choices")
	}

	stops, err := ParseStopsJSON(cr.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("parse generated stops for %q: %w", destination, err)
	}

	return stops, nil
}

func stopPrompt(destination string, interests []string) string {
	focus := "general popular attractions"
	if len(interests) > 0 {
		focus = strings.Join(interests, ", ")
	}

	return fmt.Sprintf(`You are a travel guide expert. Generate exactly 10-15 popular points of interest for %s.

Requirements for each entry:
1. name: exact name of the attraction/place (string)
2. category: one or more categories separated by commas: art, history, food, nature, architecture, shopping, landmarks, museums, etc. (string)
3. desc: brief description in 1-2 sentences (string)
4. duration_mins: visit duration in minutes, typically 60-180 (integer)
5. lat: approximate latitude as decimal number between -90 and 90 (float)
6. lng: approximate longitude as decimal number between -180 and 180 (float)

Focus on these interests: %s

CRITICAL: Return ONLY a valid JSON array. No markdown, no code blocks, no explanations, no extra text before or after.

Now generate the points of interest for %s:`, destination, focus, destination)
}

type generatedStop struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Description     string  `json:"desc"`
	DurationMinutes int     `json:"duration_mins"`
	Lat             float64 `json:"lat"`
	Lng             float64 `json:"lng"`
}

// ParseStopsJSON decodes a model response into stops. It tolerates
// markdown fences and surrounding prose by extracting the outermost
// JSON array, then defaults missing fields and drops nameless entries.
func ParseStopsJSON(content string) ([]domain.Stop, error) {
	cleaned := strings.ReplaceAll(content, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end == -1 || end < start {
		return nil, errors.New("response contains no JSON array")
	}

	var raw []generatedStop
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("unmarshal stops array: %w", err)
	}

	stops := make([]domain.Stop, 0, len(raw))
	for _, g := range raw {
		if strings.TrimSpace(g.Name) == "" {
			continue
		}

		if g.DurationMinutes <= 0 {
			g.DurationMinutes = 60
		}

		stops = append(stops, domain.Stop{
			Name:            g.Name,
			Category:        g.Category,
			Description:     g.Description,
			DurationMinutes: g.DurationMinutes,
			Coord:           domain.Coordinates{Lat: g.Lat, Lng: g.Lng},
		})
	}

	return stops, nil
}
