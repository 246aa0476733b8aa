package diagnosis

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

const suggestPrompt = `You are an expert Ayurvedic practitioner (Vaidya). Analyze the
patient details and the symptom record below, then suggest potential Dosha
imbalances, possible disease classifications, and your reasoning for
prioritizing the likely diagnoses.

Patient details: %s
Symptoms: %s

Respond with a JSON object holding exactly the keys "potentialImbalances",
"possibleDiseases" and "reasoning".`

// GeminiSuggester asks a Gemini model for a live diagnosis suggestion.
type GeminiSuggester struct {
	client *genai.Client
	model  string
}

func NewGeminiSuggester(ctx context.Context, apiKey, model string) (*GeminiSuggester, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiSuggester{client: client, model: model}, nil
}

func (s *GeminiSuggester) Suggest(ctx context.Context, in Input) (*Result, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(fmt.Sprintf(suggestPrompt, in.PatientDetails, in.Symptoms), genai.RoleUser),
	}
	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("generate diagnosis: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, ErrEmptyResponse
	}
	var out Result
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("decode diagnosis response: %w", err)
	}
	if out.PotentialImbalances == "" && out.PossibleDiseases == "" && out.Reasoning == "" {
		return nil, ErrEmptyResponse
	}
	return &out, nil
}
