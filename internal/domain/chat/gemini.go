package chat

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiStreamer streams live replies from a Gemini model.
type GeminiStreamer struct {
	client *genai.Client
	model  string
}

func NewGeminiStreamer(ctx context.Context, apiKey, model string) (*GeminiStreamer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiStreamer{client: client, model: model}, nil
}

func (s *GeminiStreamer) Stream(ctx context.Context, history []Message) (<-chan Chunk, error) {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		var role genai.Role = genai.RoleUser
		if msg.Role == RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, role))
	}

	out := make(chan Chunk)
	go func() {
		defer close(out)
		for resp, err := range s.client.Models.GenerateContentStream(ctx, s.model, contents, nil) {
			if err != nil {
				select {
				case out <- Chunk{Err: fmt.Errorf("stream reply: %w", err)}:
				case <-ctx.Done():
				}
				return
			}
			text := resp.Text()
			if text == "" {
				continue
			}
			select {
			case out <- Chunk{Text: text}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
