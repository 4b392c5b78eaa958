package ai

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient wraps a single generative model used for every extraction
// and planning prompt.
type GeminiClient struct {
	model     *genai.GenerativeModel
	modelName string
}

func NewGeminiClient(apiKey, modelName string) *GeminiClient {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	return &GeminiClient{
		model:     client.GenerativeModel(modelName),
		modelName: modelName,
	}
}

func (g *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error (%s): %w", g.modelName, err)
	}
	return textFromResponse(resp)
}

// textFromResponse concatenates the text parts of the first candidate.
// Empty responses are an error; every prompt in this package expects a
// non-empty answer.
func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return sb.String(), nil
}
