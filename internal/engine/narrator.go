package engine

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"github.com/tatianab/forest-quest/internal/models"
	"google.golang.org/api/option"
)

//go:embed prompts/rumor.txt
var rumorPrompt string

var rumorTemplate = template.Must(template.New("rumor").Parse(rumorPrompt))

// Narrator adds generated flavor text to hint events.
type Narrator interface {
	Rumor(ctx context.Context, area string, g models.Guardian) (string, error)
}

// GeminiNarrator asks a Gemini model for rumors.
type GeminiNarrator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiNarrator(ctx context.Context, apiKey, modelName string) (*GeminiNarrator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel(modelName)
	return &GeminiNarrator{
		client: client,
		model:  model,
	}, nil
}

func (n *GeminiNarrator) Close() {
	n.client.Close()
}

func (n *GeminiNarrator) Rumor(ctx context.Context, area string, g models.Guardian) (string, error) {
	prompt, err := renderRumorPrompt(area, g)
	if err != nil {
		return "", err
	}

	resp, err := n.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	return firstText(resp)
}

func renderRumorPrompt(area string, g models.Guardian) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Area        string
		Guardian    string
		Service     string
		Description string
		Weakness    string
	}{
		Area:        area,
		Guardian:    g.Name,
		Service:     g.Service,
		Description: g.Description,
		Weakness:    g.Weakness,
	}
	if err := rumorTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini")
	}

	line := strings.TrimSpace(string(text))
	line = strings.Trim(line, "\"")
	if line == "" {
		return "", fmt.Errorf("empty rumor from Gemini")
	}
	return line, nil
}
