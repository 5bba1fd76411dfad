package lyrics

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/zhubert/songbook/internal/errors"
)

const (
	// DefaultGeminiModel is the model used when none is configured.
	DefaultGeminiModel = "gemini-2.5-flash"
)

const promptTemplate = `You are a professional choir master and lyrics database.
Please provide the full lyrics for the song titled %q (also known as or related to %q).

Requirements:
1. If the song title is in Malayalam, provide the lyrics in Malayalam script.
2. If the song title is in English, provide the lyrics in English.
3. Format the lyrics neatly into stanzas with line breaks.
4. Do NOT include any introductory or concluding text (like "Here are the lyrics"). Just the lyrics.
5. Ensure correct spelling and traditional phrasing.`

// Prompt builds the generation prompt for a song.
func Prompt(displayTitle, alternateTitle string) string {
	if alternateTitle == "" {
		alternateTitle = displayTitle
	}
	return fmt.Sprintf(promptTemplate, displayTitle, alternateTitle)
}

// GeminiGenerator asks a Gemini model for lyrics through the genai SDK.
type GeminiGenerator struct {
	APIKey string
	Model  string
	// Endpoint overrides the Gemini API base URL. Empty uses the SDK default.
	Endpoint string
	client   *http.Client
}

// NewGeminiGenerator returns a generator for model using apiKey.
func NewGeminiGenerator(apiKey, model string, timeout time.Duration) *GeminiGenerator {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiGenerator{
		APIKey: apiKey,
		Model:  model,
		client: newHTTPClient(timeout),
	}
}

func (g *GeminiGenerator) Name() string {
	return "gemini"
}

func (g *GeminiGenerator) newClient(ctx context.Context) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      g.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  g.client,
		HTTPOptions: genai.HTTPOptions{BaseURL: g.Endpoint},
	})
}

func (g *GeminiGenerator) Generate(ctx context.Context, displayTitle, alternateTitle string) (string, error) {
	op := errors.Op("lyrics.Gemini")
	if g.APIKey == "" {
		return "", errors.E(op, errors.KindConfig, "no Gemini API key configured")
	}

	client, err := g.newClient(ctx)
	if err != nil {
		return "", errors.E(op, errors.KindConfig, "failed to create client", err)
	}

	resp, err := client.Models.GenerateContent(ctx, g.Model, genai.Text(Prompt(displayTitle, alternateTitle)), nil)
	if err != nil {
		var apiErr genai.APIError
		if stderrors.As(err, &apiErr) {
			return "", errors.E(op, errors.KindNetwork, fmt.Sprintf("provider error %d: %s", apiErr.Code, apiErr.Message), err)
		}
		if ctx.Err() != nil {
			return "", errors.E(op, errors.KindTimeout, "request cancelled", err)
		}
		return "", errors.E(op, errors.KindNetwork, "request failed", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.GenerationEmpty(displayTitle)
	}
	return text, nil
}
