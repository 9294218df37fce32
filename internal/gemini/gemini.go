package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	apperrors "webclass/internal/errors"
)

// ErrDisabled is returned by the generator built without an API key.
var ErrDisabled = errors.New("gemini api key not configured")

// Generator forwards a prompt to a generative model.
type Generator interface {
	Generate(ctx context.Context, query string) (*genai.GenerateContentResponse, error)
}

// Client calls the Gemini API through the genai SDK.
type Client struct {
	client *genai.Client
	model  string
	apiKey string
}

// New creates a Gemini client. An empty key yields a Disabled generator so the
// server can still start.
func New(ctx context.Context, apiKey, model string) (Generator, error) {
	if apiKey == "" {
		return Disabled{}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", scrub(err, apiKey))
	}

	return &Client{client: client, model: model, apiKey: apiKey}, nil
}

// Generate sends the query as a single text part. Errors wrap ErrUpstream and never carry the key.
func (c *Client) Generate(ctx context.Context, query string) (*genai.GenerateContentResponse, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(query), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUpstream, scrub(err, c.apiKey))
	}
	return resp, nil
}

// Disabled answers every call with ErrUpstream.
type Disabled struct{}

func (Disabled) Generate(context.Context, string) (*genai.GenerateContentResponse, error) {
	return nil, fmt.Errorf("%w: %w", apperrors.ErrUpstream, ErrDisabled)
}

func scrub(err error, secret string) error {
	if err == nil || secret == "" {
		return err
	}
	msg := err.Error()
	if !strings.Contains(msg, secret) {
		return err
	}
	return errors.New(strings.ReplaceAll(msg, secret, "[redacted]"))
}
