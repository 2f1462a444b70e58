package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/just-manoj/PathoAi-API/internal/vision"
)

// Client implements vision.Analyzer using the Gemini generation endpoint.
type Client struct {
	apiKey string
	model  string
}

// New constructs a Gemini-backed analyzer. A missing token is not an
// error here; it surfaces when the first analysis is attempted.
func New(apiKey, model string) *Client {
	return &Client{
		apiKey: strings.TrimSpace(apiKey),
		model:  strings.TrimSpace(model),
	}
}

// Analyze sends the prompt plus the decoded image bytes as a blob part,
// cleans the response and parses the four result fields.
func (c *Client) Analyze(ctx context.Context, req vision.Request) (vision.Result, error) {
	if c.apiKey == "" {
		return vision.Result{}, errors.New("GEMINI_TOKEN is empty")
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return vision.Result{}, err
	}
	defer cl.Close()

	m := cl.GenerativeModel(c.model)
	if m == nil {
		return vision.Result{}, fmt.Errorf("gemini: model is nil")
	}
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0),
		ResponseMIMEType: "application/json",
	}

	imgBytes, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		return vision.Result{}, fmt.Errorf("gemini: bad base64 image: %w", err)
	}

	parts := []genai.Part{
		genai.Text(vision.BuildPrompt(req.Organ, req.ClinicalContext)),
		&genai.Blob{MIMEType: "image/jpeg", Data: imgBytes},
	}

	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return vision.Result{}, fmt.Errorf("gemini generate: %w", err)
	}

	txt := firstText(resp)
	if txt == "" {
		return vision.Result{}, fmt.Errorf("gemini: empty response")
	}
	return vision.ParseResult(txt)
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok && strings.TrimSpace(string(txt)) != "" {
				return string(txt)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
