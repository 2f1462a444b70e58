package vision

import (
	"context"
	"errors"
)

// Tier selects the analysis quality/cost class. Each tier maps to its own
// provider and its own daily quota.
type Tier string

const (
	// TierJR is the lighter tier, served by an OpenAI multimodal chat model.
	TierJR Tier = "JR"
	// TierSR is the heavier tier, served by a Gemini multimodal model.
	TierSR Tier = "SR"
)

// ParseTier validates a raw tier value from a request.
func ParseTier(raw string) (Tier, bool) {
	switch Tier(raw) {
	case TierJR, TierSR:
		return Tier(raw), true
	default:
		return "", false
	}
}

// Request carries the slide image and clinical metadata for one analysis.
type Request struct {
	ImageBase64     string
	Organ           string
	ClinicalContext string
}

// Result holds the four fields every provider must return. Fields the
// provider left out of its JSON stay empty rather than failing the call.
type Result struct {
	Observation          string `json:"observation"`
	PreliminaryDiagnosis string `json:"preliminaryDiagnosis"`
	ConfidenceLevel      string `json:"confidenceLevel"`
	Disclaimer           string `json:"disclaimer"`
}

// Analyzer abstracts the external vision providers behind one call shape.
type Analyzer interface {
	Analyze(ctx context.Context, req Request) (Result, error)
}

// ErrInvalidResponse indicates the provider returned content that is not
// valid JSON after fence stripping.
var ErrInvalidResponse = errors.New("provider returned unparseable content")
