package analyses

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/just-manoj/PathoAi-API/internal/usage"
	"github.com/just-manoj/PathoAi-API/internal/vision"
)

// Service orchestrates the analysis workflow: quota check, provider
// dispatch, persistence, usage increment.
type Service struct {
	Repo      Repo
	Usage     *usage.Service
	Providers map[vision.Tier]vision.Analyzer
}

// SubmitInput carries one validated analysis submission.
type SubmitInput struct {
	Image           []byte
	Organ           string
	ClinicalContext string
	Tier            vision.Tier
}

// Submit runs a submission through quota check, the tier's provider, and
// persistence, then bumps today's counter. The increment is best-effort:
// by then the record is committed and the response is owed to the caller.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Analysis, error) {
	if err := s.Usage.Check(ctx, in.Tier); err != nil {
		return Analysis{}, err
	}

	analyzer, ok := s.Providers[in.Tier]
	if !ok {
		return Analysis{}, fmt.Errorf("no provider configured for tier %s", in.Tier)
	}

	imageBase64 := base64.StdEncoding.EncodeToString(in.Image)

	result, err := analyzer.Analyze(ctx, vision.Request{
		ImageBase64:     imageBase64,
		Organ:           in.Organ,
		ClinicalContext: in.ClinicalContext,
	})
	if err != nil {
		return Analysis{}, fmt.Errorf("analysis failed: %w", err)
	}

	a := Analysis{
		SlideImage:           imageBase64,
		Organ:                in.Organ,
		ClinicalContext:      in.ClinicalContext,
		Model:                in.Tier,
		Observation:          result.Observation,
		PreliminaryDiagnosis: result.PreliminaryDiagnosis,
		ConfidenceLevel:      result.ConfidenceLevel,
		Disclaimer:           result.Disclaimer,
		CreatedAt:            time.Now().UTC(),
	}

	id, err := s.Repo.Insert(ctx, a)
	if err != nil {
		return Analysis{}, fmt.Errorf("database operation failed: %w", err)
	}
	a.ID = id

	s.Usage.Increment(ctx, in.Tier)

	return a, nil
}

// SubmitFeedback attaches a rating/notes pair to a stored analysis and
// echoes the submitted values without re-reading the document.
func (s *Service) SubmitFeedback(ctx context.Context, analysisID string, fb Feedback) (FeedbackResult, error) {
	if err := s.Repo.AttachFeedback(ctx, analysisID, fb); err != nil {
		return FeedbackResult{}, err
	}
	return FeedbackResult{ID: analysisID, Rating: fb.Rating, Notes: fb.Notes}, nil
}

// History projects every stored analysis into its read-side view.
func (s *Service) History(ctx context.Context) ([]HistoryItem, error) {
	analyses, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("database operation failed: %w", err)
	}
	items := make([]HistoryItem, 0, len(analyses))
	for _, a := range analyses {
		items = append(items, historyItem(a))
	}
	return items, nil
}
