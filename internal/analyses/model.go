package analyses

import (
	"time"

	"github.com/just-manoj/PathoAi-API/internal/vision"
)

// Analysis is one slide-analysis document. Result fields are populated
// only when the provider call succeeded before persistence; feedback is
// attached at most once, later.
type Analysis struct {
	ID                   string      `json:"id,omitempty"`
	SlideImage           string      `json:"slideImage"`
	Organ                string      `json:"organ"`
	ClinicalContext      string      `json:"clinicalContext"`
	Model                vision.Tier `json:"model"`
	Observation          string      `json:"observation,omitempty"`
	PreliminaryDiagnosis string      `json:"preliminaryDiagnosis,omitempty"`
	ConfidenceLevel      string      `json:"confidenceLevel,omitempty"`
	Disclaimer           string      `json:"disclaimer,omitempty"`
	CreatedAt            time.Time   `json:"createdAt"`
	Feedback             *Feedback   `json:"feedback,omitempty"`
}

// Feedback is the rating/notes pair attached to an analysis.
type Feedback struct {
	Rating int    `bson:"rating" json:"rating"`
	Notes  string `bson:"notes" json:"notes"`
}

// FeedbackResult echoes submitted feedback together with its analysis id.
type FeedbackResult struct {
	ID     string `json:"id"`
	Rating int    `json:"rating"`
	Notes  string `json:"notes"`
}

// HistoryItem is the read-side projection of an Analysis. Result fields
// default to empty independently; feedback is null when never submitted.
type HistoryItem struct {
	ID                   string    `json:"id"`
	SlideImage           string    `json:"slideImage"`
	Organ                string    `json:"organ"`
	ClinicalContext      string    `json:"clinicalContext"`
	Model                string    `json:"model"`
	Observation          string    `json:"observation,omitempty"`
	PreliminaryDiagnosis string    `json:"preliminaryDiagnosis,omitempty"`
	ConfidenceLevel      string    `json:"confidenceLevel,omitempty"`
	Disclaimer           string    `json:"disclaimer,omitempty"`
	CreatedAt            string    `json:"createdAt,omitempty"`
	Feedback             *Feedback `json:"feedback"`
}

func historyItem(a Analysis) HistoryItem {
	item := HistoryItem{
		ID:                   a.ID,
		SlideImage:           a.SlideImage,
		Organ:                a.Organ,
		ClinicalContext:      a.ClinicalContext,
		Model:                string(a.Model),
		Observation:          a.Observation,
		PreliminaryDiagnosis: a.PreliminaryDiagnosis,
		ConfidenceLevel:      a.ConfidenceLevel,
		Disclaimer:           a.Disclaimer,
		Feedback:             a.Feedback,
	}
	if !a.CreatedAt.IsZero() {
		item.CreatedAt = a.CreatedAt.UTC().Format(time.RFC3339)
	}
	return item
}
