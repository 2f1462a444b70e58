package usage

import (
	"time"

	"github.com/just-manoj/PathoAi-API/internal/vision"
)

// Record is one day's usage-limit document. Records are provisioned
// outside this service; it only reads and increments them.
type Record struct {
	ID      string `json:"id,omitempty"`
	Date    string `json:"date"`
	JRUsed  int    `json:"jrUsed"`
	SRUsed  int    `json:"srUsed"`
	JRLimit int    `json:"jrLimit"`
	SRLimit int    `json:"srLimit"`
}

// Used returns the consumed counter for a tier.
func (r Record) Used(tier vision.Tier) int {
	if tier == vision.TierSR {
		return r.SRUsed
	}
	return r.JRUsed
}

// Limit returns the ceiling for a tier.
func (r Record) Limit(tier vision.Tier) int {
	if tier == vision.TierSR {
		return r.SRLimit
	}
	return r.JRLimit
}

// DateKey renders the calendar-date key used for usage records.
func DateKey(t time.Time) string {
	return t.Format("02-01-2006")
}
