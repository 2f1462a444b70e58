package vision

import (
	"errors"
	"testing"
)

func TestParseResult(t *testing.T) {
	full := `{"observation":"dense infiltrate","preliminaryDiagnosis":"cirrhosis","confidenceLevel":"Medium","disclaimer":"not a diagnosis"}`

	tests := []struct {
		name    string
		raw     string
		want    Result
		wantErr bool
	}{
		{
			name: "plain json",
			raw:  full,
			want: Result{
				Observation:          "dense infiltrate",
				PreliminaryDiagnosis: "cirrhosis",
				ConfidenceLevel:      "Medium",
				Disclaimer:           "not a diagnosis",
			},
		},
		{
			name: "fenced json",
			raw:  "```\n" + full + "\n```",
			want: Result{
				Observation:          "dense infiltrate",
				PreliminaryDiagnosis: "cirrhosis",
				ConfidenceLevel:      "Medium",
				Disclaimer:           "not a diagnosis",
			},
		},
		{
			name: "fenced with json tag",
			raw:  "```json\n" + full + "\n```",
			want: Result{
				Observation:          "dense infiltrate",
				PreliminaryDiagnosis: "cirrhosis",
				ConfidenceLevel:      "Medium",
				Disclaimer:           "not a diagnosis",
			},
		},
		{
			name: "missing keys default to empty",
			raw:  `{"observation":"only this"}`,
			want: Result{Observation: "only this"},
		},
		{
			name:    "not json",
			raw:     "I am sorry, I cannot analyze this image.",
			wantErr: true,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResult(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidResponse) {
					t.Fatalf("expected ErrInvalidResponse, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseResult: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseResult = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseTier(t *testing.T) {
	if tier, ok := ParseTier("JR"); !ok || tier != TierJR {
		t.Fatalf("ParseTier(JR) = %v, %v", tier, ok)
	}
	if tier, ok := ParseTier("SR"); !ok || tier != TierSR {
		t.Fatalf("ParseTier(SR) = %v, %v", tier, ok)
	}
	for _, raw := range []string{"", "jr", "XL", "JR "} {
		if _, ok := ParseTier(raw); ok {
			t.Fatalf("ParseTier(%q) unexpectedly valid", raw)
		}
	}
}
