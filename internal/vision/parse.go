package vision

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripCodeFences removes a triple-backtick wrapper, optionally tagged
// with a json language marker, from model output.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ParseResult cleans raw provider output and decodes it into a Result.
// Keys absent from the provider's JSON map to empty fields; content that
// is not a JSON object fails with ErrInvalidResponse.
func ParseResult(raw string) (Result, error) {
	clean := StripCodeFences(raw)

	var res Result
	if err := json.Unmarshal([]byte(clean), &res); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return res, nil
}
