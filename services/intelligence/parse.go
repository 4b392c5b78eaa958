package ai

import (
	"encoding/json"
	"strings"

	"tempora/models"
)

// stripFences removes a markdown code fence around a model response, with or
// without a json language tag.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// decodeEvents accepts either a single event object or an array of them.
func decodeEvents(raw string) ([]models.ExtractedEvent, error) {
	raw = stripFences(raw)

	var events []models.ExtractedEvent
	if err := json.Unmarshal([]byte(raw), &events); err == nil {
		return events, nil
	}

	var single models.ExtractedEvent
	if err := json.Unmarshal([]byte(raw), &single); err != nil {
		return nil, err
	}
	return []models.ExtractedEvent{single}, nil
}

// decodeCandidates accepts a JSON array of proposed slots. An empty or
// non-array response yields an empty list rather than an error when the
// payload is the literal empty array.
func decodeCandidates(raw string) ([]models.CandidateSlot, error) {
	raw = stripFences(raw)

	var slots []models.CandidateSlot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, err
	}
	return slots, nil
}
