package models

// CandidateSlot is a work block proposed by the model. Start and End
// are kept as the RFC3339 strings exactly as proposed; a candidate
// carries no authority until it survives validation.
type CandidateSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// RejectedCandidate pairs a discarded candidate with the reason it was
// dropped. Rejections are data, not errors.
type RejectedCandidate struct {
	Candidate CandidateSlot `json:"slot"`
	Reason    string        `json:"reason"`
}
