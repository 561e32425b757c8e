package entity

import (
	"time"

	"github.com/kyo-hirano/receipt-fields/constants"
)

// Candidate is one possible value for a field. Candidates are value
// objects: once created they are never mutated, only superseded.
type Candidate struct {
	Value        string    `json:"value"`
	Confidence   float64   `json:"confidence"`
	OriginalText string    `json:"original_text"`
	Source       string    `json:"source"`
	Timestamp    time.Time `json:"timestamp"`
	IsHistory    bool      `json:"is_history,omitempty"`
}

// FieldResult is the best candidate plus a ranked shortlist for one
// field, produced per extraction call.
type FieldResult struct {
	Value      string      `json:"value"`
	Confidence float64     `json:"confidence"`
	Candidates []Candidate `json:"candidates"`
}

// ExtractionResult carries the four per-field results of one
// extraction call.
type ExtractionResult struct {
	Date    FieldResult `json:"date"`
	Payee   FieldResult `json:"payee"`
	Amount  FieldResult `json:"amount"`
	Purpose FieldResult `json:"purpose"`
}

// Field returns a pointer to the result for f, or nil for an unknown
// field.
func (r *ExtractionResult) Field(f constants.Field) *FieldResult {
	switch f {
	case constants.FieldDate:
		return &r.Date
	case constants.FieldPayee:
		return &r.Payee
	case constants.FieldAmount:
		return &r.Amount
	case constants.FieldPurpose:
		return &r.Purpose
	}
	return nil
}
