package constants

// Candidate provenance tags.
const (
	SourceOCR     = "ocr"     // freshly derived from OCR text this call
	SourceHistory = "history" // re-surfaced from the session history buffer
	SourceManual  = "manual"  // entered or confirmed by the reviewer
)
