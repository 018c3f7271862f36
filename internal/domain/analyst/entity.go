package analyst

import "time"

// AnalysisID identifier type
type AnalysisID string

// Analysis is one canonical persona output kept for later retrieval and export.
type Analysis struct {
	ID         AnalysisID `json:"id"`
	DocumentID string     `json:"document_id"`
	Type       string     `json:"analysis_type"`
	Result     string     `json:"result"`
	CreatedAt  time.Time  `json:"created_at"`
}
