package analyses

import (
	"time"

	"resume-match/internal/match"
	"resume-match/internal/recommendations"
)

// Report is the full outcome of one analysis run. Reports are computed
// synchronously, returned to the caller, and never persisted; resume and job
// text stay out of the database entirely.
type Report struct {
	AnalysisID      string                           `json:"analysisId"`
	DocumentID      string                           `json:"documentId,omitempty"`
	Result          *match.AnalysisResult            `json:"result"`
	Recommendations []recommendations.Recommendation `json:"recommendations"`
	GeneratedAt     time.Time                        `json:"generatedAt"`
}
