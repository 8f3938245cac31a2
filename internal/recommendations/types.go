package recommendations

import (
	"resume-match/internal/match"
)

// Recommendation is a deterministic suggestion derived from an analysis
// result. Identical results always produce identical recommendation lists.
type Recommendation struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Severity string `json:"severity"`
	Title    string `json:"title"`
	Why      string `json:"why"`
	Action   string `json:"action"`
	Impact   string `json:"impact"`
	Order    int    `json:"order"`
}

// Input is the analysis data the engine maps to recommendations.
type Input struct {
	Result *match.AnalysisResult
}
