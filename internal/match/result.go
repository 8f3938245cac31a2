package match

import (
	"resume-match/internal/match/keywords"
	"resume-match/internal/match/sections"
	"resume-match/internal/match/similarity"
)

// AnalysisResult is the full output of one analysis run. It is held in
// memory and returned to the caller only; nothing in it is ever written to
// storage.
type AnalysisResult struct {
	// CompatibilityScore is the headline 0-100 score.
	CompatibilityScore int `json:"compatibilityScore"`
	// Similarity carries the raw cosine behind the headline score.
	Similarity similarity.Details `json:"similarity"`
	// MissingKeywords lists job-description terms absent from the resume,
	// ranked by importance, capped per config.
	MissingKeywords []keywords.RankedKeyword `json:"missingKeywords"`
	// SectionScores holds one entry per canonical section, present or not.
	SectionScores map[sections.Name]sections.Score `json:"sectionScores"`
}
