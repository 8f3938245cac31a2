package recommendations

import (
	"fmt"
	"strings"

	"resume-match/internal/match/keywords"
	"resume-match/internal/match/sections"
)

const keywordFocusCount = 8

// fromMissingKeywords folds the ranked keyword gaps into a single
// recommendation naming the highest-importance terms.
func fromMissingKeywords(input Input) []Recommendation {
	missing := input.Result.MissingKeywords
	if len(missing) == 0 {
		return nil
	}

	focus := make([]string, 0, keywordFocusCount)
	technical := 0
	for _, kw := range missing {
		if len(focus) < keywordFocusCount {
			focus = append(focus, kw.Term)
		}
		if kw.Category == keywords.CategoryTechnical {
			technical++
		}
	}

	severity := "warning"
	impact := "medium"
	if technical >= 3 || len(missing) >= 10 {
		impact = "high"
	}

	return []Recommendation{
		{
			ID:       "KEYWORDS_MISSING_FROM_JOB",
			Category: "KEYWORDS",
			Severity: severity,
			Title:    "Add missing job keywords",
			Why:      "The job description emphasizes terms the resume never mentions.",
			Action:   "Work these terms naturally into Skills and Experience bullets: " + strings.Join(focus, ", "),
			Impact:   impact,
		},
	}
}

// fromSectionScores turns per-section findings into recommendations: one per
// absent section, one per weak present section carrying improvement areas.
func fromSectionScores(input Input) []Recommendation {
	out := make([]Recommendation, 0, len(sections.KnownNames))
	for _, name := range sections.KnownNames {
		if name == sections.Other {
			continue
		}
		score, ok := input.Result.SectionScores[name]
		if !ok {
			continue
		}

		if !score.Present {
			out = append(out, Recommendation{
				ID:       "SECTION_MISSING_" + slugify(string(name)),
				Category: "STRUCTURE",
				Severity: "critical",
				Title:    fmt.Sprintf("Add a %s section", name),
				Why:      "Screeners and parsers expect this section; its absence reads as a gap.",
				Action:   fmt.Sprintf("Add a clearly headed %s section.", name),
				Impact:   "high",
			})
			continue
		}

		if score.Score >= 70 || len(score.ImprovementAreas) == 0 {
			continue
		}

		severity := "info"
		impact := "low"
		if score.Score < 40 {
			severity = "warning"
			impact = "medium"
		}
		out = append(out, Recommendation{
			ID:       "SECTION_WEAK_" + slugify(string(name)),
			Category: categoryForSection(name),
			Severity: severity,
			Title:    fmt.Sprintf("Strengthen the %s section", name),
			Why:      score.Feedback,
			Action:   strings.Join(score.ImprovementAreas, " "),
			Impact:   impact,
		})
	}
	return out
}

// fromOverallScore flags a weak headline match.
func fromOverallScore(input Input) []Recommendation {
	score := input.Result.CompatibilityScore
	if score >= 40 {
		return nil
	}
	return []Recommendation{
		{
			ID:       "OVERALL_LOW_COMPATIBILITY",
			Category: "CONTENT",
			Severity: "critical",
			Title:    "Tailor the resume to this role",
			Why:      fmt.Sprintf("The overall compatibility score is %d of 100.", score),
			Action:   "Rework the summary and experience bullets around the responsibilities and technologies this role names.",
			Impact:   "high",
		},
	}
}

func categoryForSection(name sections.Name) string {
	switch name {
	case sections.Skills:
		return "SKILLS"
	case sections.Experience, sections.Projects:
		return "EXPERIENCE"
	case sections.Contact, sections.Education:
		return "STRUCTURE"
	default:
		return "CONTENT"
	}
}
