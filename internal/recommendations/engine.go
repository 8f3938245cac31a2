package recommendations

import (
	"sort"
	"strings"
	"unicode"
)

const maxRecommendations = 7

// Generate builds deterministic recommendations from an analysis result.
func Generate(input Input) []Recommendation {
	if input.Result == nil {
		return nil
	}

	candidates := make([]Recommendation, 0, 16)
	candidates = append(candidates, fromMissingKeywords(input)...)
	candidates = append(candidates, fromSectionScores(input)...)
	candidates = append(candidates, fromOverallScore(input)...)

	deduped := dedupe(candidates)
	sortRecommendations(deduped)
	if len(deduped) > maxRecommendations {
		deduped = deduped[:maxRecommendations]
	}
	for i := range deduped {
		deduped[i].Order = i + 1
	}
	return deduped
}

func severityRank(value string) int {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "critical":
		return 3
	case "warning":
		return 2
	default:
		return 1
	}
}

func impactRank(value string) int {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "high":
		return 3
	case "medium":
		return 2
	default:
		return 1
	}
}

func categoryRank(value string) int {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "KEYWORDS":
		return 5
	case "SKILLS":
		return 4
	case "EXPERIENCE":
		return 3
	case "STRUCTURE":
		return 2
	case "CONTENT":
		return 1
	default:
		return 0
	}
}

func slugify(input string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "item"
	}
	return out
}

func dedupe(items []Recommendation) []Recommendation {
	seen := make(map[string]Recommendation, len(items))
	order := make([]string, 0, len(items))
	for _, item := range items {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			continue
		}
		if existing, ok := seen[id]; ok {
			seen[id] = mergeRecommendation(existing, item)
			continue
		}
		seen[id] = item
		order = append(order, id)
	}
	out := make([]Recommendation, 0, len(order))
	for _, id := range order {
		out = append(out, seen[id])
	}
	return out
}

func mergeRecommendation(a, b Recommendation) Recommendation {
	if strings.TrimSpace(a.Title) == "" {
		a.Title = b.Title
	}
	if strings.TrimSpace(a.Why) == "" {
		a.Why = b.Why
	}
	if strings.TrimSpace(a.Action) == "" {
		a.Action = b.Action
	}
	if strings.TrimSpace(a.Category) == "" {
		a.Category = b.Category
	}
	if strings.TrimSpace(a.Severity) == "" {
		a.Severity = b.Severity
	}
	if strings.TrimSpace(a.Impact) == "" {
		a.Impact = b.Impact
	}
	return a
}

func sortRecommendations(items []Recommendation) {
	sort.Slice(items, func(i, j int) bool {
		a := items[i]
		b := items[j]
		if severityRank(a.Severity) != severityRank(b.Severity) {
			return severityRank(a.Severity) > severityRank(b.Severity)
		}
		if impactRank(a.Impact) != impactRank(b.Impact) {
			return impactRank(a.Impact) > impactRank(b.Impact)
		}
		if categoryRank(a.Category) != categoryRank(b.Category) {
			return categoryRank(a.Category) > categoryRank(b.Category)
		}
		return strings.ToLower(a.Title) < strings.ToLower(b.Title)
	})
}
