package sections

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"resume-match/internal/match/similarity"
	"resume-match/internal/match/textnorm"
)

// Score grades one section against completeness signals and job relevance.
type Score struct {
	SectionName      Name     `json:"sectionName"`
	Score            int      `json:"score"`
	Present          bool     `json:"present"`
	Completeness     float64  `json:"completeness"`
	Relevance        float64  `json:"relevance"`
	Feedback         string   `json:"feedback"`
	ImprovementAreas []string `json:"improvementAreas"`
}

var (
	locationPattern = regexp.MustCompile(`(?i)\b([a-z]+,\s*[a-z]{2,}|remote|linkedin\.com|github\.com)\b`)
	bulletPattern   = regexp.MustCompile(`[•\-*]`)
	numberPattern   = regexp.MustCompile(`(?i)\d+%|\$[\d,]+|\d+\s*(users?|customers?|projects?|million|thousand|requests?)`)
	datePattern     = regexp.MustCompile(`(?i)\b(20\d{2}|19\d{2}|jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\b`)
	degreePattern   = regexp.MustCompile(`(?i)\b(bachelor|master|phd|b\.?tech|m\.?tech|bsc|msc|b\.?e|m\.?e|degree|diploma)\b`)
	schoolPattern   = regexp.MustCompile(`(?i)\b(university|college|institute|school)\b`)
	linkPattern     = regexp.MustCompile(`(?i)\b(github|gitlab|demo|https?://)`)
	buildVerbs      = regexp.MustCompile(`(?i)\b(built|developed|created|designed|implemented|led|managed|delivered|improved|increased|reduced)\b`)
	skillToken      = regexp.MustCompile(`\b[a-z][a-z0-9+#.\-]{1,24}\b`)
)

// ScoreAll grades every known section. Missing sections score 0 with an
// explicit recommendation to add them; they are never omitted from the map.
func ScoreAll(secs map[Name]Section, job textnorm.Normalized, simCfg similarity.Config, weights map[Name]Weights) map[Name]Score {
	if weights == nil {
		weights = DefaultWeights()
	}

	out := make(map[Name]Score, len(KnownNames))
	for _, name := range KnownNames {
		sec := secs[name]
		if !sec.Present {
			out[name] = missingScore(name)
			continue
		}
		out[name] = scoreSection(sec, job, simCfg, weights[name])
	}
	return out
}

func missingScore(name Name) Score {
	if name == Other {
		// "other" absorbs unrecognized content; an empty bucket is normal
		// and not a gap worth flagging.
		return Score{SectionName: name, Feedback: "No unclassified content."}
	}
	return Score{
		SectionName: name,
		Feedback:    fmt.Sprintf("No %s section found.", name),
		ImprovementAreas: []string{
			fmt.Sprintf("Add a dedicated %s section.", name),
		},
	}
}

func scoreSection(sec Section, job textnorm.Normalized, simCfg similarity.Config, w Weights) Score {
	completeness, areas := completenessOf(sec)
	relevance := relevanceOf(sec, job, simCfg)

	if w.Completeness == 0 && w.Relevance == 0 {
		w = Weights{Completeness: 0.5, Relevance: 0.5}
	}
	blended := (completeness*w.Completeness + relevance*w.Relevance) / (w.Completeness + w.Relevance)
	score := int(math.Round(blended * 100))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	if relevance < 0.2 && sec.Name != Contact {
		areas = append(areas, "Include more job-relevant terminology in this section.")
	}

	return Score{
		SectionName:      sec.Name,
		Score:            score,
		Present:          true,
		Completeness:     round3(completeness),
		Relevance:        round3(relevance),
		Feedback:         feedbackFor(sec.Name, completeness, relevance),
		ImprovementAreas: areas,
	}
}

// completenessOf counts expected structural signals per section type, each
// weighted equally.
func completenessOf(sec Section) (float64, []string) {
	text := sec.RawText
	lowered := strings.ToLower(text)
	var found, total int
	var areas []string

	check := func(ok bool, area string) {
		total++
		if ok {
			found++
		} else {
			areas = append(areas, area)
		}
	}

	switch sec.Name {
	case Contact:
		check(emailPattern.MatchString(text), "Add your email address.")
		check(phonePattern.MatchString(text), "Add your phone number.")
		check(locationPattern.MatchString(text), "Add your location or a profile link.")
	case Skills:
		distinct := distinctSkillCount(lowered)
		check(distinct >= 3, "List at least a handful of concrete skills.")
		check(distinct >= 10, "Broaden the skill list; ten or more distinct entries reads stronger.")
		check(strings.Contains(lowered, "languages") || strings.Contains(lowered, "tools") ||
			strings.Contains(lowered, "frameworks") || strings.Contains(lowered, "technical"),
			"Group skills into categories such as Languages, Frameworks, Tools.")
	case Experience:
		check(len(bulletPattern.FindAllString(text, -1)) >= 3, "Use bullet points for responsibilities and achievements.")
		check(numberPattern.MatchString(text), "Quantify achievements (percentages, counts, amounts).")
		check(buildVerbs.MatchString(text), "Open bullets with strong action verbs.")
		check(datePattern.MatchString(text), "Include dates for each position.")
	case Education:
		check(degreePattern.MatchString(text), "State your degree explicitly.")
		check(schoolPattern.MatchString(text), "Include your institution name.")
		check(datePattern.MatchString(text), "Add your graduation year.")
	case Projects:
		check(strings.Count(text, "\n") >= 1, "Include at least two projects.")
		check(linkPattern.MatchString(text), "Add repository links or demo URLs.")
		check(buildVerbs.MatchString(text), "Describe what you built and the technologies used.")
	default:
		words := len(strings.Fields(text))
		check(words >= 10, "Expand this content or fold it into a recognized section.")
	}

	if total == 0 {
		return 0, areas
	}
	return float64(found) / float64(total), areas
}

// relevanceOf reuses the TF-IDF cosine between the section text and the job
// description.
func relevanceOf(sec Section, job textnorm.Normalized, simCfg similarity.Config) float64 {
	normalized, err := textnorm.Normalize(sec.RawText)
	if err != nil {
		return 0
	}
	_, details := similarity.Score(normalized.Tokens, job.Tokens, simCfg)
	return details.Cosine
}

// feedbackFor selects a deterministic template by threshold bands.
func feedbackFor(name Name, completeness, relevance float64) string {
	switch {
	case completeness >= 0.75 && relevance >= 0.2:
		return fmt.Sprintf("The %s section is well developed and aligned with the role.", name)
	case completeness >= 0.75:
		return fmt.Sprintf("The %s section is structurally complete but could align more with the role.", name)
	case relevance >= 0.2:
		return fmt.Sprintf("The %s section is relevant but missing expected detail.", name)
	default:
		return fmt.Sprintf("The %s section needs more detail and closer alignment with the role.", name)
	}
}

func distinctSkillCount(lowered string) int {
	seen := make(map[string]struct{})
	for _, tok := range skillToken.FindAllString(lowered, -1) {
		seen[tok] = struct{}{}
	}
	return len(seen)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
