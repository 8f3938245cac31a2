package sections

import (
	"regexp"
	"strings"

	"resume-match/internal/match/textnorm"
)

// Section is a contiguous block of resume text assigned to a canonical
// section name. RawText preserves the original line text so completeness
// heuristics can match characters the token cleaner removes.
type Section struct {
	Name    Name   `json:"name"`
	RawText string `json:"rawText"`
	Present bool   `json:"present"`
}

// Config tunes heading detection and scoring.
type Config struct {
	// HeadingMaxLen is the longest cleaned line still considered a heading
	// candidate.
	HeadingMaxLen int
	Lexicon       map[string]Name
	Weights       map[Name]Weights
}

// Weights blends completeness and relevance into the section score.
type Weights struct {
	Completeness float64
	Relevance    float64
}

// DefaultWeights reflects what each section is for: contact is structural,
// experience and projects live or die by job relevance.
func DefaultWeights() map[Name]Weights {
	return map[Name]Weights{
		Contact:    {Completeness: 0.9, Relevance: 0.1},
		Skills:     {Completeness: 0.4, Relevance: 0.6},
		Experience: {Completeness: 0.3, Relevance: 0.7},
		Education:  {Completeness: 0.7, Relevance: 0.3},
		Projects:   {Completeness: 0.3, Relevance: 0.7},
		Other:      {Completeness: 0.5, Relevance: 0.5},
	}
}

const defaultHeadingMaxLen = 45

var (
	emailPattern = regexp.MustCompile(`[\w.+-]+@[\w.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s\-().]{6,15}\d`)
	// "Skills: Python, SQL" is content, not a heading.
	labelPattern = regexp.MustCompile(`\w\s*:\s*\S`)
)

// Segment partitions the normalized resume into sections. Every retained
// line lands in exactly one section; content before the first recognized
// heading accrues to "other", or to "contact" when it carries email or
// phone patterns. The result always holds one entry per known section name,
// with Present=false for sections that accumulated nothing.
func Segment(resume textnorm.Normalized, cfg Config) map[Name]Section {
	headingMax := cfg.HeadingMaxLen
	if headingMax <= 0 {
		headingMax = defaultHeadingMaxLen
	}
	lexicon := cfg.Lexicon
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}

	blocks := make(map[Name][]string, len(KnownNames))
	current := Other
	seenHeading := false

	for _, line := range resume.Lines {
		if name, ok := detectHeading(line, headingMax, lexicon); ok {
			current = name
			seenHeading = true
			// The heading line itself belongs to the section it opens.
			blocks[current] = append(blocks[current], line.Raw)
			continue
		}
		target := current
		// Header block lines (email, phone, profile links before any real
		// heading) route to contact.
		if !seenHeading && isContactLine(line.Raw) {
			target = Contact
		}
		blocks[target] = append(blocks[target], line.Raw)
	}

	out := make(map[Name]Section, len(KnownNames))
	for _, name := range KnownNames {
		text := strings.Join(blocks[name], "\n")
		out[name] = Section{
			Name:    name,
			RawText: text,
			Present: strings.TrimSpace(text) != "",
		}
	}
	return out
}

// detectHeading applies the heading heuristics: short, lexicon-matched, not
// a sentence (no terminal punctuation), not a "label: value" line, not a
// bullet.
func detectHeading(line textnorm.Line, headingMax int, lexicon map[string]Name) (Name, bool) {
	raw := strings.TrimSpace(line.Raw)
	if len(line.Clean) > headingMax {
		return "", false
	}
	if strings.HasSuffix(raw, ".") || strings.HasSuffix(raw, "!") || strings.HasSuffix(raw, "?") {
		return "", false
	}
	if labelPattern.MatchString(raw) {
		return "", false
	}
	if strings.HasPrefix(raw, "-") || strings.HasPrefix(raw, "*") || strings.HasPrefix(raw, "•") {
		return "", false
	}
	return matchHeading(line.Clean, lexicon)
}

func isContactLine(raw string) bool {
	return emailPattern.MatchString(raw) || phonePattern.MatchString(raw) ||
		strings.Contains(strings.ToLower(raw), "linkedin.com") ||
		strings.Contains(strings.ToLower(raw), "github.com")
}
