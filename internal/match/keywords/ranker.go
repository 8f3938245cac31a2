package keywords

import (
	"sort"
	"strings"

	"resume-match/internal/match/similarity"
	"resume-match/internal/match/textnorm"
)

// RankedKeyword is a job-description term absent from the resume, carrying
// its ranked importance and category.
type RankedKeyword struct {
	Term            string   `json:"term"`
	ImportanceScore float64  `json:"importanceScore"`
	Category        Category `json:"category"`
	ContextSnippet  string   `json:"contextSnippet,omitempty"`
}

// Config tunes candidate extraction and ranking. All constants are fixed
// per deployment so identical inputs always rank identically.
type Config struct {
	StopWords map[string]struct{}
	// NGramMax bounds candidate phrase length (unigrams up to NGramMax-grams).
	NGramMax int
	// MaxResults truncates the ranked list after sorting. Zero means no cap.
	MaxResults int
	Dictionary *Dictionary
}

// Frequency bonus and category boost constants. ImportanceScore is
// monotonic in both term frequency and TF-IDF weight:
// tfidf × (1 + freqBonusStep×min(freq, freqBonusCap)) × categoryBoost.
const (
	freqBonusStep = 0.15
	freqBonusCap  = 5
)

var categoryBoosts = map[Category]float64{
	CategoryTechnical:    2.0,
	CategoryIndustry:     1.5,
	CategorySoftSkill:    1.2,
	CategoryUnclassified: 0.3,
}

// Candidate is a term extracted from the job description, before the
// missing-from-resume check.
type Candidate struct {
	Term      string
	Words     int
	Frequency int
	TFIDF     float64
	Category  Category
}

// Extract generates candidate terms from the job description: all n-grams up
// to cfg.NGramMax whose words are neither stop words nor single characters.
// jobVec supplies TF-IDF weights; candidates without a weight (capped out of
// the vocabulary) are dropped.
func Extract(job textnorm.Normalized, jobVec similarity.Vector, cfg Config) []Candidate {
	nMax := cfg.NGramMax
	if nMax < 1 {
		nMax = 1
	}
	dict := cfg.Dictionary
	if dict == nil {
		dict = DefaultDictionary()
	}

	stream := " " + job.JoinedTokens() + " "
	seen := make(map[string]struct{})
	var out []Candidate

	for n := 1; n <= nMax; n++ {
		for i := 0; i+n <= len(job.Tokens); i++ {
			gram := job.Tokens[i : i+n]
			if !eligible(gram, cfg.StopWords) {
				continue
			}
			term := strings.Join(gram, " ")
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}

			weight, ok := jobVec[term]
			if !ok || weight == 0 {
				continue
			}

			out = append(out, Candidate{
				Term:      term,
				Words:     n,
				Frequency: strings.Count(stream, " "+term+" "),
				TFIDF:     weight,
				Category:  dict.Categorize(term),
			})
		}
	}
	return out
}

// FindMissing filters candidates down to those absent from the resume:
// exact token match for unigrams, exact phrase containment over the token
// stream for multi-word terms. No stemming or synonym matching.
func FindMissing(resume textnorm.Normalized, candidates []Candidate) []RankedKeyword {
	resumeTokens := resume.TokenSet()
	resumeStream := " " + resume.JoinedTokens() + " "

	var missing []RankedKeyword
	for _, c := range candidates {
		if c.Words == 1 {
			if _, present := resumeTokens[c.Term]; present {
				continue
			}
		} else if strings.Contains(resumeStream, " "+c.Term+" ") {
			continue
		}
		missing = append(missing, RankedKeyword{
			Term:            c.Term,
			ImportanceScore: importance(c),
			Category:        c.Category,
		})
	}
	return missing
}

// Rank sorts by descending importance; ties fall to longer phrases first,
// then lexicographic term order, so output is fully deterministic. The cap
// applies only after sorting.
func Rank(missing []RankedKeyword, maxResults int) []RankedKeyword {
	out := make([]RankedKeyword, len(missing))
	copy(out, missing)

	sort.Slice(out, func(i, j int) bool {
		if out[i].ImportanceScore != out[j].ImportanceScore {
			return out[i].ImportanceScore > out[j].ImportanceScore
		}
		li := strings.Count(out[i].Term, " ")
		lj := strings.Count(out[j].Term, " ")
		if li != lj {
			return li > lj
		}
		return out[i].Term < out[j].Term
	})

	if maxResults > 0 && len(out) > maxResults {
		out = out[:maxResults]
	}
	return out
}

// AttachSnippets fills ContextSnippet with a window around the first raw
// occurrence of each term in the job description; terms that never appear
// verbatim in the raw text keep an empty snippet.
func AttachSnippets(ranked []RankedKeyword, jobRaw string) {
	lowered := strings.ToLower(jobRaw)
	for i := range ranked {
		idx := strings.Index(lowered, ranked[i].Term)
		if idx < 0 {
			continue
		}
		ranked[i].ContextSnippet = snippetAround(jobRaw, idx, len(ranked[i].Term))
	}
}

func importance(c Candidate) float64 {
	freq := c.Frequency
	if freq > freqBonusCap {
		freq = freqBonusCap
	}
	boost, ok := categoryBoosts[c.Category]
	if !ok {
		boost = 1.0
	}
	return c.TFIDF * (1 + freqBonusStep*float64(freq)) * boost
}

func eligible(gram []string, stopWords map[string]struct{}) bool {
	for _, w := range gram {
		if len(w) <= 1 {
			return false
		}
		if _, stop := stopWords[w]; stop {
			return false
		}
	}
	return true
}

const snippetRadius = 40

func snippetAround(text string, idx, length int) string {
	start := idx - snippetRadius
	if start < 0 {
		start = 0
	}
	end := idx + length + snippetRadius
	if end > len(text) {
		end = len(text)
	}
	snippet := strings.Join(strings.Fields(text[start:end]), " ")
	return strings.TrimSpace(snippet)
}
