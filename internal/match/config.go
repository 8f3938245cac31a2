package match

import (
	"resume-match/internal/match/keywords"
	"resume-match/internal/match/sections"
	"resume-match/internal/match/textnorm"
)

// Config holds every analysis tunable. All values are fixed at construction;
// an Analyzer never mutates its Config, so identical inputs always produce
// identical results.
type Config struct {
	// NGramMin and NGramMax bound the n-gram range for the headline
	// similarity score.
	NGramMin int
	NGramMax int
	// VocabCap bounds the TF-IDF vocabulary. Zero disables the cap.
	VocabCap int
	// KeywordNGramMax bounds candidate phrase length for gap extraction,
	// independent of the scoring n-gram range.
	KeywordNGramMax int
	// MissingKeywordCap truncates the ranked missing-keyword list.
	MissingKeywordCap int
	// TechBoost multiplies TF-IDF weights of dictionary technical terms
	// before normalization. 1.0 leaves weights untouched.
	TechBoost float64
	// MaxInputBytes rejects oversized documents before any processing.
	MaxInputBytes int

	StopWords      map[string]struct{}
	Dictionary     *keywords.Dictionary
	SectionLexicon map[string]sections.Name
	SectionWeights map[sections.Name]sections.Weights
	HeadingMaxLen  int
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		NGramMin:          1,
		NGramMax:          2,
		VocabCap:          5000,
		KeywordNGramMax:   3,
		MissingKeywordCap: 25,
		TechBoost:         1.0,
		MaxInputBytes:     1 << 20,
		StopWords:         textnorm.DefaultStopWords(),
		Dictionary:        keywords.DefaultDictionary(),
		SectionLexicon:    sections.DefaultLexicon(),
		SectionWeights:    sections.DefaultWeights(),
		HeadingMaxLen:     45,
	}
}

func (c Config) validate() error {
	if c.NGramMin < 1 {
		return &ConfigurationError{Field: "NGramMin", Reason: "must be at least 1"}
	}
	if c.NGramMax < c.NGramMin {
		return &ConfigurationError{Field: "NGramMax", Reason: "must be >= NGramMin"}
	}
	if c.KeywordNGramMax < 1 {
		return &ConfigurationError{Field: "KeywordNGramMax", Reason: "must be at least 1"}
	}
	if c.VocabCap < 0 {
		return &ConfigurationError{Field: "VocabCap", Reason: "must not be negative"}
	}
	if c.MissingKeywordCap < 0 {
		return &ConfigurationError{Field: "MissingKeywordCap", Reason: "must not be negative"}
	}
	if c.TechBoost < 0 {
		return &ConfigurationError{Field: "TechBoost", Reason: "must not be negative"}
	}
	if c.MaxInputBytes <= 0 {
		return &ConfigurationError{Field: "MaxInputBytes", Reason: "must be positive"}
	}
	for name, w := range c.SectionWeights {
		if w.Completeness < 0 || w.Relevance < 0 {
			return &ConfigurationError{Field: "SectionWeights." + string(name), Reason: "weights must not be negative"}
		}
		if w.Completeness == 0 && w.Relevance == 0 {
			return &ConfigurationError{Field: "SectionWeights." + string(name), Reason: "at least one weight must be positive"}
		}
	}
	return nil
}
