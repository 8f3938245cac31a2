package match

import (
	"errors"

	"resume-match/internal/match/keywords"
	"resume-match/internal/match/sections"
	"resume-match/internal/match/similarity"
	"resume-match/internal/match/textnorm"
)

// Analyzer runs the full resume-versus-job analysis pipeline. It is
// stateless after construction and safe for concurrent use.
type Analyzer struct {
	cfg    Config
	simCfg similarity.Config
	kwCfg  keywords.Config
	secCfg sections.Config
}

// New validates cfg and builds an Analyzer. Zero-value or missing optional
// fields fall back to defaults; invalid values return a ConfigurationError.
func New(cfg Config) (*Analyzer, error) {
	def := DefaultConfig()
	if cfg.StopWords == nil {
		cfg.StopWords = def.StopWords
	}
	if cfg.Dictionary == nil {
		cfg.Dictionary = def.Dictionary
	}
	if cfg.SectionLexicon == nil {
		cfg.SectionLexicon = def.SectionLexicon
	}
	if cfg.SectionWeights == nil {
		cfg.SectionWeights = def.SectionWeights
	}
	if cfg.HeadingMaxLen <= 0 {
		cfg.HeadingMaxLen = def.HeadingMaxLen
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Analyzer{
		cfg: cfg,
		simCfg: similarity.Config{
			NGramMin:  cfg.NGramMin,
			NGramMax:  cfg.NGramMax,
			VocabCap:  cfg.VocabCap,
			TechTerms: cfg.Dictionary.TechnicalTerms(),
			TechBoost: cfg.TechBoost,
		},
		kwCfg: keywords.Config{
			StopWords:  cfg.StopWords,
			NGramMax:   cfg.KeywordNGramMax,
			MaxResults: cfg.MissingKeywordCap,
			Dictionary: cfg.Dictionary,
		},
		secCfg: sections.Config{
			HeadingMaxLen: cfg.HeadingMaxLen,
			Lexicon:       cfg.SectionLexicon,
			Weights:       cfg.SectionWeights,
		},
	}, nil
}

// Analyze runs the pipeline: normalize both documents, score similarity,
// extract and rank missing keywords, segment and score resume sections.
// The whole run is synchronous and deterministic.
func (a *Analyzer) Analyze(resumeText, jobText string) (*AnalysisResult, error) {
	if len(resumeText) > a.cfg.MaxInputBytes {
		return nil, &ValidationError{Field: "resume", Reason: "input exceeds size limit"}
	}
	if len(jobText) > a.cfg.MaxInputBytes {
		return nil, &ValidationError{Field: "jobDescription", Reason: "input exceeds size limit"}
	}

	resume, err := textnorm.Normalize(resumeText)
	if err != nil {
		if errors.Is(err, textnorm.ErrEmpty) {
			return nil, &ValidationError{Field: "resume", Reason: "no analyzable text"}
		}
		return nil, err
	}
	job, err := textnorm.Normalize(jobText)
	if err != nil {
		if errors.Is(err, textnorm.ErrEmpty) {
			return nil, &ValidationError{Field: "jobDescription", Reason: "no analyzable text"}
		}
		return nil, err
	}

	score, details := similarity.Score(resume.Tokens, job.Tokens, a.simCfg)
	missing := a.missingKeywords(resume, job, jobText)

	secs := sections.Segment(resume, a.secCfg)
	secScores := sections.ScoreAll(secs, job, a.simCfg, a.cfg.SectionWeights)

	return &AnalysisResult{
		CompatibilityScore: score,
		Similarity:         details,
		MissingKeywords:    missing,
		SectionScores:      secScores,
	}, nil
}

// missingKeywords vectorizes with the keyword n-gram range so multi-word
// phrases longer than the scoring range still carry TF-IDF weight.
func (a *Analyzer) missingKeywords(resume, job textnorm.Normalized, jobRaw string) []keywords.RankedKeyword {
	kwSimCfg := a.simCfg
	kwSimCfg.NGramMax = a.cfg.KeywordNGramMax
	_, jobVec := similarity.Vectorize(resume.Tokens, job.Tokens, kwSimCfg)

	candidates := keywords.Extract(job, jobVec, a.kwCfg)
	missing := keywords.FindMissing(resume, candidates)
	ranked := keywords.Rank(missing, a.cfg.MissingKeywordCap)
	keywords.AttachSnippets(ranked, jobRaw)
	return ranked
}
