package similarity

import "math"

// Details exposes the raw similarity and the underlying vectors for callers
// that need more than the headline score.
type Details struct {
	Cosine    float64 `json:"cosine"`
	ResumeVec Vector  `json:"-"`
	JobVec    Vector  `json:"-"`
}

// Score computes the 0-100 compatibility score between two token streams.
// Identical streams score 100; an empty stream on either side scores 0.
func Score(resumeTokens, jobTokens []string, cfg Config) (int, Details) {
	if len(resumeTokens) == 0 || len(jobTokens) == 0 {
		return 0, Details{}
	}

	resumeVec, jobVec := Vectorize(resumeTokens, jobTokens, cfg)
	cosine := Cosine(resumeVec, jobVec)

	score := int(math.Round(cosine * 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, Details{Cosine: cosine, ResumeVec: resumeVec, JobVec: jobVec}
}
