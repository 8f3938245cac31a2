package similarity

import (
	"math"
	"sort"
	"strings"
)

// Vector maps a term (unigram or n-gram joined by single spaces) to its
// TF-IDF weight. Weights are L2-normalized per document by Vectorize.
type Vector map[string]float64

// Config tunes vectorization. The corpus is always exactly two documents
// (resume and job description), so idf only distinguishes shared terms
// (df=2) from one-sided terms (df=1).
type Config struct {
	NGramMin int
	NGramMax int
	// VocabCap bounds the corpus vocabulary by keeping the top VocabCap
	// terms by total corpus frequency (ties broken lexicographically so the
	// cut is deterministic). Zero means uncapped.
	VocabCap int
	// TechTerms receive a multiplicative TechBoost before normalization.
	TechTerms map[string]struct{}
	TechBoost float64
}

// Vectorize builds L2-normalized TF-IDF vectors for the two documents.
func Vectorize(resumeTokens, jobTokens []string, cfg Config) (Vector, Vector) {
	resumeTF := termFrequencies(resumeTokens, cfg.NGramMin, cfg.NGramMax)
	jobTF := termFrequencies(jobTokens, cfg.NGramMin, cfg.NGramMax)

	vocab := buildVocabulary(resumeTF, jobTF, cfg.VocabCap)

	resumeVec := weigh(resumeTF, jobTF, vocab, cfg)
	jobVec := weigh(jobTF, resumeTF, vocab, cfg)
	normalizeL2(resumeVec)
	normalizeL2(jobVec)
	return resumeVec, jobVec
}

// Cosine returns the dot product of two unit vectors, in [0,1].
func Cosine(a, b Vector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for term, wa := range a {
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	if dot < 0 {
		return 0
	}
	if dot > 1 {
		return 1
	}
	return dot
}

func termFrequencies(tokens []string, nMin, nMax int) map[string]int {
	if nMin < 1 {
		nMin = 1
	}
	if nMax < nMin {
		nMax = nMin
	}
	tf := make(map[string]int)
	for n := nMin; n <= nMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			term := strings.Join(tokens[i:i+n], " ")
			tf[term]++
		}
	}
	return tf
}

// buildVocabulary returns the allowed term set, applying the vocabulary cap
// by total corpus frequency with a lexicographic tie-break.
func buildVocabulary(a, b map[string]int, limit int) map[string]struct{} {
	total := make(map[string]int, len(a)+len(b))
	for term, c := range a {
		total[term] += c
	}
	for term, c := range b {
		total[term] += c
	}

	if limit <= 0 || len(total) <= limit {
		vocab := make(map[string]struct{}, len(total))
		for term := range total {
			vocab[term] = struct{}{}
		}
		return vocab
	}

	terms := make([]string, 0, len(total))
	for term := range total {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if total[terms[i]] != total[terms[j]] {
			return total[terms[i]] > total[terms[j]]
		}
		return terms[i] < terms[j]
	})

	vocab := make(map[string]struct{}, limit)
	for _, term := range terms[:limit] {
		vocab[term] = struct{}{}
	}
	return vocab
}

// weigh computes tf × idf over the two-document corpus with the smoothed
// formula idf(t) = ln((1+N)/(1+df(t))) + 1, N=2.
func weigh(own, other map[string]int, vocab map[string]struct{}, cfg Config) Vector {
	const nDocs = 2.0
	vec := make(Vector, len(own))
	for term, count := range own {
		if _, ok := vocab[term]; !ok {
			continue
		}
		df := 1.0
		if other[term] > 0 {
			df = 2.0
		}
		idf := math.Log((1+nDocs)/(1+df)) + 1
		weight := float64(count) * idf
		if cfg.TechBoost > 0 && cfg.TechBoost != 1 {
			if _, ok := cfg.TechTerms[term]; ok {
				weight *= cfg.TechBoost
			}
		}
		vec[term] = weight
	}
	return vec
}

func normalizeL2(vec Vector) {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for term, w := range vec {
		vec[term] = w / norm
	}
}
