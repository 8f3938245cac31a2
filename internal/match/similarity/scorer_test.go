package similarity

import (
	"math"
	"strings"
	"testing"
)

func tokens(s string) []string { return strings.Fields(s) }

func TestScoreIdenticalDocuments(t *testing.T) {
	doc := tokens("python sql docker kubernetes aws")
	cfg := Config{NGramMin: 1, NGramMax: 2}
	score, details := Score(doc, doc, cfg)
	if score != 100 {
		t.Fatalf("expected 100 for identical documents, got %d", score)
	}
	if math.Abs(details.Cosine-1.0) > 1e-9 {
		t.Fatalf("expected cosine 1.0, got %f", details.Cosine)
	}
}

func TestScoreIdenticalDocumentsWithBoost(t *testing.T) {
	doc := tokens("python sql engineer")
	cfg := Config{
		NGramMin:  1,
		NGramMax:  2,
		TechTerms: map[string]struct{}{"python": {}, "sql": {}},
		TechBoost: 2.0,
	}
	score, _ := Score(doc, doc, cfg)
	if score != 100 {
		t.Fatalf("boost must not break self-similarity, got %d", score)
	}
}

func TestScoreDisjointDocuments(t *testing.T) {
	cfg := Config{NGramMin: 1, NGramMax: 1}
	score, details := Score(tokens("python sql"), tokens("marketing sales"), cfg)
	if score != 0 {
		t.Fatalf("expected 0 for disjoint documents, got %d", score)
	}
	if details.Cosine != 0 {
		t.Fatalf("expected cosine 0, got %f", details.Cosine)
	}
}

func TestScoreEmptySide(t *testing.T) {
	cfg := Config{NGramMin: 1, NGramMax: 2}
	if score, _ := Score(nil, tokens("python"), cfg); score != 0 {
		t.Fatalf("expected 0 for empty resume, got %d", score)
	}
	if score, _ := Score(tokens("python"), nil, cfg); score != 0 {
		t.Fatalf("expected 0 for empty job, got %d", score)
	}
}

func TestScoreSymmetric(t *testing.T) {
	a := tokens("python sql data analysis pipelines")
	b := tokens("python machine learning sql models")
	cfg := Config{NGramMin: 1, NGramMax: 2}
	ab, _ := Score(a, b, cfg)
	ba, _ := Score(b, a, cfg)
	if ab != ba {
		t.Fatalf("expected symmetric score, got %d and %d", ab, ba)
	}
}

func TestScoreBounds(t *testing.T) {
	cases := [][2]string{
		{"python sql aws", "python sql aws docker"},
		{"one two three", "three four five"},
		{"a b c d e f", "a b"},
	}
	cfg := Config{NGramMin: 1, NGramMax: 2}
	for _, c := range cases {
		score, _ := Score(tokens(c[0]), tokens(c[1]), cfg)
		if score < 0 || score > 100 {
			t.Fatalf("score out of range for %q vs %q: %d", c[0], c[1], score)
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	a := tokens("python sql docker etl airflow spark data engineering")
	b := tokens("data engineer python spark kafka sql warehousing")
	cfg := Config{NGramMin: 1, NGramMax: 2, VocabCap: 10}
	first, _ := Score(a, b, cfg)
	for i := 0; i < 20; i++ {
		got, _ := Score(a, b, cfg)
		if got != first {
			t.Fatalf("run %d: expected %d, got %d", i, first, got)
		}
	}
}

func TestVectorizeUnitNorm(t *testing.T) {
	a, b := Vectorize(tokens("python sql sql"), tokens("python aws"), Config{NGramMin: 1, NGramMax: 1})
	for name, vec := range map[string]Vector{"resume": a, "job": b} {
		var sum float64
		for _, w := range vec {
			sum += w * w
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Fatalf("%s vector not unit length: %f", name, sum)
		}
	}
}

func TestVocabularyCapDeterministic(t *testing.T) {
	a := map[string]int{"alpha": 2, "beta": 2, "gamma": 1}
	b := map[string]int{"beta": 1, "delta": 3}
	vocab := buildVocabulary(a, b, 2)
	if len(vocab) != 2 {
		t.Fatalf("expected 2 terms, got %d", len(vocab))
	}
	// corpus totals: beta 3, delta 3, alpha 2, gamma 1
	for _, want := range []string{"beta", "delta"} {
		if _, ok := vocab[want]; !ok {
			t.Fatalf("expected %q in capped vocabulary, got %v", want, vocab)
		}
	}
}

func TestVocabularyCapLexicographicTieBreak(t *testing.T) {
	a := map[string]int{"zulu": 1, "alpha": 1}
	b := map[string]int{"mike": 1}
	vocab := buildVocabulary(a, b, 2)
	if _, ok := vocab["zulu"]; ok {
		t.Fatalf("tie-break should prefer earlier terms, got %v", vocab)
	}
	for _, want := range []string{"alpha", "mike"} {
		if _, ok := vocab[want]; !ok {
			t.Fatalf("expected %q in vocabulary, got %v", want, vocab)
		}
	}
}
