package recommendations

import (
	"reflect"
	"strings"
	"testing"

	"resume-match/internal/match"
	"resume-match/internal/match/keywords"
	"resume-match/internal/match/sections"
)

func sampleResult() *match.AnalysisResult {
	return &match.AnalysisResult{
		CompatibilityScore: 35,
		MissingKeywords: []keywords.RankedKeyword{
			{Term: "kubernetes", ImportanceScore: 1.2, Category: keywords.CategoryTechnical},
			{Term: "terraform", ImportanceScore: 1.0, Category: keywords.CategoryTechnical},
			{Term: "docker", ImportanceScore: 0.9, Category: keywords.CategoryTechnical},
		},
		SectionScores: map[sections.Name]sections.Score{
			sections.Contact:    {SectionName: sections.Contact, Score: 90, Present: true},
			sections.Skills:     {SectionName: sections.Skills, Score: 30, Present: true, Feedback: "Thin", ImprovementAreas: []string{"List more skills."}},
			sections.Experience: {SectionName: sections.Experience, Score: 55, Present: true, Feedback: "OK", ImprovementAreas: []string{"Quantify results."}},
			sections.Education:  {SectionName: sections.Education, Present: false},
			sections.Projects:   {SectionName: sections.Projects, Score: 80, Present: true},
			sections.Other:      {SectionName: sections.Other},
		},
	}
}

func TestGenerateDeterminism(t *testing.T) {
	input := Input{Result: sampleResult()}
	first := Generate(input)
	second := Generate(input)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected deterministic recommendations")
	}
	if len(first) == 0 {
		t.Fatal("expected recommendations for a weak analysis")
	}
	for i, rec := range first {
		if rec.Order != i+1 {
			t.Fatalf("expected order %d, got %d", i+1, rec.Order)
		}
	}
}

func TestGenerateRanking(t *testing.T) {
	recs := Generate(Input{Result: sampleResult()})

	// Critical findings (missing education, low overall score) sort before
	// warnings.
	if severityRank(recs[0].Severity) != 3 {
		t.Fatalf("expected a critical recommendation first, got %+v", recs[0])
	}
	for i := 1; i < len(recs); i++ {
		if severityRank(recs[i].Severity) > severityRank(recs[i-1].Severity) {
			t.Fatalf("severity order violated at %d: %+v", i, recs)
		}
	}
}

func TestGenerateMissingKeywordRecommendation(t *testing.T) {
	recs := Generate(Input{Result: sampleResult()})

	var found *Recommendation
	for i := range recs {
		if recs[i].ID == "KEYWORDS_MISSING_FROM_JOB" {
			found = &recs[i]
		}
	}
	if found == nil {
		t.Fatalf("expected keyword recommendation, got %+v", recs)
	}
	if !strings.Contains(found.Action, "kubernetes") {
		t.Fatalf("expected top missing term in action, got %q", found.Action)
	}
	if found.Impact != "high" {
		t.Fatalf("three technical gaps should read high impact, got %q", found.Impact)
	}
}

func TestGenerateMissingSectionIsCritical(t *testing.T) {
	recs := Generate(Input{Result: sampleResult()})
	for _, rec := range recs {
		if rec.ID == "SECTION_MISSING_education" {
			if rec.Severity != "critical" {
				t.Fatalf("missing section must be critical, got %q", rec.Severity)
			}
			return
		}
	}
	t.Fatalf("expected missing-education recommendation, got %+v", recs)
}

func TestGenerateCapsAtSeven(t *testing.T) {
	result := sampleResult()
	for _, name := range sections.KnownNames {
		if name == sections.Other {
			continue
		}
		result.SectionScores[name] = sections.Score{SectionName: name, Present: false}
	}
	recs := Generate(Input{Result: result})
	if len(recs) > 7 {
		t.Fatalf("expected at most 7 recommendations, got %d", len(recs))
	}
}

func TestGenerateStrongResultIsQuiet(t *testing.T) {
	result := &match.AnalysisResult{
		CompatibilityScore: 85,
		SectionScores:      map[sections.Name]sections.Score{},
	}
	for _, name := range sections.KnownNames {
		result.SectionScores[name] = sections.Score{SectionName: name, Score: 90, Present: true}
	}
	recs := Generate(Input{Result: result})
	if len(recs) != 0 {
		t.Fatalf("strong result should produce no recommendations, got %+v", recs)
	}
}

func TestGenerateNilResult(t *testing.T) {
	if recs := Generate(Input{}); recs != nil {
		t.Fatalf("expected nil for nil result, got %+v", recs)
	}
}
