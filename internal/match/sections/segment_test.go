package sections

import (
	"strings"
	"testing"

	"resume-match/internal/match/textnorm"
)

const sampleResume = `John Doe
john.doe@example.com | 555-123-4567
San Francisco, CA

SKILLS
Python, SQL, Docker

EXPERIENCE
Software Engineer at Acme (2020-2023)
- Built data pipelines processing 2M records daily

EDUCATION
BSc Computer Science, State University, 2020

PROJECTS
Resume Analyzer - github.com/johndoe/analyzer`

func segmentSample(t *testing.T) map[Name]Section {
	t.Helper()
	resume, err := textnorm.Normalize(sampleResume)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	return Segment(resume, Config{})
}

func TestSegmentAllNamesPresent(t *testing.T) {
	secs := segmentSample(t)
	if len(secs) != len(KnownNames) {
		t.Fatalf("expected %d sections, got %d", len(KnownNames), len(secs))
	}
	for _, name := range KnownNames {
		if _, ok := secs[name]; !ok {
			t.Fatalf("section %q missing from result map", name)
		}
	}
}

func TestSegmentHeadingDetection(t *testing.T) {
	secs := segmentSample(t)

	cases := []struct {
		name     Name
		fragment string
	}{
		{Skills, "Python, SQL, Docker"},
		{Experience, "Software Engineer at Acme"},
		{Education, "State University"},
		{Projects, "Resume Analyzer"},
	}
	for _, tc := range cases {
		sec := secs[tc.name]
		if !sec.Present {
			t.Fatalf("expected %q present", tc.name)
		}
		if !strings.Contains(sec.RawText, tc.fragment) {
			t.Fatalf("expected %q in %q section, got %q", tc.fragment, tc.name, sec.RawText)
		}
	}
}

func TestSegmentContactPreamble(t *testing.T) {
	secs := segmentSample(t)
	contact := secs[Contact]
	if !contact.Present {
		t.Fatal("expected contact section from preamble lines")
	}
	if !strings.Contains(contact.RawText, "john.doe@example.com") {
		t.Fatalf("expected email in contact, got %q", contact.RawText)
	}
	if !strings.Contains(contact.RawText, "555-123-4567") {
		t.Fatalf("expected phone in contact, got %q", contact.RawText)
	}
}

func TestSegmentPartitionLossless(t *testing.T) {
	resume, err := textnorm.Normalize(sampleResume)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	secs := Segment(resume, Config{})

	var sectionLines int
	for _, sec := range secs {
		if sec.RawText == "" {
			continue
		}
		sectionLines += len(strings.Split(sec.RawText, "\n"))
	}
	if sectionLines != len(resume.Lines) {
		t.Fatalf("expected %d lines across sections, got %d", len(resume.Lines), sectionLines)
	}
}

func TestSegmentLabelLineIsNotHeading(t *testing.T) {
	resume, err := textnorm.Normalize("Summary\nSkills: Python, SQL\nMore prose here")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	secs := Segment(resume, Config{})
	if secs[Skills].Present {
		t.Fatalf("label line must not open a skills section: %q", secs[Skills].RawText)
	}
	if !secs[Other].Present {
		t.Fatal("expected unmatched content in other")
	}
}

func TestSegmentLongLineIsNotHeading(t *testing.T) {
	long := "Experience with distributed systems and cloud infrastructure at scale"
	resume, err := textnorm.Normalize(long)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	secs := Segment(resume, Config{})
	if secs[Experience].Present {
		t.Fatal("long sentence must not be treated as a heading")
	}
}

func TestSegmentHeadingSynonyms(t *testing.T) {
	cases := []struct {
		heading  string
		expected Name
	}{
		{"Work History", Experience},
		{"Core Competencies", Skills},
		{"Academic Background", Education},
		{"Portfolio", Projects},
		{"TECHNICAL SKILLS", Skills},
	}
	for _, tc := range cases {
		resume, err := textnorm.Normalize(tc.heading + "\nsome content line")
		if err != nil {
			t.Fatalf("normalize %q: %v", tc.heading, err)
		}
		secs := Segment(resume, Config{})
		if !secs[tc.expected].Present {
			t.Fatalf("heading %q: expected section %q present", tc.heading, tc.expected)
		}
		if !strings.Contains(secs[tc.expected].RawText, "some content line") {
			t.Fatalf("heading %q: content not routed to %q", tc.heading, tc.expected)
		}
	}
}
