package main

// Run a one-off analysis from the command line:
//   go run ./cmd/analyze -resume resume.txt -job job.txt

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"resume-match/internal/match"
	"resume-match/internal/recommendations"
	"resume-match/internal/shared/config"
)

func main() {
	resumePath := flag.String("resume", "", "path to resume text file")
	jobPath := flag.String("job", "", "path to job description text file")
	pretty := flag.Bool("pretty", true, "indent JSON output")
	flag.Parse()

	if *resumePath == "" || *jobPath == "" {
		fmt.Fprintln(os.Stderr, "usage: analyze -resume <file> -job <file>")
		os.Exit(2)
	}

	resumeText, err := os.ReadFile(*resumePath)
	if err != nil {
		log.Fatalf("read resume: %v", err)
	}
	jobText, err := os.ReadFile(*jobPath)
	if err != nil {
		log.Fatalf("read job description: %v", err)
	}

	cfg := config.Load()
	analyzer, err := match.New(cfg.MatchConfig())
	if err != nil {
		log.Fatalf("analyzer config: %v", err)
	}

	result, err := analyzer.Analyze(string(resumeText), string(jobText))
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}

	out := struct {
		Result          *match.AnalysisResult            `json:"result"`
		Recommendations []recommendations.Recommendation `json:"recommendations"`
	}{
		Result:          result,
		Recommendations: recommendations.Generate(recommendations.Input{Result: result}),
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		log.Fatalf("encode output: %v", err)
	}
}
