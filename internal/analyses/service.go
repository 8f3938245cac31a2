package analyses

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"resume-match/internal/documents"
	"resume-match/internal/match"
	"resume-match/internal/recommendations"
	"resume-match/internal/shared/metrics"
	"resume-match/internal/shared/telemetry"
	"resume-match/internal/shared/util"
)

// Service runs analyses. It is stateless: every run is synchronous and the
// report exists only in the response.
type Service struct {
	Analyzer *match.Analyzer
	Docs     *documents.Service
}

// AnalyzeText compares raw resume text against a job description.
func (s *Service) AnalyzeText(ctx context.Context, userID, resumeText, jobText string) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	return s.run(ctx, userID, "", resumeText, jobText)
}

// AnalyzeDocument loads the stored document's extracted text and compares it
// against a job description.
func (s *Service) AnalyzeDocument(ctx context.Context, userID, documentID, jobText string) (Report, error) {
	doc, err := s.Docs.Get(ctx, userID, documentID)
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			return Report{}, ErrDocumentNotFound
		}
		return Report{}, err
	}

	resumeText, err := s.Docs.Text(ctx, doc)
	if err != nil {
		telemetry.Error("analysis.document_text.failed", map[string]any{
			"document_id": documentID,
			"err":         err.Error(),
		})
		return Report{}, ErrDocumentNotReadable
	}

	return s.run(ctx, userID, documentID, resumeText, jobText)
}

func (s *Service) run(ctx context.Context, userID, documentID, resumeText, jobText string) (Report, error) {
	start := time.Now()

	result, err := s.Analyzer.Analyze(resumeText, jobText)
	if err != nil {
		var verr *match.ValidationError
		if errors.As(err, &verr) {
			metrics.IncAnalysisRejected()
		} else {
			metrics.IncAnalysisFailed()
		}
		return Report{}, err
	}

	report := Report{
		AnalysisID:      uuid.NewString(),
		DocumentID:      documentID,
		Result:          result,
		Recommendations: recommendations.Generate(recommendations.Input{Result: result}),
		GeneratedAt:     time.Now().UTC(),
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	telemetry.Info("analysis.complete", map[string]any{
		"analysis_id":   report.AnalysisID,
		"document_id":   documentID,
		"user_id":       userID,
		"score":         result.CompatibilityScore,
		"missing_count": len(result.MissingKeywords),
		"resume_digest": util.HashTextDigest(resumeText),
		"job_digest":    util.HashTextDigest(jobText),
		"duration_ms":   float64(time.Since(start).Microseconds()) / 1000.0,
	})

	return report, nil
}
