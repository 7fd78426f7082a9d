package analyses

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"placement-backend/internal/shared/metrics"
	"placement-backend/internal/shared/telemetry"
)

// Service contains the analysis logic and the history it writes to.
type Service struct {
	Repo Repo
}

// Analyze runs one job description through extraction, scoring and the
// content generators, then records the result in the history. Persistence is
// best-effort: a failed save is logged and the computed result is still
// returned.
func (s *Service) Analyze(ctx context.Context, jdText, company, role string) (Analysis, error) {
	if strings.TrimSpace(jdText) == "" {
		return Analysis{}, ErrEmptyInput
	}

	extracted := ExtractSkills(jdText)

	analysis := Analysis{
		ID:              uuid.NewString(),
		CreatedAt:       time.Now().UTC(),
		Company:         company,
		Role:            role,
		JDText:          jdText,
		ExtractedSkills: extracted.ByCategory,
		FlatSkills:      extracted.Flat,
		ReadinessScore:  CalculateScore(extracted, company, role, jdText),
		Plan:            GeneratePlan(extracted.Flat, extracted),
		Checklist:       GenerateChecklist(extracted.Flat),
		Questions:       GenerateQuestions(extracted),
	}

	metrics.IncAnalysisPerformed()
	metrics.ObserveReadinessScore(float64(analysis.ReadinessScore))

	if s.Repo != nil {
		if err := s.Repo.Save(ctx, analysis); err != nil {
			metrics.IncHistorySaveFailed()
			telemetry.Error("history.save_failed", map[string]any{
				"analysis_id": analysis.ID,
				"error":       err.Error(),
			})
		}
	}

	return analysis, nil
}

// List returns the analysis history, newest first.
func (s *Service) List(ctx context.Context) ([]Analysis, error) {
	return s.Repo.List(ctx)
}

// Get returns a single analysis by ID.
func (s *Service) Get(ctx context.Context, analysisID string) (Analysis, error) {
	return s.Repo.GetByID(ctx, analysisID)
}

// ClearHistory removes every stored analysis.
func (s *Service) ClearHistory(ctx context.Context) error {
	if err := s.Repo.Clear(ctx); err != nil {
		return err
	}
	metrics.IncHistoryCleared()
	return nil
}
