package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Structured fields are stored as
// JSONB so the record round-trips without a schema change per generator
// tweak.
type PGRepo struct {
	DB *sql.DB
}

// Save inserts the analysis as a single row. A failed insert leaves prior
// history untouched.
func (r *PGRepo) Save(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (
	id, company, role, jd_text, extracted_skills, flat_skills,
	readiness_score, plan, checklist, questions, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	extracted, err := marshalJSONB(analysis.ExtractedSkills)
	if err != nil {
		return fmt.Errorf("save analysis %s: %w", analysis.ID, err)
	}
	flat, err := marshalJSONB(analysis.FlatSkills)
	if err != nil {
		return fmt.Errorf("save analysis %s: %w", analysis.ID, err)
	}
	plan, err := marshalJSONB(analysis.Plan)
	if err != nil {
		return fmt.Errorf("save analysis %s: %w", analysis.ID, err)
	}
	checklist, err := marshalJSONB(analysis.Checklist)
	if err != nil {
		return fmt.Errorf("save analysis %s: %w", analysis.ID, err)
	}
	questions, err := marshalJSONB(analysis.Questions)
	if err != nil {
		return fmt.Errorf("save analysis %s: %w", analysis.ID, err)
	}

	_, err = r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.Company,
		analysis.Role,
		analysis.JDText,
		extracted,
		flat,
		analysis.ReadinessScore,
		plan,
		checklist,
		questions,
		analysis.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save analysis %s: %w", analysis.ID, err)
	}
	return nil
}

// List returns all analyses, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Analysis, error) {
	const query = `
SELECT id, company, role, jd_text, extracted_skills, flat_skills,
       readiness_score, plan, checklist, questions, created_at
FROM analyses
ORDER BY created_at DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()

	out := []Analysis{}
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("list analyses: %w", err)
		}
		out = append(out, analysis)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	return out, nil
}

// GetByID returns an analysis by ID.
func (r *PGRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	const query = `
SELECT id, company, role, jd_text, extracted_skills, flat_skills,
       readiness_score, plan, checklist, questions, created_at
FROM analyses
WHERE id = $1
LIMIT 1`

	row := r.DB.QueryRowContext(ctx, query, analysisID)
	analysis, err := scanAnalysis(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Analysis{}, ErrNotFound
	}
	if err != nil {
		return Analysis{}, fmt.Errorf("get analysis %s: %w", analysisID, err)
	}
	return analysis, nil
}

// Clear deletes all stored analyses.
func (r *PGRepo) Clear(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM analyses`); err != nil {
		return fmt.Errorf("clear analyses: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var a Analysis
	var extracted, flat, plan, checklist, questions []byte
	err := row.Scan(
		&a.ID,
		&a.Company,
		&a.Role,
		&a.JDText,
		&extracted,
		&flat,
		&a.ReadinessScore,
		&plan,
		&checklist,
		&questions,
		&a.CreatedAt,
	)
	if err != nil {
		return Analysis{}, err
	}
	if err := unmarshalJSONB(extracted, &a.ExtractedSkills); err != nil {
		return Analysis{}, err
	}
	if err := unmarshalJSONB(flat, &a.FlatSkills); err != nil {
		return Analysis{}, err
	}
	if err := unmarshalJSONB(plan, &a.Plan); err != nil {
		return Analysis{}, err
	}
	if err := unmarshalJSONB(checklist, &a.Checklist); err != nil {
		return Analysis{}, err
	}
	if err := unmarshalJSONB(questions, &a.Questions); err != nil {
		return Analysis{}, err
	}
	return a, nil
}

func marshalJSONB(value any) ([]byte, error) {
	if value == nil {
		return nil, nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb: %w", err)
	}
	return data, nil
}

func unmarshalJSONB(data []byte, target any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("unmarshal jsonb: %w", err)
	}
	return nil
}
