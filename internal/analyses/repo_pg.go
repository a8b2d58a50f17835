package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"ats-backend/internal/ats"
)

// PGRepo implements Repo using Postgres. List payloads are stored as
// jsonb columns.
type PGRepo struct {
	DB *sql.DB
}

const analysisColumns = `
id, resume_id, user_id, job_description, overall_score,
keyword_match_score, skill_match_score, format_score, readability_score,
matched_keywords, missing_keywords, keyword_density, found_skills,
missing_skills, format_issues, suggestions, has_contact_info,
has_clear_sections, has_measurable_achievements, created_at`

// Create inserts a new analysis.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO ats_analyses (` + analysisColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

	matched, err := marshalJSONB(analysis.MatchedKeywords)
	if err != nil {
		return err
	}
	missing, err := marshalJSONB(analysis.MissingKeywords)
	if err != nil {
		return err
	}
	densityMap := analysis.KeywordDensity
	if densityMap == nil {
		densityMap = map[string]ats.KeywordDensity{}
	}
	density, err := json.Marshal(densityMap)
	if err != nil {
		return err
	}
	found, err := marshalJSONB(analysis.FoundSkills)
	if err != nil {
		return err
	}
	missingSkills, err := marshalJSONB(analysis.MissingSkills)
	if err != nil {
		return err
	}
	issues, err := marshalJSONB(analysis.FormatIssues)
	if err != nil {
		return err
	}
	suggestions, err := marshalJSONB(analysis.Suggestions)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.ResumeID,
		analysis.UserID,
		analysis.JobDescription,
		analysis.OverallScore,
		analysis.KeywordMatchScore,
		analysis.SkillMatchScore,
		analysis.FormatScore,
		analysis.ReadabilityScore,
		matched,
		missing,
		density,
		found,
		missingSkills,
		issues,
		suggestions,
		analysis.HasContactInfo,
		analysis.HasClearSections,
		analysis.HasMeasurableAchievements,
		analysis.CreatedAt,
	)
	return err
}

// GetByID returns an analysis owned by the user.
func (r *PGRepo) GetByID(ctx context.Context, userID, analysisID string) (Analysis, error) {
	const query = `
SELECT ` + analysisColumns + `
FROM ats_analyses
WHERE id = $1 AND user_id = $2
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, analysisID, userID)
	analysis, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	return analysis, nil
}

// ListByResume returns the resume's analyses, newest first.
func (r *PGRepo) ListByResume(ctx context.Context, userID, resumeID string, limit, offset int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `
SELECT ` + analysisColumns + `
FROM ats_analyses
WHERE resume_id = $1 AND user_id = $2
ORDER BY created_at DESC, id DESC
LIMIT $3 OFFSET $4`
	rows, err := r.DB.QueryContext(ctx, query, resumeID, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Analysis, 0)
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, analysis)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var a Analysis
	var matched, missing, density, found, missingSkills, issues, suggestions []byte
	err := row.Scan(
		&a.ID,
		&a.ResumeID,
		&a.UserID,
		&a.JobDescription,
		&a.OverallScore,
		&a.KeywordMatchScore,
		&a.SkillMatchScore,
		&a.FormatScore,
		&a.ReadabilityScore,
		&matched,
		&missing,
		&density,
		&found,
		&missingSkills,
		&issues,
		&suggestions,
		&a.HasContactInfo,
		&a.HasClearSections,
		&a.HasMeasurableAchievements,
		&a.CreatedAt,
	)
	if err != nil {
		return Analysis{}, err
	}
	if err := unmarshalJSONB(matched, &a.MatchedKeywords); err != nil {
		return Analysis{}, err
	}
	if err := unmarshalJSONB(missing, &a.MissingKeywords); err != nil {
		return Analysis{}, err
	}
	if err := unmarshalJSONB(found, &a.FoundSkills); err != nil {
		return Analysis{}, err
	}
	if err := unmarshalJSONB(missingSkills, &a.MissingSkills); err != nil {
		return Analysis{}, err
	}
	if err := unmarshalJSONB(issues, &a.FormatIssues); err != nil {
		return Analysis{}, err
	}
	a.KeywordDensity = map[string]ats.KeywordDensity{}
	if len(density) > 0 {
		if err := json.Unmarshal(density, &a.KeywordDensity); err != nil {
			return Analysis{}, err
		}
	}
	var sugg []ats.Suggestion
	if len(suggestions) > 0 {
		if err := json.Unmarshal(suggestions, &sugg); err != nil {
			return Analysis{}, err
		}
	}
	a.Suggestions = sugg
	return a, nil
}

func marshalJSONB(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	// Nil slices marshal to JSON null; the columns expect arrays.
	if string(raw) == "null" {
		return []byte("[]"), nil
	}
	return raw, nil
}

func unmarshalJSONB(raw []byte, dst *[]string) error {
	if len(raw) == 0 {
		*dst = []string{}
		return nil
	}
	return json.Unmarshal(raw, dst)
}
