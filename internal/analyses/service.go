package analyses

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"ats-backend/internal/ats"
	"ats-backend/internal/resumes"
	"ats-backend/internal/shared/telemetry"
)

// Service contains business logic for analyses.
type Service struct {
	Repo     Repo
	Resumes  *resumes.Service
	Analyzer *ats.Analyzer
	Now      func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo, resumeSvc *resumes.Service, analyzer *ats.Analyzer) *Service {
	return &Service{
		Repo:     repo,
		Resumes:  resumeSvc,
		Analyzer: analyzer,
		Now:      func() time.Time { return time.Now().UTC() },
	}
}

// Run scores the resume against the job description, persists the
// analysis, and caches the overall score on the resume.
func (s *Service) Run(ctx context.Context, userID, resumeID, jobDescription string) (Analysis, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return Analysis{}, ErrJobDescriptionEmpty
	}

	resume, content, err := s.Resumes.Snapshot(ctx, userID, resumeID)
	if err != nil {
		return Analysis{}, err
	}

	result := s.Analyzer.Analyze(content, jobDescription)

	analysis := fromResult(result)
	analysis.ID = uuid.NewString()
	analysis.ResumeID = resume.ID
	analysis.UserID = userID
	analysis.JobDescription = jobDescription
	analysis.CreatedAt = s.Now()

	if err := s.Repo.Create(ctx, analysis); err != nil {
		return Analysis{}, err
	}
	if err := s.Resumes.RecordATSScore(ctx, userID, resumeID, analysis.OverallScore); err != nil {
		// The analysis itself is already durable. Report and move on.
		telemetry.Warn("analysis.score_cache_failed", map[string]any{
			"resume_id":   resumeID,
			"analysis_id": analysis.ID,
			"error":       err.Error(),
		})
	}

	telemetry.Info("analysis.completed", map[string]any{
		"analysis_id":   analysis.ID,
		"resume_id":     resumeID,
		"overall_score": analysis.OverallScore,
	})
	return analysis, nil
}

// Report scores the resume with extended keyword detail. Nothing is
// persisted and the cached score is left untouched.
func (s *Service) Report(ctx context.Context, userID, resumeID, jobDescription string) (ats.Result, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return ats.Result{}, ErrJobDescriptionEmpty
	}
	_, content, err := s.Resumes.Snapshot(ctx, userID, resumeID)
	if err != nil {
		return ats.Result{}, err
	}
	return s.Analyzer.DetailedReport(content, jobDescription), nil
}

// QuickCheckResult is the reduced scoring for raw uploaded text, where
// structured sections are unavailable.
type QuickCheckResult struct {
	KeywordMatchScore int                           `json:"keywordMatchScore"`
	SkillMatchScore   int                           `json:"skillMatchScore"`
	ReadabilityScore  int                           `json:"readabilityScore"`
	MatchedKeywords   []string                      `json:"matchedKeywords"`
	MissingKeywords   []string                      `json:"missingKeywords"`
	FoundSkills       []string                      `json:"foundSkills"`
	MissingSkills     []string                      `json:"missingSkills"`
	KeywordDensity    map[string]ats.KeywordDensity `json:"keywordDensity"`
}

// QuickCheck scores extracted resume text against a job description.
// Format checks need structured sections, so only the text-level
// components run.
func (s *Service) QuickCheck(resumeText, jobDescription string) (QuickCheckResult, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return QuickCheckResult{}, ErrJobDescriptionEmpty
	}
	keywords := s.Analyzer.KeywordMatch(resumeText, jobDescription)
	skills := s.Analyzer.SkillMatch(resumeText, jobDescription)
	return QuickCheckResult{
		KeywordMatchScore: keywords.Score,
		SkillMatchScore:   skills.Score,
		ReadabilityScore:  ats.Readability(resumeText),
		MatchedKeywords:   keywords.Matched,
		MissingKeywords:   keywords.Missing,
		FoundSkills:       skills.Found,
		MissingSkills:     skills.Missing,
		KeywordDensity:    keywords.Density,
	}, nil
}

// Get returns an analysis owned by the user.
func (s *Service) Get(ctx context.Context, userID, analysisID string) (Analysis, error) {
	return s.Repo.GetByID(ctx, userID, analysisID)
}

// List returns the resume's analyses, newest first.
func (s *Service) List(ctx context.Context, userID, resumeID string, limit, offset int) ([]Analysis, error) {
	if _, err := s.Resumes.Get(ctx, userID, resumeID); err != nil {
		return nil, err
	}
	return s.Repo.ListByResume(ctx, userID, resumeID, limit, offset)
}
