package resumes

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"ats-backend/internal/ats"
)

// Input carries the writable fields of a resume.
type Input struct {
	Title          string          `json:"title"`
	Template       string          `json:"template"`
	FullName       string          `json:"fullName"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Location       string          `json:"location"`
	Summary        string          `json:"summary"`
	TargetJobTitle string          `json:"targetJobTitle"`
	Experiences    []Experience    `json:"experiences"`
	Educations     []Education     `json:"educations"`
	Skills         []Skill         `json:"skills"`
	Certifications []Certification `json:"certifications"`
	Projects       []Project       `json:"projects"`
}

// Service contains business logic for resumes.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, Now: func() time.Time { return time.Now().UTC() }}
}

// Create validates and stores a new resume.
func (s *Service) Create(ctx context.Context, userID string, in Input) (Resume, error) {
	if userID == "" {
		return Resume{}, errors.New("userID is required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return Resume{}, errors.New("title is required")
	}
	now := s.Now()
	resume := Resume{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyInput(&resume, in)
	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// Get returns a resume owned by the user.
func (s *Service) Get(ctx context.Context, userID, resumeID string) (Resume, error) {
	return s.Repo.GetByID(ctx, userID, resumeID)
}

// Update replaces the writable fields of an existing resume. A stored
// ATS score is cleared because the content it scored has changed.
func (s *Service) Update(ctx context.Context, userID, resumeID string, in Input) (Resume, error) {
	resume, err := s.Repo.GetByID(ctx, userID, resumeID)
	if err != nil {
		return Resume{}, err
	}
	if strings.TrimSpace(in.Title) == "" {
		return Resume{}, errors.New("title is required")
	}
	applyInput(&resume, in)
	resume.ATSScore = nil
	resume.LastATSCheck = nil
	resume.UpdatedAt = s.Now()
	if err := s.Repo.Update(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// Delete removes a resume owned by the user.
func (s *Service) Delete(ctx context.Context, userID, resumeID string) error {
	return s.Repo.Delete(ctx, userID, resumeID)
}

// List returns the user's resumes.
func (s *Service) List(ctx context.Context, userID string) ([]Resume, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Snapshot loads a resume and materializes the content snapshot the
// scoring pipeline consumes.
func (s *Service) Snapshot(ctx context.Context, userID, resumeID string) (Resume, ats.ResumeContent, error) {
	resume, err := s.Repo.GetByID(ctx, userID, resumeID)
	if err != nil {
		return Resume{}, ats.ResumeContent{}, err
	}
	return resume, resume.Content(), nil
}

// RecordATSScore caches the latest overall score on the resume.
func (s *Service) RecordATSScore(ctx context.Context, userID, resumeID string, score int) error {
	return s.Repo.UpdateATSScore(ctx, userID, resumeID, score, s.Now())
}

func applyInput(resume *Resume, in Input) {
	resume.Title = strings.TrimSpace(in.Title)
	resume.Template = in.Template
	if resume.Template == "" {
		resume.Template = "modern"
	}
	resume.FullName = in.FullName
	resume.Email = in.Email
	resume.Phone = in.Phone
	resume.Location = in.Location
	resume.Summary = in.Summary
	resume.TargetJobTitle = in.TargetJobTitle
	resume.Experiences = in.Experiences
	resume.Educations = in.Educations
	resume.Skills = in.Skills
	resume.Certifications = in.Certifications
	resume.Projects = in.Projects
}
