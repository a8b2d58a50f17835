// Package analyses runs the scoring pipeline against stored resumes and
// persists the results.
package analyses

import (
	"time"

	"ats-backend/internal/ats"
)

// Analysis is one persisted scoring run of a resume against a job
// description.
type Analysis struct {
	ID             string    `json:"id"`
	ResumeID       string    `json:"resumeId"`
	UserID         string    `json:"userId"`
	JobDescription string    `json:"jobDescription"`
	CreatedAt      time.Time `json:"createdAt"`

	OverallScore      int `json:"overallScore"`
	KeywordMatchScore int `json:"keywordMatchScore"`
	SkillMatchScore   int `json:"skillMatchScore"`
	FormatScore       int `json:"formatScore"`
	ReadabilityScore  int `json:"readabilityScore"`

	MatchedKeywords []string                      `json:"matchedKeywords"`
	MissingKeywords []string                      `json:"missingKeywords"`
	KeywordDensity  map[string]ats.KeywordDensity `json:"keywordDensity"`
	FoundSkills     []string                      `json:"foundSkills"`
	MissingSkills   []string                      `json:"missingSkills"`
	FormatIssues    []string                      `json:"formatIssues"`
	Suggestions     []ats.Suggestion              `json:"suggestions"`

	HasContactInfo            bool `json:"hasContactInfo"`
	HasClearSections          bool `json:"hasClearSections"`
	HasMeasurableAchievements bool `json:"hasMeasurableAchievements"`
}

func fromResult(res ats.Result) Analysis {
	return Analysis{
		OverallScore:              res.OverallScore,
		KeywordMatchScore:         res.Breakdown.KeywordMatch,
		SkillMatchScore:           res.Breakdown.SkillMatch,
		FormatScore:               res.Breakdown.Formatting,
		ReadabilityScore:          res.Breakdown.Readability,
		MatchedKeywords:           res.MatchedKeywords,
		MissingKeywords:           res.MissingKeywords,
		KeywordDensity:            res.KeywordDensity,
		FoundSkills:               res.FoundSkills,
		MissingSkills:             res.MissingSkills,
		FormatIssues:              res.FormatIssues,
		Suggestions:               res.Suggestions,
		HasContactInfo:            res.HasContactInfo,
		HasClearSections:          res.HasClearSections,
		HasMeasurableAchievements: res.HasMeasurableAchievements,
	}
}
