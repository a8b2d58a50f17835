// Package ats scores a resume snapshot against a job description. The
// pipeline is a pure function of its two textual inputs plus the static
// configuration supplied at construction: it performs no I/O and keeps no
// state between calls, so a single Analyzer is safe for concurrent use.
package ats

import (
	"fmt"
	"math"
	"regexp"
)

// Display limits for the keyword lists in persisted results and inline
// reports. Both call sites are fixed contracts.
const (
	keywordLimitResult = 20
	keywordLimitReport = 10
)

// Analyzer runs the scoring pipeline with a fixed configuration.
type Analyzer struct {
	cfg    Config
	wordRe *regexp.Regexp
}

// New builds an Analyzer from cfg. Zero-valued fields fall back to the
// canonical defaults.
func New(cfg Config) *Analyzer {
	def := DefaultConfig()
	if cfg.StopWords == nil {
		cfg.StopWords = def.StopWords
	}
	if cfg.SkillPatterns == nil {
		cfg.SkillPatterns = def.SkillPatterns
	}
	if cfg.MinKeywordLength <= 0 {
		cfg.MinKeywordLength = def.MinKeywordLength
	}
	if cfg.MaxKeywords <= 0 {
		cfg.MaxKeywords = def.MaxKeywords
	}
	if cfg.Weights == (Weights{}) {
		cfg.Weights = def.Weights
	}
	return &Analyzer{
		cfg:    cfg,
		wordRe: regexp.MustCompile(fmt.Sprintf(`\b[a-z]{%d,}\b`, cfg.MinKeywordLength)),
	}
}

// Analyze runs the full pipeline against a resume snapshot. Keyword lists in
// the result are truncated to the top 20.
func (a *Analyzer) Analyze(content ResumeContent, jobDescription string) Result {
	return a.run(content, jobDescription, keywordLimitResult)
}

// DetailedReport is Analyze with keyword lists truncated to the top 10,
// sized for inline display.
func (a *Analyzer) DetailedReport(content ResumeContent, jobDescription string) Result {
	return a.run(content, jobDescription, keywordLimitReport)
}

func (a *Analyzer) run(content ResumeContent, jobDescription string, keywordLimit int) Result {
	resumeText := FlattenResume(content)

	keywords := a.KeywordMatch(resumeText, jobDescription)
	skills := a.SkillMatch(resumeText, jobDescription)
	formatScore, formatIssues := checkFormatting(content)
	readability := Readability(resumeText)

	w := a.cfg.Weights
	overall := int(math.Round(
		float64(keywords.Score)*w.Keyword +
			float64(skills.Score)*w.Skill +
			float64(formatScore)*w.Format +
			float64(readability)*w.Readability))

	hasMetrics := true
	for _, issue := range formatIssues {
		if issue == issueNoMetrics {
			hasMetrics = false
			break
		}
	}

	return Result{
		OverallScore: overall,
		Breakdown: Breakdown{
			KeywordMatch: keywords.Score,
			SkillMatch:   skills.Score,
			Formatting:   formatScore,
			Readability:  readability,
		},
		MatchedKeywords: headOf(keywords.Matched, keywordLimit),
		MissingKeywords: headOf(keywords.Missing, keywordLimit),
		KeywordDensity:  keywords.Density,
		FoundSkills:     skills.Found,
		MissingSkills:   skills.Missing,
		FormatIssues:    formatIssues,
		Suggestions: buildSuggestions(
			keywords.Score, skills.Score,
			keywords.Missing, skills.Missing, formatIssues,
		),
		HasContactInfo:            content.Email != "" && content.Phone != "",
		HasClearSections:          len(content.Experiences) > 0 && len(content.Skills) > 0,
		HasMeasurableAchievements: hasMetrics,
		ReadabilityScore:          readability,
	}
}

func headOf(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
