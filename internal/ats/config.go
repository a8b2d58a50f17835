package ats

import "regexp"

// Weights controls how the four sub-scores combine into the overall score.
// The canonical weights sum to 1.0.
type Weights struct {
	Keyword     float64
	Skill       float64
	Format      float64
	Readability float64
}

// Config carries the static inputs of the scoring pipeline. A Config is
// treated as immutable once handed to New, so a single value can back any
// number of analyzers.
type Config struct {
	StopWords        map[string]struct{}
	SkillPatterns    []*regexp.Regexp
	MinKeywordLength int
	MaxKeywords      int
	Weights          Weights
}

// defaultStopWords are articles, conjunctions, auxiliary verbs, and pronouns
// that carry no discriminating signal for keyword analysis.
var defaultStopWords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "from", "as", "is", "was", "are", "were", "been",
	"be", "have", "has", "had", "do", "does", "did", "will", "would",
	"should", "could", "may", "might", "must", "can", "this", "that",
	"these", "those", "i", "you", "he", "she", "it", "we", "they",
}

// defaultSkillPatterns identify named technical skills and methodology terms
// in free text. Each alternation covers one domain and has exactly one
// capture group.
var defaultSkillPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(python|java|javascript|react|angular|vue|django|flask|node\.?js)\b`),
	regexp.MustCompile(`(?i)\b(sql|mysql|postgresql|mongodb|redis|elasticsearch)\b`),
	regexp.MustCompile(`(?i)\b(aws|azure|gcp|docker|kubernetes|jenkins|git)\b`),
	regexp.MustCompile(`(?i)\b(html|css|typescript|go|rust|php|ruby|swift|kotlin)\b`),
	regexp.MustCompile(`(?i)\b(machine learning|ml|ai|data science|analytics)\b`),
	regexp.MustCompile(`(?i)\b(agile|scrum|devops|ci/cd|tdd|rest api|graphql)\b`),
}

// DefaultConfig returns the canonical analyzer configuration.
func DefaultConfig() Config {
	stop := make(map[string]struct{}, len(defaultStopWords))
	for _, w := range defaultStopWords {
		stop[w] = struct{}{}
	}
	return Config{
		StopWords:        stop,
		SkillPatterns:    defaultSkillPatterns,
		MinKeywordLength: 3,
		MaxKeywords:      50,
		Weights: Weights{
			Keyword:     0.35,
			Skill:       0.30,
			Format:      0.25,
			Readability: 0.10,
		},
	}
}
