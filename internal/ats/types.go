package ats

// ResumeContent is a materialized, read-only snapshot of a resume's textual
// fields. The collaborator owning storage assembles it before calling the
// analyzer; the analyzer never fetches data and never mutates the snapshot.
type ResumeContent struct {
	FullName string
	Email    string
	Phone    string
	Location string
	Summary  string

	Experiences    []Experience
	Educations     []Education
	Skills         []Skill
	Certifications []Certification
	Projects       []Project
}

// Experience is one work-history entry.
type Experience struct {
	Company     string
	Position    string
	Description string
}

// Education is one education entry. Degree holds the human-readable degree
// label (e.g. "Bachelor's Degree"), not a code.
type Education struct {
	Institution  string
	FieldOfStudy string
	Degree       string
}

// Skill is a single named skill.
type Skill struct {
	Name string
}

// Certification is one certification entry.
type Certification struct {
	Name         string
	Organization string
}

// Project is one project entry. Technologies is free text, typically a
// comma-separated list.
type Project struct {
	Title        string
	Description  string
	Technologies string
}

// Suggestion severities and categories, ordered by how they are emitted.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"

	CategoryKeywords   = "Keywords"
	CategorySkills     = "Skills"
	CategoryFormatting = "Formatting"
	CategoryGeneral    = "General"
)

// Suggestion is one actionable improvement derived from the sub-scores.
type Suggestion struct {
	Category string `json:"category"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Action   string `json:"action"`
}

// Breakdown holds the four sub-scores, each in [0,100].
type Breakdown struct {
	KeywordMatch int `json:"keywordMatch"`
	SkillMatch   int `json:"skillMatch"`
	Formatting   int `json:"formatting"`
	Readability  int `json:"readability"`
}

// KeywordDensity records how often a keyword appears in the job description
// versus the resume. MatchRatio is capped at 1.0.
type KeywordDensity struct {
	JDCount     int     `json:"jdCount"`
	ResumeCount int     `json:"resumeCount"`
	MatchRatio  float64 `json:"matchRatio"`
}

// KeywordCount pairs a keyword with its frequency. Slices of KeywordCount
// are ordered most frequent first, ties by first occurrence.
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// KeywordMatchResult is the outcome of scoring resume text against the job
// description's keyword set. Matched and Missing keep the job description's
// frequency order and are not truncated.
type KeywordMatchResult struct {
	Score   int                       `json:"score"`
	Matched []string                  `json:"matched"`
	Missing []string                  `json:"missing"`
	Density map[string]KeywordDensity `json:"density"`
}

// SkillMatchResult is the outcome of checking required skills against the
// resume text.
type SkillMatchResult struct {
	Score   int      `json:"score"`
	Found   []string `json:"found"`
	Missing []string `json:"missing"`
}

// Result is the complete outcome of one analysis. It is constructed fresh
// per call and immutable once returned; persisting it is the caller's
// responsibility.
type Result struct {
	OverallScore int       `json:"overallScore"`
	Breakdown    Breakdown `json:"breakdown"`

	MatchedKeywords []string                  `json:"matchedKeywords"`
	MissingKeywords []string                  `json:"missingKeywords"`
	KeywordDensity  map[string]KeywordDensity `json:"keywordDensity"`

	FoundSkills   []string `json:"foundSkills"`
	MissingSkills []string `json:"missingSkills"`

	FormatIssues []string     `json:"formatIssues"`
	Suggestions  []Suggestion `json:"suggestions"`

	HasContactInfo            bool `json:"hasContactInfo"`
	HasClearSections          bool `json:"hasClearSections"`
	HasMeasurableAchievements bool `json:"hasMeasurableAchievements"`
	ReadabilityScore          int  `json:"readabilityScore"`
}
