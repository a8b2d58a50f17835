package ats

import (
	"regexp"
	"strings"
)

// Issue strings emitted by the format checker. The metrics issue doubles as
// the marker for the HasMeasurableAchievements flag.
const (
	issueMissingEmail   = "Missing email address"
	issueMissingPhone   = "Missing phone number"
	issueNoExperience   = "No work experience listed"
	issueNoSkills       = "No skills listed"
	issueNoMetrics      = "Add quantifiable achievements (numbers, percentages, metrics)"
	issueSummaryShort   = "Professional summary is too short (aim for 50-100 words)"
	issueSummaryLong    = "Professional summary is too long (aim for 50-100 words)"
	issueMissingSummary = "Missing professional summary"
)

// metricsRe matches a number with an optional %, $, or + suffix.
var metricsRe = regexp.MustCompile(`\d+[%$]?|\d+\+`)

// checkFormatting applies structural deductions in a fixed order so the
// issue list is deterministic. Each condition is evaluated independently
// except the summary checks, which are mutually exclusive. The score starts
// at 100 and is floored at 0.
func checkFormatting(content ResumeContent) (int, []string) {
	score := 100
	issues := []string{}

	if content.Email == "" {
		issues = append(issues, issueMissingEmail)
		score -= 10
	}
	if content.Phone == "" {
		issues = append(issues, issueMissingPhone)
		score -= 5
	}
	if len(content.Experiences) == 0 {
		issues = append(issues, issueNoExperience)
		score -= 20
	}
	if len(content.Skills) == 0 {
		issues = append(issues, issueNoSkills)
		score -= 15
	}

	hasMetrics := false
	for _, exp := range content.Experiences {
		if metricsRe.MatchString(exp.Description) {
			hasMetrics = true
			break
		}
	}
	if !hasMetrics {
		issues = append(issues, issueNoMetrics)
		score -= 10
	}

	if content.Summary != "" {
		words := len(strings.Fields(content.Summary))
		if words < 20 {
			issues = append(issues, issueSummaryShort)
			score -= 5
		} else if words > 150 {
			issues = append(issues, issueSummaryLong)
			score -= 5
		}
	} else {
		issues = append(issues, issueMissingSummary)
		score -= 10
	}

	if score < 0 {
		score = 0
	}
	return score, issues
}
