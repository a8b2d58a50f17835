package ats

import (
	"fmt"
	"strings"
)

// buildSuggestions emits improvement suggestions in fixed category order:
// keywords, skills, one per formatting issue, then a single encouragement
// when nothing else applied.
func buildSuggestions(keywordScore, skillScore int, missingKeywords, missingSkills, formatIssues []string) []Suggestion {
	suggestions := make([]Suggestion, 0, 2+len(formatIssues))

	switch {
	case keywordScore < 60:
		suggestions = append(suggestions, Suggestion{
			Category: CategoryKeywords,
			Severity: SeverityHigh,
			Message:  fmt.Sprintf("Only %d%% keyword match. Add more relevant keywords from the job description.", keywordScore),
			Action:   "Focus on these missing keywords: " + strings.Join(headOf(missingKeywords, 5), ", "),
		})
	case keywordScore < 80:
		suggestions = append(suggestions, Suggestion{
			Category: CategoryKeywords,
			Severity: SeverityMedium,
			Message:  "Good keyword coverage, but room for improvement.",
			Action:   "Consider adding: " + strings.Join(headOf(missingKeywords, 3), ", "),
		})
	}

	if skillScore < 70 && len(missingSkills) > 0 {
		suggestions = append(suggestions, Suggestion{
			Category: CategorySkills,
			Severity: SeverityHigh,
			Message:  fmt.Sprintf("Missing %d required technical skills.", len(missingSkills)),
			Action:   "Add these skills if you have them: " + strings.Join(headOf(missingSkills, 5), ", "),
		})
	}

	for _, issue := range formatIssues {
		suggestions = append(suggestions, Suggestion{
			Category: CategoryFormatting,
			Severity: SeverityMedium,
			Message:  issue,
			Action:   "Update your resume to address this issue.",
		})
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, Suggestion{
			Category: CategoryGeneral,
			Severity: SeverityLow,
			Message:  "Your resume looks great! Continue refining based on specific job requirements.",
			Action:   "Review and update before each application.",
		})
	}

	return suggestions
}
