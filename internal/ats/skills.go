package ats

import (
	"math"
	"strings"
)

// RequiredSkills extracts the technical skills named in a job description by
// applying the configured skill patterns in order. Matches are lowercased
// and deduplicated, keeping first-match order.
func (a *Analyzer) RequiredSkills(jobDescription string) []string {
	seen := make(map[string]bool)
	skills := []string{}
	for _, re := range a.cfg.SkillPatterns {
		for _, m := range re.FindAllStringSubmatch(jobDescription, -1) {
			skill := strings.ToLower(m[1])
			if seen[skill] {
				continue
			}
			seen[skill] = true
			skills = append(skills, skill)
		}
	}
	return skills
}

// SkillMatch checks which skills required by the job description appear in
// the resume text. A skill counts as found if it is a literal substring of
// the lowercased resume text, so multi-word skills like "machine learning"
// must appear verbatim. An empty required set scores 100.
func (a *Analyzer) SkillMatch(resumeText, jobDescription string) SkillMatchResult {
	resumeText = strings.ToLower(resumeText)
	required := a.RequiredSkills(jobDescription)

	found := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))
	for _, skill := range required {
		if strings.Contains(resumeText, skill) {
			found = append(found, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	if len(required) == 0 {
		return SkillMatchResult{Score: 100, Found: found, Missing: missing}
	}

	score := int(math.Round(float64(len(found)) / float64(len(required)) * 100))
	return SkillMatchResult{Score: score, Found: found, Missing: missing}
}
