package ats

import "strings"

// FlattenResume concatenates a resume's textual fields into one lowercase
// blob. Empty fields are skipped; the field order is fixed so repeated calls
// over the same snapshot produce identical text.
func FlattenResume(content ResumeContent) string {
	parts := make([]string, 0, 16)
	add := func(values ...string) {
		for _, v := range values {
			if v != "" {
				parts = append(parts, v)
			}
		}
	}

	add(content.FullName, content.Email, content.Summary)
	for _, exp := range content.Experiences {
		add(exp.Company, exp.Position, exp.Description)
	}
	for _, edu := range content.Educations {
		add(edu.Institution, edu.FieldOfStudy, edu.Degree)
	}
	for _, skill := range content.Skills {
		add(skill.Name)
	}
	for _, cert := range content.Certifications {
		add(cert.Name, cert.Organization)
	}
	for _, proj := range content.Projects {
		add(proj.Title, proj.Description, proj.Technologies)
	}

	return strings.ToLower(strings.Join(parts, " "))
}
