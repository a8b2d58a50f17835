// Package resumes owns the resume aggregate: the document a candidate
// edits, plus the child sections that feed the scoring pipeline.
package resumes

import (
	"time"

	"ats-backend/internal/ats"
)

// Resume is the aggregate root. Child sections are loaded and saved
// together with the root.
type Resume struct {
	ID             string     `json:"id"`
	UserID         string     `json:"userId"`
	Title          string     `json:"title"`
	Template       string     `json:"template"`
	FullName       string     `json:"fullName"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Location       string     `json:"location"`
	Summary        string     `json:"summary"`
	TargetJobTitle string     `json:"targetJobTitle"`
	ATSScore       *int       `json:"atsScore"`
	LastATSCheck   *time.Time `json:"lastAtsCheck"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`

	Experiences    []Experience    `json:"experiences"`
	Educations     []Education     `json:"educations"`
	Skills         []Skill         `json:"skills"`
	Certifications []Certification `json:"certifications"`
	Projects       []Project       `json:"projects"`
}

// Experience is one work history entry.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Description string `json:"description"`
}

// Education is one education entry.
type Education struct {
	ID           string `json:"id"`
	Institution  string `json:"institution"`
	FieldOfStudy string `json:"fieldOfStudy"`
	Degree       string `json:"degree"`
}

// Skill is a single named skill.
type Skill struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Certification is one certification entry.
type Certification struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Organization string `json:"organization"`
}

// Project is one project entry.
type Project struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
}

// Content materializes the resume into the snapshot consumed by the
// scoring pipeline.
func (r Resume) Content() ats.ResumeContent {
	content := ats.ResumeContent{
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
		Location: r.Location,
		Summary:  r.Summary,
	}
	for _, exp := range r.Experiences {
		content.Experiences = append(content.Experiences, ats.Experience{
			Company:     exp.Company,
			Position:    exp.Position,
			Description: exp.Description,
		})
	}
	for _, edu := range r.Educations {
		content.Educations = append(content.Educations, ats.Education{
			Institution:  edu.Institution,
			FieldOfStudy: edu.FieldOfStudy,
			Degree:       edu.Degree,
		})
	}
	for _, skill := range r.Skills {
		content.Skills = append(content.Skills, ats.Skill{Name: skill.Name})
	}
	for _, cert := range r.Certifications {
		content.Certifications = append(content.Certifications, ats.Certification{
			Name:         cert.Name,
			Organization: cert.Organization,
		})
	}
	for _, proj := range r.Projects {
		content.Projects = append(content.Projects, ats.Project{
			Title:        proj.Title,
			Description:  proj.Description,
			Technologies: proj.Technologies,
		})
	}
	return content
}
