package resumes

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// PGRepo implements Repo using Postgres. The aggregate is written in a
// single transaction; child rows are replaced wholesale on update.
type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `
id, user_id, title, template, full_name, email, phone, location,
summary, target_job_title, ats_score, last_ats_check, created_at, updated_at`

// Create inserts the resume and its child sections.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const query = `
INSERT INTO resumes (` + resumeColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	if _, err := tx.ExecContext(ctx, query,
		resume.ID,
		resume.UserID,
		resume.Title,
		resume.Template,
		resume.FullName,
		resume.Email,
		resume.Phone,
		resume.Location,
		resume.Summary,
		resume.TargetJobTitle,
		nullInt(resume.ATSScore),
		nullTime(resume.LastATSCheck),
		resume.CreatedAt,
		resume.UpdatedAt,
	); err != nil {
		return err
	}

	if err := insertChildren(ctx, tx, resume); err != nil {
		return err
	}
	return tx.Commit()
}

// GetByID loads the resume and all child sections.
func (r *PGRepo) GetByID(ctx context.Context, userID, resumeID string) (Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE id = $1 AND user_id = $2
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, resumeID, userID)
	resume, err := scanResume(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	if err := r.loadChildren(ctx, &resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// Update rewrites the resume row and replaces its child sections.
func (r *PGRepo) Update(ctx context.Context, resume Resume) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const query = `
UPDATE resumes
SET title = $3, template = $4, full_name = $5, email = $6, phone = $7,
    location = $8, summary = $9, target_job_title = $10, updated_at = $11
WHERE id = $1 AND user_id = $2`
	res, err := tx.ExecContext(ctx, query,
		resume.ID,
		resume.UserID,
		resume.Title,
		resume.Template,
		resume.FullName,
		resume.Email,
		resume.Phone,
		resume.Location,
		resume.Summary,
		resume.TargetJobTitle,
		resume.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	for _, table := range childTables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE resume_id = $1", resume.ID); err != nil {
			return err
		}
	}
	if err := insertChildren(ctx, tx, resume); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes the resume; child rows cascade.
func (r *PGRepo) Delete(ctx context.Context, userID, resumeID string) error {
	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM resumes WHERE id = $1 AND user_id = $2`, resumeID, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByUser returns the user's resumes without child sections, most
// recently updated first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE user_id = $1
ORDER BY updated_at DESC, id`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Resume, 0)
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// UpdateATSScore stores the cached score and check timestamp.
func (r *PGRepo) UpdateATSScore(ctx context.Context, userID, resumeID string, score int, checkedAt time.Time) error {
	res, err := r.DB.ExecContext(ctx, `
UPDATE resumes
SET ats_score = $3, last_ats_check = $4, updated_at = $4
WHERE id = $1 AND user_id = $2`, resumeID, userID, score, checkedAt)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

var childTables = []string{
	"resume_experiences",
	"resume_educations",
	"resume_skills",
	"resume_certifications",
	"resume_projects",
}

func insertChildren(ctx context.Context, tx *sql.Tx, resume Resume) error {
	for i, exp := range resume.Experiences {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO resume_experiences (id, resume_id, company, position, description, sort_order)
VALUES ($1, $2, $3, $4, $5, $6)`,
			childID(exp.ID), resume.ID, exp.Company, exp.Position, exp.Description, i); err != nil {
			return err
		}
	}
	for i, edu := range resume.Educations {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO resume_educations (id, resume_id, institution, field_of_study, degree, sort_order)
VALUES ($1, $2, $3, $4, $5, $6)`,
			childID(edu.ID), resume.ID, edu.Institution, edu.FieldOfStudy, edu.Degree, i); err != nil {
			return err
		}
	}
	for i, skill := range resume.Skills {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO resume_skills (id, resume_id, name, sort_order)
VALUES ($1, $2, $3, $4)`,
			childID(skill.ID), resume.ID, skill.Name, i); err != nil {
			return err
		}
	}
	for i, cert := range resume.Certifications {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO resume_certifications (id, resume_id, name, organization, sort_order)
VALUES ($1, $2, $3, $4, $5)`,
			childID(cert.ID), resume.ID, cert.Name, cert.Organization, i); err != nil {
			return err
		}
	}
	for i, proj := range resume.Projects {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO resume_projects (id, resume_id, title, description, technologies, sort_order)
VALUES ($1, $2, $3, $4, $5, $6)`,
			childID(proj.ID), resume.ID, proj.Title, proj.Description, proj.Technologies, i); err != nil {
			return err
		}
	}
	return nil
}

func (r *PGRepo) loadChildren(ctx context.Context, resume *Resume) error {
	if err := r.queryEach(ctx, `
SELECT id, company, position, description
FROM resume_experiences WHERE resume_id = $1 ORDER BY sort_order`, resume.ID,
		func(rows *sql.Rows) error {
			var exp Experience
			if err := rows.Scan(&exp.ID, &exp.Company, &exp.Position, &exp.Description); err != nil {
				return err
			}
			resume.Experiences = append(resume.Experiences, exp)
			return nil
		}); err != nil {
		return err
	}
	if err := r.queryEach(ctx, `
SELECT id, institution, field_of_study, degree
FROM resume_educations WHERE resume_id = $1 ORDER BY sort_order`, resume.ID,
		func(rows *sql.Rows) error {
			var edu Education
			if err := rows.Scan(&edu.ID, &edu.Institution, &edu.FieldOfStudy, &edu.Degree); err != nil {
				return err
			}
			resume.Educations = append(resume.Educations, edu)
			return nil
		}); err != nil {
		return err
	}
	if err := r.queryEach(ctx, `
SELECT id, name
FROM resume_skills WHERE resume_id = $1 ORDER BY sort_order`, resume.ID,
		func(rows *sql.Rows) error {
			var skill Skill
			if err := rows.Scan(&skill.ID, &skill.Name); err != nil {
				return err
			}
			resume.Skills = append(resume.Skills, skill)
			return nil
		}); err != nil {
		return err
	}
	if err := r.queryEach(ctx, `
SELECT id, name, organization
FROM resume_certifications WHERE resume_id = $1 ORDER BY sort_order`, resume.ID,
		func(rows *sql.Rows) error {
			var cert Certification
			if err := rows.Scan(&cert.ID, &cert.Name, &cert.Organization); err != nil {
				return err
			}
			resume.Certifications = append(resume.Certifications, cert)
			return nil
		}); err != nil {
		return err
	}
	return r.queryEach(ctx, `
SELECT id, title, description, technologies
FROM resume_projects WHERE resume_id = $1 ORDER BY sort_order`, resume.ID,
		func(rows *sql.Rows) error {
			var proj Project
			if err := rows.Scan(&proj.ID, &proj.Title, &proj.Description, &proj.Technologies); err != nil {
				return err
			}
			resume.Projects = append(resume.Projects, proj)
			return nil
		})
}

func (r *PGRepo) queryEach(ctx context.Context, query, resumeID string, scan func(*sql.Rows) error) error {
	rows, err := r.DB.QueryContext(ctx, query, resumeID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var resume Resume
	var atsScore sql.NullInt64
	var lastCheck sql.NullTime
	err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&resume.Title,
		&resume.Template,
		&resume.FullName,
		&resume.Email,
		&resume.Phone,
		&resume.Location,
		&resume.Summary,
		&resume.TargetJobTitle,
		&atsScore,
		&lastCheck,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	)
	if err != nil {
		return Resume{}, err
	}
	if atsScore.Valid {
		score := int(atsScore.Int64)
		resume.ATSScore = &score
	}
	if lastCheck.Valid {
		t := lastCheck.Time
		resume.LastATSCheck = &t
	}
	return resume, nil
}

func childID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func nullInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullTime(v *time.Time) any {
	if v == nil {
		return nil
	}
	return *v
}
