package db

import (
	"context"
)

const upsertProfile = `
INSERT INTO faculty_profiles (
    node_id, name, designation, department, school, email,
    profile_image_url, source_url, sections, scraped_at
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (node_id) DO UPDATE SET
    name = excluded.name,
    designation = excluded.designation,
    department = excluded.department,
    school = excluded.school,
    email = excluded.email,
    profile_image_url = excluded.profile_image_url,
    source_url = excluded.source_url,
    sections = excluded.sections,
    scraped_at = excluded.scraped_at
`

type UpsertProfileParams struct {
	NodeID          string
	Name            string
	Designation     string
	Department      string
	School          string
	Email           string
	ProfileImageUrl string
	SourceUrl       string
	Sections        string
	ScrapedAt       int64
}

func (q *Queries) UpsertProfile(ctx context.Context, arg UpsertProfileParams) error {
	_, err := q.db.ExecContext(ctx, upsertProfile,
		arg.NodeID,
		arg.Name,
		arg.Designation,
		arg.Department,
		arg.School,
		arg.Email,
		arg.ProfileImageUrl,
		arg.SourceUrl,
		arg.Sections,
		arg.ScrapedAt,
	)
	return err
}

const getProfile = `
SELECT node_id, name, designation, department, school, email,
       profile_image_url, source_url, sections, scraped_at
FROM faculty_profiles
WHERE node_id = ?
`

func (q *Queries) GetProfile(ctx context.Context, nodeID string) (FacultyProfile, error) {
	row := q.db.QueryRowContext(ctx, getProfile, nodeID)
	var i FacultyProfile
	err := row.Scan(
		&i.NodeID,
		&i.Name,
		&i.Designation,
		&i.Department,
		&i.School,
		&i.Email,
		&i.ProfileImageUrl,
		&i.SourceUrl,
		&i.Sections,
		&i.ScrapedAt,
	)
	return i, err
}

const listProfiles = `
SELECT node_id, name, designation, department, school, email,
       profile_image_url, source_url, sections, scraped_at
FROM faculty_profiles
ORDER BY name
`

func (q *Queries) ListProfiles(ctx context.Context) ([]FacultyProfile, error) {
	rows, err := q.db.QueryContext(ctx, listProfiles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []FacultyProfile
	for rows.Next() {
		var i FacultyProfile
		if err := rows.Scan(
			&i.NodeID,
			&i.Name,
			&i.Designation,
			&i.Department,
			&i.School,
			&i.Email,
			&i.ProfileImageUrl,
			&i.SourceUrl,
			&i.Sections,
			&i.ScrapedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listProfilesByDepartment = `
SELECT node_id, name, designation, department, school, email,
       profile_image_url, source_url, sections, scraped_at
FROM faculty_profiles
WHERE department = ?
ORDER BY name
`

func (q *Queries) ListProfilesByDepartment(ctx context.Context, department string) ([]FacultyProfile, error) {
	rows, err := q.db.QueryContext(ctx, listProfilesByDepartment, department)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []FacultyProfile
	for rows.Next() {
		var i FacultyProfile
		if err := rows.Scan(
			&i.NodeID,
			&i.Name,
			&i.Designation,
			&i.Department,
			&i.School,
			&i.Email,
			&i.ProfileImageUrl,
			&i.SourceUrl,
			&i.Sections,
			&i.ScrapedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteProfile = `
DELETE FROM faculty_profiles WHERE node_id = ?
`

func (q *Queries) DeleteProfile(ctx context.Context, nodeID string) error {
	_, err := q.db.ExecContext(ctx, deleteProfile, nodeID)
	return err
}
