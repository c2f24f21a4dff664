package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/KazKozDev/pathfinder/pkg/models"
)

const resumeColumns = `id, name, contact, summary, experience, education, skills, customSections`

func scanResume(row rowScanner) (*models.Resume, error) {
	var (
		r          models.Resume
		contact    sql.NullString
		summary    sql.NullString
		experience sql.NullString
		education  sql.NullString
		skills     sql.NullString
		custom     sql.NullString
	)
	if err := row.Scan(&r.ID, &r.Name, &contact, &summary, &experience, &education, &skills, &custom); err != nil {
		return nil, err
	}

	r.Summary = summary.String
	r.Skills = skills.String
	unmarshalJSON(contact, &r.Contact)
	unmarshalJSON(experience, &r.Experience)
	unmarshalJSON(education, &r.Education)
	unmarshalJSON(custom, &r.CustomSections)

	return &r, nil
}

// ListResumes returns all resume versions, newest first.
func (r *SQLiteRepo) ListResumes(ctx context.Context) ([]models.Resume, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+resumeColumns+` FROM resumes ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	defer rows.Close()

	var out []models.Resume
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("scan resume: %w", err)
		}
		out = append(out, *res)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) GetResume(ctx context.Context, id int64) (*models.Resume, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+resumeColumns+` FROM resumes WHERE id = ?`, id)
	res, err := scanResume(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrNotFound
		}

		return nil, fmt.Errorf("get resume %d: %w", id, err)
	}

	return res, nil
}

func (r *SQLiteRepo) CreateResume(ctx context.Context, res *models.Resume) (int64, error) {
	if res == nil {
		return 0, fmt.Errorf("resume is nil")
	}

	out, err := r.conn.Exec(ctx, `INSERT INTO resumes (name, contact, summary, experience, education, skills, customSections)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		res.Name, marshalJSON(res.Contact), res.Summary, marshalJSON(res.Experience),
		marshalJSON(res.Education), res.Skills, marshalJSON(res.CustomSections))
	if err != nil {
		return 0, fmt.Errorf("create resume: %w", err)
	}

	return out.LastInsertId()
}

func (r *SQLiteRepo) UpdateResume(ctx context.Context, res *models.Resume) error {
	if res == nil {
		return fmt.Errorf("resume is nil")
	}

	out, err := r.conn.Exec(ctx, `UPDATE resumes SET name = ?, contact = ?, summary = ?,
		experience = ?, education = ?, skills = ?, customSections = ? WHERE id = ?`,
		res.Name, marshalJSON(res.Contact), res.Summary, marshalJSON(res.Experience),
		marshalJSON(res.Education), res.Skills, marshalJSON(res.CustomSections), res.ID)
	if err != nil {
		return fmt.Errorf("update resume %d: %w", res.ID, err)
	}

	n, err := out.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrNotFound
	}

	return nil
}

func (r *SQLiteRepo) DeleteResume(ctx context.Context, id int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM resumes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete resume %d: %w", id, err)
	}

	return nil
}
