package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/KazKozDev/pathfinder/pkg/models"
)

const jobColumns = `id, title, company, status, description, selectedResumeId, coverLetter,
	location, sourceUrl, source, dateAdded, applicationDate, contactIds, portfolioUrl,
	communicationLog, questionsForInterviewer, salaryInfo, notes, priority, interestLevel,
	tags, nextStep, nextStepDate`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*models.Job, error) {
	var (
		j                models.Job
		description      sql.NullString
		selectedResumeID sql.NullInt64
		coverLetter      sql.NullString
		location         sql.NullString
		sourceURL        sql.NullString
		source           sql.NullString
		applicationDate  sql.NullString
		contactIDs       sql.NullString
		portfolioURL     sql.NullString
		commLog          sql.NullString
		questions        sql.NullString
		salaryInfo       sql.NullString
		notes            sql.NullString
		priority         sql.NullString
		interestLevel    sql.NullInt64
		tags             sql.NullString
		nextStep         sql.NullString
		nextStepDate     sql.NullString
	)
	if err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Status, &description, &selectedResumeID,
		&coverLetter, &location, &sourceURL, &source, &j.DateAdded, &applicationDate,
		&contactIDs, &portfolioURL, &commLog, &questions, &salaryInfo, &notes, &priority,
		&interestLevel, &tags, &nextStep, &nextStepDate); err != nil {
		return nil, err
	}

	j.Description = description.String
	if selectedResumeID.Valid {
		id := selectedResumeID.Int64
		j.SelectedResumeID = &id
	}
	j.CoverLetter = coverLetter.String
	j.Location = location.String
	j.SourceURL = sourceURL.String
	j.Source = source.String
	j.ApplicationDate = applicationDate.String
	j.PortfolioURL = portfolioURL.String
	j.QuestionsForInterviewer = questions.String
	j.Notes = notes.String
	j.Priority = models.Priority(priority.String)
	j.InterestLevel = int(interestLevel.Int64)
	j.NextStep = nextStep.String
	j.NextStepDate = nextStepDate.String

	unmarshalJSON(contactIDs, &j.ContactIDs)
	unmarshalJSON(commLog, &j.CommunicationLog)
	unmarshalJSON(salaryInfo, &j.SalaryInfo)
	unmarshalJSON(tags, &j.Tags)

	return &j, nil
}

// ListJobs returns all tracked jobs, most recently added first.
func (r *SQLiteRepo) ListJobs(ctx context.Context) ([]models.Job, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY dateAdded DESC`)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var out []models.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		out = append(out, *j)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = ?`, id)
	j, err := scanJob(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrNotFound
		}

		return nil, fmt.Errorf("get job %d: %w", id, err)
	}

	return j, nil
}

func (r *SQLiteRepo) CreateJob(ctx context.Context, j *models.Job) (int64, error) {
	if j == nil {
		return 0, fmt.Errorf("job is nil")
	}
	if j.Status == "" {
		j.Status = models.StatusWishlist
	}
	if j.Priority == "" {
		j.Priority = models.PriorityMedium
	}
	if j.DateAdded == 0 {
		j.DateAdded = now()
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO jobs (title, company, status, description,
		selectedResumeId, coverLetter, location, sourceUrl, source, dateAdded, applicationDate,
		contactIds, portfolioUrl, communicationLog, questionsForInterviewer, salaryInfo, notes,
		priority, interestLevel, tags, nextStep, nextStepDate)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		j.Title, j.Company, j.Status, j.Description, j.SelectedResumeID, j.CoverLetter,
		j.Location, j.SourceURL, j.Source, j.DateAdded, j.ApplicationDate,
		marshalJSON(j.ContactIDs), j.PortfolioURL, marshalJSON(j.CommunicationLog),
		j.QuestionsForInterviewer, marshalJSON(j.SalaryInfo), j.Notes, j.Priority,
		j.InterestLevel, marshalJSON(j.Tags), j.NextStep, j.NextStepDate)
	if err != nil {
		return 0, fmt.Errorf("create job: %w", err)
	}

	return res.LastInsertId()
}

// UpdateJob replaces every column except id and dateAdded.
func (r *SQLiteRepo) UpdateJob(ctx context.Context, j *models.Job) error {
	if j == nil {
		return fmt.Errorf("job is nil")
	}

	res, err := r.conn.Exec(ctx, `UPDATE jobs SET title = ?, company = ?, status = ?,
		description = ?, selectedResumeId = ?, coverLetter = ?, location = ?, sourceUrl = ?,
		source = ?, applicationDate = ?, contactIds = ?, portfolioUrl = ?, communicationLog = ?,
		questionsForInterviewer = ?, salaryInfo = ?, notes = ?, priority = ?, interestLevel = ?,
		tags = ?, nextStep = ?, nextStepDate = ? WHERE id = ?`,
		j.Title, j.Company, j.Status, j.Description, j.SelectedResumeID, j.CoverLetter,
		j.Location, j.SourceURL, j.Source, j.ApplicationDate, marshalJSON(j.ContactIDs),
		j.PortfolioURL, marshalJSON(j.CommunicationLog), j.QuestionsForInterviewer,
		marshalJSON(j.SalaryInfo), j.Notes, j.Priority, j.InterestLevel, marshalJSON(j.Tags),
		j.NextStep, j.NextStepDate, j.ID)
	if err != nil {
		return fmt.Errorf("update job %d: %w", j.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrNotFound
	}

	return nil
}

// DeleteJob removes a job. Deleting a missing id is not an error.
func (r *SQLiteRepo) DeleteJob(ctx context.Context, id int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete job %d: %w", id, err)
	}

	return nil
}
