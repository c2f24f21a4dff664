package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/KazKozDev/pathfinder/pkg/models"
)

const eventColumns = `id, title, date, time, type, notes, jobId, contactId`

func scanEvent(row rowScanner) (*models.CalendarEvent, error) {
	var (
		e         models.CalendarEvent
		evTime    sql.NullString
		notes     sql.NullString
		jobID     sql.NullInt64
		contactID sql.NullInt64
	)
	if err := row.Scan(&e.ID, &e.Title, &e.Date, &evTime, &e.Type, &notes, &jobID, &contactID); err != nil {
		return nil, err
	}

	e.Time = evTime.String
	e.Notes = notes.String
	if jobID.Valid {
		id := jobID.Int64
		e.JobID = &id
	}
	if contactID.Valid {
		id := contactID.Int64
		e.ContactID = &id
	}

	return &e, nil
}

// ListEvents returns all calendar events in chronological order.
func (r *SQLiteRepo) ListEvents(ctx context.Context) ([]models.CalendarEvent, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+eventColumns+` FROM calendar_events ORDER BY date ASC, time ASC`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []models.CalendarEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, *e)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) GetEvent(ctx context.Context, id int64) (*models.CalendarEvent, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+eventColumns+` FROM calendar_events WHERE id = ?`, id)
	e, err := scanEvent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrNotFound
		}

		return nil, fmt.Errorf("get event %d: %w", id, err)
	}

	return e, nil
}

func (r *SQLiteRepo) CreateEvent(ctx context.Context, e *models.CalendarEvent) (int64, error) {
	if e == nil {
		return 0, fmt.Errorf("event is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO calendar_events (title, date, time, type, notes, jobId, contactId)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Title, e.Date, e.Time, e.Type, e.Notes, e.JobID, e.ContactID)
	if err != nil {
		return 0, fmt.Errorf("create event: %w", err)
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) UpdateEvent(ctx context.Context, e *models.CalendarEvent) error {
	if e == nil {
		return fmt.Errorf("event is nil")
	}

	res, err := r.conn.Exec(ctx, `UPDATE calendar_events SET title = ?, date = ?, time = ?,
		type = ?, notes = ?, jobId = ?, contactId = ? WHERE id = ?`,
		e.Title, e.Date, e.Time, e.Type, e.Notes, e.JobID, e.ContactID, e.ID)
	if err != nil {
		return fmt.Errorf("update event %d: %w", e.ID, err)
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

func (r *SQLiteRepo) DeleteEvent(ctx context.Context, id int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM calendar_events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}

	return nil
}
