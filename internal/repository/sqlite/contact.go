package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/KazKozDev/pathfinder/pkg/models"
)

const contactColumns = `id, name, role, company, email, phone, linkedinUrl, source, notes,
	dateAdded, tags, lastInteraction`

func scanContact(row rowScanner) (*models.CrmContact, error) {
	var (
		c        models.CrmContact
		role     sql.NullString
		company  sql.NullString
		email    sql.NullString
		phone    sql.NullString
		linkedin sql.NullString
		source   sql.NullString
		notes    sql.NullString
		tags     sql.NullString
	)
	if err := row.Scan(&c.ID, &c.Name, &role, &company, &email, &phone, &linkedin, &source,
		&notes, &c.DateAdded, &tags, &c.LastInteraction); err != nil {
		return nil, err
	}

	c.Role = role.String
	c.Company = company.String
	c.Email = email.String
	c.Phone = phone.String
	c.LinkedInURL = linkedin.String
	c.Source = source.String
	c.Notes = notes.String
	unmarshalJSON(tags, &c.Tags)

	return &c, nil
}

// ListContacts returns all contacts, most recently interacted with first.
func (r *SQLiteRepo) ListContacts(ctx context.Context) ([]models.CrmContact, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT `+contactColumns+` FROM contacts ORDER BY lastInteraction DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var out []models.CrmContact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		out = append(out, *c)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) GetContact(ctx context.Context, id int64) (*models.CrmContact, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id = ?`, id)
	c, err := scanContact(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrNotFound
		}

		return nil, fmt.Errorf("get contact %d: %w", id, err)
	}

	return c, nil
}

func (r *SQLiteRepo) CreateContact(ctx context.Context, c *models.CrmContact) (int64, error) {
	if c == nil {
		return 0, fmt.Errorf("contact is nil")
	}
	if c.DateAdded == 0 {
		c.DateAdded = now()
	}
	if c.LastInteraction == 0 {
		c.LastInteraction = c.DateAdded
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO contacts (name, role, company, email, phone,
		linkedinUrl, source, notes, dateAdded, tags, lastInteraction)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Name, c.Role, c.Company, c.Email, c.Phone, c.LinkedInURL, c.Source, c.Notes,
		c.DateAdded, marshalJSON(c.Tags), c.LastInteraction)
	if err != nil {
		return 0, fmt.Errorf("create contact: %w", err)
	}

	return res.LastInsertId()
}

// UpdateContact replaces every column except id and dateAdded and bumps
// lastInteraction to the current time.
func (r *SQLiteRepo) UpdateContact(ctx context.Context, c *models.CrmContact) error {
	if c == nil {
		return fmt.Errorf("contact is nil")
	}
	c.LastInteraction = now()

	res, err := r.conn.Exec(ctx, `UPDATE contacts SET name = ?, role = ?, company = ?,
		email = ?, phone = ?, linkedinUrl = ?, source = ?, notes = ?, tags = ?,
		lastInteraction = ? WHERE id = ?`,
		c.Name, c.Role, c.Company, c.Email, c.Phone, c.LinkedInURL, c.Source, c.Notes,
		marshalJSON(c.Tags), c.LastInteraction, c.ID)
	if err != nil {
		return fmt.Errorf("update contact %d: %w", c.ID, err)
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

func (r *SQLiteRepo) DeleteContact(ctx context.Context, id int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete contact %d: %w", id, err)
	}

	return nil
}
