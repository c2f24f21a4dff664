package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/KazKozDev/pathfinder/pkg/models"
)

// GetSettings returns the stored settings row, or the built-in defaults when
// nothing has been saved yet. The defaults are never written back.
func (r *SQLiteRepo) GetSettings(ctx context.Context) (*models.Settings, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, profile, subscription, privacy, prompts, agents
		FROM settings WHERE id = ?`, models.SettingsID)

	var (
		s            models.Settings
		profile      sql.NullString
		subscription sql.NullString
		privacy      sql.NullString
		prompts      sql.NullString
		agents       sql.NullString
	)
	if err := row.Scan(&s.ID, &profile, &subscription, &privacy, &prompts, &agents); err != nil {
		if err == sql.ErrNoRows {
			def := models.DefaultSettings()
			return &def, nil
		}

		return nil, fmt.Errorf("get settings: %w", err)
	}

	unmarshalJSON(profile, &s.Profile)
	unmarshalJSON(subscription, &s.Subscription)
	unmarshalJSON(privacy, &s.Privacy)
	unmarshalJSON(prompts, &s.Prompts)
	unmarshalJSON(agents, &s.Agents)

	return &s, nil
}

// UpdateSettings replaces the singleton row wholesale.
func (r *SQLiteRepo) UpdateSettings(ctx context.Context, s *models.Settings) error {
	if s == nil {
		return fmt.Errorf("settings is nil")
	}

	_, err := r.conn.Exec(ctx, `INSERT OR REPLACE INTO settings (id, profile, subscription, privacy, prompts, agents)
		VALUES (?, ?, ?, ?, ?, ?)`,
		models.SettingsID, marshalJSON(s.Profile), marshalJSON(s.Subscription),
		marshalJSON(s.Privacy), marshalJSON(s.Prompts), marshalJSON(s.Agents))
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}

	return nil
}
