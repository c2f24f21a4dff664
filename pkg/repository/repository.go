package repository

import (
	"context"

	"github.com/KazKozDev/pathfinder/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.
//
// Shared semantics: List orderings are fixed per entity; Get and Update
// report models.ErrNotFound for absent rows (Update detects it via zero
// rows affected); Delete is idempotent and returns nil when the row is
// already gone.

type JobRepo interface {
	ListJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, id int64) (*models.Job, error)
	CreateJob(ctx context.Context, j *models.Job) (int64, error)
	UpdateJob(ctx context.Context, j *models.Job) error
	DeleteJob(ctx context.Context, id int64) error
}

type ResumeRepo interface {
	ListResumes(ctx context.Context) ([]models.Resume, error)
	GetResume(ctx context.Context, id int64) (*models.Resume, error)
	CreateResume(ctx context.Context, r *models.Resume) (int64, error)
	UpdateResume(ctx context.Context, r *models.Resume) error
	DeleteResume(ctx context.Context, id int64) error
}

type ContactRepo interface {
	ListContacts(ctx context.Context) ([]models.CrmContact, error)
	GetContact(ctx context.Context, id int64) (*models.CrmContact, error)
	CreateContact(ctx context.Context, c *models.CrmContact) (int64, error)
	UpdateContact(ctx context.Context, c *models.CrmContact) error
	DeleteContact(ctx context.Context, id int64) error
}

type EventRepo interface {
	ListEvents(ctx context.Context) ([]models.CalendarEvent, error)
	GetEvent(ctx context.Context, id int64) (*models.CalendarEvent, error)
	CreateEvent(ctx context.Context, e *models.CalendarEvent) (int64, error)
	UpdateEvent(ctx context.Context, e *models.CalendarEvent) error
	DeleteEvent(ctx context.Context, id int64) error
}

// SettingsRepo manages the singleton settings row. GetSettings returns
// built-in defaults when no row exists (nothing is written); UpdateSettings
// upserts the single row wholesale, storing exactly what was sent.
type SettingsRepo interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, s *models.Settings) error
}
