package client

import (
	"context"
	"net/http"

	"github.com/KazKozDev/pathfinder/pkg/models"
)

func (c *Client) ListJobs(ctx context.Context) ([]models.Job, error) {
	return list[models.Job](ctx, c, "/api/jobs")
}

func (c *Client) CreateJob(ctx context.Context, j *models.Job) (*models.Job, error) {
	return create(ctx, c, "/api/jobs", j)
}

func (c *Client) UpdateJob(ctx context.Context, j *models.Job) (*models.Job, error) {
	return update(ctx, c, "/api/jobs", j.ID, j)
}

func (c *Client) DeleteJob(ctx context.Context, id int64) error {
	return c.delete(ctx, "/api/jobs", id)
}

func (c *Client) ListResumes(ctx context.Context) ([]models.Resume, error) {
	return list[models.Resume](ctx, c, "/api/resumes")
}

func (c *Client) CreateResume(ctx context.Context, r *models.Resume) (*models.Resume, error) {
	return create(ctx, c, "/api/resumes", r)
}

func (c *Client) UpdateResume(ctx context.Context, r *models.Resume) (*models.Resume, error) {
	return update(ctx, c, "/api/resumes", r.ID, r)
}

func (c *Client) DeleteResume(ctx context.Context, id int64) error {
	return c.delete(ctx, "/api/resumes", id)
}

func (c *Client) ListContacts(ctx context.Context) ([]models.CrmContact, error) {
	return list[models.CrmContact](ctx, c, "/api/contacts")
}

func (c *Client) CreateContact(ctx context.Context, ct *models.CrmContact) (*models.CrmContact, error) {
	return create(ctx, c, "/api/contacts", ct)
}

func (c *Client) UpdateContact(ctx context.Context, ct *models.CrmContact) (*models.CrmContact, error) {
	return update(ctx, c, "/api/contacts", ct.ID, ct)
}

func (c *Client) DeleteContact(ctx context.Context, id int64) error {
	return c.delete(ctx, "/api/contacts", id)
}

func (c *Client) ListEvents(ctx context.Context) ([]models.CalendarEvent, error) {
	return list[models.CalendarEvent](ctx, c, "/api/events")
}

func (c *Client) CreateEvent(ctx context.Context, ev *models.CalendarEvent) (*models.CalendarEvent, error) {
	return create(ctx, c, "/api/events", ev)
}

func (c *Client) UpdateEvent(ctx context.Context, ev *models.CalendarEvent) (*models.CalendarEvent, error) {
	return update(ctx, c, "/api/events", ev.ID, ev)
}

func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	return c.delete(ctx, "/api/events", id)
}

func (c *Client) GetSettings(ctx context.Context) (*models.Settings, error) {
	var out models.Settings
	if err := c.do(ctx, http.MethodGet, "/api/settings", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSettings(ctx context.Context, s *models.Settings) (*models.Settings, error) {
	var out models.Settings
	if err := c.do(ctx, http.MethodPut, "/api/settings", s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
