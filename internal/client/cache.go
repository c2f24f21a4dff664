package client

import (
	"context"
	"sync"

	"github.com/KazKozDev/pathfinder/pkg/models"
	"golang.org/x/sync/errgroup"
)

// Cache is an in-memory mirror of the server's collections. Load fills it
// once; afterwards every mutation calls the API first and merges only the
// server's response, so the cache never drifts ahead of the database.
type Cache struct {
	client *Client

	mu       sync.Mutex
	ready    bool
	jobs     []models.Job
	resumes  []models.Resume
	contacts []models.CrmContact
	events   []models.CalendarEvent
	settings models.Settings
}

func NewCache(c *Client) *Cache {
	return &Cache{client: c}
}

// Load fetches all collections concurrently. A collection that fails to
// load falls back to empty (settings fall back to defaults) and the cache
// still becomes ready; the caller always ends up in an interactive state.
func (c *Cache) Load(ctx context.Context) {
	var (
		jobs     []models.Job
		resumes  []models.Resume
		contacts []models.CrmContact
		events   []models.CalendarEvent
		settings = models.DefaultSettings()
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		got, err := c.client.ListJobs(ctx)
		if err != nil {
			logger.Error("load jobs", "err", err)
			return nil
		}
		jobs = got
		return nil
	})
	g.Go(func() error {
		got, err := c.client.ListResumes(ctx)
		if err != nil {
			logger.Error("load resumes", "err", err)
			return nil
		}
		resumes = got
		return nil
	})
	g.Go(func() error {
		got, err := c.client.ListContacts(ctx)
		if err != nil {
			logger.Error("load contacts", "err", err)
			return nil
		}
		contacts = got
		return nil
	})
	g.Go(func() error {
		got, err := c.client.ListEvents(ctx)
		if err != nil {
			logger.Error("load events", "err", err)
			return nil
		}
		events = got
		return nil
	})
	g.Go(func() error {
		got, err := c.client.GetSettings(ctx)
		if err != nil {
			logger.Error("load settings", "err", err)
			return nil
		}
		settings = *got
		return nil
	})
	// the goroutines log and swallow their own failures
	_ = g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.jobs = jobs
	c.resumes = resumes
	c.contacts = contacts
	c.events = events
	c.settings = settings
	c.ready = true
}

func (c *Cache) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

func (c *Cache) Jobs() []models.Job {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Job, len(c.jobs))
	copy(out, c.jobs)
	return out
}

func (c *Cache) Resumes() []models.Resume {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Resume, len(c.resumes))
	copy(out, c.resumes)
	return out
}

func (c *Cache) Contacts() []models.CrmContact {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CrmContact, len(c.contacts))
	copy(out, c.contacts)
	return out
}

func (c *Cache) Events() []models.CalendarEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CalendarEvent, len(c.events))
	copy(out, c.events)
	return out
}

func (c *Cache) Settings() models.Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

// ContactsForJob resolves a job's linked contacts, skipping ids that no
// longer exist in the contacts collection.
func (c *Cache) ContactsForJob(job *models.Job) []models.CrmContact {
	if job == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	byID := make(map[int64]models.CrmContact, len(c.contacts))
	for _, ct := range c.contacts {
		byID[ct.ID] = ct
	}
	var out []models.CrmContact
	for _, id := range job.ContactIDs {
		if ct, ok := byID[id]; ok {
			out = append(out, ct)
		}
	}
	return out
}

func (c *Cache) AddJob(ctx context.Context, j *models.Job) (*models.Job, error) {
	created, err := c.client.CreateJob(ctx, j)
	if err != nil {
		logger.Error("add job", "err", err)
		return nil, err
	}
	c.mu.Lock()
	c.jobs = append([]models.Job{*created}, c.jobs...)
	c.mu.Unlock()
	return created, nil
}

func (c *Cache) UpdateJob(ctx context.Context, j *models.Job) (*models.Job, error) {
	updated, err := c.client.UpdateJob(ctx, j)
	if err != nil {
		logger.Error("update job", "err", err, "id", j.ID)
		return nil, err
	}
	c.mu.Lock()
	for i := range c.jobs {
		if c.jobs[i].ID == updated.ID {
			c.jobs[i] = *updated
			break
		}
	}
	c.mu.Unlock()
	return updated, nil
}

func (c *Cache) DeleteJob(ctx context.Context, id int64) error {
	if err := c.client.DeleteJob(ctx, id); err != nil {
		logger.Error("delete job", "err", err, "id", id)
		return err
	}
	c.mu.Lock()
	kept := c.jobs[:0]
	for _, j := range c.jobs {
		if j.ID != id {
			kept = append(kept, j)
		}
	}
	c.jobs = kept
	c.mu.Unlock()
	return nil
}

func (c *Cache) AddResume(ctx context.Context, r *models.Resume) (*models.Resume, error) {
	created, err := c.client.CreateResume(ctx, r)
	if err != nil {
		logger.Error("add resume", "err", err)
		return nil, err
	}
	c.mu.Lock()
	c.resumes = append([]models.Resume{*created}, c.resumes...)
	c.mu.Unlock()
	return created, nil
}

func (c *Cache) UpdateResume(ctx context.Context, r *models.Resume) (*models.Resume, error) {
	updated, err := c.client.UpdateResume(ctx, r)
	if err != nil {
		logger.Error("update resume", "err", err, "id", r.ID)
		return nil, err
	}
	c.mu.Lock()
	for i := range c.resumes {
		if c.resumes[i].ID == updated.ID {
			c.resumes[i] = *updated
			break
		}
	}
	c.mu.Unlock()
	return updated, nil
}

func (c *Cache) DeleteResume(ctx context.Context, id int64) error {
	if err := c.client.DeleteResume(ctx, id); err != nil {
		logger.Error("delete resume", "err", err, "id", id)
		return err
	}
	c.mu.Lock()
	kept := c.resumes[:0]
	for _, r := range c.resumes {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	c.resumes = kept
	c.mu.Unlock()
	return nil
}

func (c *Cache) AddContact(ctx context.Context, ct *models.CrmContact) (*models.CrmContact, error) {
	created, err := c.client.CreateContact(ctx, ct)
	if err != nil {
		logger.Error("add contact", "err", err)
		return nil, err
	}
	c.mu.Lock()
	c.contacts = append([]models.CrmContact{*created}, c.contacts...)
	c.mu.Unlock()
	return created, nil
}

func (c *Cache) UpdateContact(ctx context.Context, ct *models.CrmContact) (*models.CrmContact, error) {
	updated, err := c.client.UpdateContact(ctx, ct)
	if err != nil {
		logger.Error("update contact", "err", err, "id", ct.ID)
		return nil, err
	}
	c.mu.Lock()
	for i := range c.contacts {
		if c.contacts[i].ID == updated.ID {
			c.contacts[i] = *updated
			break
		}
	}
	c.mu.Unlock()
	return updated, nil
}

func (c *Cache) DeleteContact(ctx context.Context, id int64) error {
	if err := c.client.DeleteContact(ctx, id); err != nil {
		logger.Error("delete contact", "err", err, "id", id)
		return err
	}
	c.mu.Lock()
	kept := c.contacts[:0]
	for _, ct := range c.contacts {
		if ct.ID != id {
			kept = append(kept, ct)
		}
	}
	c.contacts = kept
	c.mu.Unlock()
	return nil
}

// SaveEvent creates the event when it has no id yet, otherwise updates it.
func (c *Cache) SaveEvent(ctx context.Context, ev *models.CalendarEvent) (*models.CalendarEvent, error) {
	if ev.ID == 0 {
		created, err := c.client.CreateEvent(ctx, ev)
		if err != nil {
			logger.Error("add event", "err", err)
			return nil, err
		}
		c.mu.Lock()
		c.events = append(c.events, *created)
		c.mu.Unlock()
		return created, nil
	}

	updated, err := c.client.UpdateEvent(ctx, ev)
	if err != nil {
		logger.Error("update event", "err", err, "id", ev.ID)
		return nil, err
	}
	c.mu.Lock()
	for i := range c.events {
		if c.events[i].ID == updated.ID {
			c.events[i] = *updated
			break
		}
	}
	c.mu.Unlock()
	return updated, nil
}

func (c *Cache) DeleteEvent(ctx context.Context, id int64) error {
	if err := c.client.DeleteEvent(ctx, id); err != nil {
		logger.Error("delete event", "err", err, "id", id)
		return err
	}
	c.mu.Lock()
	kept := c.events[:0]
	for _, ev := range c.events {
		if ev.ID != id {
			kept = append(kept, ev)
		}
	}
	c.events = kept
	c.mu.Unlock()
	return nil
}

func (c *Cache) SaveSettings(ctx context.Context, s *models.Settings) (*models.Settings, error) {
	updated, err := c.client.UpdateSettings(ctx, s)
	if err != nil {
		logger.Error("save settings", "err", err)
		return nil, err
	}
	c.mu.Lock()
	c.settings = *updated
	c.mu.Unlock()
	return updated, nil
}
