package mock

import (
	"context"
	"sort"

	"github.com/KazKozDev/pathfinder/pkg/models"
)

// Store is an in-memory implementation of the repository interfaces for
// tests. Err, when set, is returned by every operation so handlers can be
// exercised against a failing persistence layer.
type Store struct {
	Jobs     []models.Job
	Resumes  []models.Resume
	Contacts []models.CrmContact
	Events   []models.CalendarEvent
	Settings *models.Settings

	Err    error
	nextID int64
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) ListJobs(ctx context.Context) ([]models.Job, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]models.Job, len(s.Jobs))
	copy(out, s.Jobs)
	sort.SliceStable(out, func(i, j int) bool { return out[i].DateAdded > out[j].DateAdded })
	return out, nil
}

func (s *Store) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Jobs {
		if s.Jobs[i].ID == id {
			j := s.Jobs[i]
			return &j, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *Store) CreateJob(ctx context.Context, j *models.Job) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	j.ID = s.id()
	s.Jobs = append(s.Jobs, *j)
	return j.ID, nil
}

func (s *Store) UpdateJob(ctx context.Context, j *models.Job) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Jobs {
		if s.Jobs[i].ID == j.ID {
			added := s.Jobs[i].DateAdded
			s.Jobs[i] = *j
			s.Jobs[i].DateAdded = added
			return nil
		}
	}
	return models.ErrNotFound
}

func (s *Store) DeleteJob(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Jobs {
		if s.Jobs[i].ID == id {
			s.Jobs = append(s.Jobs[:i], s.Jobs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *Store) ListResumes(ctx context.Context) ([]models.Resume, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]models.Resume, len(s.Resumes))
	copy(out, s.Resumes)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *Store) GetResume(ctx context.Context, id int64) (*models.Resume, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Resumes {
		if s.Resumes[i].ID == id {
			r := s.Resumes[i]
			return &r, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *Store) CreateResume(ctx context.Context, r *models.Resume) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	r.ID = s.id()
	s.Resumes = append(s.Resumes, *r)
	return r.ID, nil
}

func (s *Store) UpdateResume(ctx context.Context, r *models.Resume) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Resumes {
		if s.Resumes[i].ID == r.ID {
			s.Resumes[i] = *r
			return nil
		}
	}
	return models.ErrNotFound
}

func (s *Store) DeleteResume(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Resumes {
		if s.Resumes[i].ID == id {
			s.Resumes = append(s.Resumes[:i], s.Resumes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *Store) ListContacts(ctx context.Context) ([]models.CrmContact, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]models.CrmContact, len(s.Contacts))
	copy(out, s.Contacts)
	sort.SliceStable(out, func(i, j int) bool { return out[i].LastInteraction > out[j].LastInteraction })
	return out, nil
}

func (s *Store) GetContact(ctx context.Context, id int64) (*models.CrmContact, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Contacts {
		if s.Contacts[i].ID == id {
			c := s.Contacts[i]
			return &c, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *Store) CreateContact(ctx context.Context, c *models.CrmContact) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	c.ID = s.id()
	s.Contacts = append(s.Contacts, *c)
	return c.ID, nil
}

func (s *Store) UpdateContact(ctx context.Context, c *models.CrmContact) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Contacts {
		if s.Contacts[i].ID == c.ID {
			added := s.Contacts[i].DateAdded
			s.Contacts[i] = *c
			s.Contacts[i].DateAdded = added
			return nil
		}
	}
	return models.ErrNotFound
}

func (s *Store) DeleteContact(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Contacts {
		if s.Contacts[i].ID == id {
			s.Contacts = append(s.Contacts[:i], s.Contacts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *Store) ListEvents(ctx context.Context) ([]models.CalendarEvent, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]models.CalendarEvent, len(s.Events))
	copy(out, s.Events)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (s *Store) GetEvent(ctx context.Context, id int64) (*models.CalendarEvent, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Events {
		if s.Events[i].ID == id {
			e := s.Events[i]
			return &e, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *Store) CreateEvent(ctx context.Context, e *models.CalendarEvent) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	e.ID = s.id()
	s.Events = append(s.Events, *e)
	return e.ID, nil
}

func (s *Store) UpdateEvent(ctx context.Context, e *models.CalendarEvent) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Events {
		if s.Events[i].ID == e.ID {
			s.Events[i] = *e
			return nil
		}
	}
	return models.ErrNotFound
}

func (s *Store) DeleteEvent(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Events {
		if s.Events[i].ID == id {
			s.Events = append(s.Events[:i], s.Events[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *Store) GetSettings(ctx context.Context) (*models.Settings, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Settings == nil {
		def := models.DefaultSettings()
		return &def, nil
	}
	cp := *s.Settings
	return &cp, nil
}

func (s *Store) UpdateSettings(ctx context.Context, set *models.Settings) error {
	if s.Err != nil {
		return s.Err
	}
	cp := *set
	cp.ID = models.SettingsID
	s.Settings = &cp
	return nil
}
