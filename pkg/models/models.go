package models

import "errors"

// ErrNotFound is returned by repositories when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// JobStatus is the pipeline stage of a tracked job.
type JobStatus string

const (
	StatusWishlist     JobStatus = "Wishlist"
	StatusApplied      JobStatus = "Applied"
	StatusScreening    JobStatus = "Screening"
	StatusInterviewing JobStatus = "Interviewing"
	StatusTestTask     JobStatus = "Test Task"
	StatusOffer        JobStatus = "Offer"
	StatusRejection    JobStatus = "Rejection"
)

// JobStatuses lists every pipeline stage in board order.
var JobStatuses = []JobStatus{
	StatusWishlist, StatusApplied, StatusScreening, StatusInterviewing,
	StatusTestTask, StatusOffer, StatusRejection,
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// LogType classifies a communication-log entry.
type LogType string

const (
	LogEmail   LogType = "Email"
	LogCall    LogType = "Call"
	LogMessage LogType = "Message"
	LogMeeting LogType = "Meeting"
)

// LogEntry is one entry in a job's communication log. IDs are client
// generated (time based) and only need to be unique within the log.
type LogEntry struct {
	ID      int64   `json:"id"`
	Date    string  `json:"date"`
	Type    LogType `json:"type"`
	Summary string  `json:"summary"`
}

type SalaryInfo struct {
	Range        string `json:"range,omitempty"`
	Expectations string `json:"expectations,omitempty"`
	Discussed    string `json:"discussed,omitempty"`
}

// Job is a tracked job application. Nested slices and objects are stored
// as JSON text columns; dateAdded is assigned on creation and never updated.
type Job struct {
	ID                      int64      `json:"id" db:"id"`
	Title                   string     `json:"title" db:"title"`
	Company                 string     `json:"company" db:"company"`
	Status                  JobStatus  `json:"status" db:"status"`
	Description             string     `json:"description,omitempty" db:"description"`
	SelectedResumeID        *int64     `json:"selectedResumeId,omitempty" db:"selectedResumeId"`
	CoverLetter             string     `json:"coverLetter,omitempty" db:"coverLetter"`
	Location                string     `json:"location,omitempty" db:"location"`
	SourceURL               string     `json:"sourceUrl,omitempty" db:"sourceUrl"`
	Source                  string     `json:"source,omitempty" db:"source"`
	DateAdded               int64      `json:"dateAdded" db:"dateAdded"`
	ApplicationDate         string     `json:"applicationDate,omitempty" db:"applicationDate"`
	ContactIDs              []int64    `json:"contactIds" db:"contactIds"`
	PortfolioURL            string     `json:"portfolioUrl,omitempty" db:"portfolioUrl"`
	CommunicationLog        []LogEntry `json:"communicationLog" db:"communicationLog"`
	QuestionsForInterviewer string     `json:"questionsForInterviewer,omitempty" db:"questionsForInterviewer"`
	SalaryInfo              SalaryInfo `json:"salaryInfo" db:"salaryInfo"`
	Notes                   string     `json:"notes,omitempty" db:"notes"`
	Priority                Priority   `json:"priority,omitempty" db:"priority"`
	InterestLevel           int        `json:"interestLevel" db:"interestLevel"`
	Tags                    []string   `json:"tags" db:"tags"`
	NextStep                string     `json:"nextStep,omitempty" db:"nextStep"`
	NextStepDate            string     `json:"nextStepDate,omitempty" db:"nextStepDate"`
}

// ResumeContact is the contact block at the top of a resume.
type ResumeContact struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

type WorkExperience struct {
	ID          int64  `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

type Education struct {
	ID          int64  `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

type CustomSection struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Resume is one named resume version. Skills is free text, comma separated;
// order and duplicates are preserved as typed.
type Resume struct {
	ID             int64            `json:"id" db:"id"`
	Name           string           `json:"name" db:"name"`
	Contact        ResumeContact    `json:"contact" db:"contact"`
	Summary        string           `json:"summary,omitempty" db:"summary"`
	Experience     []WorkExperience `json:"experience" db:"experience"`
	Education      []Education      `json:"education" db:"education"`
	Skills         string           `json:"skills,omitempty" db:"skills"`
	CustomSections []CustomSection  `json:"customSections,omitempty" db:"customSections"`
}

// CrmContact is a person in the user's network. lastInteraction is bumped
// on every edit and is the recency sort key.
type CrmContact struct {
	ID              int64    `json:"id" db:"id"`
	Name            string   `json:"name" db:"name"`
	Role            string   `json:"role,omitempty" db:"role"`
	Company         string   `json:"company,omitempty" db:"company"`
	Email           string   `json:"email,omitempty" db:"email"`
	Phone           string   `json:"phone,omitempty" db:"phone"`
	LinkedInURL     string   `json:"linkedinUrl,omitempty" db:"linkedinUrl"`
	Source          string   `json:"source,omitempty" db:"source"`
	Notes           string   `json:"notes,omitempty" db:"notes"`
	DateAdded       int64    `json:"dateAdded" db:"dateAdded"`
	Tags            []string `json:"tags" db:"tags"`
	LastInteraction int64    `json:"lastInteraction" db:"lastInteraction"`
}

// EventType classifies a calendar event.
type EventType string

const (
	EventInterview  EventType = "Interview"
	EventDeadline   EventType = "Deadline"
	EventTask       EventType = "Task"
	EventNetworking EventType = "Networking"
	EventPersonal   EventType = "Personal"
)

// CalendarEvent is a dated entry, optionally weakly linked to a job and/or
// a contact. The references are not enforced; consumers filter dangling ids.
type CalendarEvent struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Date      string    `json:"date" db:"date"`
	Time      string    `json:"time,omitempty" db:"time"`
	Type      EventType `json:"type" db:"type"`
	Notes     string    `json:"notes,omitempty" db:"notes"`
	JobID     *int64    `json:"jobId,omitempty" db:"jobId"`
	ContactID *int64    `json:"contactId,omitempty" db:"contactId"`
}
