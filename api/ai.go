package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/KazKozDev/pathfinder/internal/ai"
	"github.com/KazKozDev/pathfinder/pkg/models"
	"github.com/KazKozDev/pathfinder/pkg/repository"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// AIHandler serves the AI tool endpoints. Interview sessions are the only
// server-side AI state: an in-memory map of session id to chat, discarded
// when the interview ends or the process restarts.
type AIHandler struct {
	engine       *ai.Engine
	jobRepo      repository.JobRepo
	resumeRepo   repository.ResumeRepo
	contactRepo  repository.ContactRepo
	settingsRepo repository.SettingsRepo

	mu       sync.Mutex
	sessions map[string]*ai.Interview
}

func NewAIHandler(
	engine *ai.Engine,
	jr repository.JobRepo,
	rr repository.ResumeRepo,
	cr repository.ContactRepo,
	sr repository.SettingsRepo,
) *AIHandler {
	return &AIHandler{
		engine:       engine,
		jobRepo:      jr,
		resumeRepo:   rr,
		contactRepo:  cr,
		settingsRepo: sr,
		sessions:     make(map[string]*ai.Interview),
	}
}

type jobResumeRequest struct {
	JobID    int64 `json:"jobId"`
	ResumeID int64 `json:"resumeId"`
}

type textResponse struct {
	Text string `json:"text"`
}

func (h *AIHandler) CoverLetter(w http.ResponseWriter, r *http.Request) {
	var req jobResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	job, resume, ok := h.jobAndResume(w, r, req)
	if !ok {
		return
	}

	// the first linked contact becomes the letter's recipient
	var contact *models.CrmContact
	if len(job.ContactIDs) > 0 {
		if c, err := h.contactRepo.GetContact(r.Context(), job.ContactIDs[0]); err == nil {
			contact = c
		}
	}

	settings, err := h.settingsRepo.GetSettings(r.Context())
	if err != nil {
		logger.Error("cover letter: settings", "err", err)
		writeError(w, "Failed to load settings", http.StatusInternalServerError)
		return
	}

	text := h.engine.CoverLetter(r.Context(), job, resume, contact, settings.Prompts.CoverLetter)
	writeJSON(w, textResponse{Text: text}, http.StatusOK)
}

type resumeCheckResponse struct {
	Score  int    `json:"score"`
	Report string `json:"report"`
}

func (h *AIHandler) ResumeCheck(w http.ResponseWriter, r *http.Request) {
	var req jobResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	job, resume, ok := h.jobAndResume(w, r, req)
	if !ok {
		return
	}

	settings, err := h.settingsRepo.GetSettings(r.Context())
	if err != nil {
		logger.Error("resume check: settings", "err", err)
		writeError(w, "Failed to load settings", http.StatusInternalServerError)
		return
	}

	score, report := h.engine.ResumeCheck(r.Context(), job, resume, settings.Prompts.ResumeChecker)
	writeJSON(w, resumeCheckResponse{Score: score, Report: report}, http.StatusOK)
}

type nextActionsResponse struct {
	Actions []ai.Action `json:"actions"`
}

func (h *AIHandler) NextActions(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobRepo.ListJobs(r.Context())
	if err != nil {
		logger.Error("next actions: jobs", "err", err)
		writeError(w, "Failed to fetch jobs", http.StatusInternalServerError)
		return
	}
	settings, err := h.settingsRepo.GetSettings(r.Context())
	if err != nil {
		logger.Error("next actions: settings", "err", err)
		writeError(w, "Failed to load settings", http.StatusInternalServerError)
		return
	}

	actions := h.engine.NextActions(r.Context(), jobs, settings.Profile.WeeklyGoal, applicationsThisWeek(jobs))
	writeJSON(w, nextActionsResponse{Actions: actions}, http.StatusOK)
}

// applicationsThisWeek counts jobs whose application date falls in the last
// seven days.
func applicationsThisWeek(jobs []models.Job) int {
	cutoff := time.Now().AddDate(0, 0, -7)
	n := 0
	for _, j := range jobs {
		if j.ApplicationDate == "" {
			continue
		}
		d, err := time.Parse("2006-01-02", j.ApplicationDate)
		if err != nil {
			continue
		}
		if d.After(cutoff) {
			n++
		}
	}
	return n
}

type jobRequest struct {
	JobID int64 `json:"jobId"`
}

func (h *AIHandler) SkillGap(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	job, err := h.jobRepo.GetJob(r.Context(), req.JobID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeError(w, "Job not found", http.StatusNotFound)
			return
		}
		logger.Error("skill gap: job", "err", err)
		writeError(w, "Failed to fetch job", http.StatusInternalServerError)
		return
	}
	settings, err := h.settingsRepo.GetSettings(r.Context())
	if err != nil {
		logger.Error("skill gap: settings", "err", err)
		writeError(w, "Failed to load settings", http.StatusInternalServerError)
		return
	}

	text := h.engine.SkillGap(r.Context(), job, settings.Profile.MasterSkills)
	writeJSON(w, textResponse{Text: text}, http.StatusOK)
}

func (h *AIHandler) Research(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	job, err := h.jobRepo.GetJob(r.Context(), req.JobID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeError(w, "Job not found", http.StatusNotFound)
			return
		}
		logger.Error("research: job", "err", err)
		writeError(w, "Failed to fetch job", http.StatusInternalServerError)
		return
	}

	text := h.engine.Research(r.Context(), job)
	writeJSON(w, textResponse{Text: text}, http.StatusOK)
}

type assistantRequest struct {
	Message   string `json:"message"`
	MixAgents bool   `json:"mixAgents"`
	File      *struct {
		Name     string `json:"name"`
		MimeType string `json:"mimeType"`
		Data     []byte `json:"data"`
	} `json:"file,omitempty"`
}

func (h *AIHandler) Assistant(w http.ResponseWriter, r *http.Request) {
	var req assistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	jobs, err := h.jobRepo.ListJobs(r.Context())
	if err != nil {
		logger.Error("assistant: jobs", "err", err)
		writeError(w, "Failed to fetch jobs", http.StatusInternalServerError)
		return
	}
	resumes, err := h.resumeRepo.ListResumes(r.Context())
	if err != nil {
		logger.Error("assistant: resumes", "err", err)
		writeError(w, "Failed to fetch resumes", http.StatusInternalServerError)
		return
	}
	settings, err := h.settingsRepo.GetSettings(r.Context())
	if err != nil {
		logger.Error("assistant: settings", "err", err)
		writeError(w, "Failed to load settings", http.StatusInternalServerError)
		return
	}

	engineReq := ai.AssistantRequest{
		Message:   req.Message,
		MixAgents: req.MixAgents,
		Jobs:      jobs,
		Resumes:   resumes,
		Settings:  settings,
	}
	if req.File != nil {
		engineReq.File = &ai.Attachment{Name: req.File.Name, MIME: req.File.MimeType, Data: req.File.Data}
	}

	text := h.engine.Assistant(r.Context(), engineReq)
	writeJSON(w, textResponse{Text: text}, http.StatusOK)
}

type interviewStartResponse struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

func (h *AIHandler) StartInterview(w http.ResponseWriter, r *http.Request) {
	var req jobResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	job, resume, ok := h.jobAndResume(w, r, req)
	if !ok {
		return
	}

	settings, err := h.settingsRepo.GetSettings(r.Context())
	if err != nil {
		logger.Error("interview: settings", "err", err)
		writeError(w, "Failed to load settings", http.StatusInternalServerError)
		return
	}

	iv, opening, err := h.engine.StartInterview(r.Context(), job, resume, settings.Prompts.InterviewQuestions)
	if err != nil {
		if errors.Is(err, ai.ErrInterviewSetup) {
			writeError(w, "Please select a job (with a description) and a resume.", http.StatusBadRequest)
			return
		}
		logger.Error("interview: start", "err", err)
		writeError(w, "Could not start the interview. Please try again.", http.StatusBadGateway)
		return
	}

	id := uuid.NewString()
	h.mu.Lock()
	h.sessions[id] = iv
	h.mu.Unlock()

	writeJSON(w, interviewStartResponse{SessionID: id, Message: opening}, http.StatusCreated)
}

type interviewTurnRequest struct {
	Message string `json:"message"`
}

type interviewTurnResponse struct {
	Message string `json:"message"`
}

func (h *AIHandler) InterviewTurn(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.mu.Lock()
	iv, ok := h.sessions[id]
	h.mu.Unlock()
	if !ok {
		writeError(w, "Interview session not found", http.StatusNotFound)
		return
	}

	var req interviewTurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	reply, err := iv.Send(r.Context(), req.Message)
	if err != nil {
		// the session is unusable; drop it and hand back the closing text
		h.mu.Lock()
		delete(h.sessions, id)
		h.mu.Unlock()
	}

	writeJSON(w, interviewTurnResponse{Message: reply}, http.StatusOK)
}

func (h *AIHandler) EndInterview(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.mu.Lock()
	delete(h.sessions, id)
	h.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

// jobAndResume loads the pair referenced by the request, writing the error
// response itself when either is missing.
func (h *AIHandler) jobAndResume(w http.ResponseWriter, r *http.Request, req jobResumeRequest) (*models.Job, *models.Resume, bool) {
	job, err := h.jobRepo.GetJob(r.Context(), req.JobID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeError(w, "Job not found", http.StatusNotFound)
			return nil, nil, false
		}
		logger.Error("fetch job", "err", err)
		writeError(w, "Failed to fetch job", http.StatusInternalServerError)
		return nil, nil, false
	}

	resume, err := h.resumeRepo.GetResume(r.Context(), req.ResumeID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeError(w, "Resume not found", http.StatusNotFound)
			return nil, nil, false
		}
		logger.Error("fetch resume", "err", err)
		writeError(w, "Failed to fetch resume", http.StatusInternalServerError)
		return nil, nil, false
	}

	return job, resume, true
}
