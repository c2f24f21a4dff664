package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KazKozDev/pathfinder/pkg/models"
	"github.com/KazKozDev/pathfinder/pkg/repository"
)

type JobsHandler struct {
	repo repository.JobRepo
}

func NewJobsHandler(r repository.JobRepo) *JobsHandler {
	return &JobsHandler{repo: r}
}

func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.repo.ListJobs(r.Context())
	if err != nil {
		logger.Error("list jobs", "err", err)
		writeError(w, "Failed to fetch jobs", http.StatusInternalServerError)
		return
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	writeJSON(w, jobs, http.StatusOK)
}

func (h *JobsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "Invalid job id", http.StatusBadRequest)
		return
	}

	job, err := h.repo.GetJob(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeError(w, "Job not found", http.StatusNotFound)
			return
		}
		logger.Error("get job", "err", err)
		writeError(w, "Failed to fetch job", http.StatusInternalServerError)
		return
	}

	writeJSON(w, job, http.StatusOK)
}

func (h *JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var job models.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	id, err := h.repo.CreateJob(r.Context(), &job)
	if err != nil {
		logger.Error("create job", "err", err)
		writeError(w, "Failed to create job", http.StatusInternalServerError)
		return
	}

	// echo the stored row so the client sees server-assigned fields
	created, err := h.repo.GetJob(r.Context(), id)
	if err != nil {
		logger.Error("read back created job", "err", err)
		writeError(w, "Failed to create job", http.StatusInternalServerError)
		return
	}

	writeJSON(w, created, http.StatusCreated)
}

// Update replaces the job wholesale; the path id wins over any id in the body.
func (h *JobsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "Invalid job id", http.StatusBadRequest)
		return
	}

	var job models.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	job.ID = id

	if err := h.repo.UpdateJob(r.Context(), &job); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeError(w, "Job not found", http.StatusNotFound)
			return
		}
		logger.Error("update job", "err", err)
		writeError(w, "Failed to update job", http.StatusInternalServerError)
		return
	}

	updated, err := h.repo.GetJob(r.Context(), id)
	if err != nil {
		logger.Error("read back updated job", "err", err)
		writeError(w, "Failed to update job", http.StatusInternalServerError)
		return
	}

	writeJSON(w, updated, http.StatusOK)
}

func (h *JobsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "Invalid job id", http.StatusBadRequest)
		return
	}

	if err := h.repo.DeleteJob(r.Context(), id); err != nil {
		logger.Error("delete job", "err", err)
		writeError(w, "Failed to delete job", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
