package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KazKozDev/pathfinder/pkg/models"
	"github.com/KazKozDev/pathfinder/pkg/repository"
)

type ResumesHandler struct {
	repo repository.ResumeRepo
}

func NewResumesHandler(r repository.ResumeRepo) *ResumesHandler {
	return &ResumesHandler{repo: r}
}

func (h *ResumesHandler) List(w http.ResponseWriter, r *http.Request) {
	resumes, err := h.repo.ListResumes(r.Context())
	if err != nil {
		logger.Error("list resumes", "err", err)
		writeError(w, "Failed to fetch resumes", http.StatusInternalServerError)
		return
	}
	if resumes == nil {
		resumes = []models.Resume{}
	}
	writeJSON(w, resumes, http.StatusOK)
}

func (h *ResumesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "Invalid resume id", http.StatusBadRequest)
		return
	}

	resume, err := h.repo.GetResume(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeError(w, "Resume not found", http.StatusNotFound)
			return
		}
		logger.Error("get resume", "err", err)
		writeError(w, "Failed to fetch resume", http.StatusInternalServerError)
		return
	}

	writeJSON(w, resume, http.StatusOK)
}

func (h *ResumesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var resume models.Resume
	if err := json.NewDecoder(r.Body).Decode(&resume); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	id, err := h.repo.CreateResume(r.Context(), &resume)
	if err != nil {
		logger.Error("create resume", "err", err)
		writeError(w, "Failed to create resume", http.StatusInternalServerError)
		return
	}

	created, err := h.repo.GetResume(r.Context(), id)
	if err != nil {
		logger.Error("read back created resume", "err", err)
		writeError(w, "Failed to create resume", http.StatusInternalServerError)
		return
	}

	writeJSON(w, created, http.StatusCreated)
}

func (h *ResumesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "Invalid resume id", http.StatusBadRequest)
		return
	}

	var resume models.Resume
	if err := json.NewDecoder(r.Body).Decode(&resume); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	resume.ID = id

	if err := h.repo.UpdateResume(r.Context(), &resume); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeError(w, "Resume not found", http.StatusNotFound)
			return
		}
		logger.Error("update resume", "err", err)
		writeError(w, "Failed to update resume", http.StatusInternalServerError)
		return
	}

	updated, err := h.repo.GetResume(r.Context(), id)
	if err != nil {
		logger.Error("read back updated resume", "err", err)
		writeError(w, "Failed to update resume", http.StatusInternalServerError)
		return
	}

	writeJSON(w, updated, http.StatusOK)
}

func (h *ResumesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "Invalid resume id", http.StatusBadRequest)
		return
	}

	if err := h.repo.DeleteResume(r.Context(), id); err != nil {
		logger.Error("delete resume", "err", err)
		writeError(w, "Failed to delete resume", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
