package api

import (
	"encoding/json"
	"net/http"

	"github.com/KazKozDev/pathfinder/pkg/models"
	"github.com/KazKozDev/pathfinder/pkg/repository"
)

type SettingsHandler struct {
	repo repository.SettingsRepo
}

func NewSettingsHandler(r repository.SettingsRepo) *SettingsHandler {
	return &SettingsHandler{repo: r}
}

// Get returns the stored settings, or the defaults when nothing has been
// saved yet.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.repo.GetSettings(r.Context())
	if err != nil {
		logger.Error("get settings", "err", err)
		writeError(w, "Failed to fetch settings", http.StatusInternalServerError)
		return
	}
	writeJSON(w, s, http.StatusOK)
}

// Update replaces the settings wholesale; keys omitted from the request are
// gone after the update.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var s models.Settings
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.repo.UpdateSettings(r.Context(), &s); err != nil {
		logger.Error("update settings", "err", err)
		writeError(w, "Failed to update settings", http.StatusInternalServerError)
		return
	}

	stored, err := h.repo.GetSettings(r.Context())
	if err != nil {
		logger.Error("read back settings", "err", err)
		writeError(w, "Failed to update settings", http.StatusInternalServerError)
		return
	}

	writeJSON(w, stored, http.StatusOK)
}
