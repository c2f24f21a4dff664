package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KazKozDev/pathfinder/pkg/models"
	"github.com/KazKozDev/pathfinder/pkg/repository"
)

type EventsHandler struct {
	repo repository.EventRepo
}

func NewEventsHandler(r repository.EventRepo) *EventsHandler {
	return &EventsHandler{repo: r}
}

func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.repo.ListEvents(r.Context())
	if err != nil {
		logger.Error("list events", "err", err)
		writeError(w, "Failed to fetch calendar events", http.StatusInternalServerError)
		return
	}
	if events == nil {
		events = []models.CalendarEvent{}
	}
	writeJSON(w, events, http.StatusOK)
}

func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "Invalid event id", http.StatusBadRequest)
		return
	}

	event, err := h.repo.GetEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeError(w, "Calendar event not found", http.StatusNotFound)
			return
		}
		logger.Error("get event", "err", err)
		writeError(w, "Failed to fetch calendar event", http.StatusInternalServerError)
		return
	}

	writeJSON(w, event, http.StatusOK)
}

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var event models.CalendarEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	id, err := h.repo.CreateEvent(r.Context(), &event)
	if err != nil {
		logger.Error("create event", "err", err)
		writeError(w, "Failed to create calendar event", http.StatusInternalServerError)
		return
	}

	created, err := h.repo.GetEvent(r.Context(), id)
	if err != nil {
		logger.Error("read back created event", "err", err)
		writeError(w, "Failed to create calendar event", http.StatusInternalServerError)
		return
	}

	writeJSON(w, created, http.StatusCreated)
}

func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "Invalid event id", http.StatusBadRequest)
		return
	}

	var event models.CalendarEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	event.ID = id

	if err := h.repo.UpdateEvent(r.Context(), &event); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeError(w, "Calendar event not found", http.StatusNotFound)
			return
		}
		logger.Error("update event", "err", err)
		writeError(w, "Failed to update calendar event", http.StatusInternalServerError)
		return
	}

	updated, err := h.repo.GetEvent(r.Context(), id)
	if err != nil {
		logger.Error("read back updated event", "err", err)
		writeError(w, "Failed to update calendar event", http.StatusInternalServerError)
		return
	}

	writeJSON(w, updated, http.StatusOK)
}

func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "Invalid event id", http.StatusBadRequest)
		return
	}

	if err := h.repo.DeleteEvent(r.Context(), id); err != nil {
		logger.Error("delete event", "err", err)
		writeError(w, "Failed to delete calendar event", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
