package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KazKozDev/pathfinder/pkg/models"
	"github.com/KazKozDev/pathfinder/pkg/repository"
)

type ContactsHandler struct {
	repo repository.ContactRepo
}

func NewContactsHandler(r repository.ContactRepo) *ContactsHandler {
	return &ContactsHandler{repo: r}
}

func (h *ContactsHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.repo.ListContacts(r.Context())
	if err != nil {
		logger.Error("list contacts", "err", err)
		writeError(w, "Failed to fetch contacts", http.StatusInternalServerError)
		return
	}
	if contacts == nil {
		contacts = []models.CrmContact{}
	}
	writeJSON(w, contacts, http.StatusOK)
}

func (h *ContactsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "Invalid contact id", http.StatusBadRequest)
		return
	}

	contact, err := h.repo.GetContact(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeError(w, "Contact not found", http.StatusNotFound)
			return
		}
		logger.Error("get contact", "err", err)
		writeError(w, "Failed to fetch contact", http.StatusInternalServerError)
		return
	}

	writeJSON(w, contact, http.StatusOK)
}

func (h *ContactsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var contact models.CrmContact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	id, err := h.repo.CreateContact(r.Context(), &contact)
	if err != nil {
		logger.Error("create contact", "err", err)
		writeError(w, "Failed to create contact", http.StatusInternalServerError)
		return
	}

	created, err := h.repo.GetContact(r.Context(), id)
	if err != nil {
		logger.Error("read back created contact", "err", err)
		writeError(w, "Failed to create contact", http.StatusInternalServerError)
		return
	}

	writeJSON(w, created, http.StatusCreated)
}

func (h *ContactsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "Invalid contact id", http.StatusBadRequest)
		return
	}

	var contact models.CrmContact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	contact.ID = id

	if err := h.repo.UpdateContact(r.Context(), &contact); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeError(w, "Contact not found", http.StatusNotFound)
			return
		}
		logger.Error("update contact", "err", err)
		writeError(w, "Failed to update contact", http.StatusInternalServerError)
		return
	}

	updated, err := h.repo.GetContact(r.Context(), id)
	if err != nil {
		logger.Error("read back updated contact", "err", err)
		writeError(w, "Failed to update contact", http.StatusInternalServerError)
		return
	}

	writeJSON(w, updated, http.StatusOK)
}

func (h *ContactsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, "Invalid contact id", http.StatusBadRequest)
		return
	}

	if err := h.repo.DeleteContact(r.Context(), id); err != nil {
		logger.Error("delete contact", "err", err)
		writeError(w, "Failed to delete contact", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
