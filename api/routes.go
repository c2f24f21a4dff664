package api

import (
	"github.com/KazKozDev/pathfinder/internal/ai"
	"github.com/KazKozDev/pathfinder/internal/db"
	"github.com/KazKozDev/pathfinder/internal/repository/sqlite"
	"github.com/gorilla/mux"
)

func SetupRoutes(version, buildTime string, database *db.DB, engine *ai.Engine) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(database, nil)

	// Create handlers
	systemHandler := &SystemHandler{}
	jobsHandler := NewJobsHandler(repo)
	resumesHandler := NewResumesHandler(repo)
	contactsHandler := NewContactsHandler(repo)
	eventsHandler := NewEventsHandler(repo)
	settingsHandler := NewSettingsHandler(repo)
	aiHandler := NewAIHandler(engine, repo, repo, repo, repo)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// liveness also lives under the base path, where API clients look
	api.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	// Jobs endpoints
	api.HandleFunc("/jobs", jobsHandler.List).Methods("GET")
	api.HandleFunc("/jobs", jobsHandler.Create).Methods("POST")
	api.HandleFunc("/jobs/{id}", jobsHandler.Get).Methods("GET")
	api.HandleFunc("/jobs/{id}", jobsHandler.Update).Methods("PUT")
	api.HandleFunc("/jobs/{id}", jobsHandler.Delete).Methods("DELETE")

	// Resumes endpoints
	api.HandleFunc("/resumes", resumesHandler.List).Methods("GET")
	api.HandleFunc("/resumes", resumesHandler.Create).Methods("POST")
	api.HandleFunc("/resumes/{id}", resumesHandler.Get).Methods("GET")
	api.HandleFunc("/resumes/{id}", resumesHandler.Update).Methods("PUT")
	api.HandleFunc("/resumes/{id}", resumesHandler.Delete).Methods("DELETE")

	// Contacts endpoints
	api.HandleFunc("/contacts", contactsHandler.List).Methods("GET")
	api.HandleFunc("/contacts", contactsHandler.Create).Methods("POST")
	api.HandleFunc("/contacts/{id}", contactsHandler.Get).Methods("GET")
	api.HandleFunc("/contacts/{id}", contactsHandler.Update).Methods("PUT")
	api.HandleFunc("/contacts/{id}", contactsHandler.Delete).Methods("DELETE")

	// Calendar events endpoints
	api.HandleFunc("/events", eventsHandler.List).Methods("GET")
	api.HandleFunc("/events", eventsHandler.Create).Methods("POST")
	api.HandleFunc("/events/{id}", eventsHandler.Get).Methods("GET")
	api.HandleFunc("/events/{id}", eventsHandler.Update).Methods("PUT")
	api.HandleFunc("/events/{id}", eventsHandler.Delete).Methods("DELETE")

	// Settings endpoints
	api.HandleFunc("/settings", settingsHandler.Get).Methods("GET")
	api.HandleFunc("/settings", settingsHandler.Update).Methods("PUT")

	// AI tool endpoints
	aiAPI := api.PathPrefix("/ai").Subrouter()
	aiAPI.HandleFunc("/cover-letter", aiHandler.CoverLetter).Methods("POST")
	aiAPI.HandleFunc("/resume-check", aiHandler.ResumeCheck).Methods("POST")
	aiAPI.HandleFunc("/next-actions", aiHandler.NextActions).Methods("POST")
	aiAPI.HandleFunc("/skill-gap", aiHandler.SkillGap).Methods("POST")
	aiAPI.HandleFunc("/research", aiHandler.Research).Methods("POST")
	aiAPI.HandleFunc("/assistant", aiHandler.Assistant).Methods("POST")
	aiAPI.HandleFunc("/interview", aiHandler.StartInterview).Methods("POST")
	aiAPI.HandleFunc("/interview/{id}", aiHandler.InterviewTurn).Methods("POST")
	aiAPI.HandleFunc("/interview/{id}", aiHandler.EndInterview).Methods("DELETE")

	return r
}
