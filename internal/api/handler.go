package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"resume-extractor/internal/config"
	"resume-extractor/internal/extract"
	"resume-extractor/internal/resume"
	"resume-extractor/internal/storage"
)

type API struct {
	db          *storage.DB // nil in parse-only mode
	extractor   *extract.Service
	parser      *resume.Parser
	maxUploadMB int64
}

func NewAPI(db *storage.DB, cfg *config.Config) *API {
	tracer := resume.Nop()
	if cfg.TraceParser {
		tracer = resume.Log("[parser] ")
	}

	extractor := extract.NewService()

	return &API{
		db:          db,
		extractor:   extractor,
		parser:      resume.New(extractor, resume.WithTracer(tracer)),
		maxUploadMB: cfg.MaxUploadMB,
	}
}

// ListResumesHandler returns recently uploaded resumes
// @Summary List recent resumes
// @Description List the most recently uploaded resumes (metadata only)
// @Tags resumes
// @Produce json
// @Success 200 {array} storage.ResumeRecord
// @Failure 500 {object} map[string]string
// @Router /resumes [get]
func (a *API) ListResumesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if a.db == nil {
		http.Error(w, "persistence disabled", http.StatusServiceUnavailable)
		return
	}
	records, err := a.db.ListRecentResumes(r.Context(), 20)
	if err != nil {
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

// ListEntitiesHandler returns the entities extracted from one resume
// @Summary List extracted entities
// @Description List the entities (skills, companies, positions, ...) stored for a resume
// @Tags resumes
// @Produce json
// @Param resume_id query int true "Resume ID"
// @Success 200 {array} storage.Entity
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /resume/entities [get]
func (a *API) ListEntitiesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if a.db == nil {
		http.Error(w, "persistence disabled", http.StatusServiceUnavailable)
		return
	}
	resumeID, err := strconv.ParseInt(r.URL.Query().Get("resume_id"), 10, 64)
	if err != nil || resumeID <= 0 {
		http.Error(w, "resume_id query parameter required", http.StatusBadRequest)
		return
	}
	entities, err := a.db.ListEntities(r.Context(), resumeID)
	if err != nil {
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entities)
}
