package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-extractor/internal/resume"
)

// extensionMimeTypes maps accepted upload extensions to the MIME types the
// parser understands.
var extensionMimeTypes = map[string]string{
	".pdf":  resume.MimePDF,
	".docx": resume.MimeDocx,
}

// ParseResumeHandler handles resume uploads and extraction
// @Summary Upload and parse a resume
// @Description Upload a resume file (PDF/DOCX) and extract structured fields with the heuristic pipeline
// @Tags resume
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file (PDF or DOCX)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /resume/parse [post]
func (a *API) ParseResumeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	startTime := time.Now()
	requestID := uuid.New().String()

	if err := r.ParseMultipartForm(a.maxUploadMB << 20); err != nil {
		http.Error(w, fmt.Sprintf("file too large or invalid (max %dMB)", a.maxUploadMB), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "no file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	mimeType, ok := extensionMimeTypes[ext]
	if !ok {
		http.Error(w, "invalid file type (supported: PDF, DOCX)", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read upload", http.StatusInternalServerError)
		return
	}

	// Extraction and parsing run as separate steps so the raw text is still
	// around for persistence afterwards.
	var text string
	switch mimeType {
	case resume.MimePDF:
		text, err = a.extractor.FromPDF(r.Context(), data)
	case resume.MimeDocx:
		text, err = a.extractor.FromDocx(r.Context(), data)
	}
	if err != nil {
		log.Printf("[%s] text extraction failed for %s: %v", requestID, header.Filename, err)
		http.Error(w, fmt.Sprintf("failed to extract text: %v", err), http.StatusInternalServerError)
		return
	}

	parsed := a.parser.ParseText(text)

	log.Printf("[%s] parsed %s: %d experiences, %d education, %d skills, %d projects",
		requestID, header.Filename, len(parsed.Experiences), len(parsed.Education),
		len(parsed.Skills), len(parsed.Projects))

	var resumeID int64
	if a.db != nil {
		// Persistence is best effort: a database hiccup must not fail a parse
		// that already succeeded.
		resumeID, err = a.saveParsed(r, requestID, header.Filename, ext, header.Size, text, parsed)
		if err != nil {
			log.Printf("[%s] failed to save resume: %v", requestID, err)
		}
	}

	response := map[string]interface{}{
		"request_id":         requestID,
		"resume_id":          resumeID,
		"filename":           header.Filename,
		"file_type":          ext,
		"file_size":          header.Size,
		"processing_time_ms": time.Since(startTime).Milliseconds(),
		"resume":             parsed,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("[%s] failed to encode JSON response: %v", requestID, err)
	}
}

func (a *API) saveParsed(r *http.Request, requestID, filename, ext string, size int64, text string, parsed *resume.ParsedResume) (int64, error) {
	ctx := r.Context()

	resumeID, err := a.db.SaveResumeFile(ctx, requestID, filename, ext, size, text)
	if err != nil {
		return 0, err
	}

	for _, skill := range parsed.Skills {
		_ = a.db.SaveEntity(ctx, resumeID, "skill", skill, 0.8)
	}
	for _, exp := range parsed.Experiences {
		if exp.Company != "" {
			_ = a.db.SaveEntity(ctx, resumeID, "company", exp.Company, 0.7)
		}
		if exp.Position != "" {
			_ = a.db.SaveEntity(ctx, resumeID, "position", exp.Position, 0.7)
		}
	}
	for _, edu := range parsed.Education {
		if edu.School != "" {
			_ = a.db.SaveEntity(ctx, resumeID, "school", edu.School, 0.7)
		}
	}
	for _, cert := range parsed.Certifications {
		_ = a.db.SaveEntity(ctx, resumeID, "certification", cert.Name, 0.6)
	}
	if parsed.PersonalInfo.Name != "" {
		_ = a.db.SaveEntity(ctx, resumeID, "name", parsed.PersonalInfo.Name, 0.9)
	}
	return resumeID, nil
}
