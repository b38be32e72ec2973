package handlers

import (
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"
	"path/filepath"

	"github.com/MichaelUniHorus/dashboard-analytics/internal/config"
	"github.com/MichaelUniHorus/dashboard-analytics/internal/database"
	"github.com/MichaelUniHorus/dashboard-analytics/internal/engine"
	"github.com/MichaelUniHorus/dashboard-analytics/internal/i18n"
)

// Handler is the HTTP boundary. It parses raw parameters, delegates to the
// engine and repository, and serializes results; it applies no formatting or
// localization to engine output.
type Handler struct {
	repo *database.Repository
	cfg  *config.Config
}

func New(repo *database.Repository, cfg *config.Config) *Handler {
	return &Handler{repo: repo, cfg: cfg}
}

func (h *Handler) renderTemplate(w http.ResponseWriter, page string, data interface{}) {
	tmpl, err := template.ParseFiles(
		filepath.Join(h.cfg.TemplateDir, "layout.html"),
		filepath.Join(h.cfg.TemplateDir, page),
	)
	if err != nil {
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}
	tmpl.ExecuteTemplate(w, "layout", data)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the engine error taxonomy onto HTTP statuses: validation
// errors are the caller's to fix (400), store failures are 503.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verr *engine.ValidationError
	if errors.As(err, &verr) {
		h.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": verr.Error(),
			"kind":  verr.Kind,
			"field": verr.Field,
		})
		return
	}
	var xerr *engine.ExecutionError
	if errors.As(err, &xerr) {
		log.Printf("store error: %v", xerr)
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"error": "store unavailable",
			"kind":  xerr.Kind,
		})
		return
	}
	log.Printf("internal error: %v", err)
	h.writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
		"error": "internal error",
	})
}

// lang resolves the UI language: query parameter, then cookie, then the
// configured default. A query override is persisted in the cookie.
func (h *Handler) lang(w http.ResponseWriter, r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); i18n.Supported(lang) {
		http.SetCookie(w, &http.Cookie{Name: "lang", Value: lang, Path: "/"})
		return lang
	}
	if cookie, err := r.Cookie("lang"); err == nil && i18n.Supported(cookie.Value) {
		return cookie.Value
	}
	if i18n.Supported(h.cfg.DefaultLang) {
		return h.cfg.DefaultLang
	}
	return "en"
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"app":    h.cfg.AppName,
	})
}
