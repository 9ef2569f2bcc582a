package core

import (
	"bytes"
	"html/template"
	"net/http"
	"path"

	"go.uber.org/zap"
)

// Renderer holds the parsed page templates. Templates are addressed by
// their file base name, e.g. "rsvp-confirm.html".
type Renderer struct {
	templates *template.Template
	logger    *zap.Logger
}

func NewRenderer(templatesPath string, logger *zap.Logger) (*Renderer, error) {
	templates, err := template.ParseGlob(path.Join(templatesPath, "*.html"))
	if err != nil {
		return nil, err
	}

	return &Renderer{templates: templates, logger: logger}, nil
}

func (r *Renderer) Render(w http.ResponseWriter, name string, data interface{}) {
	r.RenderStatus(w, http.StatusOK, name, data)
}

func (r *Renderer) RenderStatus(w http.ResponseWriter, statusCode int, name string, data interface{}) {
	// Render into a buffer first so a template error does not leave a
	// half-written page behind a 200 status.
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		r.logger.Error("failed to render template", zap.String("template", name), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if _, err := buf.WriteTo(w); err != nil {
		r.logger.Error("failed to write response", zap.String("template", name), zap.Error(err))
	}
}
