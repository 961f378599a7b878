package http

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/vokinneberg/askgem/internal/qa"
	"github.com/vokinneberg/askgem/internal/types"
)

//go:generate mockgen -source=handlers.go -destination=mock_answerer.go -package=http Answerer

// Answerer defines the interface for turning a normalized question into answer text
type Answerer interface {
	Answer(ctx context.Context, question string) string
}

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type Handler struct {
	answerer Answerer
	logger   *slog.Logger
}

// NewHandlers initializes handlers with dependencies
func NewHandlers(answerer Answerer, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		answerer: answerer,
		logger:   logger,
	}
}

// IndexHandler renders the question form. On POST it answers the submitted
// question and renders the same page with the result.
func (h *Handler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	var ex types.Exchange

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			h.logger.Warn("Failed to parse form", "error", err)
		}
		ex.Question = r.PostFormValue("question")

		if ex.Question != "" {
			ex.Normalized = qa.Normalize(ex.Question)
			ex.Answer = h.answerer.Answer(r.Context(), ex.Normalized)
			h.logger.Info("Answered question", "normalized", ex.Normalized)
		}
	}

	h.render(w, ex)
}

func (h *Handler) render(w http.ResponseWriter, ex types.Exchange) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, ex); err != nil {
		h.logger.Error("Error rendering page", "error", err)
		errorResponse(w, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("Error writing response", "error", err)
	}
}

func errorResponse(w http.ResponseWriter, status int) {
	http.Error(w, http.StatusText(status), status)
}
