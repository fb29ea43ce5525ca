// Package web implements the HTML GUI driving adapter using templ components.
package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/a-h/templ"

	"github.com/ericfisherdev/landoui/internal/adapter/driving/web/templates"
	"github.com/ericfisherdev/landoui/internal/adapter/driving/web/templates/pages"
	"github.com/ericfisherdev/landoui/internal/annotate"
	"github.com/ericfisherdev/landoui/internal/application"
)

const invalidRevisionMessage = "Revision ids look like D123."

// Handler is the web GUI driving adapter that serves HTML via templ components.
type Handler struct {
	landingSvc *application.LandingService
	annotator  *annotate.Annotator
	logger     *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	landingSvc *application.LandingService,
	annotator *annotate.Annotator,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		landingSvc: landingSvc,
		annotator:  annotator,
		logger:     logger,
	}
}

// Index renders the revision lookup page. A valid ?revision= query redirects
// to that revision's page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("revision"); id != "" {
		if application.ValidRevisionID(id) {
			http.Redirect(w, r, "/revisions/"+url.PathEscape(id), http.StatusSeeOther)
			return
		}
		h.render(w, r, http.StatusBadRequest, "Lando", pages.Index(invalidRevisionMessage))
		return
	}

	h.render(w, r, http.StatusOK, "Lando", pages.Index(""))
}

// Revision renders the page of a single revision.
func (h *Handler) Revision(w http.ResponseWriter, r *http.Request) {
	revisionID := r.PathValue("revision")

	page, err := h.landingSvc.RevisionPage(r.Context(), revisionID)
	switch {
	case errors.Is(err, application.ErrInvalidRevision):
		h.render(w, r, http.StatusBadRequest, "Lando", pages.Index(invalidRevisionMessage))
		return
	case errors.Is(err, application.ErrRevisionNotFound):
		h.render(w, r, http.StatusNotFound, "Lando", pages.Index("Nothing is known about "+revisionID+" yet."))
		return
	case err != nil:
		h.logger.Error("failed to load revision", "revision", revisionID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, revisionID+" - Lando", pages.Revision(toRevisionPageViewModel(h.annotator, *page)))
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, title string, body templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.Layout(title, body).Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", "path", r.URL.Path, "error", err)
	}
}
