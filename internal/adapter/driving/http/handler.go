package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ericfisherdev/landoui/internal/annotate"
	"github.com/ericfisherdev/landoui/internal/application"
	"github.com/ericfisherdev/landoui/internal/domain/model"
	"github.com/ericfisherdev/landoui/internal/domain/port/driven"
)

// Handler is the HTTP driving adapter that serves the REST API.
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

// RegisterAPIRoutes registers all /api/v1 routes on the provided mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/health", h.Health)
	mux.HandleFunc("PUT /api/v1/revisions/{revision}", h.PutRevision)
	mux.HandleFunc("GET /api/v1/revisions/{revision}/landings", h.ListLandings)
	mux.HandleFunc("POST /api/v1/landings", h.CreateLanding)
	mux.HandleFunc("GET /api/v1/landings/{id}", h.GetLanding)
	mux.HandleFunc("PATCH /api/v1/landings/{id}", h.UpdateLanding)
}

// NewServeMux creates an http.Handler with the API routes registered and
// wrapped with logging and recovery middleware.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	RegisterAPIRoutes(mux, h)
	return ApplyMiddleware(mux, logger)
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// PutRevision stores the snapshot of a revision, replacing any previous one.
func (h *Handler) PutRevision(w http.ResponseWriter, r *http.Request) {
	revisionID := r.PathValue("revision")

	var req RevisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.landingSvc.SaveRevision(r.Context(), toRevision(revisionID, req)); err != nil {
		if errors.Is(err, application.ErrInvalidRevision) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to save revision", "revision", revisionID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListLandings returns the landing history of a revision, newest first.
func (h *Handler) ListLandings(w http.ResponseWriter, r *http.Request) {
	revisionID := r.PathValue("revision")

	page, err := h.landingSvc.RevisionPage(r.Context(), revisionID)
	switch {
	case errors.Is(err, application.ErrInvalidRevision):
		writeError(w, http.StatusBadRequest, "invalid revision id: expected D<number>")
		return
	case errors.Is(err, application.ErrRevisionNotFound):
		writeError(w, http.StatusNotFound, "revision not found")
		return
	case err != nil:
		h.logger.Error("failed to list landings", "revision", revisionID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := LandingListResponse{
		RevisionID:   page.RevisionID,
		RevisionURL:  h.annotator.RevisionURL(page.RevisionID, ""),
		LatestStatus: string(page.LatestStatus),
		Landings:     make([]LandingResponse, 0, len(page.Landings)),
	}
	for _, job := range page.Landings {
		resp.Landings = append(resp.Landings, toLandingResponse(h.annotator, job))
	}

	writeJSON(w, http.StatusOK, resp)
}

// CreateLanding records a new landing job.
func (h *Handler) CreateLanding(w http.ResponseWriter, r *http.Request) {
	var req CreateLandingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.landingSvc.RecordLanding(r.Context(), model.LandingJob{
		RevisionID:     req.RevisionID,
		DiffID:         req.DiffID,
		Status:         model.LandingStatus(req.Status),
		Result:         req.Result,
		TreeURL:        req.TreeURL,
		RequesterEmail: req.RequesterEmail,
	})
	if err != nil {
		if errors.Is(err, application.ErrInvalidLanding) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to record landing", "revision", req.RevisionID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, CreateLandingResponse{ID: id})
}

// GetLanding returns a single landing job.
func (h *Handler) GetLanding(w http.ResponseWriter, r *http.Request) {
	id, ok := landingID(w, r)
	if !ok {
		return
	}

	job, err := h.landingSvc.Landing(r.Context(), id)
	if err != nil {
		if errors.Is(err, driven.ErrLandingNotFound) {
			writeError(w, http.StatusNotFound, "landing not found")
			return
		}
		h.logger.Error("failed to get landing", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toLandingResponse(h.annotator, *job))
}

// UpdateLanding records a status change for an existing landing job.
func (h *Handler) UpdateLanding(w http.ResponseWriter, r *http.Request) {
	id, ok := landingID(w, r)
	if !ok {
		return
	}

	var req UpdateLandingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.landingSvc.UpdateLanding(r.Context(), id, model.LandingStatus(req.Status), req.Result)
	switch {
	case errors.Is(err, application.ErrInvalidLanding):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, driven.ErrLandingNotFound):
		writeError(w, http.StatusNotFound, "landing not found")
		return
	case err != nil:
		h.logger.Error("failed to update landing", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// landingID parses the {id} path value, writing a 400 when it is not a
// positive integer.
func landingID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid landing id")
		return 0, false
	}
	return id, true
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
