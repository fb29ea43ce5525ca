package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ericfisherdev/landoui/internal/annotate"
	"github.com/ericfisherdev/landoui/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// ReviewerRequest is one reviewer of a revision snapshot.
type ReviewerRequest struct {
	Username     string `json:"username"`
	Status       string `json:"status"`
	ForOtherDiff bool   `json:"for_other_diff"`
}

// RevisionRequest is the JSON body for the put revision endpoint. The
// revision id comes from the path.
type RevisionRequest struct {
	Title           string            `json:"title"`
	Summary         string            `json:"summary"`
	Status          string            `json:"status"`
	DiffID          int64             `json:"diff_id"`
	BugID           int64             `json:"bug_id"`
	AuthorAvatarURL string            `json:"author_avatar_url"`
	Reviewers       []ReviewerRequest `json:"reviewers"`
}

// CreateLandingRequest is the JSON body for the create landing endpoint.
type CreateLandingRequest struct {
	RevisionID     string `json:"revision_id"`
	DiffID         int64  `json:"diff_id"`
	Status         string `json:"status"`
	Result         string `json:"result"`
	TreeURL        string `json:"tree_url"`
	RequesterEmail string `json:"requester_email"`
}

// UpdateLandingRequest is the JSON body for the update landing endpoint.
type UpdateLandingRequest struct {
	Status string `json:"status"`
	Result string `json:"result"`
}

// CreateLandingResponse carries the id assigned to a new landing job.
type CreateLandingResponse struct {
	ID int64 `json:"id"`
}

// LandingResponse is the JSON representation of a landing job, including the
// badge and linkified result a client needs to display it.
type LandingResponse struct {
	ID             int64  `json:"id"`
	RevisionID     string `json:"revision_id"`
	DiffID         int64  `json:"diff_id"`
	Status         string `json:"status"`
	Result         string `json:"result"`
	TreeURL        string `json:"tree_url"`
	RequesterEmail string `json:"requester_email"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`

	BadgeClass string `json:"badge_class"`
	BadgeName  string `json:"badge_name"`
	ResultHTML string `json:"result_html"`
	DiffURL    string `json:"diff_url,omitempty"`
}

// LandingListResponse is the landing history of a revision, newest first.
type LandingListResponse struct {
	RevisionID   string            `json:"revision_id"`
	RevisionURL  string            `json:"revision_url"`
	LatestStatus string            `json:"latest_status"`
	Landings     []LandingResponse `json:"landings"`
}

// toRevision converts a put revision request to a domain Revision.
func toRevision(id string, req RevisionRequest) model.Revision {
	reviewers := make([]model.Reviewer, 0, len(req.Reviewers))
	for _, r := range req.Reviewers {
		reviewers = append(reviewers, model.Reviewer{
			Username:     r.Username,
			Status:       model.ReviewerStatus(r.Status),
			ForOtherDiff: r.ForOtherDiff,
		})
	}

	return model.Revision{
		ID:              id,
		Title:           req.Title,
		Summary:         req.Summary,
		Status:          model.RevisionStatus(req.Status),
		DiffID:          req.DiffID,
		BugID:           req.BugID,
		AuthorAvatarURL: req.AuthorAvatarURL,
		Reviewers:       reviewers,
	}
}

// toLandingResponse converts a domain LandingJob to its JSON representation.
func toLandingResponse(a *annotate.Annotator, job model.LandingJob) LandingResponse {
	resp := LandingResponse{
		ID:             job.ID,
		RevisionID:     job.RevisionID,
		DiffID:         job.DiffID,
		Status:         string(job.Status),
		Result:         job.Result,
		TreeURL:        job.TreeURL,
		RequesterEmail: job.RequesterEmail,
		CreatedAt:      job.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      job.UpdatedAt.UTC().Format(time.RFC3339),
		BadgeClass:     annotate.LandingBadgeClass(job.Status),
		BadgeName:      annotate.LandingBadgeName(job.Status),
		ResultHTML:     a.LinkifyCommitID(annotate.EscapeHTML(job.Result), job.LandingResult()),
	}
	if job.DiffID != 0 {
		resp.DiffURL = a.RevisionURL(job.RevisionID, formatID(job.DiffID))
	}
	return resp
}
