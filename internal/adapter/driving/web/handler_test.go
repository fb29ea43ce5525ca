package web

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/landoui/internal/application"
	"github.com/ericfisherdev/landoui/internal/domain/model"
)

type stubLandingStore struct {
	jobs []model.LandingJob
	err  error
}

func (s *stubLandingStore) Add(context.Context, model.LandingJob) (int64, error) { return 0, nil }

func (s *stubLandingStore) UpdateStatus(context.Context, int64, model.LandingStatus, string, time.Time) error {
	return nil
}

func (s *stubLandingStore) GetByID(context.Context, int64) (*model.LandingJob, error) { return nil, nil }

func (s *stubLandingStore) ListByRevision(context.Context, string) ([]model.LandingJob, error) {
	return s.jobs, s.err
}

type stubRevisionStore struct {
	rev *model.Revision
}

func (s *stubRevisionStore) Upsert(context.Context, model.Revision) error { return nil }

func (s *stubRevisionStore) Get(context.Context, string) (*model.Revision, error) { return s.rev, nil }

func setupMux(t *testing.T, landings *stubLandingStore, revisions *stubRevisionStore) *http.ServeMux {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := application.NewLandingService(landings, revisions, logger)

	mux := http.NewServeMux()
	RegisterRoutes(mux, NewHandler(svc, newTestAnnotator(t), logger))
	return mux
}

func serve(mux *http.ServeMux, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestIndex_RendersLookupForm(t *testing.T) {
	mux := setupMux(t, &stubLandingStore{}, &stubRevisionStore{})

	rec := serve(mux, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `<form class="Lookup" method="get" action="/">`)
	assert.Contains(t, rec.Body.String(), `href="/static/landoui.css"`)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "<!doctype html>"))
}

func TestIndex_RedirectsValidRevision(t *testing.T) {
	mux := setupMux(t, &stubLandingStore{}, &stubRevisionStore{})

	rec := serve(mux, "/?revision=D12")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/revisions/D12", rec.Header().Get("Location"))
}

func TestIndex_RejectsInvalidRevision(t *testing.T) {
	mux := setupMux(t, &stubLandingStore{}, &stubRevisionStore{})

	rec := serve(mux, "/?revision=%3Cb%3E")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), invalidRevisionMessage)
	assert.NotContains(t, rec.Body.String(), "<b>")
}

func TestRevision_RendersPage(t *testing.T) {
	landings := &stubLandingStore{jobs: []model.LandingJob{{
		ID:         3,
		RevisionID: "D42",
		DiffID:     7,
		Status:     model.LandingStatusLanded,
		Result:     "deadbeef",
		TreeURL:    "https://hg.example/central",
		UpdatedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}}}
	mux := setupMux(t, landings, &stubRevisionStore{rev: testRevision()})

	rec := serve(mux, "/revisions/D42")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>D42 - Lando</title>")
	assert.Contains(t, body, `href="https://phabricator.example/D42?id=7"`)
	assert.Contains(t, body, `<a href="https://bugzilla.example/show_bug.cgi?id=1234">Bug 1234</a>`)
	assert.Contains(t, body, "Fix &lt;frame&gt; ordering")
	assert.Contains(t, body, `src="https://www.gravatar.com/avatar/abc?d=identicon&amp;s=80"`)
	assert.Contains(t, body, `<span class="Badge Badge--positive">accepted</span>`)
	assert.Contains(t, body, `<span class="Badge Badge--positive">Successfully Landed</span>`)
	assert.Contains(t, body, `<a href="https://hg.example/central/rev/deadbeef">https://hg.example/central/rev/deadbeef</a>`)
	assert.Contains(t, body, "must review")
}

func TestRevision_EscapesStoredTreeURL(t *testing.T) {
	landings := &stubLandingStore{jobs: []model.LandingJob{{
		ID:         1,
		RevisionID: "D42",
		DiffID:     7,
		Status:     model.LandingStatusLanded,
		Result:     "abc123",
		TreeURL:    `https://t"><script>alert(1)</script>`,
		UpdatedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}}}
	mux := setupMux(t, landings, &stubRevisionStore{rev: testRevision()})

	rec := serve(mux, "/revisions/D42")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, `<a href="https://t&#34;&gt;&lt;script&gt;alert(1)&lt;/script&gt;/rev/abc123">`)
}

func TestRevision_EscapesStoredText(t *testing.T) {
	landings := &stubLandingStore{jobs: []model.LandingJob{{
		ID:             1,
		RevisionID:     "D42",
		DiffID:         7,
		Status:         model.LandingStatusFailed,
		Result:         "<img src=x onerror=alert(1)>",
		RequesterEmail: "<b>dev</b>@example.com",
		UpdatedAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}}}
	mux := setupMux(t, landings, &stubRevisionStore{rev: testRevision()})

	rec := serve(mux, "/revisions/D42")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, "<img src=x")
	assert.NotContains(t, body, "<b>dev</b>")
	assert.Contains(t, body, "&lt;b&gt;dev&lt;/b&gt;@example.com")
}

func TestRevision_WithoutLandings(t *testing.T) {
	mux := setupMux(t, &stubLandingStore{}, &stubRevisionStore{rev: testRevision()})

	rec := serve(mux, "/revisions/D42")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "This revision has not been landed yet.")
}

func TestRevision_NotFound(t *testing.T) {
	mux := setupMux(t, &stubLandingStore{}, &stubRevisionStore{})

	rec := serve(mux, "/revisions/D404")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Nothing is known about D404 yet.")
}

func TestRevision_InvalidID(t *testing.T) {
	mux := setupMux(t, &stubLandingStore{}, &stubRevisionStore{})

	rec := serve(mux, "/revisions/abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRevision_StoreError(t *testing.T) {
	mux := setupMux(t, &stubLandingStore{err: errors.New("disk on fire")}, &stubRevisionStore{})

	rec := serve(mux, "/revisions/D42")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk on fire")
}

func TestStatic_ServesStylesheet(t *testing.T) {
	mux := setupMux(t, &stubLandingStore{}, &stubRevisionStore{})

	rec := serve(mux, "/static/landoui.css")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".Badge--positive")
}

func TestRoutes_UnknownPath(t *testing.T) {
	mux := setupMux(t, &stubLandingStore{}, &stubRevisionStore{})

	rec := serve(mux, "/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
