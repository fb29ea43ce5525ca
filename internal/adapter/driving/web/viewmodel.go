package web

import (
	"strconv"
	"time"

	vm "github.com/ericfisherdev/landoui/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/landoui/internal/annotate"
	"github.com/ericfisherdev/landoui/internal/application"
	"github.com/ericfisherdev/landoui/internal/domain/model"
)

// reviewerGroups lists the sections a revision's reviewers are shown in, in order.
var reviewerGroups = []struct {
	title  string
	filter annotate.ReviewerFilter
}{
	{"Blocking reviewers", annotate.ReviewerFilter{Statuses: []model.ReviewerStatus{model.ReviewerStatusBlocking}}},
	{"Accepted", annotate.ReviewerFilter{
		Statuses:     []model.ReviewerStatus{model.ReviewerStatusAccepted},
		ForOtherDiff: ptr(false),
	}},
	{"Requested changes", annotate.ReviewerFilter{
		Statuses:     []model.ReviewerStatus{model.ReviewerStatusRejected},
		ForOtherDiff: ptr(false),
	}},
	{"Reviewers", annotate.ReviewerFilter{Statuses: []model.ReviewerStatus{model.ReviewerStatusAdded}}},
	{"Reviewed a prior diff", annotate.ReviewerFilter{
		Statuses:     []model.ReviewerStatus{model.ReviewerStatusAccepted, model.ReviewerStatusRejected},
		ForOtherDiff: ptr(true),
	}},
}

func ptr[T any](v T) *T { return &v }

// toRevisionPageViewModel converts an assembled revision page to its view model.
func toRevisionPageViewModel(a *annotate.Annotator, page application.RevisionPage) vm.RevisionPageViewModel {
	out := vm.RevisionPageViewModel{
		RevisionID:     page.RevisionID,
		RevisionURL:    a.RevisionURL(page.RevisionID, ""),
		ReviewerGroups: []vm.ReviewerGroupViewModel{},
		Landings:       toLandingViewModels(a, page.Landings),
		HasLandings:    len(page.Landings) > 0,
	}

	if out.HasLandings {
		out.LatestBadge = landingBadge(page.LatestStatus)
	}

	rev := page.Revision
	if rev == nil {
		out.TitleHTML = annotate.EscapeHTML(page.RevisionID)
		return out
	}

	out.HasSnapshot = true
	out.TitleHTML = a.LinkifyBugNumbers(annotate.EscapeHTML(rev.Title))
	out.StatusBadge = vm.BadgeViewModel{
		Class: annotate.RevisionBadgeClass(rev.Status),
		Text:  string(rev.Status),
	}
	if rev.DiffID != 0 {
		out.RevisionURL = a.RevisionURL(rev.ID, strconv.FormatInt(rev.DiffID, 10))
	}
	if rev.BugID != 0 {
		out.BugID = rev.BugID
		out.BugURL = a.BugURL(strconv.FormatInt(rev.BugID, 10))
	}
	if rev.AuthorAvatarURL != "" {
		out.AvatarURL = a.AvatarURL(rev.AuthorAvatarURL)
	}
	out.SummaryHTML = RenderSummary(a, rev.Summary, rev.ID)

	for _, g := range reviewerGroups {
		selected := annotate.SelectReviewers(rev.Reviewers, g.filter)
		if len(selected) == 0 {
			continue
		}
		out.ReviewerGroups = append(out.ReviewerGroups, vm.ReviewerGroupViewModel{
			Title:     g.title,
			Reviewers: toReviewerViewModels(selected),
		})
	}

	return out
}

// toReviewerViewModels converts domain Reviewers to ReviewerViewModels.
func toReviewerViewModels(reviewers []model.Reviewer) []vm.ReviewerViewModel {
	vms := make([]vm.ReviewerViewModel, 0, len(reviewers))
	for _, r := range reviewers {
		vms = append(vms, vm.ReviewerViewModel{
			Username:   r.Username,
			BadgeClass: annotate.ReviewerBadgeClass(r),
			ActionText: annotate.ReviewerActionText(r),
		})
	}
	return vms
}

// toLandingViewModels converts domain LandingJobs to LandingViewModels.
func toLandingViewModels(a *annotate.Annotator, jobs []model.LandingJob) []vm.LandingViewModel {
	vms := make([]vm.LandingViewModel, 0, len(jobs))
	for _, job := range jobs {
		lv := vm.LandingViewModel{
			ID:             job.ID,
			DiffID:         job.DiffID,
			Badge:          landingBadge(job.Status),
			ResultHTML:     a.LinkifyCommitID(annotate.EscapeHTML(job.Result), job.LandingResult()),
			RequesterEmail: job.RequesterEmail,
			CreatedAt:      job.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt:      job.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if job.DiffID != 0 {
			lv.DiffURL = a.RevisionURL(job.RevisionID, strconv.FormatInt(job.DiffID, 10))
		}
		vms = append(vms, lv)
	}
	return vms
}

func landingBadge(status model.LandingStatus) vm.BadgeViewModel {
	return vm.BadgeViewModel{
		Class: annotate.LandingBadgeClass(status),
		Text:  annotate.LandingBadgeName(status),
	}
}
