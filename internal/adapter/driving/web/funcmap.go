package web

import (
	"fmt"
	"html/template"

	"github.com/ericfisherdev/landoui/internal/annotate"
	"github.com/ericfisherdev/landoui/internal/domain/model"
)

// FuncMap exposes the annotate helpers to html/template under the filter names
// the Lando templates use. It is the public entry point for html/template
// callers; the server's own pages are templ components and do not register it.
//
// Go templates pipe a value in as the last argument, so the linkifiers take
// their extra parameter first: {{ .Summary | linkify_diff_ids .RevisionID }}.
// Linkifiers escape plain strings and pass template.HTML through untouched,
// which lets them be chained.
func FuncMap(a *annotate.Annotator) template.FuncMap {
	return template.FuncMap{
		"escape_html": func(text any) template.HTML {
			return template.HTML(fragment(text))
		},
		"tostatusbadgeclass": func(v any) (string, error) {
			status, err := landingStatusOf(v)
			if err != nil {
				return "", err
			}
			return annotate.LandingBadgeClass(status), nil
		},
		"tostatusbadgename": func(v any) (string, error) {
			status, err := landingStatusOf(v)
			if err != nil {
				return "", err
			}
			return annotate.LandingBadgeName(status), nil
		},
		"revision_status_to_badge_class": func(status any) string {
			return annotate.RevisionBadgeClass(model.RevisionStatus(fmt.Sprint(status)))
		},
		"reviewer_to_status_badge_class": annotate.ReviewerBadgeClass,
		"reviewer_to_action_text":        annotate.ReviewerActionText,
		"select_reviewers":               selectReviewers,
		"latest_status": func(events []model.StatusEvent) string {
			status, _ := annotate.LatestStatus(events)
			return status
		},
		"avatar_url": a.AvatarURL,
		"linkify_bug_numbers": func(text any) template.HTML {
			return template.HTML(a.LinkifyBugNumbers(fragment(text)))
		},
		"linkify_revision_urls": func(text any) template.HTML {
			return template.HTML(a.LinkifyRevisionURLs(fragment(text)))
		},
		"linkify_diff_ids": func(revisionID string, text any) template.HTML {
			return template.HTML(a.LinkifyDiffIDs(fragment(text), revisionID))
		},
		"linkify_commit_id": func(landing any, text any) (template.HTML, error) {
			result, err := landingResultOf(landing)
			if err != nil {
				return "", err
			}
			return template.HTML(a.LinkifyCommitID(fragment(text), result)), nil
		},
		"linkify_transplant_details": func(transplant model.TransplantResult, text any) template.HTML {
			return template.HTML(a.LinkifyTransplantDetails(fragment(text), transplant))
		},
		"bug_url": func(bug any) string {
			return a.BugURL(fmt.Sprint(bug))
		},
		"revision_url": func(revisionID any, diffID ...any) string {
			var diff string
			if len(diffID) > 0 && diffID[0] != nil {
				diff = fmt.Sprint(diffID[0])
			}
			return a.RevisionURL(fmt.Sprint(revisionID), diff)
		},
	}
}

// fragment returns v as an HTML fragment, escaping it unless it already is one.
func fragment(v any) string {
	switch t := v.(type) {
	case template.HTML:
		return string(t)
	case string:
		return annotate.EscapeHTML(t)
	case nil:
		return ""
	default:
		return annotate.EscapeHTML(fmt.Sprint(t))
	}
}

// selectReviewers accepts exactly one []model.Reviewer anywhere in args.
// Strings are statuses to keep and a bool filters on ForOtherDiff, so both
// {{ select_reviewers .Reviewers "accepted" }} and
// {{ .Reviewers | select_reviewers "accepted" false }} work.
func selectReviewers(args ...any) ([]model.Reviewer, error) {
	var (
		reviewers []model.Reviewer
		found     bool
		filter    annotate.ReviewerFilter
	)

	for _, arg := range args {
		switch v := arg.(type) {
		case []model.Reviewer:
			if found {
				return nil, fmt.Errorf("select_reviewers: more than one reviewer list given")
			}
			reviewers, found = v, true
		case string:
			filter.Statuses = append(filter.Statuses, model.ReviewerStatus(v))
		case model.ReviewerStatus:
			filter.Statuses = append(filter.Statuses, v)
		case bool:
			filter.ForOtherDiff = &v
		default:
			return nil, fmt.Errorf("select_reviewers: unexpected argument of type %T", arg)
		}
	}

	if !found {
		return nil, fmt.Errorf("select_reviewers: no reviewer list given")
	}

	return annotate.SelectReviewers(reviewers, filter), nil
}

func landingStatusOf(v any) (model.LandingStatus, error) {
	switch t := v.(type) {
	case model.LandingStatus:
		return t, nil
	case string:
		return model.LandingStatus(t), nil
	case model.TransplantResult:
		return t.Status, nil
	default:
		result, err := landingResultOf(v)
		if err != nil {
			return "", err
		}
		return result.Status, nil
	}
}

func landingResultOf(v any) (model.LandingResult, error) {
	switch t := v.(type) {
	case model.LandingResult:
		return t, nil
	case *model.LandingResult:
		if t != nil {
			return *t, nil
		}
	case model.LandingJob:
		return t.LandingResult(), nil
	case *model.LandingJob:
		if t != nil {
			return t.LandingResult(), nil
		}
	}
	return model.LandingResult{}, fmt.Errorf("expected a landing result, got %T", v)
}
