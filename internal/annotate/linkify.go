package annotate

import (
	"html"
	"regexp"
	"strings"

	"github.com/ericfisherdev/landoui/internal/domain/model"
)

// The linkifiers operate on text that is already HTML-escaped and return an
// HTML fragment. Matched ids are interpolated into hrefs verbatim. Commit base
// URLs come from stored landings and are escaped before use.

var (
	bugNumberExpr = regexp.MustCompile(`(?i)\b(Bug (\d+))\b`)
	diffIDExpr    = regexp.MustCompile(`(?i)\b(Diff (\d+))\b`)
)

// EscapeHTML escapes text so it can be fed to the linkifiers.
func EscapeHTML(text string) string {
	return html.EscapeString(text)
}

// LinkifyBugNumbers links every "Bug N" (any case) to the bug tracker.
func (a *Annotator) LinkifyBugNumbers(text string) string {
	return substitute(bugNumberExpr, text, func(m []string) string {
		return anchor(a.BugURL(m[2]), m[1])
	})
}

// LinkifyRevisionURLs turns every literal "{phabricator}/D<n>" URL into a
// link to itself. Matching ignores case.
func (a *Annotator) LinkifyRevisionURLs(text string) string {
	return substitute(a.revisionURLExpr, text, func(m []string) string {
		return anchor(m[1], m[1])
	})
}

// LinkifyDiffIDs links every "Diff N" (any case) to that diff of revisionID.
func (a *Annotator) LinkifyDiffIDs(text, revisionID string) string {
	return substitute(diffIDExpr, text, func(m []string) string {
		return anchor(a.RevisionURL(revisionID, m[2]), m[1])
	})
}

// LinkifyCommitID links the landed commit wherever it appears in text. The
// result is not always a commit id (it may say the landing was queued), so
// text is returned untouched unless the landing succeeded. Matching is case
// sensitive.
func (a *Annotator) LinkifyCommitID(text string, landing model.LandingResult) string {
	if landing.Status != model.LandingStatusLanded {
		return text
	}
	return a.linkifyCommit(text, landing.Result, landing.TreeURL)
}

// LinkifyTransplantDetails is LinkifyCommitID for transplant results.
func (a *Annotator) LinkifyTransplantDetails(text string, transplant model.TransplantResult) string {
	if transplant.Status != model.LandingStatusLanded {
		return text
	}
	return a.linkifyCommit(text, transplant.Details, transplant.RepositoryURL)
}

func (a *Annotator) linkifyCommit(text, commitID, baseURL string) string {
	if commitID == "" {
		return text
	}

	expr, err := regexp.Compile(`\b(` + regexp.QuoteMeta(commitID) + `)\b`)
	if err != nil {
		a.logger.Debug("commit id is not linkable", "commit_id", commitID, "error", err)
		return text
	}

	base := html.EscapeString(baseURL)
	return substitute(expr, text, func(m []string) string {
		href := base + "/rev/" + m[1]
		return anchor(href, href)
	})
}

func anchor(href, text string) string {
	return `<a href="` + href + `">` + text + `</a>`
}

// substitute replaces every match of expr in text with repl(submatches).
func substitute(expr *regexp.Regexp, text string, repl func(m []string) string) string {
	matches := expr.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text
	}

	var buf strings.Builder
	buf.Grow(len(text) + len(matches)*64)

	last := 0
	for _, loc := range matches {
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if start := loc[2*i]; start >= 0 {
				groups[i] = text[start:loc[2*i+1]]
			}
		}

		buf.WriteString(text[last:loc[0]])
		buf.WriteString(repl(groups))
		last = loc[1]
	}
	buf.WriteString(text[last:])

	return buf.String()
}
