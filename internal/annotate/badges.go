package annotate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ericfisherdev/landoui/internal/domain/model"
)

const (
	badgePlain    = "Badge"
	badgePositive = "Badge Badge--positive"
	badgeNegative = "Badge Badge--negative"
	badgeWarning  = "Badge Badge--warning"
	badgeNeutral  = "Badge Badge--neutral"
)

var landingBadgeClasses = map[model.LandingStatus]string{
	model.LandingStatusAborted:   badgeNegative,
	model.LandingStatusSubmitted: badgeWarning,
	model.LandingStatusLanded:    badgePositive,
	model.LandingStatusFailed:    badgeNegative,
}

var landingBadgeNames = map[model.LandingStatus]string{
	model.LandingStatusAborted:   "Aborted",
	model.LandingStatusSubmitted: "Landing Queued",
	model.LandingStatusLanded:    "Successfully Landed",
	model.LandingStatusFailed:    "Failed to Land",
}

var revisionBadgeClasses = map[model.RevisionStatus]string{
	model.RevisionStatusAbandoned:      badgePlain,
	model.RevisionStatusAccepted:       badgePositive,
	model.RevisionStatusChangesPlanned: badgeNeutral,
	model.RevisionStatusPublished:      badgePlain,
	model.RevisionStatusNeedsReview:    badgeWarning,
	model.RevisionStatusNeedsRevision:  badgeNegative,
	model.RevisionStatusDraft:          badgeNeutral,
}

// variants holds the text shown for a reviewer status on the current diff and
// on a prior diff.
type variants struct {
	current   string
	otherDiff string
}

func (v variants) pick(forOtherDiff bool) string {
	if forOtherDiff {
		return v.otherDiff
	}
	return v.current
}

var reviewerBadgeClasses = map[model.ReviewerStatus]variants{
	model.ReviewerStatusAccepted: {badgePositive, badgeNeutral},
	model.ReviewerStatusRejected: {badgeNegative, badgeWarning},
	model.ReviewerStatusAdded:    {badgePlain, badgePlain},
	model.ReviewerStatusBlocking: {badgePlain, badgePlain},
}

var reviewerActionTexts = map[model.ReviewerStatus]variants{
	model.ReviewerStatusAccepted: {"accepted", "accepted a prior diff"},
	model.ReviewerStatusRejected: {"requested changes", "requested changes to a prior diff"},
	model.ReviewerStatusAdded:    {"to review", "to review"},
	model.ReviewerStatusBlocking: {"must review", "must review"},
}

var (
	unknownReviewerBadgeClass = variants{badgeWarning, badgeWarning}
	unknownReviewerActionText = variants{"UNKNOWN STATE", "UNKNOWN STATE"}
)

// LandingBadgeClass returns the badge CSS class for a landing or transplant
// status. Unknown statuses are shown as negative.
func LandingBadgeClass(status model.LandingStatus) string {
	if class, ok := landingBadgeClasses[status]; ok {
		return class
	}
	return badgeNegative
}

// LandingBadgeName returns the display name for a landing status. Unknown
// statuses are shown capitalized.
func LandingBadgeName(status model.LandingStatus) string {
	if name, ok := landingBadgeNames[status]; ok {
		return name
	}
	return capitalize(string(status))
}

// RevisionBadgeClass returns the badge CSS class for a revision status.
func RevisionBadgeClass(status model.RevisionStatus) string {
	if class, ok := revisionBadgeClasses[status]; ok {
		return class
	}
	return badgeWarning
}

// ReviewerBadgeClass returns the badge CSS class for a reviewer.
func ReviewerBadgeClass(r model.Reviewer) string {
	v, ok := reviewerBadgeClasses[r.Status]
	if !ok {
		v = unknownReviewerBadgeClass
	}
	return v.pick(r.ForOtherDiff)
}

// ReviewerActionText describes what a reviewer did, or has to do.
func ReviewerActionText(r model.Reviewer) string {
	v, ok := reviewerActionTexts[r.Status]
	if !ok {
		v = unknownReviewerActionText
	}
	return v.pick(r.ForOtherDiff)
}

// capitalize upper-cases the first letter of s and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToTitle(r)) + strings.ToLower(s[size:])
}
