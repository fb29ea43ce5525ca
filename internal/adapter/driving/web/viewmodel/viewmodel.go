// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// BadgeViewModel is a status label with its CSS class.
type BadgeViewModel struct {
	Class string
	Text  string
}

// ReviewerViewModel holds presentation-ready data for a reviewer row.
type ReviewerViewModel struct {
	Username   string
	BadgeClass string
	ActionText string
}

// ReviewerGroupViewModel is a titled subset of a revision's reviewers.
type ReviewerGroupViewModel struct {
	Title     string
	Reviewers []ReviewerViewModel
}

// LandingViewModel holds presentation-ready data for one landing job row.
type LandingViewModel struct {
	ID             int64
	DiffID         int64
	DiffURL        string
	Badge          BadgeViewModel
	ResultHTML     string // escaped result, commit linked when landed
	RequesterEmail string
	CreatedAt      string
	UpdatedAt      string
}

// RevisionPageViewModel holds all data needed to render a revision page.
type RevisionPageViewModel struct {
	RevisionID  string
	RevisionURL string
	HasSnapshot bool

	TitleHTML   string // escaped title with bug numbers linked
	StatusBadge BadgeViewModel
	BugID       int64
	BugURL      string
	AvatarURL   string // empty when the author has no usable avatar
	SummaryHTML string

	ReviewerGroups []ReviewerGroupViewModel

	Landings    []LandingViewModel
	HasLandings bool
	LatestBadge BadgeViewModel
}
