// Package annotate holds the presentation helpers for Lando pages: badge
// lookups for landing, revision and reviewer states, reviewer filtering,
// avatar URL sanitizing, and linkification of bug numbers, revision URLs,
// diff ids and landed commits.
//
// Nothing here renders templates. Adapters register these functions with
// whatever template engine they use.
package annotate

import (
	"errors"
	"log/slog"
	"regexp"
)

var (
	ErrMissingBugzillaURL    = errors.New("annotate: bugzilla url is not configured")
	ErrMissingPhabricatorURL = errors.New("annotate: phabricator url is not configured")
)

// Config holds the external base URLs that links are built against.
// Values are used verbatim; callers should strip any trailing slash.
type Config struct {
	BugzillaURL    string
	PhabricatorURL string
}

// Annotator builds links against a fixed Config. It is immutable and safe for
// concurrent use.
type Annotator struct {
	cfg             Config
	revisionURLExpr *regexp.Regexp
	logger          *slog.Logger
}

// New validates cfg and returns an Annotator. A missing base URL is a
// configuration error and is reported here rather than on every call.
func New(cfg Config, logger *slog.Logger) (*Annotator, error) {
	if cfg.BugzillaURL == "" {
		return nil, ErrMissingBugzillaURL
	}
	if cfg.PhabricatorURL == "" {
		return nil, ErrMissingPhabricatorURL
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Annotator{
		cfg:             cfg,
		revisionURLExpr: regexp.MustCompile(`(?i)\b(` + regexp.QuoteMeta(cfg.PhabricatorURL) + `/D\d+)\b`),
		logger:          logger,
	}, nil
}

// Config returns the configuration the Annotator was built with.
func (a *Annotator) Config() Config {
	return a.cfg
}
