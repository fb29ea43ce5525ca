package annotate

// BugURL returns the bug tracker URL for bugNumber.
func (a *Annotator) BugURL(bugNumber string) string {
	return a.cfg.BugzillaURL + "/show_bug.cgi?id=" + bugNumber
}

// RevisionURL returns the code review URL for revisionID, pinned to diffID
// when diffID is non-empty.
func (a *Annotator) RevisionURL(revisionID, diffID string) string {
	u := a.cfg.PhabricatorURL + "/" + revisionID
	if diffID != "" {
		u += "?id=" + diffID
	}
	return u
}
