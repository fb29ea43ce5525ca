package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBugURL(t *testing.T) {
	a := newTestAnnotator(t)

	assert.Equal(t, "https://bugzilla.example/show_bug.cgi?id=1234", a.BugURL("1234"))
}

func TestRevisionURL(t *testing.T) {
	a := newTestAnnotator(t)

	assert.Equal(t, "https://phabricator.example/D42", a.RevisionURL("D42", ""))
	assert.Equal(t, "https://phabricator.example/D42?id=7", a.RevisionURL("D42", "7"))
}
