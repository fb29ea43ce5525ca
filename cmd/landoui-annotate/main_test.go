package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args and stdin, returning stdout.
// It runs in an empty temp dir with the base URLs given as flags so neither a
// developer's .env nor their environment leaks in.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("LANDOUI_ENV_FILE", "")

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{
		"--bugzilla-url", "https://bugzilla.example",
		"--phabricator-url", "https://phabricator.example/",
	}, args...))

	err := cmd.Execute()
	return stdout.String(), err
}

func TestBugs_FromArgs(t *testing.T) {
	out, err := runCLI(t, "", "bugs", "Fix", "Bug", "12", "<now>")

	require.NoError(t, err)
	assert.Equal(t, `Fix <a href="https://bugzilla.example/show_bug.cgi?id=12">Bug 12</a> &lt;now&gt;`+"\n", out)
}

func TestBugs_FromStdin(t *testing.T) {
	out, err := runCLI(t, "bug 3\nbug 4\n", "bugs")

	require.NoError(t, err)
	assert.Equal(t,
		`<a href="https://bugzilla.example/show_bug.cgi?id=3">bug 3</a>`+"\n"+
			`<a href="https://bugzilla.example/show_bug.cgi?id=4">bug 4</a>`+"\n",
		out)
}

func TestBugs_Raw(t *testing.T) {
	out, err := runCLI(t, "", "--raw", "bugs", "<b>Bug 1</b>")

	require.NoError(t, err)
	assert.Equal(t, `<b><a href="https://bugzilla.example/show_bug.cgi?id=1">Bug 1</a></b>`+"\n", out)
}

func TestRevisions(t *testing.T) {
	out, err := runCLI(t, "", "revisions", "see https://phabricator.example/D9")

	require.NoError(t, err)
	assert.Equal(t, `see <a href="https://phabricator.example/D9">https://phabricator.example/D9</a>`+"\n", out)
}

func TestDiffs(t *testing.T) {
	out, err := runCLI(t, "", "diffs", "--revision", "D9", "Diff 4")

	require.NoError(t, err)
	assert.Equal(t, `<a href="https://phabricator.example/D9?id=4">Diff 4</a>`+"\n", out)
}

func TestDiffs_RequiresRevision(t *testing.T) {
	_, err := runCLI(t, "", "diffs", "Diff 4")

	require.Error(t, err)
}

func TestCommit(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "landed",
			args: []string{"commit", "--status", "landed", "--commit", "abc", "--tree", "https://hg.example/c", "as abc"},
			want: `as <a href="https://hg.example/c/rev/abc">https://hg.example/c/rev/abc</a>` + "\n",
		},
		{
			name: "not landed",
			args: []string{"commit", "--status", "failed", "--commit", "abc", "--tree", "https://hg.example/c", "as abc"},
			want: "as abc\n",
		},
		{
			name: "transplant",
			args: []string{"commit", "--transplant", "--status", "landed", "--commit", "abc", "--tree", "https://hg.example/c", "abc"},
			want: `<a href="https://hg.example/c/rev/abc">https://hg.example/c/rev/abc</a>` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, "", tt.args...)

			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestURLCommands(t *testing.T) {
	out, err := runCLI(t, "", "bug-url", "77")
	require.NoError(t, err)
	assert.Equal(t, "https://bugzilla.example/show_bug.cgi?id=77\n", out)

	out, err = runCLI(t, "", "revision-url", "D5")
	require.NoError(t, err)
	assert.Equal(t, "https://phabricator.example/D5\n", out)

	out, err = runCLI(t, "", "revision-url", "D5", "6")
	require.NoError(t, err)
	assert.Equal(t, "https://phabricator.example/D5?id=6\n", out)
}

func TestAvatar(t *testing.T) {
	out, err := runCLI(t, "", "avatar", "https://s.gravatar.com/avatar/x")
	require.NoError(t, err)
	assert.Equal(t, "https://s.gravatar.com/avatar/x?d=identicon\n", out)

	_, err = runCLI(t, "", "avatar", "not a url")
	require.Error(t, err)
}

func TestBadge(t *testing.T) {
	out, err := runCLI(t, "", "badge", "landing", "submitted")
	require.NoError(t, err)
	assert.Equal(t, "Badge Badge--warning\tLanding Queued\n", out)

	out, err = runCLI(t, "", "badge", "revision", "needs-review")
	require.NoError(t, err)
	assert.Equal(t, "Badge Badge--warning\n", out)

	_, err = runCLI(t, "", "badge", "reviewer", "accepted")
	require.Error(t, err)
}

func TestMissingBaseURL(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LANDOUI_ENV_FILE", "")
	t.Setenv("LANDOUI_BUGZILLA_URL", "")
	t.Setenv("LANDOUI_PHABRICATOR_URL", "")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"bug-url", "1"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "LANDOUI_BUGZILLA_URL")
}
