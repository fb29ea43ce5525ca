package annotate

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvatarURL_NotAURL(t *testing.T) {
	a := newTestAnnotator(t)

	assert.Equal(t, "", a.AvatarURL("not a url"))
}

func TestAvatarURL_Relative(t *testing.T) {
	a := newTestAnnotator(t)

	assert.Equal(t, "", a.AvatarURL("/avatar/abc.png"))
}

func TestAvatarURL_Unparseable(t *testing.T) {
	a := newTestAnnotator(t)

	assert.Equal(t, "", a.AvatarURL("https://bad host/%zz"))
}

func TestAvatarURL_GravatarForcesIdenticon(t *testing.T) {
	a := newTestAnnotator(t)

	got := a.AvatarURL("https://s.gravatar.com/avatar/x?s=80")

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "s.gravatar.com", u.Host)
	assert.Equal(t, "/avatar/x", u.Path)
	assert.Equal(t, "identicon", u.Query().Get("d"))
	assert.Equal(t, "80", u.Query().Get("s"))
}

func TestAvatarURL_GravatarOverridesDefault(t *testing.T) {
	a := newTestAnnotator(t)

	got := a.AvatarURL("https://www.gravatar.com/avatar/x?d=https%3A%2F%2Fcdn.auth0.com%2Fa.png&s=40")

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, []string{"identicon"}, u.Query()["d"])
	assert.Equal(t, "40", u.Query().Get("s"))
}

func TestAvatarURL_OtherHostUnchanged(t *testing.T) {
	a := newTestAnnotator(t)

	raw := "https://example.com/a.png?d=mm&b=1"
	assert.Equal(t, raw, a.AvatarURL(raw))
}

func TestAvatarURL_GravatarSubdomainLookalikeUnchanged(t *testing.T) {
	a := newTestAnnotator(t)

	raw := "https://s.gravatar.com.evil.example/avatar/x"
	assert.Equal(t, raw, a.AvatarURL(raw))
}
