package annotate

import "net/url"

// gravatarHosts lists the hosts whose default image we override.
var gravatarHosts = map[string]bool{
	"s.gravatar.com":   true,
	"www.gravatar.com": true,
}

// AvatarURL returns a URL that is safe to embed as a user's avatar, or "" when
// raw is not an absolute URL.
//
// Gravatar falls back to the identity provider's default image when a user has
// none, and that default redirects through a third-party CDN our CSP does not
// allow. Gravatar URLs are therefore forced onto the generated identicon.
// Other URLs are returned as given.
func (a *Annotator) AvatarURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		a.logger.Debug("invalid avatar url provided", "url", raw)
		return ""
	}

	if u.User != nil || !gravatarHosts[u.Host] {
		return raw
	}

	query := u.Query()
	query.Set("d", "identicon")
	u.RawQuery = query.Encode()

	return u.String()
}
