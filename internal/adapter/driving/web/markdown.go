package web

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ericfisherdev/landoui/internal/annotate"
)

var (
	mdRenderer    goldmark.Markdown
	htmlSanitizer *bluemonday.Policy
)

func init() {
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	htmlSanitizer = bluemonday.UGCPolicy()
}

// RenderSummary converts a revision summary from markdown to sanitized HTML,
// linking bug numbers, revision URLs and diff ids found in its text.
// Returns empty string for empty input.
func RenderSummary(a *annotate.Annotator, src, revisionID string) string {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return htmlSanitizer.Sanitize(annotate.EscapeHTML(src))
	}

	linked := linkifyText(buf.String(), func(text string) string {
		text = a.LinkifyBugNumbers(text)
		text = a.LinkifyRevisionURLs(text)
		return a.LinkifyDiffIDs(text, revisionID)
	})

	return htmlSanitizer.Sanitize(linked)
}

// linkifyText applies linkify to each run of text in an HTML fragment, except
// text already inside a link. Text runs are passed in their escaped form.
func linkifyText(fragment string, linkify func(string) string) string {
	z := nethtml.NewTokenizer(strings.NewReader(fragment))

	var out strings.Builder
	out.Grow(len(fragment) * 2)
	openLinks := 0

	for {
		tt := z.Next()
		if tt == nethtml.ErrorToken {
			return out.String()
		}

		raw := string(z.Raw())

		switch tt {
		case nethtml.TextToken:
			if openLinks == 0 {
				raw = linkify(raw)
			}
		case nethtml.StartTagToken:
			if name, _ := z.TagName(); atom.Lookup(name) == atom.A {
				openLinks++
			}
		case nethtml.EndTagToken:
			if name, _ := z.TagName(); atom.Lookup(name) == atom.A && openLinks > 0 {
				openLinks--
			}
		}

		out.WriteString(raw)
	}
}
