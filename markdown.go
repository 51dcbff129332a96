//
// Chatmark Markdown Renderer, based on Blackfriday
// Available at http://github.com/ichingweb/chatmark
//
// Copyright © 2011 Russ Ross <russ@russross.com>.
// Distributed under the Simplified BSD License.
// See README.md for details.
//

//
//
// Public interface
//
//

package chatmark

import (
	"html/template"
	"strings"
)

// VERSION is the chatmark release.
const VERSION = "1.0"

var defaultRenderer = NewHTMLRenderer(CommonHTMLFlags, HTMLRendererParameters{})

// Render converts untrusted markdown text to HTML that is safe to embed as
// is. It uses CommonHTMLFlags and emits no class attributes. Empty input
// yields empty output.
func Render(raw string) string {
	return defaultRenderer.Render(raw)
}

// RenderHTML is Render typed for html/template.
func RenderHTML(raw string) template.HTML {
	return template.HTML(Render(raw))
}

// Render converts raw markdown text to HTML.
//
// Input is split into lines and fed through the block segmenter; each
// finished block is inline-formatted (code blocks excepted) and the blocks
// are concatenated in source order. All state is local to the call.
func (r *HTML) Render(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")

	s := newSegmenter(r)
	var sc linespan
	for sc.next(text) {
		s.line(text[sc.begin:sc.end])
	}
	out := s.finish()

	if r.flags&SanitizeOutput != 0 {
		out = Sanitize(out)
	}
	if r.flags&CompletePage != 0 {
		out = r.page(out)
	}
	return out
}
