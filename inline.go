//
// Chatmark Markdown Renderer, based on Blackfriday
// Available at http://github.com/ichingweb/chatmark
//
// Copyright © 2011 Russ Ross <russ@russross.com>.
// Distributed under the Simplified BSD License.
// See README.md for details.
//

//
// Functions to parse inline elements.
//

package chatmark

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Whitespace is Unicode White_Space without U+0085, plus the byte order
// mark. \s alone only covers ASCII.
const (
	spaceClass    = `\s\v\p{Z}\x{FEFF}`
	lineTextClass = `[^\n\r\x{2028}\x{2029}]`
)

func isSpace(c rune) bool {
	return c == '\uFEFF' || (unicode.IsSpace(c) && c != '\u0085')
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

var (
	reCodeSpan         = regexp.MustCompile("`([^`\n]+)`")
	reLink             = regexp.MustCompile(`\[([^\]]+)\]\(([^)` + spaceClass + `]+)\)`)
	reStrongStar       = regexp.MustCompile(`\*\*([^*\n][\s\S]*?)\*\*`)
	reStrongUnderscore = regexp.MustCompile(`__([^_\n][\s\S]*?)__`)
	reEmphStar         = regexp.MustCompile(`\*([^*\n][\s\S]*?)\*`)
	reEmphUnderscore   = regexp.MustCompile(`_([^_\n][\s\S]*?)_`)
	reStrikethrough    = regexp.MustCompile(`~~([^~\n][\s\S]*?)~~`)
	rePlaceholder      = regexp.MustCompile(`&md(\d+);`)
)

// Placeholder tokens look like entities. Escaped text only carries '&' as
// the start of &amp;, &lt;, &gt;, &quot; or &#39;, so input can never spell a
// token, and tokens hold no emphasis delimiters for later passes to split.
const (
	placeholderPrefix = "&md"
	placeholderSuffix = ";"
)

// fragments holds rendered HTML that later inline passes must not touch.
type fragments []string

func (f *fragments) store(html string) string {
	*f = append(*f, html)
	return placeholderPrefix + strconv.Itoa(len(*f)-1) + placeholderSuffix
}

// restore substitutes every token in text with its fragment. A fragment only
// refers to fragments stored before it, so the recursion terminates.
func (f fragments) restore(text string) string {
	if len(f) == 0 {
		return text
	}
	return rePlaceholder.ReplaceAllStringFunc(text, func(token string) string {
		n, err := strconv.Atoi(token[len(placeholderPrefix) : len(token)-len(placeholderSuffix)])
		if err != nil || n >= len(f) {
			return token
		}
		return f.restore(f[n])
	})
}

var validURIs = []string{"http://", "https://", "mailto:"}

// IsSafeURL reports whether a link target uses one of the allowed schemes
// http, https or mailto.
func IsSafeURL(link string) bool {
	link = strings.ToLower(trimSpace(link))
	for _, prefix := range validURIs {
		if strings.HasPrefix(link, prefix) {
			return true
		}
	}
	return false
}

// inline renders the inline elements of a single line or of an already
// joined paragraph.
func (r *HTML) inline(raw string) string {
	var frags fragments
	text := EscapeHTML(raw)

	text = reCodeSpan.ReplaceAllStringFunc(text, func(m string) string {
		code := reCodeSpan.FindStringSubmatch(m)[1]
		return frags.store(r.codeSpan(code))
	})

	text = reLink.ReplaceAllStringFunc(text, func(m string) string {
		sub := reLink.FindStringSubmatch(m)
		label, href := sub[1], sub[2]
		if rePlaceholder.MatchString(href) {
			// a code span inside the target; leave the brackets as text
			return m
		}
		decoded := strings.ReplaceAll(href, "&amp;", "&")
		if !IsSafeURL(decoded) {
			return label + " (" + href + ")"
		}
		if r.flags&SkipLinks != 0 {
			return label
		}
		return frags.store(r.link(EscapeAttribute(decoded), label))
	})

	text = reStrongStar.ReplaceAllString(text, "<strong>$1</strong>")
	text = reStrongUnderscore.ReplaceAllString(text, "<strong>$1</strong>")
	text = reEmphStar.ReplaceAllString(text, "<em>$1</em>")
	text = reEmphUnderscore.ReplaceAllString(text, "<em>$1</em>")
	text = reStrikethrough.ReplaceAllString(text, "<del>$1</del>")

	return frags.restore(text)
}
