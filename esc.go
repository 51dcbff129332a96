//
// Chatmark Markdown Renderer, based on Blackfriday
// Available at http://github.com/ichingweb/chatmark
//
// Copyright © 2011 Russ Ross <russ@russross.com>.
// Distributed under the Simplified BSD License.
// See README.md for details.
//

//
// HTML escaping
//

package chatmark

import "strings"

type escMap struct {
	char byte
	seq  string
}

var htmlEscaper = []escMap{
	{'&', "&amp;"},
	{'<', "&lt;"},
	{'>', "&gt;"},
	{'"', "&quot;"},
	{'\'', "&#39;"},
}

var attrEscaper = append(htmlEscaper[:len(htmlEscaper):len(htmlEscaper)], escMap{'`', "&#96;"})

func escapeWith(table []escMap, s string) string {
	var out strings.Builder
	start := 0
	for end := 0; end < len(s); end++ {
		c := s[end]
		for i := 0; i < len(table); i++ {
			if c == table[i].char {
				if out.Len() == 0 {
					out.Grow(len(s) + 16)
				}
				out.WriteString(s[start:end])
				out.WriteString(table[i].seq)
				start = end + 1
				break
			}
		}
	}
	if start == 0 {
		// nothing to escape
		return s
	}
	out.WriteString(s[start:])
	return out.String()
}

// EscapeHTML replaces the characters &, <, >, " and ' with their entities.
// The scan is a single pass, so entities it introduces are never escaped again.
func EscapeHTML(text string) string {
	return escapeWith(htmlEscaper, text)
}

// EscapeAttribute escapes text for use inside a quoted attribute value.
// On top of EscapeHTML it also escapes the backtick.
func EscapeAttribute(text string) string {
	return escapeWith(attrEscaper, text)
}
