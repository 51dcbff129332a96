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
// HTML rendering backend
//
//

package chatmark

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shurcooL/sanitized_anchor_name"
)

type HTMLFlags int

// HTML renderer configuration options.
const (
	HTMLFlagsNone   HTMLFlags = 0
	UseXHTML        HTMLFlags = 1 << iota // Generate XHTML-style line breaks
	HrefTargetBlank                       // Open links in a new browsing context
	NoopenerLinks                         // Link with rel="noopener"
	NoreferrerLinks                       // Link with rel="noreferrer"
	NofollowLinks                         // Link with rel="nofollow"
	SkipLinks                             // Never emit anchors, only link labels
	HeadingIDs                            // Give every heading an id attribute
	CompletePage                          // Generate a complete HTML page
	SanitizeOutput                        // Run the output through Sanitize

	CommonHTMLFlags = UseXHTML | HrefTargetBlank | NoopenerLinks | NoreferrerLinks
)

// Element names the kinds of elements that can carry a class attribute.
type Element int

const (
	ElemParagraph Element = iota
	ElemHeading1
	ElemHeading2
	ElemHeading3
	ElemBlockQuote
	ElemUnorderedList
	ElemOrderedList
	ElemListItem
	ElemCodeBlock
	ElemCodeSpan
	ElemLink
)

type HTMLRendererParameters struct {
	// Class attribute values per element. Elements without an entry get no
	// class attribute.
	Classes map[Element]string
	// Add this text to the front of each heading id, to ensure uniqueness.
	HeadingIDPrefix string
	// Add this text to the back of each heading id.
	HeadingIDSuffix string
	// Title of the document when CompletePage is set. If empty, the text of
	// a leading level 1 heading is used.
	Title string
	// Stylesheet URL linked from the document head when CompletePage is set.
	CSS string
}

// HTML renders markdown text to HTML. It is immutable once created and may
// be shared between goroutines.
type HTML struct {
	flags    HTMLFlags
	params   HTMLRendererParameters
	closeTag string
}

const (
	xhtmlClose = " />"
	htmlClose  = ">"
)

// NewHTMLRenderer creates and configures an HTML renderer.
//
// flags is a set of HTMLFlags ORed together.
func NewHTMLRenderer(flags HTMLFlags, params HTMLRendererParameters) *HTML {
	closeTag := htmlClose
	if flags&UseXHTML != 0 {
		closeTag = xhtmlClose
	}

	classes := make(map[Element]string, len(params.Classes))
	for elem, class := range params.Classes {
		classes[elem] = class
	}
	params.Classes = classes

	return &HTML{
		flags:    flags,
		params:   params,
		closeTag: closeTag,
	}
}

// TailwindClasses returns the class set of the chat front end.
func TailwindClasses() map[Element]string {
	return map[Element]string{
		ElemParagraph:     "leading-relaxed",
		ElemHeading1:      "text-base font-semibold",
		ElemHeading2:      "text-sm font-semibold",
		ElemHeading3:      "text-sm font-medium",
		ElemBlockQuote:    "border-l-2 border-border/60 pl-3 text-muted-foreground leading-relaxed",
		ElemUnorderedList: "list-disc pl-5 space-y-1",
		ElemOrderedList:   "list-decimal pl-5 space-y-1",
		ElemListItem:      "leading-relaxed",
		ElemCodeBlock:     "overflow-x-auto rounded-xl border border-border/40 bg-background/70 p-3 font-mono text-xs leading-relaxed",
		ElemCodeSpan:      "rounded bg-foreground/10 px-1 py-0.5 font-mono text-[0.85em]",
		ElemLink:          "underline underline-offset-2 text-primary hover:text-primary/80",
	}
}

func tag(name string, attrs []string, selfClosing bool) string {
	result := "<" + name
	if len(attrs) > 0 {
		result += " " + strings.Join(attrs, " ")
	}
	if selfClosing {
		result += " /"
	}
	return result + ">"
}

// attrs appends the configured class attribute of elem, if any.
func (r *HTML) attrs(elem Element, attrs []string) []string {
	if class := r.params.Classes[elem]; class != "" {
		attrs = append(attrs, `class="`+EscapeAttribute(class)+`"`)
	}
	return attrs
}

func (r *HTML) open(name string, elem Element) string {
	return tag(name, r.attrs(elem, nil), false)
}

func (r *HTML) lineBreak() string {
	return tag("br", nil, r.flags&UseXHTML != 0)
}

func (r *HTML) paragraph(text string) string {
	return r.open("p", ElemParagraph) + text + "</p>"
}

func headingElement(level int) Element {
	switch level {
	case 1:
		return ElemHeading1
	case 2:
		return ElemHeading2
	default:
		return ElemHeading3
	}
}

func (r *HTML) heading(level int, id string, text string) string {
	var attrs []string
	if id != "" {
		attrs = append(attrs, `id="`+EscapeAttribute(id)+`"`)
	}
	name := fmt.Sprintf("h%d", level)
	return tag(name, r.attrs(headingElement(level), attrs), false) + text + "</" + name + ">"
}

func (r *HTML) blockQuote(text string) string {
	return r.open("blockquote", ElemBlockQuote) + text + "</blockquote>"
}

func (r *HTML) list(ordered bool, items []string) string {
	name, elem := "ul", ElemUnorderedList
	if ordered {
		name, elem = "ol", ElemOrderedList
	}
	var out strings.Builder
	out.WriteString(r.open(name, elem))
	li := r.open("li", ElemListItem)
	for _, item := range items {
		out.WriteString(li)
		out.WriteString(item)
		out.WriteString("</li>")
	}
	out.WriteString("</" + name + ">")
	return out.String()
}

// codeBlock wraps already escaped text. The first word of the fence info
// string becomes a language class on the code element.
func (r *HTML) codeBlock(text string, info string) string {
	var code []string
	if words := strings.FieldsFunc(info, isSpace); len(words) > 0 {
		lang := strings.TrimPrefix(words[0], ".")
		if lang != "" {
			code = append(code, `class="language-`+EscapeAttribute(lang)+`"`)
		}
	}
	return r.open("pre", ElemCodeBlock) + tag("code", code, false) + text + "</code></pre>"
}

func (r *HTML) codeSpan(text string) string {
	return r.open("code", ElemCodeSpan) + text + "</code>"
}

// link renders an anchor. href must already be attribute-escaped.
func (r *HTML) link(href string, label string) string {
	attrs := appendLinkAttrs([]string{`href="` + href + `"`}, r.flags)
	return tag("a", r.attrs(ElemLink, attrs), false) + label + "</a>"
}

func appendLinkAttrs(attrs []string, flags HTMLFlags) []string {
	if flags&HrefTargetBlank != 0 {
		attrs = append(attrs, `target="_blank"`)
	}
	var val []string
	if flags&NoopenerLinks != 0 {
		val = append(val, "noopener")
	}
	if flags&NoreferrerLinks != 0 {
		val = append(val, "noreferrer")
	}
	if flags&NofollowLinks != 0 {
		val = append(val, "nofollow")
	}
	if len(val) == 0 {
		return attrs
	}
	return append(attrs, fmt.Sprintf("rel=%q", strings.Join(val, " ")))
}

// headingIDs hands out heading ids that are unique within one document.
type headingIDs map[string]int

func (ids headingIDs) create(text string) string {
	id := sanitized_anchor_name.Create(text)
	if id == "" {
		id = fmt.Sprintf("heading-%d", len(ids)+1)
	}
	return ids.ensureUnique(id)
}

func (ids headingIDs) ensureUnique(id string) string {
	for count, found := ids[id]; found; count, found = ids[id] {
		tmp := fmt.Sprintf("%s-%d", id, count+1)

		if _, tmpFound := ids[tmp]; !tmpFound {
			ids[id] = count + 1
			id = tmp
		} else {
			id = id + "-1"
		}
	}

	if _, found := ids[id]; !found {
		ids[id] = 0
	}

	return id
}

func (r *HTML) headingID(ids headingIDs, text string) string {
	if r.flags&HeadingIDs == 0 {
		return ""
	}
	return r.params.HeadingIDPrefix + ids.create(text) + r.params.HeadingIDSuffix
}

var (
	leadingH1 = regexp.MustCompile(`^<h1[^>]*>(.*?)</h1>`)
	anyTag    = regexp.MustCompile(`<[^>]*>`)
)

// documentTitle returns the escaped page title.
func (r *HTML) documentTitle(body string) string {
	if r.params.Title != "" {
		return EscapeHTML(r.params.Title)
	}
	// heading text is already escaped
	if m := leadingH1.FindStringSubmatch(body); m != nil {
		return anyTag.ReplaceAllString(m[1], "")
	}
	return ""
}

func (r *HTML) documentHeader(title string) string {
	var out strings.Builder
	out.WriteString("<!DOCTYPE html>\n")
	out.WriteString("<html>\n")
	out.WriteString("<head>\n")
	out.WriteString("  <meta charset=\"utf-8\"" + r.closeTag + "\n")
	out.WriteString("  <title>" + title + "</title>\n")
	if r.params.CSS != "" {
		out.WriteString("  <link rel=\"stylesheet\" type=\"text/css\" href=\"")
		out.WriteString(EscapeAttribute(r.params.CSS))
		out.WriteString("\"" + r.closeTag + "\n")
	}
	out.WriteString("</head>\n")
	out.WriteString("<body>\n")
	return out.String()
}

func (r *HTML) documentFooter() string {
	return "\n</body>\n</html>\n"
}

func (r *HTML) page(body string) string {
	return r.documentHeader(r.documentTitle(body)) + body + r.documentFooter()
}
