//
// Chatmark Markdown Renderer, based on Blackfriday
// Available at http://github.com/ichingweb/chatmark
//
// Copyright © 2011 Russ Ross <russ@russross.com>.
// Distributed under the Simplified BSD License.
// See README.md for details.
//

//
// Functions to parse block-level elements.
//

package chatmark

import (
	"regexp"
	"strings"
)

const codeFence = "```"

var (
	reHeading   = regexp.MustCompile(`^(#{1,3})[` + spaceClass + `]+(` + lineTextClass + `+)$`)
	reQuote     = regexp.MustCompile(`^>[` + spaceClass + `]?(` + lineTextClass + `*)$`)
	reUnordered = regexp.MustCompile(`^[-*+][` + spaceClass + `]+(` + lineTextClass + `+)$`)
	reOrdered   = regexp.MustCompile(`^\d+\.[` + spaceClass + `]+(` + lineTextClass + `+)$`)
)

// segmenter groups lines into blocks. At most one block is open at a time;
// its lines are buffered until a boundary flushes them to out.
type segmenter struct {
	r       *HTML
	state   state
	ordered bool     // list kind while in stateList
	info    string   // fence info string while in stateCode
	lines   []string // buffer of the open block
	ids     headingIDs
	out     []string
}

func newSegmenter(r *HTML) *segmenter {
	return &segmenter{r: r, ids: make(headingIDs)}
}

// line feeds one input line, without its newline, to the state machine.
func (s *segmenter) line(line string) {
	trimmed := trimSpace(line)

	if s.state == stateCode {
		if strings.HasPrefix(trimmed, codeFence) {
			s.flush()
		} else {
			s.lines = append(s.lines, line)
		}
		return
	}

	if strings.HasPrefix(trimmed, codeFence) {
		s.flush()
		s.state = stateCode
		s.info = trimSpace(trimmed[len(codeFence):])
		return
	}

	if trimmed == "" {
		s.flush()
		return
	}

	if m := reHeading.FindStringSubmatch(trimmed); m != nil {
		s.flush()
		s.emit(Heading, s.r.heading(len(m[1]), s.r.headingID(s.ids, m[2]), s.r.inline(m[2])))
		return
	}

	if m := reQuote.FindStringSubmatch(trimmed); m != nil {
		s.open(stateQuote, false)
		s.lines = append(s.lines, m[1])
		return
	}

	if m := reUnordered.FindStringSubmatch(trimmed); m != nil {
		s.open(stateList, false)
		s.lines = append(s.lines, m[1])
		return
	}

	if m := reOrdered.FindStringSubmatch(trimmed); m != nil {
		s.open(stateList, true)
		s.lines = append(s.lines, m[1])
		return
	}

	s.open(stateParagraph, false)
	s.lines = append(s.lines, trimmed)
}

// open makes st the open block, flushing a different block first. Lists of
// the other kind count as a different block.
func (s *segmenter) open(st state, ordered bool) {
	if s.state == st && s.ordered == ordered {
		return
	}
	s.flush()
	s.state = st
	s.ordered = ordered
}

// flush renders the open block, if any, and returns to stateIdle.
func (s *segmenter) flush() {
	var html string
	switch s.state {
	case stateIdle:
		return
	case stateParagraph:
		html = s.r.flushParagraph(s.lines)
	case stateQuote:
		html = s.r.flushQuote(s.lines)
	case stateList:
		html = s.r.flushList(s.ordered, s.lines)
	case stateCode:
		html = s.r.flushCode(s.lines, s.info)
	}
	tracer().Debugf("flush %s block with %d line(s)", s.state.kind(), len(s.lines))
	s.out = append(s.out, html)
	s.state = stateIdle
	s.ordered = false
	s.info = ""
	s.lines = nil
}

func (s *segmenter) emit(kind BlockKind, html string) {
	tracer().Debugf("emit %s block", kind)
	s.out = append(s.out, html)
}

// finish flushes what is still open, an unterminated code block included,
// and returns the concatenated output.
func (s *segmenter) finish() string {
	s.flush()
	return strings.Join(s.out, "")
}

func (r *HTML) flushParagraph(lines []string) string {
	text := r.inline(strings.Join(lines, "\n"))
	return r.paragraph(strings.ReplaceAll(text, "\n", r.lineBreak()))
}

func (r *HTML) flushQuote(lines []string) string {
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = r.inline(line)
	}
	return r.blockQuote(strings.Join(rendered, r.lineBreak()))
}

func (r *HTML) flushList(ordered bool, items []string) string {
	rendered := make([]string, len(items))
	for i, item := range items {
		rendered[i] = r.inline(item)
	}
	return r.list(ordered, rendered)
}

func (r *HTML) flushCode(lines []string, info string) string {
	return r.codeBlock(EscapeHTML(strings.Join(lines, "\n")), info)
}
