package chatmark

import "strings"

// linespan is a minimal line iterator over '\n' delimited content. The
// current line is content[begin:end], without its newline. As with
// strings.Split, content ending in '\n' yields a final empty line.
type linespan struct {
	begin, end int
	pos        int
	done       bool
}

// next updates begin and end to point to the next line
func (sc *linespan) next(content string) bool {
	if sc.done {
		return false
	}
	sc.begin = sc.pos
	if off := strings.IndexByte(content[sc.begin:], '\n'); off >= 0 {
		sc.end = sc.begin + off
		sc.pos = sc.end + 1
		return true
	}
	sc.end = len(content)
	sc.done = true
	return true
}
