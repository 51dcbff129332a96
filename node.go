package chatmark

import "fmt"

// BlockKind identifies the block-level unit a run of lines belongs to.
type BlockKind int

const (
	Paragraph BlockKind = iota
	Heading
	Quote
	List
	CodeBlock
)

var blockKindNames = []string{
	Paragraph: "Paragraph",
	Heading:   "Heading",
	Quote:     "Quote",
	List:      "List",
	CodeBlock: "CodeBlock",
}

func (k BlockKind) String() string {
	if k < 0 || int(k) >= len(blockKindNames) {
		return fmt.Sprintf("BlockKind(%d)", int(k))
	}
	return blockKindNames[k]
}

// state is the segmenter state. Every state but stateIdle has an open block.
type state int

const (
	stateIdle state = iota
	stateParagraph
	stateQuote
	stateList
	stateCode
)

var stateKinds = []BlockKind{
	stateParagraph: Paragraph,
	stateQuote:     Quote,
	stateList:      List,
	stateCode:      CodeBlock,
}

func (s state) String() string {
	if s == stateIdle {
		return "Idle"
	}
	return "In" + stateKinds[s].String()
}

// kind returns the block kind accumulated in state s. stateIdle has no open
// block, asking for its kind is a programming error.
func (s state) kind() BlockKind {
	if s == stateIdle {
		panic("chatmark: no block open in state Idle")
	}
	return stateKinds[s]
}
