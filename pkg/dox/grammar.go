// grammar.go defines the grammar items produced by the parser.
package dox

// ItemType represents the grammatical class of a parsed item.
type ItemType int

const (
	ItemText       ItemType = iota // literal output text
	ItemNotation                   // recognized (or unknown) directive
	ItemGroupStart                 // matched "@{" marker
	ItemGroupEnd                   // matched "@}" marker
	ItemURL                        // URL forwarded verbatim from the lexer
)

// Item is a single grammar item. Notation items carry the directive name,
// its bracketed modifiers and its captured parameters; Text and URL items
// carry literal text.
type Item struct {
	Type   ItemType
	Tag    string   // directive name, set for Notation
	Meta   []string // ordered bracketed modifiers, possibly empty
	Params []string // ordered captured parameters, possibly empty
	Text   string   // set for Text and URL
	Pos    int      // byte offset of the item in the original input
}
