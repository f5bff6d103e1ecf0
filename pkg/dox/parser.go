// parser.go groups tokens into grammar items: text runs, notations with
// modifiers and parameters, group boundaries and URLs.
package dox

import (
	"strings"
	"unicode"
)

// Parse consumes a token sequence and produces grammar items. Group
// markers are matched here; a close marker without an open group, or an
// open group at end of input, fails the whole document.
func Parse(tokens []Token) ([]Item, error) {
	p := &parser{tokens: tokens}

	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		switch tok.Type {
		case TokenTag:
			next, err := p.parseTag(i)
			if err != nil {
				return nil, err
			}
			i = next
		case TokenWord, TokenBrace:
			p.appendText(tok.Text, tok.Pos)
			i++
		case TokenSpace:
			p.appendText(" ", tok.Pos)
			i++
		case TokenNewline:
			p.appendText("\n", tok.Pos)
			i++
		case TokenURL:
			p.flushText()
			p.items = append(p.items, Item{Type: ItemURL, Text: tok.Text, Pos: tok.Pos})
			i++
		}
	}

	if p.groupDepth > 0 {
		return nil, newParseError(ErrUnterminatedGroup, "", "", p.groupStartPos)
	}

	p.flushText()
	return p.items, nil
}

// parser holds the in-progress item sequence and text accumulation state.
type parser struct {
	tokens        []Token
	items         []Item
	text          strings.Builder
	textPos       int
	groupDepth    int
	groupStartPos int
}

// parseTag handles a TokenTag at index i and returns the next index.
func (p *parser) parseTag(i int) (int, error) {
	tok := p.tokens[i]

	// An escaped marker ("\\") is literal text, not a directive.
	if tok.Text == `\\` {
		p.appendText(tok.Text, tok.Pos)
		return i + 1, nil
	}

	if i+1 >= len(p.tokens) {
		p.appendText(tok.Text, tok.Pos)
		return i + 1, nil
	}

	next := p.tokens[i+1]
	switch {
	case next.Type == TokenBrace && next.Text == "{":
		p.flushText()
		p.items = append(p.items, Item{Type: ItemGroupStart, Pos: tok.Pos})
		p.groupDepth++
		p.groupStartPos = tok.Pos
		return i + 2, nil

	case next.Type == TokenBrace && next.Text == "}":
		if p.groupDepth == 0 {
			return 0, newParseError(ErrUnmatchedGroupEnd, "", "", tok.Pos)
		}
		p.flushText()
		p.items = append(p.items, Item{Type: ItemGroupEnd, Pos: tok.Pos})
		p.groupDepth--
		return i + 2, nil

	case next.Type == TokenWord:
		return p.parseNotation(i)

	default:
		// A marker not introducing anything is literal text.
		p.appendText(tok.Text, tok.Pos)
		return i + 1, nil
	}
}

// parseNotation parses a directive beginning at the TokenTag at index i,
// whose following token is a word. It captures the bracketed modifier
// suffix and the parameters the tag's arity rule demands.
func (p *parser) parseNotation(i int) (int, error) {
	marker := p.tokens[i]
	word := p.tokens[i+1]

	name := leadingAlpha(word.Text)
	if name == "" {
		// No directive name; the marker is literal text and the word is
		// handled by the main loop.
		p.appendText(marker.Text, marker.Pos)
		return i + 1, nil
	}

	meta, err := parseModifiers(name, word)
	if err != nil {
		return 0, err
	}

	spec, known := lookupTag(name)
	if !known {
		// Unknown directives still parse, with nothing attached; the
		// generator renders them as nothing.
		meta = nil
	}

	j := i + 2
	// One separator after the tag word belongs to the directive, so prose
	// following a capture-free tag does not gain a leading space.
	if j < len(p.tokens) && p.tokens[j].Type == TokenSpace {
		j++
	}

	var params []string
	switch spec.Arity {
	case ArityWord:
		if j < len(p.tokens) && p.tokens[j].Type == TokenWord {
			params = []string{p.tokens[j].Text}
			j++
		} else if spec.Required {
			return 0, newParseError(ErrMissingParameter, name, "", marker.Pos)
		}
	case ArityLine:
		var line strings.Builder
		for j < len(p.tokens) {
			tok := p.tokens[j]
			if tok.Type == TokenNewline || tok.Type == TokenTag {
				break
			}
			// A separator directly before a directive stays outside the
			// capture, so the words around the directive keep their gap.
			if tok.Type == TokenSpace && j+1 < len(p.tokens) && p.tokens[j+1].Type == TokenTag {
				break
			}
			if tok.Type == TokenSpace {
				line.WriteString(" ")
			} else {
				line.WriteString(tok.Text)
			}
			j++
		}
		if rest := strings.TrimRight(line.String(), " "); rest != "" {
			params = []string{rest}
		} else if spec.Required {
			return 0, newParseError(ErrMissingParameter, name, "", marker.Pos)
		}
	}

	p.flushText()
	p.items = append(p.items, Item{
		Type:   ItemNotation,
		Tag:    name,
		Meta:   meta,
		Params: params,
		Pos:    marker.Pos,
	})
	return j, nil
}

// parseModifiers extracts the bracketed modifier list attached to a tag
// word, if any, and canonicalizes direction modifiers.
func parseModifiers(name string, word Token) ([]string, error) {
	rest := word.Text[len(name):]
	if !strings.HasPrefix(rest, "[") {
		return nil, nil
	}

	end := strings.Index(rest, "]")
	if end < 0 {
		return nil, newParseError(ErrMalformedModifierList, name, word.Text, word.Pos)
	}

	var entries []string
	for _, entry := range strings.Split(rest[1:end], ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			return nil, newParseError(ErrMalformedModifierList, name, word.Text, word.Pos)
		}
		entries = append(entries, entry)
	}

	return canonicalizeDirections(entries), nil
}

// canonicalizeDirections rewrites a modifier list drawn entirely from
// {in, out} to the stable order "in" before "out", deduplicated. Any other
// list is returned unchanged.
func canonicalizeDirections(entries []string) []string {
	var hasIn, hasOut bool
	for _, entry := range entries {
		switch entry {
		case "in":
			hasIn = true
		case "out":
			hasOut = true
		default:
			return entries
		}
	}

	var canonical []string
	if hasIn {
		canonical = append(canonical, "in")
	}
	if hasOut {
		canonical = append(canonical, "out")
	}
	return canonical
}

// leadingAlpha returns the leading run of letters in s.
func leadingAlpha(s string) string {
	for i, r := range s {
		if !unicode.IsLetter(r) {
			return s[:i]
		}
	}
	return s
}

// appendText accumulates literal text, merging adjacent runs into one item.
func (p *parser) appendText(s string, pos int) {
	if p.text.Len() == 0 {
		p.textPos = pos
	}
	p.text.WriteString(s)
}

// flushText emits any accumulated text as a Text item.
func (p *parser) flushText() {
	if p.text.Len() == 0 {
		return
	}
	p.items = append(p.items, Item{Type: ItemText, Text: p.text.String(), Pos: p.textPos})
	p.text.Reset()
}
