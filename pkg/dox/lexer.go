// lexer.go converts raw comment text into a flat token sequence.
package dox

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// htmlTagPattern matches an HTML-like closing construct immediately after
// a '<': an optional '/', one or more letters, then '>'.
var htmlTagPattern = regexp.MustCompile(`^(/?[a-zA-Z]+)>`)

// urlChars is the punctuation allowed inside a captured URL, besides
// alphanumerics.
const urlChars = ":/-_,.#%?[]@!$&'*+;="

// Lex scans one documentation comment body into tokens. It is total:
// malformed input is represented, never rejected.
func Lex(input string) []Token {
	var tokens []Token

	pos := 0
	for pos < len(input) {
		c, size := utf8.DecodeRuneInString(input[pos:])
		rest := input[pos+size:]

		// URL capture wins over every other rule at this position.
		if c == 'h' && (strings.HasPrefix(rest, "ttp://") || strings.HasPrefix(rest, "ttps://")) {
			n := consumeURLChars(rest)
			tokens = append(tokens, Token{Type: TokenURL, Text: "h" + rest[:n], Pos: pos})
			pos += size + n
			continue
		}

		switch c {
		case '@':
			tokens = append(tokens, Token{Type: TokenTag, Text: "@", Pos: pos})
		case '\\':
			// A backslash directly extending a single-backslash marker
			// forms the escaped literal marker "\\".
			if last := lastToken(tokens); last != nil && last.Type == TokenTag && last.Text == `\` {
				last.Text = `\\`
			} else {
				tokens = append(tokens, Token{Type: TokenTag, Text: `\`, Pos: pos})
			}
		case '{', '}':
			tokens = append(tokens, Token{Type: TokenBrace, Text: string(c), Pos: pos})
		case ' ':
			// Runs of spaces collapse to one separator; leading spaces
			// produce nothing.
			if last := lastToken(tokens); last != nil && last.Type != TokenSpace {
				tokens = append(tokens, Token{Type: TokenSpace, Pos: pos})
			}
		case '\n':
			tokens = append(tokens, Token{Type: TokenNewline, Pos: pos})
		case '<':
			if m := htmlTagPattern.FindStringSubmatch(rest); m != nil {
				name := m[1]
				if name == "br" {
					// Hard line break passes through for the renderer.
					tokens = append(tokens, Token{Type: TokenWord, Text: "<br>", Pos: pos})
				} else {
					// Every other tag is escaped so it renders literally.
					tokens = append(tokens, Token{Type: TokenWord, Text: `\<` + name + `\>`, Pos: pos})
				}
				pos += size + len(m[0])
				continue
			}
			tokens = append(tokens, Token{Type: TokenWord, Text: "<", Pos: pos})
		default:
			if last := lastToken(tokens); last != nil && last.Type == TokenWord {
				last.Text += string(c)
			} else {
				tokens = append(tokens, Token{Type: TokenWord, Text: string(c), Pos: pos})
			}
		}
		pos += size
	}

	return tokens
}

// consumeURLChars returns the length of the maximal URL-character run at
// the start of s.
func consumeURLChars(s string) int {
	for i, c := range s {
		if unicode.IsLetter(c) || unicode.IsDigit(c) || strings.ContainsRune(urlChars, c) {
			continue
		}
		return i
	}
	return len(s)
}

func lastToken(tokens []Token) *Token {
	if len(tokens) == 0 {
		return nil
	}
	return &tokens[len(tokens)-1]
}
