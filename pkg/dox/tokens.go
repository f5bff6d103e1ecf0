// tokens.go defines the token vocabulary produced by the lexer.
package dox

// TokenType represents the lexical class of a token.
type TokenType int

const (
	TokenWord    TokenType = iota // maximal run of unreserved characters
	TokenTag                      // directive introducer: "@", "\" or "\\"
	TokenBrace                    // literal '{' or '}' (group delimiters)
	TokenURL                      // absolute http:// or https:// URL
	TokenSpace                    // single inter-word separator (runs collapse)
	TokenNewline                  // one per line break, never collapsed
)

// Token is a single lexical unit of a documentation comment.
type Token struct {
	Type TokenType
	Text string // token content; "{" or "}" for Brace, empty for Space/Newline
	Pos  int    // byte offset in the original input
}
