// errors.go defines the typed failures surfaced by parsing and generation.
package dox

import "fmt"

// ErrorKind classifies a conversion failure.
type ErrorKind int

const (
	// ErrMalformedModifierList indicates a bracketed modifier suffix that
	// cannot be split into valid entries (for example an unterminated '[').
	ErrMalformedModifierList ErrorKind = iota
	// ErrUnmatchedGroupEnd indicates a group close marker with no open group.
	ErrUnmatchedGroupEnd
	// ErrUnterminatedGroup indicates input ended while a group was open.
	ErrUnterminatedGroup
	// ErrMissingParameter indicates a directive that requires a parameter
	// reached the end of its capture window without finding one.
	ErrMissingParameter
	// ErrUnknownSymbol indicates an emoji shortcode absent from the symbol table.
	ErrUnknownSymbol
)

// String returns a short identifier for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrMalformedModifierList:
		return "malformed modifier list"
	case ErrUnmatchedGroupEnd:
		return "unmatched group end"
	case ErrUnterminatedGroup:
		return "unterminated group"
	case ErrMissingParameter:
		return "missing parameter"
	case ErrUnknownSymbol:
		return "unknown symbol"
	default:
		return "unknown error"
	}
}

// ParseError is a conversion failure. It aborts the whole document: there
// is no partial output and, the transform being pure, no point retrying
// with the same input.
type ParseError struct {
	Kind   ErrorKind
	Tag    string // directive name involved, when applicable
	Detail string // extra context, e.g. the offending shortcode
	Pos    int    // byte offset in the original input
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := e.Kind.String()
	if e.Tag != "" {
		msg = fmt.Sprintf("%s for @%s", msg, e.Tag)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return fmt.Sprintf("%s at offset %d", msg, e.Pos)
}

func newParseError(kind ErrorKind, tag, detail string, pos int) *ParseError {
	return &ParseError{Kind: kind, Tag: tag, Detail: detail, Pos: pos}
}
