// generator.go renders grammar items to Markdown, tracking cross-item
// state so each section heading is emitted once per document.
package dox

import (
	"fmt"
	"strings"

	"github.com/open-cli-collective/doxymd/pkg/symbols"
)

// genState records which section headings have been emitted. Each flag
// flips false→true once, on the first directive of its family, and is
// never reset. One value is owned by one Render call.
type genState struct {
	addedParams  bool
	addedReturns bool
	addedThrows  bool
	addedPre     bool
	addedPost    bool
	addedSee     bool
}

// Render emits the Markdown document for a grammar-item sequence. The
// symbol table serves emoji shortcode lookups; a missing shortcode aborts
// the document.
func Render(items []Item, table symbols.Table) (string, error) {
	var out strings.Builder
	state := &genState{}

	// While a group is open, the first text run folds its leading bullet
	// marker into the heading line.
	stripPending := false

	for _, item := range items {
		switch item.Type {
		case ItemNotation:
			s, err := renderNotation(item, state, table)
			if err != nil {
				return "", err
			}
			out.WriteString(s)

		case ItemText:
			text := item.Text
			if stripPending {
				text = strings.Replace(text, "*", "", 1)
				stripPending = false
			}
			out.WriteString(text)

		case ItemGroupStart:
			out.WriteString("# ")
			stripPending = true

		case ItemGroupEnd:
			stripPending = false

		case ItemURL:
			out.WriteString("<" + item.Text + ">")
		}
	}

	return out.String(), nil
}

// renderNotation maps one directive to its output fragment, consulting and
// updating the section-heading state.
func renderNotation(item Item, state *genState, table symbols.Table) (string, error) {
	var b strings.Builder

	switch item.Tag {
	case "param":
		if !state.addedParams {
			b.WriteString("# Arguments\n\n")
			state.addedParams = true
		}
		if len(item.Params) > 0 {
			if len(item.Meta) > 0 {
				fmt.Fprintf(&b, "* `%s` (direction %s) -", item.Params[0], strings.Join(item.Meta, ", "))
			} else {
				fmt.Fprintf(&b, "* `%s` -", item.Params[0])
			}
		}

	case "a", "e", "em":
		fmt.Fprintf(&b, "_%s_", item.Params[0])

	case "b":
		fmt.Fprintf(&b, "**%s**", item.Params[0])

	case "c", "p":
		fmt.Fprintf(&b, "`%s`", item.Params[0])

	case "emoji":
		code := strings.ReplaceAll(item.Params[0], ":", "")
		glyph, ok := table.Lookup(code)
		if !ok {
			return "", newParseError(ErrUnknownSymbol, item.Tag, code, item.Pos)
		}
		b.WriteString(glyph)

	case "sa", "see":
		if !state.addedSee {
			b.WriteString("# See also\n\n")
			state.addedSee = true
		}
		if len(item.Params) > 0 {
			fmt.Fprintf(&b, "[`%s`]", item.Params[0])
		}

	case "retval":
		if !state.addedReturns {
			b.WriteString("# Returns\n\n")
			state.addedReturns = true
		}
		fmt.Fprintf(&b, "* `%s` -", item.Params[0])

	case "returns", "return", "result":
		if !state.addedReturns {
			b.WriteString("# Returns\n\n")
			state.addedReturns = true
		}

	case "throw", "throws", "exception":
		if !state.addedThrows {
			b.WriteString("# Throws\n\n")
			state.addedThrows = true
		}
		fmt.Fprintf(&b, "* [`%s`] -", item.Params[0])

	case "pre":
		if !state.addedPre {
			b.WriteString("# Precondition\n\n")
			state.addedPre = true
		}
		if len(item.Params) > 0 {
			fmt.Fprintf(&b, "* %s", item.Params[0])
		}

	case "post":
		if !state.addedPost {
			b.WriteString("# Postcondition\n\n")
			state.addedPost = true
		}
		if len(item.Params) > 0 {
			fmt.Fprintf(&b, "* %s", item.Params[0])
		}

	case "note":
		b.WriteString("> **Note:** ")

	case "since":
		b.WriteString("> Available since: ")

	case "deprecated":
		b.WriteString("> **Deprecated** ")

	case "remark", "remarks":
		b.WriteString("> ")

	case "par":
		b.WriteString("# ")

	case "details":
		b.WriteString("\n\n")

	case "brief", "short":
		// Briefs are plain prose in the output.

	default:
		// Unrecognized directives render as nothing.
	}

	return b.String(), nil
}
