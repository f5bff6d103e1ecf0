package dox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/doxymd/pkg/symbols"
)

func TestRender_SectionHeadingEmittedOnce(t *testing.T) {
	items := []Item{
		{Type: ItemNotation, Tag: "param", Params: []string{"a"}},
		{Type: ItemNotation, Tag: "param", Params: []string{"b"}},
	}

	out, err := Render(items, symbols.Default())
	require.NoError(t, err)
	assert.Equal(t, "# Arguments\n\n* `a` -* `b` -", out)
}

func TestRender_ReturnsFamilySharesState(t *testing.T) {
	// returns, return, result and retval all belong to one section.
	items := []Item{
		{Type: ItemNotation, Tag: "returns"},
		{Type: ItemNotation, Tag: "retval", Params: []string{"x"}},
		{Type: ItemNotation, Tag: "return"},
	}

	out, err := Render(items, symbols.Default())
	require.NoError(t, err)
	assert.Equal(t, "# Returns\n\n* `x` -", out)
}

func TestRender_GroupStripsFirstBulletOnce(t *testing.T) {
	items := []Item{
		{Type: ItemGroupStart},
		{Type: ItemText, Text: "* a * b\n"},
		{Type: ItemText, Text: "* later text\n"},
		{Type: ItemGroupEnd},
	}

	out, err := Render(items, symbols.Default())
	require.NoError(t, err)
	// Only the first '*' of the first text run is removed.
	assert.Equal(t, "#  a * b\n* later text\n", out)
}

func TestRender_StripReappliesPerGroup(t *testing.T) {
	items := []Item{
		{Type: ItemGroupStart},
		{Type: ItemText, Text: "*one\n"},
		{Type: ItemGroupEnd},
		{Type: ItemGroupStart},
		{Type: ItemText, Text: "*two\n"},
		{Type: ItemGroupEnd},
	}

	out, err := Render(items, symbols.Default())
	require.NoError(t, err)
	assert.Equal(t, "# one\n# two\n", out)
}

func TestRender_TextOutsideGroupNotStripped(t *testing.T) {
	items := []Item{
		{Type: ItemGroupStart},
		{Type: ItemGroupEnd},
		{Type: ItemText, Text: "* untouched"},
	}

	out, err := Render(items, symbols.Default())
	require.NoError(t, err)
	assert.Equal(t, "# * untouched", out)
}

func TestRender_URLAutoLink(t *testing.T) {
	items := []Item{{Type: ItemURL, Text: "https://example.com"}}

	out, err := Render(items, symbols.Default())
	require.NoError(t, err)
	assert.Equal(t, "<https://example.com>", out)
}

func TestRender_UnknownSymbol(t *testing.T) {
	items := []Item{{Type: ItemNotation, Tag: "emoji", Params: []string{":nope_not_real:"}, Pos: 7}}

	_, err := Render(items, symbols.Table{})
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrUnknownSymbol, perr.Kind)
	assert.Equal(t, "emoji", perr.Tag)
	assert.Equal(t, "nope_not_real", perr.Detail)
	assert.Equal(t, 7, perr.Pos)
}

func TestRender_EmojiUsesInjectedTable(t *testing.T) {
	table := symbols.Table{"wave": "👋"}
	items := []Item{{Type: ItemNotation, Tag: "emoji", Params: []string{":wave:"}}}

	out, err := Render(items, table)
	require.NoError(t, err)
	assert.Equal(t, "👋", out)
}
