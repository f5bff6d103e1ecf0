package view

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(format Format) (*Renderer, *bytes.Buffer) {
	r := NewRenderer(format, true)
	var buf bytes.Buffer
	r.SetWriter(&buf)
	return r, &buf
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"empty (default)", "", false},
		{"table", "table", false},
		{"json", "json", false},
		{"plain", "plain", false},
		{"invalid", "invalid", true},
		{"xml", "xml", true},
		{"TABLE uppercase", "TABLE", true}, // case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.format)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid output format")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidFormats(t *testing.T) {
	formats := ValidFormats()
	assert.Contains(t, formats, "table")
	assert.Contains(t, formats, "json")
	assert.Contains(t, formats, "plain")
	assert.Len(t, formats, 3)
}

func TestRenderTable(t *testing.T) {
	r, buf := newTestRenderer(FormatTable)
	r.RenderTable([]string{"CODE", "GLYPH"}, [][]string{
		{"ok_hand", "👌"},
		{"pray", "🙏"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "CODE")
	assert.Contains(t, lines[0], "GLYPH")
	assert.Contains(t, lines[1], "ok_hand")
	assert.Contains(t, lines[2], "pray")
}

func TestRenderTable_JSON(t *testing.T) {
	r, buf := newTestRenderer(FormatJSON)
	r.RenderTable([]string{"CODE", "GLYPH"}, [][]string{{"ok_hand", "👌"}})

	var result []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Len(t, result, 1)
	assert.Equal(t, "ok_hand", result[0]["code"])
	assert.Equal(t, "👌", result[0]["glyph"])
}

func TestRenderTable_Plain(t *testing.T) {
	r, buf := newTestRenderer(FormatPlain)
	r.RenderTable([]string{"CODE", "GLYPH"}, [][]string{{"ok_hand", "👌"}})

	assert.Equal(t, "ok_hand\t👌\n", buf.String())
}

func TestRenderJSON(t *testing.T) {
	r, buf := newTestRenderer(FormatJSON)
	require.NoError(t, r.RenderJSON(map[string]string{"key": "value"}))
	assert.JSONEq(t, `{"key": "value"}`, buf.String())
}

func TestRenderText(t *testing.T) {
	r, buf := newTestRenderer(FormatPlain)
	r.RenderText("# Arguments")
	assert.Equal(t, "# Arguments\n", buf.String())
}

func TestRenderKeyValue(t *testing.T) {
	r, buf := newTestRenderer(FormatTable)
	r.RenderKeyValue("ok_hand", "👌")
	assert.Equal(t, "ok_hand: 👌\n", buf.String())
}

func TestRenderKeyValue_JSON(t *testing.T) {
	r, buf := newTestRenderer(FormatJSON)
	r.RenderKeyValue("ok_hand", "👌")
	assert.JSONEq(t, `{"ok_hand": "👌"}`, buf.String())
}

func TestSuccessAndError(t *testing.T) {
	r, buf := newTestRenderer(FormatPlain)
	r.Success("saved")
	r.Error("failed")

	assert.Contains(t, buf.String(), "✓ saved")
	assert.Contains(t, buf.String(), "✗ failed")
}
