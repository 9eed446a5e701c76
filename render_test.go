package randomart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sshFingerprint and sshBoard are the reference pair from the OpenSSH
// drunken bishop description.
const sshFingerprint = "fc:94:b0:c1:e5:b0:98:7c:58:43:99:76:97:ee:9f:b7"

const sshBoard = `+-----------------+
|       .=o.  .   |
|     . *+*. o    |
|      =.*..o     |
|       o + ..    |
|        S o.     |
|         o  .    |
|          .  . . |
|              o .|
|               E.|
+-----------------+
`

// sshBytes decodes sshFingerprint.
func sshBytes(t *testing.T) []byte {
	t.Helper()
	groups := strings.Split(sshFingerprint, ":")
	require.Len(t, groups, 16)
	data := Normalize(sshFingerprint)
	require.Len(t, data, 16)
	return data
}

func TestRenderTextGolden(t *testing.T) {
	grid := Accumulate(Walk(sshBytes(t)))
	assert.Equal(t, sshBoard, renderText(&grid, "", false))
}

func TestRenderTextDimensions(t *testing.T) {
	inputs := [][]byte{nil, {0x00}, []byte("abc"), sshBytes(t), make([]byte, 4096)}
	for _, data := range inputs {
		grid := Accumulate(Walk(data))
		out := renderText(&grid, "", false)

		require.True(t, strings.HasSuffix(out, "\n"), "output must end with a newline")
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		assert.Len(t, lines, Height+2)
		for i, line := range lines {
			assert.Len(t, line, Width+2, "line %d", i)
		}
	}
}

func TestRenderTextTitle(t *testing.T) {
	grid := Accumulate(Walk(nil))

	tests := []struct {
		name    string
		title   string
		wantTop string
	}{
		{"empty", "", "+-----------------+"},
		{"short", "key", "+[key]------------+"},
		{"exactly fits", "123456789012345", "+[123456789012345]+"},
		{"one too long", "1234567890123456", "+-----------------+"},
		{"way too long", strings.Repeat("x", 40), "+-----------------+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderText(&grid, tt.title, false)
			lines := strings.Split(out, "\n")
			assert.Equal(t, tt.wantTop, lines[0])
			assert.Equal(t, "+-----------------+", lines[Height+1], "bottom border is always plain")
		})
	}
}

func TestRenderTextColor(t *testing.T) {
	grid := Accumulate(Walk(sshBytes(t)))
	out := renderText(&grid, "", true)

	want := "\x1b[36m+-----------------+\x1b[0m\n" +
		"\x1b[36m|\x1b[0m       .=o.  .   \x1b[36m|\x1b[0m\n" +
		"\x1b[36m|\x1b[0m     . *+*. o    \x1b[36m|\x1b[0m\n" +
		"\x1b[36m|\x1b[0m      =.*..o     \x1b[36m|\x1b[0m\n" +
		"\x1b[36m|\x1b[0m       o + ..    \x1b[36m|\x1b[0m\n" +
		"\x1b[36m|\x1b[0m        \x1b[32mS\x1b[0m o.     \x1b[36m|\x1b[0m\n" +
		"\x1b[36m|\x1b[0m         o  .    \x1b[36m|\x1b[0m\n" +
		"\x1b[36m|\x1b[0m          .  . . \x1b[36m|\x1b[0m\n" +
		"\x1b[36m|\x1b[0m              o .\x1b[36m|\x1b[0m\n" +
		"\x1b[36m|\x1b[0m               \x1b[31mE\x1b[0m.\x1b[36m|\x1b[0m\n" +
		"\x1b[36m+-----------------+\x1b[0m\n"
	assert.Equal(t, want, out)
}

func TestRenderTextColorTitledBorder(t *testing.T) {
	grid := Accumulate(Walk(nil))
	out := renderText(&grid, "key", true)
	lines := strings.Split(out, "\n")

	// The title text itself is not colored, only the border around it.
	assert.Equal(t, "\x1b[36m+[\x1b[0mkey\x1b[36m]------------+\x1b[0m", lines[0])
}

func TestRenderHTML(t *testing.T) {
	grid := Accumulate(Walk([]byte("abc")))
	out := renderHTML(&grid, "", false)

	want := "<pre>\n" +
		"+-----------------+\n" +
		"|                 |\n" +
		"|                 |\n" +
		"|      E o        |\n" +
		"|     o + .       |\n" +
		"|        S        |\n" +
		"|                 |\n" +
		"|                 |\n" +
		"|                 |\n" +
		"|                 |\n" +
		"+-----------------+\n" +
		"</pre>\n"
	assert.Equal(t, want, out)
}

func TestRenderHTMLColor(t *testing.T) {
	grid := Accumulate(Walk(nil))
	out := renderHTML(&grid, "", true)

	assert.True(t, strings.HasPrefix(out, "<pre>\n"))
	assert.True(t, strings.HasSuffix(out, "</pre>\n"))
	assert.Contains(t, out, `<span style="color:darkcyan">+-----------------+</span>`)
	assert.Contains(t, out, `<span style="color:red">E</span>`)
	assert.NotContains(t, out, "\x1b[", "HTML output must not carry ANSI escapes")
}

func TestRenderHTMLEscapesTitle(t *testing.T) {
	grid := Accumulate(Walk(nil))
	out := renderHTML(&grid, "<key>", false)
	assert.Contains(t, out, "+[&lt;key&gt;]")
	assert.NotContains(t, out, "<key>")
}

func TestRenderSVG(t *testing.T) {
	grid := Accumulate(Walk(nil))
	out := renderSVG(&grid, "", false)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg" width="190" height="180" viewBox="0 0 190 180">`, lines[0])
	require.Equal(t, "</svg>", lines[len(lines)-1])

	// One <text> element per character of the 19x11 frame.
	assert.Len(t, lines, 2+(Width+2)*(Height+2))
	assert.Equal(t, `<text x="0" y="15" font-family="monospace" font-size="14" fill="black">+</text>`, lines[1])
	assert.Equal(t, `<text x="180" y="165" font-family="monospace" font-size="14" fill="black">+</text>`, lines[len(lines)-2])
}

func TestRenderSVGColor(t *testing.T) {
	grid := Accumulate(Walk(sshBytes(t)))
	out := renderSVG(&grid, "", true)

	assert.Contains(t, out, `fill="green">S</text>`)
	assert.Contains(t, out, `fill="red">E</text>`)
	assert.Contains(t, out, `fill="darkcyan">+</text>`)
	assert.Contains(t, out, `fill="black">o</text>`)
}

func TestRenderSVGEscapesGlyphs(t *testing.T) {
	// A cell with 11 visits renders '&', which must be XML-escaped.
	var grid Grid
	grid[0] = 11
	grid[StartIndex] = CellEnd
	out := renderSVG(&grid, "", false)
	assert.Contains(t, out, ">&amp;</text>")
}

func TestRenderCapGlyph(t *testing.T) {
	// An input revisiting one cell far beyond the cap must render that
	// cell with the glyph for count 13.
	data := make([]byte, 30)
	for i := range data {
		data[i] = 0xCC
	}
	grid := Accumulate(Walk(data))
	out := renderText(&grid, "", false)
	assert.Contains(t, out, "/")
	assert.NotContains(t, out, "^")
}
