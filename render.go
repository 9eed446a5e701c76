package randomart

import (
	"fmt"
	"html"
	"strings"

	"github.com/muesli/termenv"
)

// Format selects the output representation produced by Generate.
type Format string

const (
	// FormatText renders a plain bordered board, optionally with ANSI colors.
	FormatText Format = "text"
	// FormatHTML renders the board inside a <pre> block, optionally with
	// inline-styled spans.
	FormatHTML Format = "html"
	// FormatSVG renders every character as a positioned <text> element.
	FormatSVG Format = "svg"
)

// segClass tags a run of output characters for colorization. The renderers
// share one layout pass so color rules cannot drift between formats.
type segClass int

const (
	segPlain segClass = iota
	segBorder
	segStart
	segEnd
)

type segment struct {
	text  string
	class segClass
}

// ansiStyles use a fixed ANSI profile so output does not depend on the
// caller's terminal environment.
var ansiStyles = map[segClass]termenv.Style{
	segBorder: termenv.ANSI.String().Foreground(termenv.ANSICyan),
	segStart:  termenv.ANSI.String().Foreground(termenv.ANSIGreen),
	segEnd:    termenv.ANSI.String().Foreground(termenv.ANSIRed),
}

// cssColors are the HTML/SVG equivalents of the ANSI styles.
var cssColors = map[segClass]string{
	segBorder: "darkcyan",
	segStart:  "green",
	segEnd:    "red",
}

// SVG layout constants: a 19x11 character frame on a 10x15 pixel pitch.
const (
	svgWidth    = 190
	svgHeight   = 180
	svgColPitch = 10
	svgRowPitch = 15
	svgFontSize = 14
)

// frameLines lays out the bordered board as Height+2 rows of classified
// segments: the top border (with optional title), Height body rows wrapped
// in '|', and the bottom border.
func frameLines(g *Grid, title string) [][]segment {
	lines := make([][]segment, 0, Height+2)
	lines = append(lines, topBorder(title))
	for y := 0; y < Height; y++ {
		segs := []segment{{"|", segBorder}}
		var run strings.Builder
		for x := 0; x < Width; x++ {
			switch c := g[x+Width*y]; c {
			case CellStart, CellEnd:
				if run.Len() > 0 {
					segs = append(segs, segment{run.String(), segPlain})
					run.Reset()
				}
				class := segStart
				if c == CellEnd {
					class = segEnd
				}
				segs = append(segs, segment{string(c.Rune()), class})
			default:
				run.WriteRune(c.Rune())
			}
		}
		if run.Len() > 0 {
			segs = append(segs, segment{run.String(), segPlain})
		}
		segs = append(segs, segment{"|", segBorder})
		lines = append(lines, segs)
	}
	lines = append(lines, []segment{{dashedBorder(), segBorder}})
	return lines
}

// dashedBorder is the untitled border line.
func dashedBorder() string {
	return "+" + strings.Repeat("-", Width) + "+"
}

// topBorder embeds the title as "[title]" padded with dashes when it fits
// within Width-2 characters. An empty or over-long title yields a plain
// dashed border; over-long titles are dropped, never truncated.
func topBorder(title string) []segment {
	if title == "" || len(title) > Width-2 {
		return []segment{{dashedBorder(), segBorder}}
	}
	tail := "]" + strings.Repeat("-", Width-2-len(title)) + "+"
	return []segment{
		{"+[", segBorder},
		{title, segPlain},
		{tail, segBorder},
	}
}

// renderText serializes the board as plain text, one line per frame row,
// ending with a trailing newline. With color enabled, border characters
// and the start/end markers are wrapped in ANSI escapes with a reset after
// each colored run.
func renderText(g *Grid, title string, color bool) string {
	var b strings.Builder
	for _, segs := range frameLines(g, title) {
		for _, s := range segs {
			if st, ok := ansiStyles[s.class]; color && ok {
				b.WriteString(st.Styled(s.text))
				continue
			}
			b.WriteString(s.text)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// renderHTML serializes the board inside a <pre> block. With color
// enabled, border characters and the start/end markers are wrapped in
// inline-styled spans instead of ANSI escapes.
func renderHTML(g *Grid, title string, color bool) string {
	var b strings.Builder
	b.WriteString("<pre>\n")
	for _, segs := range frameLines(g, title) {
		for _, s := range segs {
			esc := html.EscapeString(s.text)
			if c, ok := cssColors[s.class]; color && ok {
				fmt.Fprintf(&b, `<span style="color:%s">%s</span>`, c, esc)
				continue
			}
			b.WriteString(esc)
		}
		b.WriteByte('\n')
	}
	b.WriteString("</pre>\n")
	return b.String()
}

// renderSVG serializes the board as an SVG document with one <text>
// element per character, positioned on a fixed column/row pitch. Fills are
// black unless color is enabled, in which case the start/end/border rules
// match the other formats.
func renderSVG(g *Grid, title string, color bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		svgWidth, svgHeight, svgWidth, svgHeight)
	for row, segs := range frameLines(g, title) {
		col := 0
		for _, s := range segs {
			fill := "black"
			if c, ok := cssColors[s.class]; color && ok {
				fill = c
			}
			for _, ch := range s.text {
				fmt.Fprintf(&b, "<text x=\"%d\" y=\"%d\" font-family=\"monospace\" font-size=\"%d\" fill=\"%s\">%s</text>\n",
					col*svgColPitch, (row+1)*svgRowPitch, svgFontSize, fill, html.EscapeString(string(ch)))
				col++
			}
		}
	}
	b.WriteString("</svg>\n")
	return b.String()
}
