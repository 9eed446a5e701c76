package randomart

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// fingerprintGroups is the group count of the classic colon-hex
// fingerprint form (16 groups of two hex digits).
const fingerprintGroups = 16

// Opts configures Generate. A nil Opts renders uncolored text with no
// title.
type Opts struct {
	// Title is embedded in the top border when it fits within Width-2
	// characters. Longer titles are silently dropped.
	Title string

	// Format selects the output representation (default: FormatText).
	Format Format

	// Color enables ANSI escapes (text) or inline color styles (HTML, SVG)
	// on the border characters and the start/end markers.
	Color bool
}

// Generate renders fingerprint art for input. A string of exactly 16
// colon-separated two-hex-digit groups (the classic SSH fingerprint form)
// is decoded into its 16 bytes; any other string, including near misses of
// that form, is interpreted as raw bytes.
//
// opts can be nil to use defaults. Generate fails only for a malformed
// Opts; every valid input renders successfully.
func Generate(input string, opts *Opts) (string, error) {
	return GenerateBytes(Normalize(input), opts)
}

// GenerateBytes renders fingerprint art for a raw byte sequence of any
// length. The walk, and with it the art's density, scales with the input:
// four bishop moves per byte.
func GenerateBytes(data []byte, opts *Opts) (string, error) {
	if opts == nil {
		opts = &Opts{}
	}
	grid := Accumulate(Walk(data))
	switch opts.Format {
	case FormatText, "":
		return renderText(&grid, opts.Title, opts.Color), nil
	case FormatHTML:
		return renderHTML(&grid, opts.Title, opts.Color), nil
	case FormatSVG:
		return renderSVG(&grid, opts.Title, opts.Color), nil
	}
	return "", fmt.Errorf("randomart: unknown format %q", opts.Format)
}

// Normalize decodes the colon-hex fingerprint form when input matches it
// exactly, and returns any other string as its raw bytes. The match is
// full-shape, not a heuristic scan: wrong group counts, group lengths or
// digits all fall through to raw bytes.
func Normalize(input string) []byte {
	groups := strings.Split(input, ":")
	if len(groups) != fingerprintGroups {
		return []byte(input)
	}
	out := make([]byte, 0, fingerprintGroups)
	for _, g := range groups {
		if len(g) != 2 {
			return []byte(input)
		}
		b, err := hex.DecodeString(g)
		if err != nil {
			return []byte(input)
		}
		out = append(out, b[0])
	}
	return out
}
