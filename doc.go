// Package randomart renders a deterministic visual fingerprint from binary
// input, replicating the OpenSSH "drunken bishop" algorithm.
//
// A simulated chess bishop starts at the center of a fixed 17×9 board and
// walks it four moves per input byte, steered two bits at a time. Cells
// are shaded by how often the bishop visited them, and the start and end
// cells are marked S and E. Equal inputs always produce equal art, so the
// picture serves as a fingerprint a human can compare at a glance.
//
// # Basic Usage
//
// Render the art for an SSH-style hex fingerprint:
//
//	art, err := randomart.Generate("fc:94:b0:c1:e5:b0:98:7c:58:43:99:76:97:ee:9f:b7", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(art)
//
// Output:
//
//	+-----------------+
//	|       .=o.  .   |
//	|     . *+*. o    |
//	|      =.*..o     |
//	|       o + ..    |
//	|        S o.     |
//	|         o  .    |
//	|          .  . . |
//	|              o .|
//	|               E.|
//	+-----------------+
//
// Strings that are not exactly 16 colon-separated two-hex-digit groups are
// interpreted as raw bytes, as is anything passed to GenerateBytes:
//
//	art, _ := randomart.GenerateBytes(pubkeyHash, nil)
//
// # Options
//
// Opts controls the title, output format and colorization. All fields are
// optional and a nil Opts renders plain text:
//
//	art, _ := randomart.Generate(fp, &randomart.Opts{
//		Title:  "RSA 2048",
//		Format: randomart.FormatText,
//		Color:  true,
//	})
//
// With Color set, text output wraps the border in cyan, the start marker
// in green and the end marker in red using ANSI escapes with a fixed ANSI
// profile. HTML output uses inline-styled spans and SVG output uses fill
// colors for the same three classes.
//
// # Formats
//
// - FormatText: the bordered board, one line per row, trailing newline.
// - FormatHTML: the same board inside a <pre> block.
// - FormatSVG: a 190×180 document with one <text> element per character.
//
// A title longer than 15 characters does not fit the top border and is
// silently dropped rather than truncated.
//
// # Lower-Level API
//
// The pipeline stages are exported for callers that want the raw walk or
// grid, for example to drive a custom renderer:
//
//	seq := randomart.Walk(data)       // board indices, start first
//	grid := randomart.Accumulate(seq) // capped visit counts + markers
//	for y := 0; y < randomart.Height; y++ {
//		for x := 0; x < randomart.Width; x++ {
//			idx, _ := randomart.CellIndex(x, y)
//			fmt.Print(string(grid[idx].Rune()))
//		}
//		fmt.Println()
//	}
//
// The artimage subpackage renders a Grid as a standard image.Image for PNG
// export or for drawing onto small displays.
//
// # Concurrency
//
// Every call is independent and allocates its own walk and grid, so the
// package is safe for concurrent use without coordination.
package randomart
