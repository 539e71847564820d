package core

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// Options configures how generation runs.
type Options struct {
	Verbose bool
}

// classify maps a byte value to the name of its classification
// constant. The second nibble of each constant is the sequence length;
// the first nibble selects the accept range for the second byte.
func classify(b int) string {
	switch {
	case b < 0x80:
		return "as"
	case b < 0xC2:
		return "xx" // continuation bytes and the over-long leads C0, C1
	case b < 0xE0:
		return "s1"
	case b == 0xE0:
		return "s2" // second byte restricted to A0..BF
	case b == 0xED:
		return "s4" // second byte restricted to 80..9F, excludes surrogates
	case b < 0xF0:
		return "s3"
	case b == 0xF0:
		return "s5" // second byte restricted to 90..BF
	case b < 0xF4:
		return "s6"
	case b == 0xF4:
		return "s7" // second byte restricted to 80..8F, caps at U+10FFFF
	default:
		return "xx" // F5..FF can never start a sequence
	}
}

type row struct {
	Cells   string
	Comment string
	// Header marks the rows that get a column-index comment line above
	// them: the first row and the first non-ASCII row.
	Header bool
}

type tableData struct {
	Rows []row
}

// Run regenerates the classification table file at outputPath.
func Run(outputPath string, opts Options) error {
	data := tableData{}
	for base := 0; base < 256; base += 16 {
		cells := make([]string, 16)
		for i := range cells {
			cells[i] = classify(base + i)
		}
		data.Rows = append(data.Rows, row{
			Cells:   strings.Join(cells, ", ") + ",",
			Comment: fmt.Sprintf("0x%02X-0x%02X", base, base+15),
			Header:  base == 0x00 || base == 0x80,
		})
	}

	var buf bytes.Buffer
	if err := tableTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	src, err := imports.Process(outputPath, buf.Bytes(), nil)
	if err != nil {
		return fmt.Errorf("format %q: %w", outputPath, err)
	}

	if opts.Verbose {
		fmt.Printf("tablegen: writing %s (%d bytes)\n", outputPath, len(src))
	}
	return os.WriteFile(outputPath, src, 0o644)
}

var tableTemplate = template.Must(template.New("tables").Parse(`// Code generated by tablegen. DO NOT EDIT.

package utf8conv

// The default lowest and highest continuation byte.
const (
	locb = 0x80 // 1000 0000
	hicb = 0xBF // 1011 1111
)

// The names of these constants are chosen to give nice alignment in the
// table below. The first nibble is an index into acceptRanges or F for
// special one-byte cases. The second nibble is the sequence length.
const (
	xx = 0xF1 // invalid: size 1
	as = 0xF0 // ASCII: size 1
	s1 = 0x02 // accept 0, size 2
	s2 = 0x13 // accept 1, size 3
	s3 = 0x03 // accept 0, size 3
	s4 = 0x23 // accept 2, size 3
	s5 = 0x34 // accept 3, size 4
	s6 = 0x04 // accept 0, size 4
	s7 = 0x44 // accept 4, size 4
)

// first is information about the first byte in a UTF-8 sequence.
var first = [256]uint8{
{{- range .Rows}}
{{- if .Header}}
	//   1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
{{- end}}
	{{.Cells}} // {{.Comment}}
{{- end}}
}

// acceptRange gives the range of valid values for the second byte in a
// UTF-8 sequence.
type acceptRange struct {
	lo uint8 // lowest value for second byte.
	hi uint8 // highest value for second byte.
}

// acceptRanges has size 16 to avoid bounds checks in the code that uses it.
var acceptRanges = [16]acceptRange{
	0: {locb, hicb},
	1: {0xA0, hicb},
	2: {locb, 0x9F},
	3: {0x90, hicb},
	4: {locb, 0x8F},
}
`))
