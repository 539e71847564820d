// This package is the core of the utf8conv streaming codec.
//
// This package converts between UTF-8 byte sequences and Unicode scalar
// values in both directions, one item at a time, without allocating.
// Input may arrive as a single buffer or as a series of buffers; a
// sequence that is cut at a buffer boundary is completed from the next
// buffer. Malformed input is never a hard error: the codec substitutes
// the Unicode replacement character and latches a sticky flag that the
// caller can inspect after processing.
//
// This package defines three "families" of operations:
//   - (*Decoder).NextRune() and (*Encoder).NextByte() advance a
//     caller-owned slice and produce one output item.
//   - (*Decoder).Runes() and (*Encoder).Bytes() iterate over one
//     buffer, resuming mid-sequence on the next buffer.
//   - AppendXxxx() and Sanitize() append whole conversions to a []byte
//     or []rune in a single call.
//
// The Reader and Writer types adapt the codec to io.Reader and
// io.Writer, and Replacer adapts it to the x/text transform interface.
package utf8conv

// Replacement is substituted for every maximal subpart of a malformed
// UTF-8 sequence and for every invalid scalar given to the encoder.
const Replacement rune = '�'

// The replacement character in UTF-8 encoding.
const (
	replacePart1 byte = 0xEF
	replacePart2 byte = 0xBF
	replacePart3 byte = 0xBD
)

const (
	maxRune      = '\U0010FFFF'
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF

	rune1Max = 1<<7 - 1
	rune2Max = 1<<11 - 1
	rune3Max = 1<<16 - 1

	t2 = 0xC0 // 110xxxxx
	t3 = 0xE0 // 1110xxxx
	t4 = 0xF0 // 11110xxx
	tx = 0x80 // 10xxxxxx

	maskx = 0x3F
)

// MoreHint is the suggested size for the next input buffer when a
// streaming call reports ErrMoreData.
const MoreHint = 1024

//go:generate go run github.com/synadia-labs/utf8conv.go/tablegen --output tables.go
