package utf8conv

import "io"

// Decoder converts a stream of UTF-8 bytes into Unicode scalar values.
//
// A Decoder holds the tail of a multi-byte sequence across buffer
// boundaries, so input may be presented in arbitrary chunks. The zero
// value expects more buffers to follow; use NewDecoder (or
// SetLastBuffer) when the first buffer is also the last one.
//
// Each malformed maximal subpart of the input decodes to exactly one
// Replacement rune and latches the sticky invalid-sequence flag.
// Methods must not be called concurrently; two distinct Decoders are
// independent.
type Decoder struct {
	acc     rune        // partially assembled scalar
	need    uint8       // continuation bytes still expected
	next    acceptRange // acceptable range for the next continuation byte
	invalid bool
	last    bool
}

// NewDecoder returns a Decoder set up for single-buffer use: the first
// input buffer is treated as the last one. Multi-buffer callers flip
// SetLastBuffer(false) first, or start from a zero Decoder.
func NewDecoder() *Decoder {
	return &Decoder{last: true}
}

// SetLastBuffer declares whether the next input buffer is the final
// one. Presenting further input after declaring true is a caller error
// with unspecified output.
func (d *Decoder) SetLastBuffer(last bool) { d.last = last }

// LastBuffer returns the last-buffer flag.
func (d *Decoder) LastBuffer() bool { return d.last }

// HasInvalidSequence reports whether any replacement has occurred since
// the flag was last cleared.
func (d *Decoder) HasInvalidSequence() bool { return d.invalid }

// ClearInvalidSequence resets the sticky invalid-sequence flag.
func (d *Decoder) ClearInvalidSequence() { d.invalid = false }

// Reset returns the Decoder to its initial state: idle, last-buffer
// set, invalid-sequence flag cleared.
func (d *Decoder) Reset() {
	*d = Decoder{last: true}
}

// pending reports whether the Decoder is inside a multi-byte sequence.
func (d *Decoder) pending() bool { return d.need > 0 }

// NextRune decodes the next scalar value from b, which continues the
// byte stream presented to earlier calls. It returns the scalar and the
// unconsumed remainder of b.
//
// When b is exhausted the error is ErrMoreData if another buffer must
// follow, or io.EOF once the last-buffer flag is set. A sequence
// truncated by end of input decodes to one Replacement rune before
// io.EOF is reported.
func (d *Decoder) NextRune(b []byte) (r rune, rest []byte, err error) {
	for {
		if len(b) == 0 {
			if d.need > 0 && d.last {
				// Truncated tail at end of stream.
				d.need = 0
				d.invalid = true
				return Replacement, b, nil
			}
			if d.last {
				return 0, b, io.EOF
			}
			return 0, b, ErrMoreData
		}
		c := b[0]

		if d.need == 0 {
			info := first[c]
			switch info {
			case as:
				return rune(c), b[1:], nil
			case xx:
				// Stray continuation byte, 0xC0, 0xC1, or 0xF5..0xFF.
				d.invalid = true
				return Replacement, b[1:], nil
			default:
				size := info & 7
				d.acc = rune(c & (0x7F >> size))
				d.need = size - 1
				d.next = acceptRanges[info>>4]
				b = b[1:]
			}
			continue
		}

		if c < d.next.lo || c > d.next.hi {
			// One replacement for the maximal subpart; the offending
			// byte is reprocessed from the idle state.
			d.need = 0
			d.invalid = true
			return Replacement, b, nil
		}
		d.acc = d.acc<<6 | rune(c&maskx)
		d.need--
		d.next = acceptRanges[0]
		b = b[1:]
		if d.need == 0 {
			return d.acc, b, nil
		}
	}
}

// DecodeAppend decodes all of b and appends the scalars to dst,
// returning the extended slice. The Decoder's buffer flags apply: with
// the last-buffer flag clear, a trailing partial sequence is held over
// for the next call.
func (d *Decoder) DecodeAppend(dst []rune, b []byte) []rune {
	for {
		r, rest, err := d.NextRune(b)
		if err != nil {
			return dst
		}
		dst = append(dst, r)
		b = rest
	}
}
