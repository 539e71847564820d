package utf8conv

import "iter"

// Runes returns an iterator over the scalar values decoded from b,
// which continues the byte stream presented to earlier calls.
//
// The sequence stops when b is exhausted; with the last-buffer flag
// clear, iterating over the next buffer resumes mid-sequence. The
// iterator is single-use but cheap to recreate per buffer:
//
//	for i, buf := range buffers {
//		dec.SetLastBuffer(i == len(buffers)-1)
//		for r := range dec.Runes(buf) {
//			// ...
//		}
//	}
func (d *Decoder) Runes(b []byte) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for {
			r, rest, err := d.NextRune(b)
			if err != nil {
				return
			}
			b = rest
			if !yield(r) {
				return
			}
		}
	}
}

// Bytes returns an iterator over the UTF-8 bytes encoded from in,
// which continues the scalar stream presented to earlier calls.
// Pending bytes from an interrupted multi-byte scalar are yielded
// first.
func (e *Encoder) Bytes(in []rune) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for {
			b, rest, err := e.NextByte(in)
			if err != nil {
				return
			}
			in = rest
			if !yield(b) {
				return
			}
		}
	}
}
