package utf8conv

const (
	spanOK = iota
	spanMalformed
	spanIncomplete
)

// wellFormed returns the length of the longest well-formed UTF-8 prefix
// of b, without decoding. status is spanOK when the prefix is all of b,
// spanIncomplete when b ends in a truncated (but so far valid)
// sequence starting at n, and spanMalformed when the byte at n cannot
// extend a valid sequence.
func wellFormed(b []byte) (n int, status int) {
	for n < len(b) {
		info := first[b[n]]
		if info == as {
			n++
			continue
		}
		if info == xx {
			return n, spanMalformed
		}
		size := int(info & 7)
		if n+size > len(b) {
			// Check the bytes that are present before reporting the
			// tail as merely incomplete.
			accept := acceptRanges[info>>4]
			for i := n + 1; i < len(b); i++ {
				if b[i] < accept.lo || b[i] > accept.hi {
					return n, spanMalformed
				}
				accept = acceptRanges[0]
			}
			return n, spanIncomplete
		}
		accept := acceptRanges[info>>4]
		for i := n + 1; i < n+size; i++ {
			if b[i] < accept.lo || b[i] > accept.hi {
				return n, spanMalformed
			}
			accept = acceptRanges[0]
		}
		n += size
	}
	return n, spanOK
}

// Valid reports whether b consists entirely of well-formed UTF-8
// sequences. A truncated trailing sequence makes b invalid.
func Valid(b []byte) bool {
	_, status := wellFormed(b)
	return status == spanOK
}

// Sanitize appends a well-formed copy of src to dst, replacing every
// malformed maximal subpart with the replacement character, and returns
// the extended slice together with a flag reporting whether any
// replacement occurred. src is treated as a complete stream.
func Sanitize(dst []byte, src []byte) ([]byte, bool) {
	d := Decoder{last: true}
	for {
		r, rest, err := d.NextRune(src)
		if err != nil {
			return dst, d.invalid
		}
		dst = AppendRune(dst, r)
		src = rest
	}
}

// DecodeRunes decodes src as a complete stream and returns the scalar
// values, substituting the replacement character for malformed input.
// The flag reports whether any replacement occurred.
func DecodeRunes(src []byte) ([]rune, bool) {
	d := Decoder{last: true}
	out := d.DecodeAppend(make([]rune, 0, len(src)), src)
	return out, d.invalid
}

// EncodeRunes encodes src as a complete stream and returns the UTF-8
// bytes, substituting the replacement character for invalid scalars.
// The flag reports whether any replacement occurred.
func EncodeRunes(src []rune) ([]byte, bool) {
	e := Encoder{last: true}
	out := e.EncodeAppend(make([]byte, 0, len(src)), src)
	return out, e.invalid
}
