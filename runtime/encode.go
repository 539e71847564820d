package utf8conv

import "io"

// Encoder converts a stream of Unicode scalar values into UTF-8 bytes.
//
// Every scalar always encodes in its canonical (shortest) form.
// Surrogates and values outside the Unicode range encode as the
// replacement character and latch the sticky invalid-sequence flag.
//
// The only state carried between scalars is the pending tail of the
// current byte sequence while the caller pulls bytes one at a time.
// Methods must not be called concurrently; two distinct Encoders are
// independent.
type Encoder struct {
	pending [4]byte
	pos     uint8 // read cursor into pending
	n       uint8 // number of valid bytes in pending
	invalid bool
	last    bool
}

// NewEncoder returns an Encoder set up for single-buffer use.
// Multi-buffer callers flip SetLastBuffer(false) first, or start from a
// zero Encoder.
func NewEncoder() *Encoder {
	return &Encoder{last: true}
}

// SetLastBuffer declares whether the next input buffer is the final
// one. Presenting further input after declaring true is a caller error
// with unspecified output.
func (e *Encoder) SetLastBuffer(last bool) { e.last = last }

// LastBuffer returns the last-buffer flag.
func (e *Encoder) LastBuffer() bool { return e.last }

// HasInvalidSequence reports whether any replacement has occurred since
// the flag was last cleared.
func (e *Encoder) HasInvalidSequence() bool { return e.invalid }

// ClearInvalidSequence resets the sticky invalid-sequence flag.
func (e *Encoder) ClearInvalidSequence() { e.invalid = false }

// Reset returns the Encoder to its initial state: no pending bytes,
// last-buffer set, invalid-sequence flag cleared.
func (e *Encoder) Reset() {
	*e = Encoder{last: true}
}

// NextByte produces the next UTF-8 byte for the scalar stream
// continued by in. It returns the byte and the unconsumed remainder of
// in; the remaining bytes of a multi-byte scalar are drained before the
// next scalar is consumed.
//
// When in is exhausted and no bytes are pending, the error is
// ErrMoreData if another buffer must follow, or io.EOF once the
// last-buffer flag is set.
func (e *Encoder) NextByte(in []rune) (b byte, rest []rune, err error) {
	if e.pos < e.n {
		b = e.pending[e.pos]
		e.pos++
		if e.pos == e.n {
			e.pos, e.n = 0, 0
		}
		return b, in, nil
	}
	if len(in) == 0 {
		if e.last {
			return 0, in, io.EOF
		}
		return 0, in, ErrMoreData
	}

	n, ok := encodeRune(&e.pending, in[0])
	if !ok {
		e.invalid = true
	}
	if n > 1 {
		e.pos, e.n = 1, uint8(n)
	}
	return e.pending[0], in[1:], nil
}

// EncodeAppend encodes all of in and appends the bytes to dst,
// returning the extended slice. Pending bytes from a previous NextByte
// call are drained first.
func (e *Encoder) EncodeAppend(dst []byte, in []rune) []byte {
	for {
		b, rest, err := e.NextByte(in)
		if err != nil {
			return dst
		}
		dst = append(dst, b)
		in = rest
	}
}

// encodeRune writes the canonical UTF-8 encoding of r into buf and
// returns its length. ok is false when r is not a valid scalar value;
// the replacement character is encoded instead.
func encodeRune(buf *[4]byte, r rune) (n int, ok bool) {
	switch {
	case uint32(r) <= rune1Max:
		buf[0] = byte(r)
		return 1, true
	case uint32(r) <= rune2Max:
		buf[0] = t2 | byte(r>>6)
		buf[1] = tx | byte(r)&maskx
		return 2, true
	case surrogateMin <= r && r <= surrogateMax, uint32(r) > maxRune:
		buf[0] = replacePart1
		buf[1] = replacePart2
		buf[2] = replacePart3
		return 3, false
	case uint32(r) <= rune3Max:
		buf[0] = t3 | byte(r>>12)
		buf[1] = tx | byte(r>>6)&maskx
		buf[2] = tx | byte(r)&maskx
		return 3, true
	default:
		buf[0] = t4 | byte(r>>18)
		buf[1] = tx | byte(r>>12)&maskx
		buf[2] = tx | byte(r>>6)&maskx
		buf[3] = tx | byte(r)&maskx
		return 4, true
	}
}

// ensure 'sz' extra bytes in 'b' btw len(b) and cap(b)
func ensure(b []byte, sz int) ([]byte, int) {
	l := len(b)
	c := cap(b)
	if c-l < sz {
		o := make([]byte, (2*c)+sz) // exponential growth
		n := copy(o, b)
		return o[:n+sz], n
	}
	return b[:l+sz], l
}

// AppendRune appends the canonical UTF-8 encoding of r to b. An
// invalid scalar appends the encoding of the replacement character; use
// an Encoder when substitutions need to be observable.
func AppendRune(b []byte, r rune) []byte {
	var buf [4]byte
	n, _ := encodeRune(&buf, r)
	o, i := ensure(b, n)
	copy(o[i:], buf[:n])
	return o
}

// AppendRunes appends the canonical UTF-8 encoding of every scalar in
// rs to b.
func AppendRunes(b []byte, rs []rune) []byte {
	for _, r := range rs {
		b = AppendRune(b, r)
	}
	return b
}
