package utf8conv

import (
	"bytes"
	"io"
	"testing"
	"unicode/utf8"
)

// encodeBuffers feeds bufs to e as consecutive input buffers, setting
// the last-buffer flag on the final one, and collects every encoded
// byte.
func encodeBuffers(tb testing.TB, e *Encoder, bufs ...[]rune) []byte {
	tb.Helper()
	var out []byte
	for i, buf := range bufs {
		e.SetLastBuffer(i == len(bufs)-1)
		in := buf
		for {
			b, rest, err := e.NextByte(in)
			if err == ErrMoreData {
				break
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				tb.Fatalf("NextByte error: %v", err)
			}
			out = append(out, b)
			in = rest
		}
	}
	return out
}

func TestEncodeBoundaryScalars(t *testing.T) {
	cases := []struct {
		r    rune
		want []byte
	}{
		{0x0000, []byte{0x00}},
		{0x007F, []byte{0x7F}},
		{0x0080, []byte{0xC2, 0x80}},
		{0x07FF, []byte{0xDF, 0xBF}},
		{0x0800, []byte{0xE0, 0xA0, 0x80}},
		{0xFFFF, []byte{0xEF, 0xBF, 0xBF}},
		{0x10000, []byte{0xF0, 0x90, 0x80, 0x80}},
		{0x10FFFF, []byte{0xF4, 0x8F, 0xBF, 0xBF}},
		{0x20AC, []byte{0xE2, 0x82, 0xAC}},
		{0x1F600, []byte{0xF0, 0x9F, 0x98, 0x80}},
	}
	for _, tc := range cases {
		var e Encoder
		got := encodeBuffers(t, &e, []rune{tc.r})
		if !bytes.Equal(got, tc.want) {
			t.Errorf("encode(%U) = % X, want % X", tc.r, got, tc.want)
		}
		if e.HasInvalidSequence() {
			t.Errorf("invalid flag set for %U", tc.r)
		}
	}
}

func TestEncodeInvalidScalars(t *testing.T) {
	replacement := []byte{0xEF, 0xBF, 0xBD}
	for _, r := range []rune{0xD800, 0xDABC, 0xDFFF, 0x110000, -1, 1 << 30} {
		var e Encoder
		got := encodeBuffers(t, &e, []rune{r})
		if !bytes.Equal(got, replacement) {
			t.Errorf("encode(%#x) = % X, want % X", r, got, replacement)
		}
		if !e.HasInvalidSequence() {
			t.Errorf("invalid flag clear for %#x", r)
		}
	}
}

// TestNextBytePendingDrain verifies that the pending bytes of a
// multi-byte scalar are delivered before any new input is consumed,
// including across an empty buffer.
func TestNextBytePendingDrain(t *testing.T) {
	var e Encoder
	e.SetLastBuffer(false)

	in := []rune{0x20AC}
	b, rest, err := e.NextByte(in)
	if err != nil || b != 0xE2 || len(rest) != 0 {
		t.Fatalf("NextByte = %#x, %d left, %v", b, len(rest), err)
	}

	// The two remaining bytes arrive without any new input.
	for _, want := range []byte{0x82, 0xAC} {
		b, _, err = e.NextByte(nil)
		if err != nil || b != want {
			t.Fatalf("NextByte = %#x, %v; want %#x", b, err, want)
		}
	}

	if _, _, err = e.NextByte(nil); err != ErrMoreData {
		t.Fatalf("expected ErrMoreData, got %v", err)
	}
	e.SetLastBuffer(true)
	if _, _, err = e.NextByte(nil); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestEncodeMultiBuffer(t *testing.T) {
	var e Encoder
	got := encodeBuffers(t, &e, []rune("ab"), []rune("c"), []rune("d\n"))
	if !bytes.Equal(got, []byte("abcd\n")) {
		t.Fatalf("encoded %q", got)
	}
}

func TestEncodeAppend(t *testing.T) {
	e := NewEncoder()
	got := e.EncodeAppend(nil, []rune("héllo, 世界"))
	if !bytes.Equal(got, []byte("héllo, 世界")) {
		t.Fatalf("EncodeAppend = %q", got)
	}
	if e.HasInvalidSequence() {
		t.Fatal("invalid flag set on valid input")
	}
}

func TestAppendRune(t *testing.T) {
	var b []byte
	for _, r := range "a¢€😀" {
		b = AppendRune(b, r)
	}
	if !bytes.Equal(b, []byte("a¢€😀")) {
		t.Fatalf("AppendRune = %q", b)
	}

	// Matches the standard library for every valid scalar.
	for _, r := range []rune{0, 0x7F, 0x80, 0x7FF, 0x800, 0xFFFF, 0x10000, 0x10FFFF} {
		if got, want := AppendRune(nil, r), utf8.AppendRune(nil, r); !bytes.Equal(got, want) {
			t.Errorf("AppendRune(%U) = % X, want % X", r, got, want)
		}
	}

	// Invalid scalars append the replacement character.
	if got := AppendRune(nil, 0xD800); !bytes.Equal(got, []byte{0xEF, 0xBF, 0xBD}) {
		t.Errorf("AppendRune(surrogate) = % X", got)
	}
}

func TestAppendRunes(t *testing.T) {
	got := AppendRunes([]byte("x: "), []rune("π≈3"))
	if !bytes.Equal(got, []byte("x: π≈3")) {
		t.Fatalf("AppendRunes = %q", got)
	}
}

func TestBytesIterator(t *testing.T) {
	var e Encoder
	var out []byte
	bufs := [][]rune{[]rune("寒"), []rune("い")}
	for i, buf := range bufs {
		e.SetLastBuffer(i == len(bufs)-1)
		for b := range e.Bytes(buf) {
			out = append(out, b)
		}
	}
	if !bytes.Equal(out, []byte("寒い")) {
		t.Fatalf("Bytes iterator produced %q", out)
	}
}

// TestRoundTripAllScalars drives every scalar value through encode and
// back through decode.
func TestRoundTripAllScalars(t *testing.T) {
	var d Decoder
	var buf [4]byte
	for r := rune(0); r <= maxRune; r++ {
		if surrogateMin <= r && r <= surrogateMax {
			continue
		}
		n, ok := encodeRune(&buf, r)
		if !ok {
			t.Fatalf("encodeRune rejected %U", r)
		}
		d.Reset()
		got, rest, err := d.NextRune(buf[:n])
		if err != nil || len(rest) != 0 || got != r {
			t.Fatalf("decode(encode(%U)) = %U, %d left, %v", r, got, len(rest), err)
		}
		if d.HasInvalidSequence() {
			t.Fatalf("invalid flag set for %U", r)
		}
	}
}

// TestCanonicalRoundTrip re-encodes decoded well-formed input and
// expects the original bytes.
func TestCanonicalRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain ascii\n",
		"寒い,감기,frío,студен",
		"😀🐔🐣🇧🇷🇨🇦元∰⇲",
		"\x00\u007F\u0080\u07FF\u0800\uFFFF\U00010000\U0010FFFF",
	}
	for _, s := range inputs {
		runes, bad := DecodeRunes([]byte(s))
		if bad {
			t.Fatalf("%q flagged invalid", s)
		}
		out, bad := EncodeRunes(runes)
		if bad {
			t.Fatalf("%q flagged invalid on encode", s)
		}
		if string(out) != s {
			t.Fatalf("round trip of %q produced %q", s, out)
		}
	}
}

func TestEncoderReset(t *testing.T) {
	var e Encoder
	e.SetLastBuffer(false)
	if _, _, err := e.NextByte([]rune{0xD800}); err != nil {
		t.Fatalf("NextByte error: %v", err)
	}
	if !e.HasInvalidSequence() {
		t.Fatal("invalid flag clear after surrogate")
	}

	e.Reset()
	if e.HasInvalidSequence() || !e.LastBuffer() {
		t.Fatal("Reset did not restore the initial state")
	}
	// No pending bytes survive a Reset.
	if _, _, err := e.NextByte(nil); err != io.EOF {
		t.Fatalf("expected io.EOF after Reset, got %v", err)
	}
}
