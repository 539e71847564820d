package utf8conv

import (
	"io"

	"golang.org/x/text/transform"
)

// Replacer is a transform.Transformer that rewrites arbitrary bytes
// into well-formed UTF-8: well-formed sequences pass through unchanged
// and every malformed maximal subpart becomes the replacement
// character. It composes with other x/text transformers via
// transform.Chain.
type Replacer struct {
	dec Decoder
}

var (
	_ transform.Transformer         = (*Replacer)(nil)
	_ transform.SpanningTransformer = (*Replacer)(nil)
)

// NewReplacer returns a Replacer ready for streaming use.
func NewReplacer() *Replacer {
	return &Replacer{}
}

// Transform implements transform.Transformer.
func (t *Replacer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	t.dec.SetLastBuffer(atEOF)
	for {
		saved := t.dec
		r, rest, derr := t.dec.NextRune(src[nSrc:])
		if derr == io.EOF {
			return nDst, nSrc, nil
		}
		if derr != nil {
			// The decoder has taken everything, including any partial
			// sequence now held in its state.
			nSrc = len(src)
			if t.dec.pending() {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, nil
		}
		var buf [4]byte
		n, _ := encodeRune(&buf, r)
		if len(dst)-nDst < n {
			t.dec = saved
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], buf[:n])
		nSrc = len(src) - len(rest)
	}
}

// Span implements transform.SpanningTransformer: it reports the length
// of the leading portion of src that the Replacer would pass through
// unchanged.
func (t *Replacer) Span(src []byte, atEOF bool) (n int, err error) {
	n, status := wellFormed(src)
	switch status {
	case spanOK:
		return n, nil
	case spanIncomplete:
		if atEOF {
			return n, transform.ErrEndOfSpan
		}
		return n, transform.ErrShortSrc
	default:
		return n, transform.ErrEndOfSpan
	}
}

// Reset implements transform.Transformer.
func (t *Replacer) Reset() {
	t.dec = Decoder{}
}

// HasInvalidSequence reports whether any replacement has occurred since
// the transformer was last reset.
func (t *Replacer) HasInvalidSequence() bool {
	return t.dec.HasInvalidSequence()
}
