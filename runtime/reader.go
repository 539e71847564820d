package utf8conv

import (
	"io"
	"iter"
)

const defaultChunkSize = 4096

// Reader decodes UTF-8 from an io.Reader one scalar at a time. It owns
// a chunk buffer and drives the multi-buffer protocol internally, so a
// sequence split across reads is assembled transparently.
type Reader struct {
	src io.Reader
	dec Decoder
	buf []byte
	cur []byte
	err error // pending read error, delivered after cur drains
}

// NewReader returns a Reader decoding from src with the default chunk
// size.
func NewReader(src io.Reader) *Reader {
	return NewReaderSize(src, defaultChunkSize)
}

// NewReaderSize returns a Reader decoding from src with a chunk buffer
// of at least size bytes.
func NewReaderSize(src io.Reader, size int) *Reader {
	if size < 4 {
		size = 4
	}
	return &Reader{
		src: src,
		buf: make([]byte, size),
	}
}

// ReadRune reads one scalar value. size is the exact number of source
// bytes consumed to produce it, which may span chunk boundaries and may
// exceed the encoded length of the returned rune when malformed input
// was replaced.
//
// ReadRune implements io.RuneReader.
func (r *Reader) ReadRune() (ch rune, size int, err error) {
	for {
		before := len(r.cur)
		ch, rest, derr := r.dec.NextRune(r.cur)
		size += before - len(rest)
		r.cur = rest
		switch derr {
		case nil:
			return ch, size, nil
		case io.EOF:
			return 0, 0, io.EOF
		}

		// Need another chunk.
		if r.err != nil {
			if r.err == io.EOF {
				r.dec.SetLastBuffer(true)
				continue
			}
			return 0, size, r.err
		}
		n, rerr := r.src.Read(r.buf)
		r.cur = r.buf[:n]
		if rerr != nil {
			r.err = rerr
		}
	}
}

// HasInvalidSequence reports whether any replacement has occurred since
// the flag was last cleared.
func (r *Reader) HasInvalidSequence() bool { return r.dec.HasInvalidSequence() }

// ClearInvalidSequence resets the sticky invalid-sequence flag.
func (r *Reader) ClearInvalidSequence() { r.dec.ClearInvalidSequence() }

// Runes returns an iterator over all remaining scalar values. Read
// errors other than io.EOF stop the iteration; they remain observable
// through the next ReadRune call.
func (r *Reader) Runes() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for {
			ch, _, err := r.ReadRune()
			if err != nil {
				return
			}
			if !yield(ch) {
				return
			}
		}
	}
}
