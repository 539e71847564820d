package benchmarks

import "strings"

// Benchmark corpora. Sized so a single iteration does meaningful work
// without drowning the timer in setup.
var (
	asciiCorpus = []byte(strings.Repeat("The red fox jumped over the white fence. ", 64))

	multilingualCorpus = []byte(strings.Repeat("寒い,감기,frío,студен,😀🐔🐣元∰⇲ ", 64))

	// noisyCorpus interleaves well-formed text with malformed runs.
	noisyCorpus = func() []byte {
		chunk := append([]byte("good text até here "), 0xF0, 0x82, 0x82, 0xAC, 0xC0, 0x80, 0xFF)
		var b []byte
		for range 64 {
			b = append(b, chunk...)
		}
		return b
	}()
)
