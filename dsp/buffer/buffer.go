package buffer

// Buffer wraps a reusable float64 slice.
type Buffer struct {
	samples []float64
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float64, length)}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Resize sets the length to n, reusing existing capacity when possible.
// Elements exposed beyond the previous length are zeroed.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n > cap(b.samples) {
		s := make([]float64, n)
		copy(s, b.samples)
		b.samples = s
		return
	}
	b.samples = b.samples[:n]
	if n > oldLen {
		clear(b.samples[oldLen:])
	}
}

// Halves returns the two equal halves of the buffer. An odd trailing sample
// belongs to neither.
func (b *Buffer) Halves() (lo, hi []float64) {
	h := len(b.samples) / 2
	return b.samples[:h], b.samples[h : 2*h]
}
