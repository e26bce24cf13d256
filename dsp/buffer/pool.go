package buffer

import "sync"

// Pool provides sync.Pool-based Buffer reuse.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns a zeroed Buffer with the requested length. Callers return it
// via Put when done.
func (p *Pool) Get(length int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Resize(length)
	clear(b.samples)
	return b
}

// Put returns a Buffer to the pool. The caller must not use it afterwards.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}

// SplitComplex copies the real and imaginary parts of in into a pooled
// buffer. re and im alias b and stay valid until b is returned with Put.
func (p *Pool) SplitComplex(in []complex128) (re, im []float64, b *Buffer) {
	b = p.Get(2 * len(in))
	re, im = b.Halves()
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im, b
}
