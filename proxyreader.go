package multibar

import "io"

// Reader is an io.Reader wrapper which advances a bar as bytes flow
// through it. It draws through the coordinator, so reads are subject
// to the same external locking contract as every other Progress call.
type Reader struct {
	io.Reader
	p *Progress
	b Bar
}

// ProxyReader wraps r so that every read advances b by the number of
// bytes read and repaints.
func (p *Progress) ProxyReader(r io.Reader, b Bar) *Reader {
	return &Reader{r, p, b}
}

func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.Reader.Read(p)
	if n > 0 {
		if e := r.p.IncrAndDraw(r.b, int64(n)); e != nil && err == nil {
			err = e
		}
	}
	return n, err
}

// Close closes the underlying reader when it implements io.Closer.
func (r *Reader) Close() error {
	if closer, ok := r.Reader.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
