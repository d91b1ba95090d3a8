package pbr

import "io"

type proxyReader struct {
	io.ReadCloser
	bar *Bar
}

func (x proxyReader) Read(p []byte) (int, error) {
	n, err := x.ReadCloser.Read(p)
	x.bar.Add(uint64(n))
	return n, err
}

type proxyWriterTo struct {
	proxyReader
}

func (x proxyWriterTo) WriteTo(w io.Writer) (int64, error) {
	n, err := x.ReadCloser.(io.WriterTo).WriteTo(w)
	x.bar.Add(uint64(n))
	return n, err
}

// ProxyReader wraps r, so that every read adds read bytes to current.
// Close of the result closes r if it is io.Closer. The bar is not
// finished on EOF, call one of finish methods when done.
func (b *Bar) ProxyReader(r io.Reader) io.ReadCloser {
	if r == nil {
		panic("expected non nil io.Reader")
	}
	rc := toReadCloser(r)
	pr := proxyReader{rc, b}
	if _, ok := r.(io.WriterTo); ok {
		return proxyWriterTo{pr}
	}
	return pr
}

func toReadCloser(r io.Reader) io.ReadCloser {
	if rc, ok := r.(io.ReadCloser); ok {
		return rc
	}
	if _, ok := r.(io.WriterTo); ok {
		return nopReadCloserWriterTo{r}
	}
	return io.NopCloser(r)
}

type nopReadCloserWriterTo struct {
	io.Reader
}

func (nopReadCloserWriterTo) Close() error { return nil }

func (c nopReadCloserWriterTo) WriteTo(w io.Writer) (int64, error) {
	return c.Reader.(io.WriterTo).WriteTo(w)
}
