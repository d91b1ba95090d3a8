package pbr_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/vbauerster/pbr"
)

type testWriter struct {
	io.Writer
	called bool
}

func (w *testWriter) Write(p []byte) (n int, err error) {
	w.called = true
	return w.Writer.Write(p)
}

func TestProxyWriter(t *testing.T) {
	bar := pbr.On(io.Discard, uint64(len(content)))

	var buf bytes.Buffer
	tw := &testWriter{&buf, false}

	_, err := io.Copy(bar.ProxyWriter(tw), strings.NewReader(content))
	if err != nil {
		t.Errorf("io.Copy: %s\n", err.Error())
	}

	if !tw.called {
		t.Error("Write not called")
	}

	if got := buf.String(); got != content {
		t.Errorf("Expected content: %s, got: %s\n", content, got)
	}

	if got := bar.Current(); got != uint64(len(content)) {
		t.Errorf("Expected current: %d, got: %d\n", len(content), got)
	}
}

type testWriteCloser struct {
	io.Writer
	called bool
}

func (w *testWriteCloser) Close() error {
	w.called = true
	return nil
}

func TestProxyWriteCloser(t *testing.T) {
	bar := pbr.On(io.Discard, uint64(len(content)))

	var buf bytes.Buffer
	tw := &testWriteCloser{&buf, false}

	wc := bar.ProxyWriter(tw)
	_, err := io.Copy(wc, strings.NewReader(content))
	if err != nil {
		t.Errorf("io.Copy: %s\n", err.Error())
	}
	_ = wc.Close()

	if !tw.called {
		t.Error("Close not called")
	}
}

type testWriterReadFrom struct {
	io.Writer
	called bool
}

func (w *testWriterReadFrom) ReadFrom(r io.Reader) (n int64, err error) {
	w.called = true
	return w.Writer.(io.ReaderFrom).ReadFrom(r)
}

type dumbReader struct {
	r io.Reader
}

func (r dumbReader) Read(p []byte) (int, error) {
	return r.r.Read(p)
}

func TestProxyWriterReadFrom(t *testing.T) {
	bar := pbr.On(io.Discard, uint64(len(content)))

	var buf bytes.Buffer
	tw := &testWriterReadFrom{&buf, false}

	_, err := io.Copy(bar.ProxyWriter(tw), dumbReader{strings.NewReader(content)})
	if err != nil {
		t.Errorf("io.Copy: %s\n", err.Error())
	}

	if !tw.called {
		t.Error("ReadFrom not called")
	}

	if got := buf.String(); got != content {
		t.Errorf("Expected content: %s, got: %s\n", content, got)
	}

	if got := bar.Current(); got != uint64(len(content)) {
		t.Errorf("Expected current: %d, got: %d\n", len(content), got)
	}
}
