// Package logging builds the application logger. A TUI owns the terminal,
// so logs go to a file.
package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Deferred is a logger that can be used before its file is known. Entries
// are held in memory until Open attaches the destination.
type Deferred struct {
	*logrus.Logger
	out *deferredWriter
}

type deferredWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
	dst io.Writer
}

func (w *deferredWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.dst == nil {
		return w.buf.Write(p)
	}
	return w.dst.Write(p)
}

// attach flushes held entries to dst and sends everything after them there
func (w *deferredWriter) attach(dst io.Writer) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := w.buf.WriteTo(dst)
	w.dst = dst
	return err
}

// NewDeferred creates a logger at debug level that buffers until Open
func NewDeferred() *Deferred {
	out := &deferredWriter{}
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	log.SetLevel(logrus.DebugLevel)
	log.SetOutput(out)
	return &Deferred{Logger: log, out: out}
}

// Open sets the level and attaches the log file at path. An empty path
// discards output, including anything buffered so far. The returned closer
// releases the file.
func (d *Deferred) Open(path, level string) (io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	if path == "" {
		d.SetLevel(lvl)
		return nopCloser{}, d.out.attach(io.Discard)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create log directory")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", path)
	}
	d.SetLevel(lvl)
	if err := d.out.attach(f); err != nil {
		f.Close()
		return nil, errors.Wrap(err, "flush buffered log entries")
	}
	return f, nil
}

// New creates a logger writing to path at the named level. An empty path
// discards output. The returned closer releases the file.
func New(path, level string) (*logrus.Logger, io.Closer, error) {
	d := NewDeferred()
	closer, err := d.Open(path, level)
	if err != nil {
		return nil, nil, err
	}
	return d.Logger, closer, nil
}

// ParseLevel maps a config level name to a logrus level. Empty means info.
func ParseLevel(level string) (logrus.Level, error) {
	if level == "" {
		return logrus.InfoLevel, nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid log level %q", level)
	}
	return lvl, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
