package transport

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"github.com/xy-planning-network/tlog/logger"
	"go.uber.org/atomic"
)

// A File Transport appends each Record, formatted without colors, as a line in a log file.
//
// Until it knows which file to write to, a File queues Records like a Queued does;
// setting a path flushes them into the file.
type File struct {
	*Queued

	fs      afero.Fs
	onError func(error)

	mu   sync.RWMutex
	path string

	errMu     sync.Mutex
	errs      []error
	reporting atomic.Bool
}

// A FileOptFn is a functional option configuring a File when constructing a new one.
type FileOptFn func(*File)

// WithFs sets the filesystem the File writes to, defaulting to the OS's.
func WithFs(fs afero.Fs) FileOptFn {
	return func(f *File) {
		if fs != nil {
			f.fs = fs
		}
	}
}

// WithOnError sets the func called with any error writing a Record.
// By default, errors are printed to os.Stderr.
//
// fn is called once the Record has been handled, outside of the File's lock,
// so it may log through a Logger the File is registered on.
// Errors raised while fn is running, by fn itself or by another goroutine,
// are printed to os.Stderr instead.
func WithOnError(fn func(error)) FileOptFn {
	return func(f *File) {
		if fn != nil {
			f.onError = fn
		}
	}
}

// NewFile constructs a File appending to the file at path.
// An empty path queues Records until SetLogFilePath is called.
func NewFile(path string, opts ...FileOptFn) *File {
	f := &File{
		Queued:  new(Queued),
		fs:      afero.NewOsFs(),
		onError: printError,
	}

	for _, opt := range opts {
		opt(f)
	}

	f.SetLogFilePath(path)

	return f
}

// LogFilePath returns the path Records are appended to.
func (f *File) LogFilePath() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.path
}

// SetLogFilePath switches to appending to the file at path,
// first writing out any queued Records.
// An empty path queues Records again.
func (f *File) SetLogFilePath(path string) {
	f.mu.Lock()
	f.path = path
	f.mu.Unlock()

	if path == "" {
		f.SetWriter(nil)
		return
	}

	f.SetWriter(func(rec logger.Record) {
		if err := f.append(path, origin(rec).FormatMessage(rec, false)+"\n"); err != nil {
			f.fail(err)
		}
	})
	f.report()
}

// Pipe appends rec to the log file, or queues it if there is no path.
func (f *File) Pipe(rec logger.Record) {
	f.Queued.Pipe(rec)
	f.report()
}

// fail holds on to err until report is called. The Queued's lock may be held.
func (f *File) fail(err error) {
	f.errMu.Lock()
	defer f.errMu.Unlock()
	f.errs = append(f.errs, err)
}

// report hands pending errors to onError.
func (f *File) report() {
	f.errMu.Lock()
	errs := f.errs
	f.errs = nil
	f.errMu.Unlock()

	for _, err := range errs {
		if !f.reporting.CAS(false, true) {
			printError(err)
			continue
		}

		func() {
			defer f.reporting.Store(false)
			f.onError(err)
		}()
	}
}

// append writes line at the end of the file at path,
// creating the file and its directory as needed.
func (f *File) append(path, line string) error {
	if err := f.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	fh, err := f.fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	if _, err := fh.WriteString(line); err != nil {
		fh.Close()
		return fmt.Errorf("writing log file: %w", err)
	}

	if err := fh.Close(); err != nil {
		return fmt.Errorf("closing log file: %w", err)
	}

	return nil
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, "tlog: file transport:", err)
}
