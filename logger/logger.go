package logger

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/xy-planning-network/tlog"
)

const (
	DefaultLogLevel             = tlog.LevelLog
	DefaultEnableColor          = true
	DefaultTimestampFormat      = "15:04:05.000"
	DefaultConsistentLevelWidth = false
	DefaultPrintLevel           = true
)

// options holds what a Logger was configured with.
// A nil field is inherited from the parent.
type options struct {
	logLevel             *tlog.LogLevel
	prefix               *string
	enableColor          *bool
	timestampFormat      *string
	consistentLevelWidth *bool
	printLevel           *bool
	clock                func() time.Time

	transports []entry
	parent     *Logger
}

// entry pairs a Transport with the id its unsubscribe func removes.
type entry struct {
	id uint64
	t  Transport
}

// A Logger writes leveled messages to its Transports and to those of its ancestors.
//
// Each setting a Logger is not configured with is read from its parent every time it is needed,
// so changing a parent changes every descendant that has not set that value itself.
//
// A Logger is safe for concurrent use.
type Logger struct {
	mu     sync.RWMutex
	opts   options
	nextID uint64
}

// New constructs a root Logger.
//
// Without options, a Logger logs at [tlog.LevelLog] and above,
// with colors enabled, to no Transports.
func New(opts ...LoggerOptFn) *Logger {
	l := new(Logger)
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// NewWithPrefix constructs a root Logger with the given prefix.
func NewWithPrefix(prefix string, opts ...LoggerOptFn) *Logger {
	return New(append([]LoggerOptFn{WithPrefix(prefix)}, opts...)...)
}

// CreateLogger constructs a child of l configured by opts.
//
// Values set by opts are copied into the child once;
// anything else is inherited from l as it changes.
func (l *Logger) CreateLogger(opts ...LoggerOptFn) *Logger {
	all := make([]LoggerOptFn, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithParent(l))

	return New(all...)
}

// CreatePrefixedLogger is shorthand for l.CreateLogger(WithPrefix(prefix)).
func (l *Logger) CreatePrefixedLogger(prefix string) *Logger {
	return l.CreateLogger(WithPrefix(prefix))
}

// UseLogger creates a child of l with the given prefix, passes it to fn,
// and returns whatever fn returns.
func UseLogger[T any](l *Logger, prefix string, fn func(*Logger) T) T {
	return fn(l.CreatePrefixedLogger(prefix))
}

// UseLoggerWith creates a child of l configured by opts, passes it to fn,
// and returns whatever fn returns.
func UseLoggerWith[T any](l *Logger, opts []LoggerOptFn, fn func(*Logger) T) T {
	return fn(l.CreateLogger(opts...))
}

// resolve walks from l up through its ancestors,
// returning the first value get finds or def.
func resolve[T any](l *Logger, get func(*options) *T, def T) T {
	for cur := l; cur != nil; {
		cur.mu.RLock()
		val, parent := get(&cur.opts), cur.opts.parent
		cur.mu.RUnlock()

		if val != nil {
			return *val
		}

		cur = parent
	}

	return def
}

// LogLevel returns the threshold messages written to l must pass.
func (l *Logger) LogLevel() tlog.LogLevel {
	return resolve(l, func(o *options) *tlog.LogLevel { return o.logLevel }, DefaultLogLevel)
}

// SetLogLevel overrides the inherited threshold.
func (l *Logger) SetLogLevel(level tlog.LogLevel) {
	level = tlog.NewLogLevel(string(level))

	l.mu.Lock()
	defer l.mu.Unlock()
	l.opts.logLevel = &level
}

// EnableColor reports whether color decorations should be rendered.
func (l *Logger) EnableColor() bool {
	return resolve(l, func(o *options) *bool { return o.enableColor }, DefaultEnableColor)
}

// SetEnableColor overrides the inherited color setting.
func (l *Logger) SetEnableColor(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.opts.enableColor = &enable
}

// TimestampFormat returns the layout used to render Record timestamps.
func (l *Logger) TimestampFormat() string {
	return resolve(l, func(o *options) *string { return o.timestampFormat }, DefaultTimestampFormat)
}

// SetTimestampFormat overrides the inherited timestamp layout.
func (l *Logger) SetTimestampFormat(layout string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.opts.timestampFormat = &layout
}

// ConsistentLevelWidth reports whether level names are padded to a fixed width.
func (l *Logger) ConsistentLevelWidth() bool {
	return resolve(l, func(o *options) *bool { return o.consistentLevelWidth }, DefaultConsistentLevelWidth)
}

// SetConsistentLevelWidth overrides the inherited padding setting.
func (l *Logger) SetConsistentLevelWidth(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.opts.consistentLevelWidth = &enable
}

// PrintLevel reports whether the level is rendered at all.
func (l *Logger) PrintLevel() bool {
	return resolve(l, func(o *options) *bool { return o.printLevel }, DefaultPrintLevel)
}

// SetPrintLevel overrides the inherited level printing setting.
func (l *Logger) SetPrintLevel(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.opts.printLevel = &enable
}

// clock returns the inherited source of the current time.
func (l *Logger) clock() func() time.Time {
	return resolve(l, func(o *options) *func() time.Time {
		if o.clock == nil {
			return nil
		}
		return &o.clock
	}, time.Now)
}

// Prefix returns the prefix set on l itself.
func (l *Logger) Prefix() string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.opts.prefix == nil {
		return ""
	}

	return *l.opts.prefix
}

// SetPrefix replaces the prefix set on l.
func (l *Logger) SetPrefix(prefix string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.opts.prefix = &prefix
}

// Prefixes returns the non-empty prefixes of l's ancestors and l, root first.
func (l *Logger) Prefixes() []string {
	var reversed []string
	for cur := l; cur != nil; cur = cur.Parent() {
		if p := cur.Prefix(); p != "" {
			reversed = append(reversed, p)
		}
	}

	out := make([]string, len(reversed))
	for i, p := range reversed {
		out[len(reversed)-1-i] = p
	}

	return out
}

// Parent returns the Logger l inherits from, if any.
func (l *Logger) Parent() *Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.opts.parent
}

// SetParent replaces the Logger l inherits from.
// A nil parent detaches l, which then falls back to defaults.
//
// SetParent returns [tlog.ErrNotValid] if parent is l or one of its descendants.
func (l *Logger) SetParent(parent *Logger) error {
	for cur := parent; cur != nil; cur = cur.Parent() {
		if cur == l {
			return fmt.Errorf("%w: parent would create a cycle", tlog.ErrNotValid)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.opts.parent = parent

	return nil
}

// IsLevelEnabled reports whether a message written at level would reach any Transport.
//
// Use IsLevelEnabled to avoid building expensive arguments that would be thrown away.
func (l *Logger) IsLevelEnabled(level tlog.LogLevel) bool {
	return l.LogLevel().Enables(level)
}

// Trace writes args at [tlog.LevelTrace].
func (l *Logger) Trace(args ...any) { l.Write(tlog.LevelTrace, args...) }

// Debug writes args at [tlog.LevelDebug].
func (l *Logger) Debug(args ...any) { l.Write(tlog.LevelDebug, args...) }

// Info writes args at [tlog.LevelInfo].
func (l *Logger) Info(args ...any) { l.Write(tlog.LevelInfo, args...) }

// Log writes args at [tlog.LevelLog].
func (l *Logger) Log(args ...any) { l.Write(tlog.LevelLog, args...) }

// Warn writes args at [tlog.LevelWarn].
func (l *Logger) Warn(args ...any) { l.Write(tlog.LevelWarn, args...) }

// Error writes args at [tlog.LevelError].
func (l *Logger) Error(args ...any) { l.Write(tlog.LevelError, args...) }

// Write builds a Record from args and hands it to every Transport of l and its ancestors,
// as long as level is enabled. Otherwise, Write does nothing.
func (l *Logger) Write(level tlog.LogLevel, args ...any) {
	if !l.IsLevelEnabled(level) {
		return
	}

	l.emit(l.BuildRecord(level, args...))
}

// BuildRecord captures the current time, prefixes, and rendered args in a Record.
// BuildRecord does not check whether level is enabled.
func (l *Logger) BuildRecord(level tlog.LogLevel, args ...any) Record {
	now := l.clock()()

	return Record{
		ID:        newRecordID(),
		Time:      now,
		Timestamp: FormatTimestamp(now, l.TimestampFormat()),
		Level:     tlog.NewLogLevel(string(level)),
		Prefixes:  l.Prefixes(),
		Args:      args,
		ArgsText:  StringifyArgs(args...),
		Logger:    l,
	}
}

// emit pipes rec to the Transports of l, in the order they were added,
// then does the same for each ancestor.
// The ancestors are those l had when emit was called,
// even if a Transport detaches l during delivery.
func (l *Logger) emit(rec Record) {
	var chain []*Logger
	for cur := l; cur != nil; cur = cur.Parent() {
		chain = append(chain, cur)
	}

	for _, cur := range chain {
		for _, t := range cur.Transports() {
			pipe(t, rec)
		}
	}
}

// pipe hands rec to t, keeping a panicking Transport from affecting the others.
func pipe(t Transport, rec Record) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "tlog: transport %T panicked: %v\n", t, r)
		}
	}()

	t.Pipe(rec)
}

// Transports returns the Transports registered directly on l.
func (l *Logger) Transports() []Transport {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Transport, len(l.opts.transports))
	for i, e := range l.opts.transports {
		out[i] = e.t
	}

	return out
}

// AddTransport registers t on l, returning a func removing it again.
// Calling the returned func more than once is a no-op.
func (l *Logger) AddTransport(t Transport) (unsubscribe func()) {
	if t == nil {
		return func() {}
	}

	l.mu.Lock()
	id := l.addTransport(t)
	l.mu.Unlock()

	return func() { l.removeID(id) }
}

// Subscribe registers handler to be called with every Record l emits.
// Subscribe returns a func removing the handler again.
func (l *Logger) Subscribe(handler func(Record)) (unsubscribe func()) {
	if handler == nil {
		return func() {}
	}

	return l.AddTransport(TransportFunc(handler))
}

// RemoveTransport removes the first registration of t on l.
// Removing a Transport that is not registered is a no-op.
func (l *Logger) RemoveTransport(t Transport) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, e := range l.opts.transports {
		if sameTransport(e.t, t) {
			l.opts.transports = remove(l.opts.transports, i)
			return
		}
	}
}

// Destroy closes every Transport registered directly on l that implements [io.Closer],
// removes them, and detaches l from its parent.
// Children of l keep their own Transports and keep pointing at l.
//
// Destroy returns the errors returned by closing Transports, if any.
// Calling Destroy again is a no-op.
func (l *Logger) Destroy() error {
	l.mu.Lock()
	entries := l.opts.transports
	l.opts.transports = nil
	l.opts.parent = nil
	l.mu.Unlock()

	var merr *multierror.Error
	for _, e := range entries {
		c, ok := e.t.(io.Closer)
		if !ok {
			continue
		}

		if err := c.Close(); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("closing transport %T: %w", e.t, err))
		}
	}

	return merr.ErrorOrNil()
}

// addTransport appends t, returning its id. The caller must hold l.mu.
func (l *Logger) addTransport(t Transport) uint64 {
	l.nextID++
	l.opts.transports = append(l.opts.transports, entry{id: l.nextID, t: t})
	return l.nextID
}

// removeID drops the entry registered under id, if it is still present.
func (l *Logger) removeID(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, e := range l.opts.transports {
		if e.id == id {
			l.opts.transports = remove(l.opts.transports, i)
			return
		}
	}
}

// remove returns a copy of entries without the element at i,
// leaving any snapshot taken from entries untouched.
func remove(entries []entry, i int) []entry {
	out := make([]entry, 0, len(entries)-1)
	out = append(out, entries[:i]...)
	return append(out, entries[i+1:]...)
}

// sameTransport compares a and b without panicking on uncomparable types, like TransportFunc.
func sameTransport(a, b Transport) (same bool) {
	if a == nil || b == nil {
		return false
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}

	defer func() {
		if recover() != nil {
			same = false
		}
	}()

	return a == b
}
