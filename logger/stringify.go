package logger

import (
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// maxDepth bounds how far normalize descends into nested values.
	maxDepth = 32

	// maxCauses bounds how many wrapped errors are rendered.
	maxCauses = 8

	circular  = "[Circular]"
	truncated = "[Truncated]"
)

// stackTracer is implemented by errors created with github.com/pkg/errors.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// errorData is the plain form an error is rendered as.
type errorData struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
	Cause   any    `json:"cause,omitempty"`
}

// StringifyArgs renders args separated by single spaces.
//
// Each arg is rendered by what it is:
//   - strings as they are
//   - nil values, typed or not, as "nil"
//   - a *regexp.Regexp as /pattern/
//   - arbitrary-precision numbers from math/big as decimals
//   - errors as JSON holding their type name, message, stack (if captured) and cause
//   - booleans, numbers and other scalars as fmt renders them
//   - everything else as JSON
//
// StringifyArgs never panics. Values JSON cannot represent,
// such as cyclic structures, NaN or channels, are replaced with a best-effort rendering.
func StringifyArgs(args ...any) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = stringify(arg)
	}

	return strings.Join(parts, " ")
}

func stringify(arg any) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprintf("%%!v(PANIC=%v)", r)
		}
	}()

	if isNil(arg) {
		return "nil"
	}

	switch v := arg.(type) {
	case string:
		return v
	case *regexp.Regexp:
		return "/" + v.String() + "/"
	case *big.Int, *big.Float, *big.Rat:
		return bigText(v)
	case error:
		return toJSON(newErrorData(v, 0))
	}

	switch reflect.TypeOf(arg).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return fmt.Sprint(arg)
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return fmt.Sprintf("%T", arg)
	}

	return toJSON(arg)
}

// isNil reports whether v is nil or holds a nil pointer, map, slice, func, chan or interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// bigText renders the math/big types as plain decimals.
func bigText(v any) string {
	switch n := v.(type) {
	case *big.Int:
		return n.String()
	case *big.Float:
		return n.Text('g', -1)
	case *big.Rat:
		return n.RatString()
	default:
		return fmt.Sprint(v)
	}
}

func newErrorData(err error, depth int) errorData {
	data := errorData{
		Name:    reflect.TypeOf(err).String(),
		Message: err.Error(),
	}

	if st, ok := err.(stackTracer); ok {
		data.Stack = strings.TrimSpace(fmt.Sprintf("%+v", st.StackTrace()))
	}

	if cause := errors.Unwrap(err); cause != nil && !isNil(cause) {
		if depth+1 < maxCauses {
			data.Cause = newErrorData(cause, depth+1)
		} else {
			data.Cause = truncated
		}
	}

	return data
}

// toJSON encodes v, normalizing it first if it holds errors,
// which encoding/json renders without their message, or if encoding/json cannot.
func toJSON(v any) string {
	if !containsError(reflect.ValueOf(v), make(map[uintptr]bool), 0) {
		if s, ok := tryMarshal(v); ok {
			return s
		}
	}

	if s, ok := tryMarshal(normalize(reflect.ValueOf(v), make(map[uintptr]bool), 0)); ok {
		return s
	}

	return fmt.Sprintf("%+v", v)
}

// tryMarshal reports whether v could be encoded,
// treating a panicking json.Marshaler as a failure.
func tryMarshal(v any) (s string, ok bool) {
	defer func() {
		if recover() != nil {
			s, ok = "", false
		}
	}()

	b, err := json.Marshal(v)
	if err != nil {
		return "", false
	}

	return string(b), true
}

// containsError reports whether an error is reachable from v
// through the pointers, interfaces, maps, slices, arrays and exported fields encoding/json visits.
func containsError(v reflect.Value, seen map[uintptr]bool, depth int) bool {
	if !v.IsValid() || depth > maxDepth {
		return false
	}

	if v.CanInterface() {
		if err, ok := v.Interface().(error); ok && !isNil(err) {
			return true
		}
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice:
		if v.IsNil() {
			return false
		}

		if v.Kind() != reflect.Slice || v.Len() > 0 {
			p := v.Pointer()
			if seen[p] {
				return false
			}
			seen[p] = true
		}

		switch v.Kind() {
		case reflect.Ptr:
			return containsError(v.Elem(), seen, depth+1)
		case reflect.Map:
			iter := v.MapRange()
			for iter.Next() {
				if containsError(iter.Value(), seen, depth+1) {
					return true
				}
			}
			return false
		default:
			return containsErrorList(v, seen, depth)
		}

	case reflect.Interface:
		if v.IsNil() {
			return false
		}

		return containsError(v.Elem(), seen, depth+1)

	case reflect.Array:
		return containsErrorList(v, seen, depth)

	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).PkgPath != "" {
				continue
			}

			if containsError(v.Field(i), seen, depth+1) {
				return true
			}
		}
	}

	return false
}

func containsErrorList(v reflect.Value, seen map[uintptr]bool, depth int) bool {
	for i := 0; i < v.Len(); i++ {
		if containsError(v.Index(i), seen, depth+1) {
			return true
		}
	}

	return false
}

// normalize rebuilds v out of values encoding/json always accepts.
// Pointers already being visited are replaced by a marker, breaking cycles.
func normalize(v reflect.Value, seen map[uintptr]bool, depth int) any {
	if !v.IsValid() {
		return nil
	}

	if depth > maxDepth {
		return truncated
	}

	if v.CanInterface() {
		switch x := v.Interface().(type) {
		case *regexp.Regexp:
			if x != nil {
				return "/" + x.String() + "/"
			}
		case *big.Int, *big.Float, *big.Rat:
			if !isNil(x) {
				return bigText(x)
			}
		case error:
			if !isNil(x) {
				return safeErrorData(x)
			}
		case encoding.TextMarshaler:
			if !isNil(x) {
				if b, err := safeMarshalText(x); err == nil {
					return string(b)
				}
			}
		}
	}

	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return nil
		}

		p := v.Pointer()
		if seen[p] {
			return circular
		}
		seen[p] = true
		defer delete(seen, p)

		return normalize(v.Elem(), seen, depth+1)

	case reflect.Interface:
		if v.IsNil() {
			return nil
		}

		return normalize(v.Elem(), seen, depth+1)

	case reflect.Map:
		if v.IsNil() {
			return nil
		}

		p := v.Pointer()
		if seen[p] {
			return circular
		}
		seen[p] = true
		defer delete(seen, p)

		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out[mapKey(iter.Key())] = normalize(iter.Value(), seen, depth+1)
		}

		return out

	case reflect.Slice:
		if v.IsNil() {
			return nil
		}

		if v.Len() > 0 {
			p := v.Pointer()
			if seen[p] {
				return circular
			}
			seen[p] = true
			defer delete(seen, p)
		}

		return normalizeList(v, seen, depth)

	case reflect.Array:
		return normalizeList(v, seen, depth)

	case reflect.Struct:
		t := v.Type()
		out := make(map[string]any, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.PkgPath != "" {
				continue
			}

			name := f.Name
			if tag, ok := f.Tag.Lookup("json"); ok {
				tagName := strings.Split(tag, ",")[0]
				if tagName == "-" {
					continue
				}
				if tagName != "" {
					name = tagName
				}
			}

			out[name] = normalize(v.Field(i), seen, depth+1)
		}

		return out

	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}

		return f

	case reflect.Bool:
		return v.Bool()

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint()

	case reflect.String:
		return v.String()

	case reflect.Complex64, reflect.Complex128:
		return fmt.Sprint(v.Complex())

	default:
		return v.Type().String()
	}
}

func normalizeList(v reflect.Value, seen map[uintptr]bool, depth int) []any {
	out := make([]any, v.Len())
	for i := range out {
		out[i] = normalize(v.Index(i), seen, depth+1)
	}

	return out
}

// mapKey renders a map key the way encoding/json would for the common cases.
func mapKey(k reflect.Value) string {
	switch k.Kind() {
	case reflect.String:
		return k.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10)
	}

	if k.CanInterface() {
		return fmt.Sprint(k.Interface())
	}

	return k.Type().String()
}

// safeErrorData is newErrorData for errors whose methods may panic.
func safeErrorData(err error) (data any) {
	defer func() {
		if r := recover(); r != nil {
			data = fmt.Sprintf("%%!v(PANIC=%v)", r)
		}
	}()

	return newErrorData(err, 0)
}

func safeMarshalText(m encoding.TextMarshaler) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("marshal text: %v", r)
		}
	}()

	return m.MarshalText()
}
