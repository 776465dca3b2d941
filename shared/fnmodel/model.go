package fnmodel

import (
	"errors"
	"reflect"
	"runtime"
	"strings"
)

// ErrNotCallable is returned when a wrapper is constructed around a nil target.
var ErrNotCallable = errors.New("the first argument must be callable")

// Metadata mirrors the identity of a wrapped function for introspection.
// It is copied once when the wrapper is built and never revisited.
type Metadata struct {
	Name   string
	Doc    string
	Module string
}

// Describe derives Metadata from the runtime symbol of fn.
//
// For "github.com/acme/pkg.Fib" it returns Name "Fib" and Module "github.com/acme/pkg".
// Closures keep their compiler-generated suffix, e.g. "TestX.func1"; method
// values drop theirs, so t.First is named "(*T).First".
// Doc is always empty since Go keeps no doc strings at runtime.
func Describe(fn any, fallbackName string) Metadata {
	meta := Metadata{Name: fallbackName}
	if fn == nil {
		return meta
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return meta
	}
	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return meta
	}
	full := strings.TrimSuffix(rf.Name(), "-fm")
	slash := strings.LastIndex(full, "/")
	dot := strings.Index(full[slash+1:], ".")
	if dot < 0 {
		meta.Name = full
		return meta
	}
	dot += slash + 1
	meta.Module = full[:dot]
	meta.Name = full[dot+1:]
	return meta
}

// Merge overlays the non-empty fields of override on m.
func (m Metadata) Merge(override Metadata) Metadata {
	if override.Name != "" {
		m.Name = override.Name
	}
	if override.Doc != "" {
		m.Doc = override.Doc
	}
	if override.Module != "" {
		m.Module = override.Module
	}
	return m
}
