package purefn

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"reflect"
	"runtime"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ErrUnhashableKey is returned when an argument cannot be part of a cache key.
var ErrUnhashableKey = errors.New("unhashable cache key")

// hashCheck is never written; indexing it only makes the runtime hash the key.
var hashCheck = map[any]struct{}{}

// newArgKey snapshots args into a cache key.
//
// The slice is copied so a caller mutating its own slice after the call cannot
// rewrite a stored key. Elements are compared with ==, so pointers key by identity.
func newArgKey(args []any) (key []any, err error) {
	key = make([]any, len(args))
	copy(key, args)

	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtime.Error)
			if !ok || !strings.Contains(rerr.Error(), "unhashable") {
				panic(r)
			}
			key = nil
			err = fmt.Errorf("%w: %w", ErrUnhashableKey, rerr)
		}
	}()
	for _, k := range key {
		if _, ok := hashCheck[k]; ok {
			panic("purefn: hashCheck map must stay empty")
		}
	}
	return key, nil
}

// partitionHash hashes key for shard selection.
//
// It walks each dynamic value with reflect and never calls methods, so values
// equal under == hash alike. Reference kinds hash by address.
func partitionHash(key []any) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, k := range key {
		hashValue(d, reflect.ValueOf(k), &buf)
	}
	return d.Sum64()
}

func hashValue(d *xxhash.Digest, v reflect.Value, buf *[8]byte) {
	if !v.IsValid() {
		_, _ = d.WriteString("<nil>\x00")
		return
	}
	_, _ = d.WriteString(v.Type().String())
	_, _ = d.Write([]byte{0})
	hashData(d, v, buf)
}

// hashData writes the contents of v; the type is already fixed by the caller.
func hashData(d *xxhash.Digest, v reflect.Value, buf *[8]byte) {
	word := func(u uint64) {
		binary.LittleEndian.PutUint64(buf[:], u)
		_, _ = d.Write(buf[:])
	}
	float := func(f float64) {
		if f == 0 {
			f = 0
		}
		word(math.Float64bits(f))
	}

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			word(1)
		} else {
			word(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		word(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		word(v.Uint())
	case reflect.Float32, reflect.Float64:
		float(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		float(real(c))
		float(imag(c))
	case reflect.String:
		word(uint64(v.Len()))
		_, _ = d.WriteString(v.String())
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		word(uint64(v.Pointer()))
	case reflect.Interface:
		hashValue(d, v.Elem(), buf)
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			hashData(d, v.Index(i), buf)
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if t.Field(i).Name == "_" {
				continue
			}
			hashData(d, v.Field(i), buf)
		}
	}
}
