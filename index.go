package multiindex

import (
	"reflect"
	"unsafe"
)

// Index is a view over the values of a Container.
type Index[V comparable] interface {
	// Add stores value in every index of the container, or in none of
	// them. Returns true if the value has been added.
	Add(value V) bool
	// AddAll adds each value on its own. Returns true if at least one
	// value has been added.
	AddAll(values ...V) bool
	// Clear empties every index of the container.
	Clear()
	IsEmpty() bool
	Size() int
	String() string

	kind() string
}

// internalIndex is the part of an index only the container calls.
// The local steps never re-enter the container.
type internalIndex[V comparable] interface {
	Index[V]

	// canAdd returns nil if value can be stored, the reason otherwise.
	canAdd(value V) error
	addLocal(value V)
	removeLocal(value V) bool
	clearLocal()
}

// narrow converts a loosely typed argument; ok is false on type mismatch
// and for values that can't be compared with ==.
// An untyped nil narrows to the zero value of nil-able types.
func narrow[T any](x any) (t T, ok bool) {
	if t, ok = x.(T); ok {
		return t, isComparable(t)
	}
	if x == nil && nilable[T]() {
		return t, true
	}
	return t, false
}

func nilable[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}

// isAbsent reports whether v is the nil value of a nil-able kind.
func isAbsent(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// isComparable is false when == on v would panic, e.g. a slice held in
// an interface typed V.
func isComparable(v any) bool {
	rv := reflect.ValueOf(v)
	return !rv.IsValid() || rv.Comparable()
}

// funcIdentity returns the address of the closure object behind fn.
// Two func values are identical iff they share it; equal code is not enough.
func funcIdentity[F any](fn F) uintptr {
	return *(*uintptr)(unsafe.Pointer(&fn))
}
