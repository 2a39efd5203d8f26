package multiindex

import (
	"errors"
	"fmt"
	"iter"
	"maps"

	"github.com/drpcorg/multiindex/multiindex_errors"
)

const uniqueKind = "unique"

// UniqueIndex maps a key projected out of each value to that value.
// At most one value per key; the first writer wins.
type UniqueIndex[K comparable, V comparable] struct {
	c           *Container[V]
	values      map[K]V
	extract     func(V) K
	extractorID uintptr
}

func (u *UniqueIndex[K, V]) Add(value V) bool {
	return u.c.addToAll(u, value)
}

func (u *UniqueIndex[K, V]) AddAll(values ...V) bool {
	return u.c.addAllToAll(u, values)
}

// Remove drops the value stored under key here and from every other
// index. The removed value is returned; ok is false if key is unmapped
// or not a K.
func (u *UniqueIndex[K, V]) Remove(key any) (value V, ok bool) {
	k, ok := narrow[K](key)
	if !ok {
		return value, false
	}
	value, ok = u.values[k]
	if !ok {
		return value, false
	}
	delete(u.values, k)
	u.c.removeFromAll(u, value)
	return value, true
}

func (u *UniqueIndex[K, V]) ContainsKey(key any) bool {
	k, ok := narrow[K](key)
	if !ok {
		return false
	}
	_, ok = u.values[k]
	return ok
}

func (u *UniqueIndex[K, V]) ContainsValue(value any) bool {
	v, ok := narrow[V](value)
	if !ok {
		return false
	}
	for _, stored := range u.values {
		if stored == v {
			return true
		}
	}
	return false
}

// Get never returns an absent value with ok set, absent values are not
// accepted by unique indexes.
func (u *UniqueIndex[K, V]) Get(key K) (value V, ok bool) {
	value, ok = u.values[key]
	return
}

// Keys iterates keys in no particular order.
func (u *UniqueIndex[K, V]) Keys() iter.Seq[K] {
	return maps.Keys(u.values)
}

func (u *UniqueIndex[K, V]) Clear() {
	u.c.clearAll(u)
}

func (u *UniqueIndex[K, V]) IsEmpty() bool {
	return len(u.values) == 0
}

func (u *UniqueIndex[K, V]) Size() int {
	return len(u.values)
}

// Equal holds for unique indexes of the same container with the same
// content and the identical key extractor.
func (u *UniqueIndex[K, V]) Equal(other any) bool {
	o, ok := other.(*UniqueIndex[K, V])
	if !ok || o == nil {
		return false
	}
	return u == o || (u.c == o.c &&
		u.extractorID == o.extractorID &&
		maps.Equal(u.values, o.values))
}

func (u *UniqueIndex[K, V]) Hash() uint64 {
	return indexHash(u.c, uniqueKind, len(u.values))
}

func (u *UniqueIndex[K, V]) String() string {
	return fmt.Sprintf("UniqueIndex: %v", u.values)
}

func (u *UniqueIndex[K, V]) kind() string {
	return uniqueKind
}

func (u *UniqueIndex[K, V]) canAdd(value V) error {
	if isAbsent(value) {
		return multiindex_errors.ErrAbsentValue
	}
	key := u.extract(value)
	if !isComparable(key) {
		return fmt.Errorf("key %v: %w", key, multiindex_errors.ErrUncomparableValue)
	}
	if held, ok := u.values[key]; ok {
		return errors.Join(multiindex_errors.ErrUniqueConstraintViolation,
			fmt.Errorf("key %v, current value %v, new value %v", key, held, value))
	}
	return nil
}

// addLocal runs only after canAdd passed, so value is present and its
// key is free.
func (u *UniqueIndex[K, V]) addLocal(value V) {
	u.values[u.extract(value)] = value
}

func (u *UniqueIndex[K, V]) removeLocal(value V) bool {
	if isAbsent(value) {
		return false
	}
	key := u.extract(value)
	if held, ok := u.values[key]; ok && held == value {
		delete(u.values, key)
		return true
	}
	return false
}

func (u *UniqueIndex[K, V]) clearLocal() {
	clear(u.values)
}
