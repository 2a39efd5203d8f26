package multiindex

import (
	"encoding/binary"
	"fmt"
	"iter"
	"slices"

	"github.com/cespare/xxhash"
	"github.com/drpcorg/multiindex/multiindex_errors"
)

const sequentialKind = "sequential"

// SequentialIndex keeps values in insertion order. It has no uniqueness
// constraint of its own and accepts absent values.
type SequentialIndex[V comparable] struct {
	c      *Container[V]
	values []V
}

func (s *SequentialIndex[V]) Add(value V) bool {
	return s.c.addToAll(s, value)
}

func (s *SequentialIndex[V]) AddAll(values ...V) bool {
	return s.c.addAllToAll(s, values)
}

// Remove drops the first occurrence of value here and the same value
// from every other index. Returns false if value was not found.
func (s *SequentialIndex[V]) Remove(value any) bool {
	v, ok := narrow[V](value)
	if !ok || !s.removeLocal(v) {
		return false
	}
	s.c.removeFromAll(s, v)
	return true
}

func (s *SequentialIndex[V]) Contains(value any) bool {
	v, ok := narrow[V](value)
	return ok && slices.Contains(s.values, v)
}

func (s *SequentialIndex[V]) Clear() {
	s.c.clearAll(s)
}

func (s *SequentialIndex[V]) IsEmpty() bool {
	return len(s.values) == 0
}

func (s *SequentialIndex[V]) Size() int {
	return len(s.values)
}

// All iterates values in insertion order.
func (s *SequentialIndex[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := 0; i < len(s.values); i++ {
			if !yield(s.values[i]) {
				return
			}
		}
	}
}

func (s *SequentialIndex[V]) Iterator() *Iterator[V] {
	return &Iterator[V]{values: slices.Clone(s.values), pos: -1}
}

// Equal holds for sequential indexes of the same container with the same
// content in the same order.
func (s *SequentialIndex[V]) Equal(other any) bool {
	o, ok := other.(*SequentialIndex[V])
	if !ok || o == nil {
		return false
	}
	return s == o || (s.c == o.c && slices.Equal(s.values, o.values))
}

func (s *SequentialIndex[V]) Hash() uint64 {
	return indexHash(s.c, sequentialKind, len(s.values))
}

func (s *SequentialIndex[V]) String() string {
	return fmt.Sprintf("SequentialIndex: %v", s.values)
}

func (s *SequentialIndex[V]) kind() string {
	return sequentialKind
}

func (s *SequentialIndex[V]) canAdd(value V) error {
	return nil
}

func (s *SequentialIndex[V]) addLocal(value V) {
	s.values = append(s.values, value)
}

func (s *SequentialIndex[V]) removeLocal(value V) bool {
	i := slices.Index(s.values, value)
	if i < 0 {
		return false
	}
	s.values = slices.Delete(s.values, i, i+1)
	return true
}

func (s *SequentialIndex[V]) clearLocal() {
	clear(s.values)
	s.values = s.values[:0]
}

// Iterator is a read-only cursor over a snapshot of a sequential index.
type Iterator[V comparable] struct {
	values []V
	pos    int
}

func (it *Iterator[V]) Next() bool {
	if it.pos < len(it.values) {
		it.pos++
	}
	return it.pos < len(it.values)
}

// Value is only valid after Next returned true.
func (it *Iterator[V]) Value() V {
	return it.values[it.pos]
}

// Remove always fails, removal must go through the index so that it
// reaches the other indexes too.
func (it *Iterator[V]) Remove() error {
	return fmt.Errorf("remove via iterator: %w", multiindex_errors.ErrUnsupportedOperation)
}

// indexHash is consistent with Equal: equal indexes share container,
// kind and size.
func indexHash[V comparable](c *Container[V], kind string, size int) uint64 {
	h := xxhash.New()
	_, _ = h.Write(c.id[:])
	_, _ = h.Write([]byte(kind))
	_, _ = h.Write(binary.BigEndian.AppendUint64(nil, uint64(size)))
	return h.Sum64()
}
