package multiindex

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/drpcorg/multiindex/multiindex_errors"
	"github.com/drpcorg/multiindex/utils"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

type Options struct {
	// Name labels the container in logs and metrics.
	Name   string
	Logger utils.Logger
	// Metrics turns on the Prometheus counters in metrics.go.
	Metrics bool
}

func (o *Options) SetDefaults() {
	if o.Name == "" {
		o.Name = "default"
	}
	if o.Logger == nil {
		o.Logger = utils.NewDefaultLogger(slog.LevelError)
	}
}

// Container stores values of type V once and keeps all its indexes
// consistent. It holds no data itself, every index is a full copy of
// the same logical set.
type Container[V comparable] struct {
	id   uuid.UUID
	opts Options
	log  utils.Logger

	indexes []internalIndex[V]
	// populated is set by the first accepted add and never reset
	populated bool
}

// New creates an empty container.
func New[V comparable]() *Container[V] {
	return NewWithOptions[V](Options{})
}

func NewWithOptions[V comparable](opts Options) *Container[V] {
	opts.SetDefaults()
	id := uuid.Must(uuid.NewV7())
	return &Container[V]{
		id:   id,
		opts: opts,
		log:  opts.Logger.With("container", opts.Name, "id", id.String()),
	}
}

func (c *Container[V]) ID() uuid.UUID {
	return c.id
}

func (c *Container[V]) Name() string {
	return c.opts.Name
}

// Populated reports whether the index topology is frozen.
func (c *Container[V]) Populated() bool {
	return c.populated
}

// Len returns the number of registered indexes.
func (c *Container[V]) Len() int {
	return len(c.indexes)
}

// Indexes iterates registered indexes in creation order.
func (c *Container[V]) Indexes() iter.Seq[Index[V]] {
	return func(yield func(Index[V]) bool) {
		for _, idx := range c.indexes {
			if !yield(idx) {
				return
			}
		}
	}
}

func (c *Container[V]) CreateSequentialIndex() (*SequentialIndex[V], error) {
	if c == nil {
		return nil, fmt.Errorf("create sequential index: %w", multiindex_errors.ErrNilContainer)
	}
	idx := &SequentialIndex[V]{c: c}
	if err := c.register(idx); err != nil {
		return nil, err
	}
	return idx, nil
}

// CreateUniqueIndex creates an index keyed by extract. Two unique indexes
// use the same extractor only if they were given the very same func value.
func CreateUniqueIndex[K comparable, V comparable](c *Container[V], extract func(V) K) (*UniqueIndex[K, V], error) {
	if c == nil {
		return nil, fmt.Errorf("create unique index: %w", multiindex_errors.ErrNilContainer)
	}
	if extract == nil {
		return nil, fmt.Errorf("create unique index: %w", multiindex_errors.ErrNilKeyExtractor)
	}
	idx := &UniqueIndex[K, V]{
		c:           c,
		values:      make(map[K]V),
		extract:     extract,
		extractorID: funcIdentity(extract),
	}
	if err := c.register(idx); err != nil {
		return nil, err
	}
	return idx, nil
}

func (c *Container[V]) register(idx internalIndex[V]) error {
	if c.populated {
		c.count(IndexCreations, idx.kind(), "rejected")
		c.log.Warn("index creation refused, container holds data", "kind", idx.kind())
		return fmt.Errorf("create %s index: %w", idx.kind(), multiindex_errors.ErrContainerPopulated)
	}
	c.indexes = append(c.indexes, idx)
	c.count(IndexCreations, idx.kind(), "created")
	c.log.Debug("index created", "kind", idx.kind(), "position", len(c.indexes)-1)
	return nil
}

// RemoveIndex detaches idx. It keeps its data and works standalone from
// now on; the other indexes no longer see its changes and vice versa.
func (c *Container[V]) RemoveIndex(idx Index[V]) error {
	if isAbsent(idx) {
		return fmt.Errorf("remove index: %w", multiindex_errors.ErrNilIndex)
	}
	in, ok := idx.(internalIndex[V])
	if !ok {
		return fmt.Errorf("remove index: %w", multiindex_errors.ErrIndexNotRegistered)
	}
	pos := c.position(in)
	if pos < 0 {
		return fmt.Errorf("remove %s index: %w", in.kind(), multiindex_errors.ErrIndexNotRegistered)
	}
	c.indexes = slices.Delete(c.indexes, pos, pos+1)
	c.count(IndexDetaches, in.kind())
	c.log.Debug("index detached", "kind", in.kind(), "size", in.Size())
	return nil
}

func (c *Container[V]) position(idx internalIndex[V]) int {
	return slices.Index(c.indexes, idx)
}

// participants returns the indexes an operation started at origin must
// reach: all registered ones, or origin alone once it was detached.
func (c *Container[V]) participants(origin internalIndex[V]) ([]internalIndex[V], bool) {
	if c.position(origin) < 0 {
		return []internalIndex[V]{origin}, false
	}
	return c.indexes, true
}

// addToAll checks value against every participant first and stores it
// only if none objected. No rollback is ever needed.
func (c *Container[V]) addToAll(origin internalIndex[V], value V) bool {
	if !isComparable(value) {
		c.count(AddResults, "rejected")
		c.log.Debug("add rejected", "err", multiindex_errors.ErrUncomparableValue, "type", fmt.Sprintf("%T", value))
		return false
	}
	targets, attached := c.participants(origin)
	for _, idx := range targets {
		if err := idx.canAdd(value); err != nil {
			c.count(AddResults, "rejected")
			c.log.Debug("add rejected", "index", idx.kind(), "err", err)
			return false
		}
	}
	for _, idx := range targets {
		idx.addLocal(value)
	}
	if attached {
		c.populated = true
	}
	c.count(AddResults, "accepted")
	return true
}

func (c *Container[V]) addAllToAll(origin internalIndex[V], values []V) (added bool) {
	for _, value := range values {
		if c.addToAll(origin, value) {
			added = true
		}
	}
	return
}

// removeFromAll propagates the removal of value to every participant
// but origin, which already removed it.
func (c *Container[V]) removeFromAll(origin internalIndex[V], value V) {
	targets, _ := c.participants(origin)
	for _, idx := range targets {
		if idx == origin {
			continue
		}
		idx.removeLocal(value)
	}
	c.count(Removals)
}

func (c *Container[V]) clearAll(origin internalIndex[V]) {
	targets, _ := c.participants(origin)
	for _, idx := range targets {
		idx.clearLocal()
	}
	c.count(Clears)
}

// count bumps vec for this container when metrics are on.
func (c *Container[V]) count(vec *prometheus.CounterVec, labels ...string) {
	if !c.opts.Metrics {
		return
	}
	vec.WithLabelValues(append([]string{c.opts.Name}, labels...)...).Inc()
}
