// Package multiindex provides an in-memory container that stores a set of
// values once and exposes several synchronized views (indexes) over it.
//
// # Overview
//
// A Container keeps an ordered registry of indexes. Two kinds exist:
//
//  1. Sequential index
//     Keeps values in insertion order, duplicates and absent (nil) values
//     are allowed. Removal drops the first equal occurrence; O(n).
//
//  2. Unique index
//     A hash from a key, projected out of the value by a caller supplied
//     extractor, to the value holding it. Lookups are O(1) on average.
//     Only one value per key is allowed; the first writer wins. Absent
//     values are refused since no key can be projected from them.
//
// # Coordination
//
// Every mutating call on an index re-enters its container, which fans the
// operation out to every registered index:
//
//   - Add asks every index whether it can accept the value. Only if all of
//     them agree, the value is stored in all of them. Nothing is written
//     before every check has passed, so a refused add leaves no trace.
//   - AddAll runs Add for each value on its own and reports whether at
//     least one was accepted.
//   - Remove drops the value from the index it was called on and then from
//     every other registered index.
//   - Clear empties every registered index.
//
// # Topology
//
// Indexes must be created before the first value goes in. Once any value
// was accepted the container is populated and CreateSequentialIndex /
// CreateUniqueIndex fail with ErrContainerPopulated. Clearing does not
// reopen the container.
//
// RemoveIndex detaches an index. The detached index keeps its data and
// keeps working on its own, but it no longer takes part in coordination.
//
// # Arguments of any type
//
// Removal and membership calls accept any value. An argument of a
// different type is reported as "not found", never as an error.
//
// V (and K) may be an interface type such as any. Values whose dynamic
// type can't be compared with == (slices, maps, funcs or structs holding
// them) are refused by Add and reported as "not found" by lookups, and a
// key extractor yielding such a key makes its unique index refuse the value.
//
// # Concurrency
//
// None. A container and its indexes are one mutable resource; callers
// serialize access themselves.
//
// # Metrics
//
// Prometheus counters report accepted and rejected adds, removals, clears
// and index creations per container name. See RegisterMetrics.
package multiindex
