// Package memfs implements an in-memory simulation of a hierarchical
// file store. It is intended for unit-testing code that performs
// file-system operations without touching a real disk.
//
// The entire store is a single flat mapping from normalized path strings
// to entries; directories are inferred from path prefixes rather than
// tracked as a tree. Each test constructs its own Store, so there is no
// shared state between tests.
package memfs
