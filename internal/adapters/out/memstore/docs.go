// Package memstore provides the in-memory order repository. It is the sole
// owner of all order state: callers work with snapshots, and concurrent
// transitions serialize on a single check-and-set under the store's lock.
package memstore
