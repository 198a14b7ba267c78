// Package input provides the device-facing half of the input layer: the
// Source capability contract implemented by pollable device drivers, and
// the Manager that aggregates any number of prioritized sources behind a
// single query surface.
//
// The layer is poll-driven and single-threaded by design. Once per frame
// the owning loop calls Manager.Poll, which advances every enabled
// source's per-frame transition state; any number of synchronous queries
// may follow before the next poll. Nothing in this package locks, because
// nothing in the expected usage pattern mutates concurrently.
package input
