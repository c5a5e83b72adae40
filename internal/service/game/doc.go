// Package game implements the hints tracker service: it loads parsed hints
// into a per-user session, classifies submitted words against them and keeps
// the session in storage.
//
// Live state is held in memory per user and rebuilt from storage on a cache
// miss. Word writes are applied to storage by a single background worker in
// submission order; a write that fails is reported as a notice on the next
// view instead of undoing the in-memory change.
package game
