// Package progress reconciles found words against a parsed hints page.
//
// The functions here are pure; State is the one mutable value and it is
// owned by a single caller at a time.
package progress
