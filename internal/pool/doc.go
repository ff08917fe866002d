// Package pool provides sync.Pool backed buffers for dataset files and the
// float64 storage of design matrices, which are rebuilt on every drag event.
package pool
