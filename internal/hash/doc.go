// Package hash provides xxHash64 fingerprints used to identify datasets and
// samples in logs and CLI output.
package hash
