// Package analysis folds classified instruction streams into feature
// reports. Decoding is sequential; classification of an already decoded
// stream can be spread over workers, each owning a private Result that is
// reduced once all workers finish.
package analysis

import "runtime"

const (
	// DefaultChunkSize is the number of instructions handed to a worker.
	DefaultChunkSize = 4096

	// MinParallel is the chunk count below which Parallel folds inline.
	MinParallel = 2
)

// DefaultWorkers is the worker count used when none is configured.
func DefaultWorkers() int { return runtime.NumCPU() }
