// Package sim provides the core set-associative cache simulation engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - config.go: cache geometry (size, block size, associativity) and validation
//   - engine.go: the access loop, hit detection, and miss classification
//   - policy.go: the replacement policy variants (LRU, FIFO, Random)
//
// # Architecture
//
// The sim package defines the engine and its interfaces; address production
// lives in sub-packages:
//   - sim/pattern/: synthetic address generators (sequential, random, stride, looping)
//   - sim/trace/: trace file parsing for replaying recorded address streams
//
// The engine is single-threaded and strictly ordered: every call to Access
// advances a logical clock by one, and replacement metadata and miss
// classification depend on that order. Callers that drive the engine from
// multiple goroutines must serialize externally.
//
// # Key Interfaces
//
//   - AddressSource: lazy, restartable stream of addresses feeding Step
//   - ReplacementPolicy: victim selection and recency bookkeeping per set
package sim
