package sim

import (
	"fmt"
	"math/bits"
)

// Geometry limits. The original tool exposed cache size as a 1-16 KiB slider
// and associativity as a 1-8 slider; the same bounds apply here.
const (
	MinCacheSizeBytes = 1 << 10
	MaxCacheSizeBytes = 16 << 10
	MinAssociativity  = 1
	MaxAssociativity  = 8
)

// Policy names accepted by Config.Policy.
const (
	PolicyLRU    = "lru"
	PolicyFIFO   = "fifo"
	PolicyRandom = "random"
)

// validPolicies maps accepted replacement policy names.
var validPolicies = map[string]bool{
	PolicyLRU:    true,
	PolicyFIFO:   true,
	PolicyRandom: true,
}

// IsValidPolicy returns true if the given name is a recognized replacement policy.
func IsValidPolicy(name string) bool {
	return validPolicies[name]
}

// Config describes the cache geometry and replacement behavior.
// Loaded from CLI flags or a YAML scenario file; validated once via Validate
// before an Engine is built. A validated Config never fails at access time.
type Config struct {
	CacheSizeBytes int    `yaml:"cache_size_bytes"` // total capacity, power of two in [1KiB, 16KiB]
	BlockSizeBytes int    `yaml:"block_size_bytes"` // cache line size, power of two
	Associativity  int    `yaml:"ways"`             // ways per set, in [1, 8]
	Policy         string `yaml:"policy"`           // "lru", "fifo", or "random"
	Seed           int64  `yaml:"seed"`             // master seed for all randomized behavior
}

// DefaultConfig mirrors the original tool's startup configuration:
// 1 KiB cache, 64-byte blocks, 4-way, LRU.
func DefaultConfig() Config {
	return Config{
		CacheSizeBytes: 1 << 10,
		BlockSizeBytes: 64,
		Associativity:  4,
		Policy:         PolicyLRU,
		Seed:           42,
	}
}

// ConfigError reports a rejected configuration. The simulation state of any
// engine the config was offered to is left unchanged.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// Validate checks the geometry constraints:
// both sizes are powers of two, the cache divides evenly into sets, and the
// resulting set count is a power of two so the set index is a pure bitmask.
func (c Config) Validate() error {
	if !isPowerOfTwo(c.CacheSizeBytes) || c.CacheSizeBytes < MinCacheSizeBytes || c.CacheSizeBytes > MaxCacheSizeBytes {
		return &ConfigError{
			Field:  "cache_size_bytes",
			Reason: fmt.Sprintf("must be a power of two in [%d, %d], got %d", MinCacheSizeBytes, MaxCacheSizeBytes, c.CacheSizeBytes),
		}
	}
	if !isPowerOfTwo(c.BlockSizeBytes) {
		return &ConfigError{
			Field:  "block_size_bytes",
			Reason: fmt.Sprintf("must be a power of two, got %d", c.BlockSizeBytes),
		}
	}
	if c.Associativity < MinAssociativity || c.Associativity > MaxAssociativity {
		return &ConfigError{
			Field:  "ways",
			Reason: fmt.Sprintf("must be in [%d, %d], got %d", MinAssociativity, MaxAssociativity, c.Associativity),
		}
	}
	if c.CacheSizeBytes%(c.Associativity*c.BlockSizeBytes) != 0 {
		return &ConfigError{
			Field:  "ways",
			Reason: fmt.Sprintf("cache size %d is not divisible by ways*block_size = %d", c.CacheSizeBytes, c.Associativity*c.BlockSizeBytes),
		}
	}
	if numSets := c.CacheSizeBytes / (c.BlockSizeBytes * c.Associativity); !isPowerOfTwo(numSets) {
		return &ConfigError{
			Field:  "ways",
			Reason: fmt.Sprintf("set count %d is not a power of two", numSets),
		}
	}
	if !IsValidPolicy(c.Policy) {
		return &ConfigError{
			Field:  "policy",
			Reason: fmt.Sprintf("unknown policy %q; valid: lru, fifo, random", c.Policy),
		}
	}
	return nil
}

// NumSets returns the set count implied by the geometry.
// Only meaningful on a validated Config.
func (c Config) NumSets() int {
	return c.CacheSizeBytes / (c.BlockSizeBytes * c.Associativity)
}

// NumBlocks returns the total block capacity of the cache across all sets.
func (c Config) NumBlocks() int {
	return c.CacheSizeBytes / c.BlockSizeBytes
}

func isPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}
