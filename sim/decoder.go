package sim

import "math/bits"

// Decoder splits a byte address into its block offset, set index, and tag.
// All three fields are pure shifts and masks; the widths are fixed by the
// validated Config at construction time, so Decode has no failure modes.
type Decoder struct {
	offsetBits int
	indexBits  int
	indexMask  uint64
}

// NewDecoder derives field widths from a validated Config.
func NewDecoder(cfg Config) *Decoder {
	offsetBits := bits.TrailingZeros(uint(cfg.BlockSizeBytes))
	indexBits := bits.TrailingZeros(uint(cfg.NumSets()))
	return &Decoder{
		offsetBits: offsetBits,
		indexBits:  indexBits,
		indexMask:  uint64(cfg.NumSets()) - 1,
	}
}

// Decode returns the set index and tag for a byte address.
func (d *Decoder) Decode(addr uint64) (setIndex int, tag uint64) {
	block := addr >> d.offsetBits
	return int(block & d.indexMask), block >> d.indexBits
}

// BlockAddress returns the block-granular address, the unique identity of
// the cache line the byte address falls in (set index and tag combined).
func (d *Decoder) BlockAddress(addr uint64) uint64 {
	return addr >> d.offsetBits
}

// ByteAddress reconstructs the first byte address of the block identified by
// (setIndex, tag). Used when rendering snapshots.
func (d *Decoder) ByteAddress(setIndex int, tag uint64) uint64 {
	return (tag<<d.indexBits | uint64(setIndex)) << d.offsetBits
}
