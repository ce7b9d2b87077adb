package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/cachesim/cachesim/sim"
	"github.com/cachesim/cachesim/sim/pattern"
)

func TestBuildSource_KnownPatterns(t *testing.T) {
	cfg := sim.DefaultConfig()
	params := PatternParams{Start: 0x100, Stride: 128, LoopLength: 16, LoopStep: 4, AddressSpace: 0x10000}

	for _, name := range []string{"sequential", "stride", "stride-2", "stride-4", "random", "looping"} {
		p := params
		p.Pattern = name
		src, err := BuildSource(p, cfg)
		require.NoError(t, err, name)
		require.NotNil(t, src, name)
	}
}

func TestBuildSource_StridePresetsScaleBlockSize(t *testing.T) {
	// GIVEN the original tool's stride presets under 64B blocks
	cfg := sim.DefaultConfig()

	src2, err := BuildSource(PatternParams{Pattern: "stride-2"}, cfg)
	require.NoError(t, err)
	src4, err := BuildSource(PatternParams{Pattern: "stride-4"}, cfg)
	require.NoError(t, err)

	// THEN addresses advance by 128 and 256 bytes respectively
	first2, _ := src2.Next()
	second2, _ := src2.Next()
	assert.Equal(t, uint64(128), second2-first2)

	first4, _ := src4.Next()
	second4, _ := src4.Next()
	assert.Equal(t, uint64(256), second4-first4)
}

func TestBuildSource_RandomIsSeededFromConfig(t *testing.T) {
	cfg := sim.DefaultConfig()
	params := PatternParams{Pattern: "random", AddressSpace: 0x10000}

	a, err := BuildSource(params, cfg)
	require.NoError(t, err)
	b, err := BuildSource(params, cfg)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		addrA, _ := a.Next()
		addrB, _ := b.Next()
		assert.Equal(t, addrA, addrB)
	}
}

func TestBuildSource_Errors(t *testing.T) {
	cfg := sim.DefaultConfig()

	_, err := BuildSource(PatternParams{Pattern: "zigzag"}, cfg)
	assert.ErrorContains(t, err, "unknown pattern")

	_, err = BuildSource(PatternParams{Pattern: "stride"}, cfg)
	assert.ErrorContains(t, err, "non-zero --stride")

	_, err = BuildSource(PatternParams{Pattern: "looping"}, cfg)
	assert.ErrorContains(t, err, "positive --loop-length")
}

func TestPrintSnapshot_RendersOccupancy(t *testing.T) {
	// GIVEN an engine with one cached block in set 0
	engine, err := sim.NewEngine(sim.DefaultConfig())
	require.NoError(t, err)
	engine.SetSource(pattern.NewReplay([]uint64{0x1000}))
	engine.Run(0)

	// WHEN rendering the first two sets
	var buf bytes.Buffer
	PrintSnapshot(&buf, engine.Snapshot(2))

	// THEN the resident block shows as a hex address and free ways as dashes
	out := buf.String()
	assert.Contains(t, out, "Cache Sets (first 2)")
	assert.Contains(t, out, "0x1000")
	assert.Contains(t, out, "------")
}

func TestPrintSnapshot_EmptySnapshotPrintsNothing(t *testing.T) {
	engine, err := sim.NewEngine(sim.DefaultConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintSnapshot(&buf, engine.Snapshot(0))

	assert.Empty(t, buf.String())
}
