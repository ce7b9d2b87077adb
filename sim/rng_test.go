package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionedRNG_SameSubsystemIsCached(t *testing.T) {
	p := NewPartitionedRNG(NewSimulationKey(42))

	a := p.ForSubsystem(SubsystemPolicy)
	b := p.ForSubsystem(SubsystemPolicy)

	assert.Same(t, a, b)
}

func TestPartitionedRNG_SubsystemsAreIsolated(t *testing.T) {
	// Draining one subsystem's stream must not perturb another's.
	p1 := NewPartitionedRNG(NewSimulationKey(42))
	p1.ForSubsystem(SubsystemPattern).Int63()
	p1.ForSubsystem(SubsystemPattern).Int63()
	policyDraw := p1.ForSubsystem(SubsystemPolicy).Int63()

	p2 := NewPartitionedRNG(NewSimulationKey(42))
	untouched := p2.ForSubsystem(SubsystemPolicy).Int63()

	assert.Equal(t, untouched, policyDraw)
}

func TestPartitionedRNG_PatternUsesMasterSeedDirectly(t *testing.T) {
	p := NewPartitionedRNG(NewSimulationKey(1234))
	assert.Equal(t, int64(1234), p.SeedForSubsystem(SubsystemPattern))
}

func TestPartitionedRNG_DerivedSeedsDifferPerSubsystem(t *testing.T) {
	p := NewPartitionedRNG(NewSimulationKey(1234))
	assert.NotEqual(t, p.SeedForSubsystem(SubsystemPattern), p.SeedForSubsystem(SubsystemPolicy))
}

func TestPartitionedRNG_DeterministicAcrossInstances(t *testing.T) {
	a := NewPartitionedRNG(NewSimulationKey(7)).ForSubsystem(SubsystemPolicy)
	b := NewPartitionedRNG(NewSimulationKey(7)).ForSubsystem(SubsystemPolicy)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestPartitionedRNG_Key(t *testing.T) {
	p := NewPartitionedRNG(NewSimulationKey(9))
	assert.Equal(t, SimulationKey(9), p.Key())
}
