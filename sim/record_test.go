package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_RetainsMostRecentWindow(t *testing.T) {
	// GIVEN more records than the history holds
	h := NewHistory()
	for i := 0; i < historyCapacity+10; i++ {
		h.Record(AccessRecord{Address: uint64(i)})
	}

	// THEN only the newest window remains, oldest first
	records := h.Records()
	assert.Len(t, records, historyCapacity)
	assert.Equal(t, uint64(10), records[0].Address)
	assert.Equal(t, uint64(historyCapacity+9), records[len(records)-1].Address)
}

func TestHistory_RecordsReturnsACopy(t *testing.T) {
	h := NewHistory()
	h.Record(AccessRecord{Address: 1, Outcome: Hit})

	records := h.Records()
	records[0].Address = 99

	assert.Equal(t, uint64(1), h.Records()[0].Address)
}

func TestHistory_Len(t *testing.T) {
	h := NewHistory()
	assert.Equal(t, 0, h.Len())
	h.Record(AccessRecord{})
	assert.Equal(t, 1, h.Len())
}
