package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHistory_EvictsOldestFirst(t *testing.T) {
	h := NewHistory(2)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, msg := range []string{"a", "b", "c"} {
		h.Add(CommitRecord{Message: msg, Timestamp: base.Add(time.Duration(i) * time.Minute)})
	}

	records := h.Records()
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, "c", records[0].Message)
	assert.Equal(t, "b", records[1].Message)
}

func TestHistory_NonPositiveLimitKeepsOne(t *testing.T) {
	h := NewHistory(0)
	h.Add(CommitRecord{Message: "a"})
	h.Add(CommitRecord{Message: "b"})

	assert.Equal(t, []CommitRecord{{Message: "b"}}, h.Records())
}
