package session

import "time"

// CommitRecord is one commit made during the session.
type CommitRecord struct {
	Message   string
	Branch    string
	Timestamp time.Time
}

// History keeps the most recent commits, dropping the oldest first.
type History struct {
	limit   int
	records []CommitRecord
}

func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = 1
	}
	return &History{limit: limit}
}

func (h *History) Add(r CommitRecord) {
	h.records = append(h.records, r)
	if over := len(h.records) - h.limit; over > 0 {
		h.records = append([]CommitRecord(nil), h.records[over:]...)
	}
}

// Records returns the kept commits, newest first.
func (h *History) Records() []CommitRecord {
	out := make([]CommitRecord, len(h.records))
	for i, r := range h.records {
		out[len(h.records)-1-i] = r
	}
	return out
}

func (h *History) Len() int {
	return len(h.records)
}
