package analyzer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
)

var ErrNotObject = errors.New("term frequencies must be a JSON object")

// TermFrequency counts lower-case terms and remembers the order in which each
// term was first seen. The order is the tie-break for TopTerms and survives a
// JSON round trip.
type TermFrequency struct {
	order  []string
	counts map[string]int
}

func NewTermFrequency() *TermFrequency {
	return &TermFrequency{counts: make(map[string]int)}
}

func (tf *TermFrequency) Add(term string, n int) {
	if tf.counts == nil {
		tf.counts = make(map[string]int)
	}
	if _, ok := tf.counts[term]; !ok {
		tf.order = append(tf.order, term)
	}
	tf.counts[term] += n
}

func (tf *TermFrequency) Count(term string) int {
	return tf.counts[term]
}

func (tf *TermFrequency) Len() int {
	return len(tf.order)
}

// Terms returns every term in first-seen order.
func (tf *TermFrequency) Terms() []string {
	return append([]string(nil), tf.order...)
}

// Merge adds other's counts into tf, in other's order.
func (tf *TermFrequency) Merge(other *TermFrequency) {
	if other == nil {
		return
	}
	for _, term := range other.order {
		tf.Add(term, other.counts[term])
	}
}

// Top returns up to n terms by descending count; equal counts keep first-seen
// order. Terms with a zero count are never returned.
func (tf *TermFrequency) Top(n int) []string {
	ranked := make([]string, 0, len(tf.order))
	for _, term := range tf.order {
		if tf.counts[term] > 0 {
			ranked = append(ranked, term)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return tf.counts[ranked[i]] > tf.counts[ranked[j]]
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func (tf *TermFrequency) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, term := range tf.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(term)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(tf.counts[term]))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (tf *TermFrequency) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	fresh := NewTermFrequency()
	if tok == nil {
		*tf = *fresh
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrNotObject
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		term, _ := keyTok.(string)
		var n int
		if err := dec.Decode(&n); err != nil {
			return fmt.Errorf("term %q: %w", term, err)
		}
		if n < 0 {
			return fmt.Errorf("term %q: negative count %d", term, n)
		}
		fresh.Add(term, n)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*tf = *fresh
	return nil
}
