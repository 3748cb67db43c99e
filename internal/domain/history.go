package domain

import (
	"encoding/json"
	"sort"
	"time"
)

// History is the append-only risk indicator log of an operator. There is no
// API to edit or drop an entry once written.
type History struct {
	entries []RiskIndicatorHistoryEntry
}

// NewHistory builds a history from previously written entries, e.g. when
// loading from storage. The input slice is copied.
func NewHistory(entries ...RiskIndicatorHistoryEntry) History {
	return History{entries: append([]RiskIndicatorHistoryEntry(nil), entries...)}
}

// Append adds e after every existing entry.
func (h *History) Append(e RiskIndicatorHistoryEntry) {
	h.entries = append(h.entries, e)
}

func (h History) Len() int { return len(h.entries) }

// Entries returns a copy in append order.
func (h History) Entries() []RiskIndicatorHistoryEntry {
	return append([]RiskIndicatorHistoryEntry(nil), h.entries...)
}

// Latest is the last appended entry, which describes the current snapshot.
func (h History) Latest() (RiskIndicatorHistoryEntry, bool) {
	if len(h.entries) == 0 {
		return RiskIndicatorHistoryEntry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// LatestByDate is the newest dated entry. Backfills never win over a later
// date; on equal dates the later appended entry wins.
func (h History) LatestByDate() (RiskIndicatorHistoryEntry, bool) {
	if len(h.entries) == 0 {
		return RiskIndicatorHistoryEntry{}, false
	}
	best := h.entries[0]
	for _, e := range h.entries[1:] {
		if !e.Date.Before(best.Date) {
			best = e
		}
	}
	return best, true
}

// Between returns entries dated within [from, to], sorted by date. A zero
// bound is open.
func (h History) Between(from, to time.Time) []RiskIndicatorHistoryEntry {
	out := make([]RiskIndicatorHistoryEntry, 0, len(h.entries))
	for _, e := range h.entries {
		if !from.IsZero() && e.Date.Before(from) {
			continue
		}
		if !to.IsZero() && e.Date.After(to) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func (h History) MarshalJSON() ([]byte, error) {
	if h.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(h.entries)
}

func (h *History) UnmarshalJSON(b []byte) error {
	var entries []RiskIndicatorHistoryEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return err
	}
	h.entries = entries
	return nil
}
