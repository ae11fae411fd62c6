package entity

import (
	"encoding/json"
	"time"
)

// HistoryCap is the maximum number of history entries kept.
const HistoryCap = 200

// HistoryEntry is a single visit, stored most-recent-first.
type HistoryEntry struct {
	URL       string
	Timestamp time.Time
}

// NewHistoryEntry records a visit to url at the current time.
func NewHistoryEntry(url string) HistoryEntry {
	return HistoryEntry{URL: url, Timestamp: time.Now()}
}

// historyEntryJSON keeps the stored form: epoch milliseconds under "ts".
type historyEntryJSON struct {
	URL string `json:"url"`
	TS  int64  `json:"ts"`
}

// MarshalJSON implements json.Marshaler.
func (h HistoryEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(historyEntryJSON{URL: h.URL, TS: h.Timestamp.UnixMilli()})
}

// UnmarshalJSON implements json.Unmarshaler.
func (h *HistoryEntry) UnmarshalJSON(data []byte) error {
	var raw historyEntryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	h.URL = raw.URL
	h.Timestamp = time.UnixMilli(raw.TS)
	return nil
}

// PrependHistory puts entry in front of entries and drops everything past limit.
// A limit outside 1..HistoryCap is treated as HistoryCap.
func PrependHistory(entries []HistoryEntry, entry HistoryEntry, limit int) []HistoryEntry {
	if limit <= 0 || limit > HistoryCap {
		limit = HistoryCap
	}

	out := make([]HistoryEntry, 0, min(len(entries)+1, limit))
	out = append(out, entry)
	for _, e := range entries {
		if len(out) == limit {
			break
		}
		out = append(out, e)
	}
	return out
}
