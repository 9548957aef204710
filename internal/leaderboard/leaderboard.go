// Package leaderboard keeps the shared list of finished play-throughs,
// best score first, and persists it as a single JSON document.
package leaderboard

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Key is the storage key the leaderboard document lives under.
const Key = "catchverse-leaderboard"

// Entry is one finished play-through.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Insert appends e and re-sorts by score, highest first. Entries with equal
// scores keep their insertion order, so an earlier result outranks a later
// tie.
func Insert(entries []Entry, e Entry) []Entry {
	entries = append(entries, e)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}

// Encode serializes entries as a JSON array. A nil list encodes as [].
func Encode(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: cannot encode: %w", err)
	}
	return data, nil
}

// Decode parses a JSON array of entries and sorts it. Empty input is an
// empty leaderboard.
func Decode(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("leaderboard: cannot decode: %w", err)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries, nil
}
