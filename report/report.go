// Package report renders the demo's structured-document output. The JSON
// object model is an external sink; nothing in the core container depends
// on it.
package report

import (
	"github.com/pkg/errors"
	"github.com/sugawarayuuta/sonnet"

	"main/chainmap"
)

// Profile mirrors the demo's standalone document: a person record unrelated
// to the map contents.
type Profile struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Student bool   `json:"student"`
}

// Snapshot is the full demo document: the profile plus a point-in-time view
// of one map's entries.
type Snapshot struct {
	Profile Profile        `json:"profile"`
	Size    int            `json:"size"`
	Entries map[string]int `json:"entries"`
}

// Render marshals a snapshot of m alongside p. The entry set is copied out
// before marshalling, so the document never aliases live map storage.
func Render(p Profile, m *chainmap.Map[string, int]) ([]byte, error) {
	snap := Snapshot{
		Profile: p,
		Size:    m.Len(),
		Entries: make(map[string]int, m.Len()),
	}
	for k, v := range m.All() {
		snap.Entries[k] = v
	}

	out, err := sonnet.Marshal(snap)
	return out, errors.Wrap(err, "marshal snapshot")
}
