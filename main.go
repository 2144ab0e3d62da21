// ════════════════════════════════════════════════════════════════════════════════════════════════
// Chained Hash Map Demo - Main Entry Point
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Generic Container Library
// Component: Demo Driver
//
// Description:
//   Thin consumer of the chainmap public contract. Each routine creates a map,
//   drives insert/get/delete/iterate/teardown, and prints what it sees; failures
//   print a diagnostic and abort that routine only.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"fmt"

	"main/chainmap"
	"main/debug"
	"main/hashkit"
	"main/report"
	"main/seedstore"

	"github.com/pkg/errors"
)

func main() {
	runStringMapExample()
	runIntMapExample()
	runSeededMapExample()
	runJSONExample()
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// STRING-KEY ROUTINE
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// runStringMapExample owns its payloads: release hooks count reclamations so
// the teardown discipline is visible in the output.
func runStringMapExample() {
	fmt.Println("--- String Key HashMap Example ---")

	var keysReleased, valsReleased uint64
	m, err := chainmap.New(chainmap.Config[string, int]{
		Hash:         hashkit.String,
		Equal:        hashkit.Equal[string](),
		ReleaseKey:   func(string) { keysReleased++ },
		ReleaseValue: func(int) { valsReleased++ },
		SameKey:      hashkit.SameString,
	})
	if err != nil {
		debug.DropError("string map create", err)
		return
	}
	defer m.Close()

	seeds := []struct {
		key string
		val int
	}{
		{"apple", 10}, {"banana", 20}, {"cherry", 30}, {"date", 40}, {"elderberry", 50},
	}
	for _, s := range seeds {
		if err := m.Insert(s.key, s.val); err != nil {
			debug.DropError("string map insert", err)
			return
		}
	}

	fmt.Printf("Map size: %d\n", m.Len())
	printLookup(m, "banana")
	printLookup(m, "grape")

	fmt.Println("\nUpdating 'apple' value...")
	if err := m.Insert("apple", 100); err != nil {
		debug.DropError("string map update", err)
		return
	}
	printLookup(m, "apple")
	fmt.Printf("Map size after update: %d\n", m.Len())

	fmt.Println("\nDeleting 'cherry'...")
	switch err := m.Delete("cherry"); {
	case err == nil:
		fmt.Println("'cherry' deleted successfully.")
	case errors.Is(err, chainmap.ErrNotFound):
		fmt.Println("'cherry' not found for deletion.")
	default:
		debug.DropError("string map delete", err)
		return
	}
	fmt.Printf("Map size after deletion: %d\n", m.Len())
	printLookup(m, "cherry")

	fmt.Println("\nAll elements in map:")
	for k, v := range m.All() {
		fmt.Printf("  Key: %q, Value: %d\n", k, v)
	}

	m.Close()
	fmt.Println("\nString map destroyed.")
	debug.DropCount("string map keys released", keysReleased)
	debug.DropCount("string map values released", valsReleased)
}

func printLookup(m *chainmap.Map[string, int], key string) {
	if v, ok := m.Get(key); ok {
		fmt.Printf("Value for %q: %d\n", key, v)
	} else {
		fmt.Printf("%q not found.\n", key)
	}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// INT-KEY ROUTINE
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// runIntMapExample leaves payload ownership with the caller: no release
// hooks, so teardown reclaims only the map's own storage.
func runIntMapExample() {
	fmt.Println("\n--- Integer Key HashMap Example ---")

	m, err := chainmap.New(chainmap.Config[int, string]{
		Hash:  hashkit.Int,
		Equal: hashkit.Equal[int](),
	})
	if err != nil {
		debug.DropError("int map create", err)
		return
	}
	defer m.Close()

	for _, key := range []int{101, 202, 303} {
		if err := m.Insert(key, fmt.Sprintf("Value for %d", key)); err != nil {
			debug.DropError("int map insert", err)
			return
		}
	}

	fmt.Printf("Int map size: %d\n", m.Len())
	if v, ok := m.Get(202); ok {
		fmt.Printf("Value for key 202: %q\n", v)
	} else {
		fmt.Println("Key 202 not found.")
	}

	m.Close()
	fmt.Println("Integer map destroyed.")
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// SEEDED-MAP ROUTINE
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// runSeededMapExample round-trips the inventory through SQLite before the
// map ever sees it, proving the container against rows that survived
// storage. Input persistence only — the map itself is never written out.
func runSeededMapExample() {
	fmt.Println("\n--- Seeded HashMap Example ---")

	store, err := seedstore.Open(":memory:")
	if err != nil {
		debug.DropError("seed store open", err)
		return
	}
	defer store.Close()

	inventory := map[string]int{"fig": 60, "grape": 70, "honeydew": 80}
	for name, qty := range inventory {
		if err := store.Put(name, qty); err != nil {
			debug.DropError("seed store put", err)
			return
		}
	}

	m, err := chainmap.New(chainmap.Config[string, int]{
		Hash:  hashkit.StringXX,
		Equal: hashkit.Equal[string](),
	})
	if err != nil {
		debug.DropError("seeded map create", err)
		return
	}
	defer m.Close()

	loaded, err := store.LoadInto(m)
	if err != nil {
		debug.DropError("seed load", err)
		return
	}
	fmt.Printf("Loaded %d seeds, map size: %d\n", loaded, m.Len())
	printLookup(m, "grape")
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// JSON ROUTINE
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// runJSONExample hands a map snapshot plus an unrelated record to the
// external document library and prints the rendered object.
func runJSONExample() {
	fmt.Println("\n--- JSON Document Example ---")

	m, err := chainmap.New(chainmap.Config[string, int]{
		Hash:  hashkit.String,
		Equal: hashkit.Equal[string](),
	})
	if err != nil {
		debug.DropError("json map create", err)
		return
	}
	defer m.Close()

	for name, qty := range map[string]int{"apple": 100, "banana": 20} {
		if err := m.Insert(name, qty); err != nil {
			debug.DropError("json map insert", err)
			return
		}
	}

	doc, err := report.Render(report.Profile{
		Name:    "Budi Santoso",
		Age:     25,
		Student: true,
	}, m)
	if err != nil {
		debug.DropError("render report", err)
		return
	}
	fmt.Printf("Rendered document:\n%s\n", doc)
}
