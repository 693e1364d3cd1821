package board

import (
	"sort"

	"github.com/sharedstate/blackboard/lib/board/util"
)

// TableInfo describes one typed table.
type TableInfo struct {
	// Type is the Go name of the table's value type, e.g. "int" or
	// "config.Endpoint".
	Type string `json:"type"`
	// Entries is the number of value entries currently stored.
	Entries int `json:"entries"`
	// Callbacks is the number of callback registrations across all shapes.
	Callbacks int `json:"callbacks"`
}

// BoardInfo is a point-in-time view of a Board. Counts are collected table
// by table without a global freeze, so under concurrent writers they are
// estimates, the same way a database reports approximate statistics.
type BoardInfo struct {
	Types     int         `json:"types"`
	Entries   int         `json:"entries"`
	Callbacks int         `json:"callbacks"`
	Tables    []TableInfo `json:"tables"`
	// KeySpread describes how value entries distribute across the typed
	// tables (per-table entry counts).
	KeySpread util.DistributionStats `json:"key_spread"`
}

// Info returns a snapshot of the Board's current shape: which value types
// have tables, how many entries and callback registrations each holds, and
// how entries spread across types.
func (b *Board) Info() BoardInfo {
	b.mu.RLock()
	if b.tables == nil {
		b.mu.RUnlock()
		panic("board: use of closed Board")
	}
	type namedTable struct {
		name string
		tbl  table
	}
	named := make([]namedTable, 0, len(b.tables))
	for typ, tbl := range b.tables {
		named = append(named, namedTable{typ.String(), tbl})
	}
	b.mu.RUnlock()

	sort.Slice(named, func(i, j int) bool { return named[i].name < named[j].name })

	info := BoardInfo{
		Types:  len(named),
		Tables: make([]TableInfo, 0, len(named)),
	}
	sizes := make([]float64, 0, len(named))
	for _, nt := range named {
		entries := nt.tbl.entries()
		callbacks := nt.tbl.callbacks()
		info.Entries += entries
		info.Callbacks += callbacks
		info.Tables = append(info.Tables, TableInfo{
			Type:      nt.name,
			Entries:   entries,
			Callbacks: callbacks,
		})
		sizes = append(sizes, float64(entries))
	}
	info.KeySpread = util.NewDistributionStats(sizes)
	return info
}
