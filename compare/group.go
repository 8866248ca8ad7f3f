// SPDX-License-Identifier: MIT

package compare

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Group maps category names of one domain to their Record.
// The zero Group is empty. Accessors return copies; a Group never changes
// after construction.
type Group struct {
	Domain  Domain
	records map[string]Record
	names   []string // ascending
}

// CompareValues compares two flat category maps. Every key of either map
// yields exactly one Record; a key missing on one side counts as zero there.
func CompareValues(a, b map[string]decimal.Decimal) Group {
	return newGroup("", a, b)
}

func newGroup(d Domain, a, b map[string]decimal.Decimal) Group {
	records := make(map[string]Record, len(a)+len(b))
	for name, va := range a {
		records[name] = NewRecord(name, va, b[name])
	}
	for name, vb := range b {
		if _, seen := records[name]; !seen {
			records[name] = NewRecord(name, decimal.Zero, vb)
		}
	}

	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)

	return Group{Domain: d, records: records, names: names}
}

// Len returns the number of categories.
func (g Group) Len() int { return len(g.names) }

// Get returns the record of category name.
func (g Group) Get(name string) (Record, bool) {
	r, ok := g.records[name]

	return r, ok
}

// Names returns the category names in ascending order.
func (g Group) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)

	return out
}

// Records returns every record ordered by category name.
func (g Group) Records() []Record {
	out := make([]Record, len(g.names))
	for i, name := range g.names {
		out[i] = g.records[name]
	}

	return out
}

// Largest returns up to n records with the biggest absolute difference,
// largest first; equal differences keep name order. n ≤ 0 returns all.
func (g Group) Largest(n int) []Record {
	out := g.Records()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Difference.Abs().GreaterThan(out[j].Difference.Abs())
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}

	return out
}

// New returns the records whose change is undefined because the base is zero.
func (g Group) New() []Record {
	var out []Record
	for _, name := range g.names {
		if r := g.records[name]; r.IsNew() {
			out = append(out, r)
		}
	}

	return out
}

// Equal reports whether g and o hold the same domain and records.
func (g Group) Equal(o Group) bool {
	if g.Domain != o.Domain || len(g.names) != len(o.names) {
		return false
	}
	for i, name := range g.names {
		if o.names[i] != name || !g.records[name].Equal(o.records[name]) {
			return false
		}
	}

	return true
}
