// SPDX-License-Identifier: MIT

package compare

import (
	"sort"

	"github.com/rs/zerolog"
)

// Comparator compares snapshots. It holds no state besides its options.
type Comparator struct {
	opts Options
}

// New returns a Comparator configured by opts.
func New(opts ...Option) *Comparator {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Comparator{opts: o}
}

// Compare compares a (base year) with b (target year) using default options.
func Compare(a, b Snapshot) *Report {
	return New().Compare(a, b)
}

// Compare builds a Report with one Group per domain present in a or b
// (the four input domains are always present) and the derived Summary group.
// A Summary key in the input is ignored.
func (c *Comparator) Compare(a, b Snapshot) *Report {
	log := c.opts.Logger

	domains := reportDomains(a, b)
	rep := &Report{
		groups:  make(map[Domain]Group, len(domains)+1),
		domains: append(domains, Summary),
		TotalsA: a.Totals(),
		TotalsB: b.Totals(),
	}
	if _, ok := a[Summary]; ok {
		log.Warn().Msg("compare: summary domain in base snapshot ignored")
	}
	if _, ok := b[Summary]; ok {
		log.Warn().Msg("compare: summary domain in target snapshot ignored")
	}

	for _, d := range domains {
		g := newGroup(d, a[d], b[d])
		rep.groups[d] = g
		log.Debug().
			Str("domain", string(d)).
			Int("categories", g.Len()).
			Int("new", len(g.New())).
			Msg("compared domain")
	}
	rep.groups[Summary] = newGroup(Summary, rep.TotalsA.values(), rep.TotalsB.values())

	return rep
}

// reportDomains returns the input domains followed by any extra domain of
// a or b in ascending order.
func reportDomains(a, b Snapshot) []Domain {
	out := Domains()
	known := make(map[Domain]bool, len(out)+1)
	for _, d := range out {
		known[d] = true
	}
	known[Summary] = true

	var extra []Domain
	for _, s := range []Snapshot{a, b} {
		for d := range s {
			if !known[d] {
				known[d] = true
				extra = append(extra, d)
			}
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	return append(out, extra...)
}

// Report is the immutable result of comparing two snapshots.
type Report struct {
	groups  map[Domain]Group
	domains []Domain

	TotalsA Totals
	TotalsB Totals
}

// Group returns the group of domain d; an unknown domain yields an empty Group.
func (r *Report) Group(d Domain) Group {
	if g, ok := r.groups[d]; ok {
		return g
	}

	return Group{Domain: d}
}

// Domains returns the report's domains in order, Summary last.
func (r *Report) Domains() []Domain {
	out := make([]Domain, len(r.domains))
	copy(out, r.domains)

	return out
}

// Equal reports whether r and o hold the same groups and totals.
func (r *Report) Equal(o *Report) bool {
	if len(r.domains) != len(o.domains) || !r.TotalsA.Equal(o.TotalsA) || !r.TotalsB.Equal(o.TotalsB) {
		return false
	}
	for i, d := range r.domains {
		if o.domains[i] != d || !r.groups[d].Equal(o.groups[d]) {
			return false
		}
	}

	return true
}

// Violation is one record rejected by a Validator.
type Violation struct {
	Domain Domain
	Record Record
	Err    error
}

// Violations checks every category record against v, domain by domain in
// report order. Summary rows are not checked.
func (r *Report) Violations(v Validator) []Violation {
	var out []Violation
	for _, d := range r.domains {
		if d == Summary {
			continue
		}
		for _, rec := range r.groups[d].Records() {
			if err := v.Check(rec); err != nil {
				out = append(out, Violation{Domain: d, Record: rec, Err: err})
			}
		}
	}

	return out
}

// MarshalZerologObject logs the report totals.
func (r *Report) MarshalZerologObject(e *zerolog.Event) {
	e.Str("revenue_a", r.TotalsA.Revenue.String()).
		Str("revenue_b", r.TotalsB.Revenue.String()).
		Str("expenses_a", r.TotalsA.Expenses.String()).
		Str("expenses_b", r.TotalsB.Expenses.String()).
		Int("domains", len(r.domains))
}
