// SPDX-License-Identifier: MIT

package compare

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/fiscus/core"
)

// Domain names a group of budget categories.
type Domain string

const (
	Revenues        Domain = "revenues"
	Expenses        Domain = "expenses"
	Ministries      Domain = "ministries"
	Administrations Domain = "administrations"

	// Summary is the derived group of domain totals; it is never read from input.
	Summary Domain = "summary"
)

// Summary group category names.
const (
	TotalRevenue         = "total_revenue"
	TotalExpenses        = "total_expenses"
	TotalMinistries      = "total_ministries"
	TotalAdministrations = "total_administrations"
)

// Domains returns the input domains in report order.
func Domains() []Domain {
	return []Domain{Revenues, Expenses, Ministries, Administrations}
}

// Snapshot is one year of category amounts, grouped by domain.
type Snapshot map[Domain]map[string]decimal.Decimal

// Total returns the exact sum of domain d.
func (s Snapshot) Total(d Domain) decimal.Decimal {
	return core.SumValues(s[d])
}

// Totals returns the four domain totals of s.
func (s Snapshot) Totals() Totals {
	return Totals{
		Revenue:         s.Total(Revenues),
		Expenses:        s.Total(Expenses),
		Ministries:      s.Total(Ministries),
		Administrations: s.Total(Administrations),
	}
}

// Totals are the top-level summary amounts of one snapshot.
type Totals struct {
	Revenue         decimal.Decimal
	Expenses        decimal.Decimal
	Ministries      decimal.Decimal
	Administrations decimal.Decimal
}

// values lays the totals out as the Summary group input.
func (t Totals) values() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		TotalRevenue:         t.Revenue,
		TotalExpenses:        t.Expenses,
		TotalMinistries:      t.Ministries,
		TotalAdministrations: t.Administrations,
	}
}

// Equal reports whether both totals hold the same amounts.
func (t Totals) Equal(o Totals) bool {
	return t.Revenue.Equal(o.Revenue) &&
		t.Expenses.Equal(o.Expenses) &&
		t.Ministries.Equal(o.Ministries) &&
		t.Administrations.Equal(o.Administrations)
}

// YearPair names two years to compare, A the base and B the target.
type YearPair struct {
	A, B int
}
