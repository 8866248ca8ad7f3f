// SPDX-License-Identifier: MIT

// Package compare turns two snapshots of named budget amounts into
// per-category comparison facts.
//
// Input
//
//	A Snapshot holds one year of figures, grouped by Domain:
//
//	  snap := compare.Snapshot{
//	    compare.Revenues: {"taxes": decimal.NewFromInt(1000)},
//	    compare.Expenses: {"salaries": decimal.NewFromInt(800)},
//	  }
//
//	Amounts are exact decimals; differences and totals never pass through
//	float64.
//
// Records
//
//	For every category present on either side a Record carries ValueA,
//	ValueB, Difference = ValueB − ValueA and Change (percent):
//
//	  A ≠ 0           → (B − A) / A × 100
//	  A == 0, B == 0  → 0
//	  A == 0, B ≠ 0   → core.Undefined(core.ReasonNew)
//
//	A category missing from one side counts as zero on that side; it is not
//	an error.
//
// Report
//
//	Compare builds one Group per input domain plus a Summary group holding
//	the four domain totals (total_revenue, total_expenses, total_ministries,
//	total_administrations). TotalsA and TotalsB carry the same totals as plain
//	amounts. Groups iterate alphabetically by category name, so output is
//	identical across runs.
//
// Years
//
//	History keeps snapshots by year and is the collaborator-side guard for
//	"comparison between years that have no data": CompareYears fails with
//	ErrMissingYear before any record is built. CompareAll runs independent
//	year pairs concurrently.
//
// Validation
//
//	Validator caps the absolute change allowed on a single category.
//	A change exactly at the cap is accepted under the default Inclusive
//	boundary and rejected under Exclusive.
//
// Concurrency:
//
//	Comparator holds only immutable options. Reports are immutable after
//	Compare returns and may be shared between goroutines.
package compare
