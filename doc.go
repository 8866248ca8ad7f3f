// SPDX-License-Identifier: MIT

// Package fiscus compares public-budget snapshots between fiscal years and
// describes the resulting series with a small statistics toolkit.
//
// 🚀 What is fiscus?
//
//	An in-memory analytics engine working on data the caller already holds:
//		• Exact amounts: shopspring/decimal end to end, no float drift in totals
//		• Comparison: per-category difference and percentage change, "new" categories
//		• Validation: a configurable cap on single-category change
//		• Statistics: descriptive, quartiles and outliers, correlation, regression
//		• Batches: year pairs and named series processed concurrently
//
// ✨ Undefined is not zero
//
//	Every result that can be undefined (a change from a zero base, the mode of
//	all-unique data, the correlation of a constant series) is a core.Number
//	carrying the reason instead of a silent 0.
//
// Packages:
//
//	core/    core.Number, reasons, decimal helpers
//	compare/ Snapshot, Record, Group, Report, Comparator, Validator, History
//	stats/   pure statistics over []float64, Summary and SummarizeAll
//	config/  viper-backed settings, logger and validator wiring
//
// Quick start:
//
//	rep := compare.Compare(lastYear, thisYear)
//	for _, rec := range rep.Group(compare.Revenues).Largest(5) {
//	    fmt.Println(rec.Category, rec.Difference, rec.Change)
//	}
//	fmt.Println(stats.Describe(core.ToFloats(history.Series(compare.Revenues, "taxes"))))
package fiscus
