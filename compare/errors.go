// SPDX-License-Identifier: MIT
// Package compare: sentinel error set.
// Compare and CompareValues never fail: a missing category counts as zero and
// a zero base yields Undefined(ReasonNew). Errors come only from the year
// lookup (History, CompareYears, CompareAll) and from validation.

package compare

import "errors"

// NOTE ON NAMING & WRAPPING
// -------------------------
// Every message is prefixed with "compare: ...". Returned errors wrap the
// sentinel with its context (the year, the category and its change), so
// callers match with errors.Is:
//
//	if errors.Is(err, compare.ErrMissingYear) { ... }
//
// ERROR PRIORITY (enforced in tests):
// CompareYears/CompareAll: ErrMissingYear (year A checked before year B,
// pairs in order) -> context cancellation.
// Validator.Check: ErrNotComparable (undefined change) -> ErrChangeExceedsLimit.
// NewValidator: ErrInvalidThreshold only.

var (
	// ErrMissingYear indicates that no snapshot exists for a requested year.
	// It is raised before any record is built.
	ErrMissingYear = errors.New("compare: no snapshot for year")

	// ErrChangeExceedsLimit indicates a category change beyond the validator cap.
	ErrChangeExceedsLimit = errors.New("compare: change exceeds allowed limit")

	// ErrNotComparable indicates a category whose change is undefined
	// (zero base), so no cap can be applied.
	ErrNotComparable = errors.New("compare: change is not comparable")

	// ErrInvalidThreshold indicates a validator cap that is not a positive finite number.
	ErrInvalidThreshold = errors.New("compare: threshold must be positive and finite")
)
