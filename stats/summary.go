// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fiscus/core"
)

// NoDataMessage is the text Describe returns for empty input.
const NoDataMessage = "No data available for statistical analysis."

// Summary is a snapshot of the descriptive statistics of one sample.
// It is fully derived from the input and rebuilt on every call.
type Summary struct {
	Count             int
	Mean              float64
	Median            float64
	Mode              core.Number
	Variance          float64
	StandardDeviation float64
	Min               float64
	Max               float64
	Range             float64

	// Quartiles is nil when the sample is too small to define them.
	Quartiles *Quartiles
	IQR       core.Number
	Outliers  []float64

	CoefficientOfVariation core.Number

	// Text is the human-readable rendering, NoDataMessage for an empty sample.
	Text string
}

// Empty reports whether the summary was built from no data.
func (s Summary) Empty() bool { return s.Count == 0 }

// String returns s.Text.
func (s Summary) String() string { return s.Text }

// Summarize computes every descriptive statistic of xs.
func Summarize(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{
			Mode:                   core.Undefined(core.ReasonNoMode),
			IQR:                    core.Undefined(core.ReasonInsufficientData),
			Outliers:               []float64{},
			CoefficientOfVariation: core.Undefined(core.ReasonEmpty),
			Text:                   NoDataMessage,
		}
	}

	s := Summary{
		Count:                  len(xs),
		Mean:                   Mean(xs),
		Median:                 Median(xs),
		Mode:                   Mode(xs),
		Variance:               Variance(xs),
		StandardDeviation:      StandardDeviation(xs),
		Min:                    Min(xs),
		Max:                    Max(xs),
		Range:                  Range(xs),
		IQR:                    InterquartileRange(xs),
		Outliers:               Outliers(xs),
		CoefficientOfVariation: CoefficientOfVariation(xs),
	}
	if q, ok := QuartilesOf(xs); ok {
		s.Quartiles = &q
	}
	s.Text = render(s)

	return s
}

// Describe returns the textual summary of xs, NoDataMessage for empty input.
func Describe(xs []float64) string {
	return Summarize(xs).Text
}

func render(s Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Count: %d\n", s.Count)
	fmt.Fprintf(&b, "Mean: %.2f\n", s.Mean)
	fmt.Fprintf(&b, "Median: %.2f\n", s.Median)
	fmt.Fprintf(&b, "Mode: %s\n", fixed(s.Mode))
	fmt.Fprintf(&b, "Standard deviation: %.2f\n", s.StandardDeviation)
	fmt.Fprintf(&b, "Variance: %.2f\n", s.Variance)
	fmt.Fprintf(&b, "Range: %.2f (min %.2f, max %.2f)\n", s.Range, s.Min, s.Max)
	if s.Quartiles != nil {
		fmt.Fprintf(&b, "Quartiles: Q1=%.2f Q2=%.2f Q3=%.2f\n", s.Quartiles.Q1, s.Quartiles.Q2, s.Quartiles.Q3)
	} else {
		b.WriteString("Quartiles: insufficient data\n")
	}
	fmt.Fprintf(&b, "Coefficient of variation: %s\n", fixed(s.CoefficientOfVariation))

	if len(s.Outliers) == 0 {
		b.WriteString("Outliers: none")
	} else {
		parts := make([]string, len(s.Outliers))
		for i, o := range s.Outliers {
			parts[i] = fmt.Sprintf("%.2f", o)
		}
		b.WriteString("Outliers: " + strings.Join(parts, ", "))
	}

	return b.String()
}

// fixed renders a Number with two decimals, or core.NotAvailable.
func fixed(n core.Number) string {
	if v, ok := n.Value(); ok {
		return fmt.Sprintf("%.2f", v)
	}

	return core.NotAvailable
}
