package domain

import (
	"fmt"
	"strings"
)

// SignalFinding records what one signal reported about the constructor.
type SignalFinding struct {
	Signal string
	Found  bool
	Arity  int
	Detail string
}

// ReconciliationReport explains how the constructor signals were
// reconciled. It carries every finding and warning so the caller can
// print a complete diagnostic when reconciliation fails, and display
// non-fatal anomalies when it succeeds.
type ReconciliationReport struct {
	ExpectedArity int
	Findings      []SignalFinding
	Warnings      []string
}

// NewReconciliationReport creates a report for an interface with the
// given declared arity.
func NewReconciliationReport(expectedArity int) *ReconciliationReport {
	return &ReconciliationReport{ExpectedArity: expectedArity}
}

// AddFinding records what a signal reported.
func (r *ReconciliationReport) AddFinding(signal string, found bool, arity int, detail string) {
	r.Findings = append(r.Findings, SignalFinding{
		Signal: signal,
		Found:  found,
		Arity:  arity,
		Detail: detail,
	})
}

// AddWarning records a non-fatal anomaly.
func (r *ReconciliationReport) AddWarning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// HasWarnings reports whether any non-fatal anomaly was recorded.
func (r *ReconciliationReport) HasWarnings() bool {
	return len(r.Warnings) > 0
}

func (r *ReconciliationReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "expected %d constructor argument(s)", r.ExpectedArity)
	for _, f := range r.Findings {
		if f.Found {
			fmt.Fprintf(&b, "\n  %s: %d parameter(s) %s", f.Signal, f.Arity, f.Detail)
		} else {
			fmt.Fprintf(&b, "\n  %s: %s", f.Signal, f.Detail)
		}
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "\n  warning: %s", w)
	}
	return b.String()
}
