package progress

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/hyperkit-labs/hyperkit/internal/usecase"
)

// SpinnerSink shows a terminal spinner for long-running stages
// (indexing, forge submission).
type SpinnerSink struct {
	spinner *spinner.Spinner
}

// NewSpinnerSink creates a spinner-based progress sink.
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.HideCursor = false
	return &SpinnerSink{spinner: s}
}

// OnProgress updates the spinner with the current stage.
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Spinner {
		r.spinner.Suffix = " " + event.Message
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		return
	}
	if r.spinner.Active() {
		r.spinner.Stop()
	}
	if event.Message != "" {
		fmt.Fprintln(os.Stderr, event.Message)
	}
}

// Info prints an informational message, pausing the spinner.
func (r *SpinnerSink) Info(message string) {
	if r.spinner.Active() {
		r.spinner.Stop()
		defer r.spinner.Start()
	}
	fmt.Fprintln(os.Stderr, message)
}

// Error prints an error message in red, stopping the spinner.
func (r *SpinnerSink) Error(message string) {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
	fmt.Fprintln(os.Stderr, color.New(color.FgRed).Sprint(message))
}
