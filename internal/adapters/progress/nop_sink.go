package progress

import (
	"context"

	"github.com/hyperkit-labs/hyperkit/internal/usecase"
)

// NopSink discards all progress events; used for JSON and
// non-interactive output.
type NopSink struct{}

// NewNopSink creates a no-op progress sink.
func NewNopSink() *NopSink {
	return &NopSink{}
}

func (*NopSink) OnProgress(context.Context, usecase.ProgressEvent) {}
func (*NopSink) Info(string)                                       {}
func (*NopSink) Error(string)                                      {}
