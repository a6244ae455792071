package workers

import (
	"context"
	"log/slog"
)

type FrameSource interface {
	ReadFrames(ctx context.Context, out chan<- []byte) error
}

// SocketReader forwards signald lines to the engine. Once the connection is
// gone there is nothing to restart, so it always finishes cleanly.
type SocketReader struct {
	log    *slog.Logger
	source FrameSource
	out    chan<- []byte
}

func NewSocketReader(log *slog.Logger, source FrameSource, out chan<- []byte) *SocketReader {
	return &SocketReader{log: log, source: source, out: out}
}

func (r *SocketReader) Run(ctx context.Context) error {
	if err := r.source.ReadFrames(ctx, r.out); err != nil {
		r.log.Error("signald connection closed", "error", err)
	}
	return nil
}
