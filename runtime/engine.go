// Package runtime owns the chat sessions and the single loop that mutates them.
// It orchestrates the system without containing protocol or directory rules.
package runtime

import (
	"context"
	"log/slog"
	"signald-groups/domain"
	"signald-groups/errors"
)

type FrameHandler interface {
	HandleFrame(ctx context.Context, line []byte) error
}

type CommandHandler interface {
	HandleCommand(ctx context.Context, cmd domain.Command) (string, error)
}

type job struct {
	cmd   domain.Command
	reply chan result
}

type result struct {
	output string
	err    error
}

// Engine serializes everything that touches sessions and the directory:
// frames from signald and host commands are executed one at a time on Run's goroutine.
type Engine struct {
	log     *slog.Logger
	frames  chan []byte
	jobs    chan job
	lost    <-chan struct{}
	onFrame FrameHandler
	onCmd   CommandHandler
}

// NewEngine wires the loop. lost is closed when the connection becomes unusable.
func NewEngine(log *slog.Logger, bufferSize int, lost <-chan struct{}, onFrame FrameHandler, onCmd CommandHandler) *Engine {
	return &Engine{
		log:     log,
		frames:  make(chan []byte, bufferSize),
		jobs:    make(chan job),
		lost:    lost,
		onFrame: onFrame,
		onCmd:   onCmd,
	}
}

// Frames is where the socket reader pushes raw lines.
func (e *Engine) Frames() chan<- []byte {
	return e.frames
}

// Submit runs a command on the loop and waits for its output.
func (e *Engine) Submit(ctx context.Context, cmd domain.Command) (string, error) {
	reply := make(chan result, 1)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-e.lost:
		return "", errors.ErrConnectionLost
	case e.jobs <- job{cmd: cmd, reply: reply}:
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-reply:
		return r.output, r.err
	}
}

// Run returns nil when ctx is canceled and ErrConnectionLost when the connection dropped.
func (e *Engine) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			e.log.Debug("Stopping engine")
			return nil
		case <-e.lost:
			return errors.ErrConnectionLost
		case line := <-e.frames:
			if err := e.onFrame.HandleFrame(ctx, line); err != nil {
				e.log.Warn("Frame dropped", "error", err)
			}
		case j := <-e.jobs:
			output, err := e.onCmd.HandleCommand(ctx, j.cmd)
			j.reply <- result{output: output, err: err}
		}
	}
}
