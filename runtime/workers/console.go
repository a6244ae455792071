package workers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"signald-groups/domain"
	"signald-groups/services"
	"strings"
)

type CommandSubmitter interface {
	Submit(ctx context.Context, cmd domain.Command) (string, error)
}

// Console reads host commands line by line and prints their result.
type Console struct {
	log       *slog.Logger
	in        io.Reader
	out       io.Writer
	submitter CommandSubmitter
}

func NewConsole(log *slog.Logger, in io.Reader, out io.Writer, submitter CommandSubmitter) *Console {
	return &Console{log: log, in: in, out: out, submitter: submitter}
}

// Run stops at end of input or when ctx is done. A read blocked on the
// terminal is abandoned in the latter case.
func (c *Console) Run(ctx context.Context) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				c.log.Debug("Console input closed")
				return nil
			}
			c.handle(ctx, line)
		}
	}
}

func (c *Console) handle(ctx context.Context, line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	cmd, err := services.ParseCommand(line)
	if err != nil {
		_, _ = fmt.Fprintf(c.out, "error: %v\n", err)
		return
	}
	output, err := c.submitter.Submit(ctx, cmd)
	if err != nil {
		c.log.Debug("Command failed", "name", cmd.Name(), "error", err)
		_, _ = fmt.Fprintf(c.out, "error: %v\n", err)
		return
	}
	_, _ = fmt.Fprintln(c.out, output)
}
