package workers

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"signald-groups/domain"
	"signald-groups/errors"
	"strings"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	lines []string
	err   error
}

func (f fakeSource) ReadFrames(ctx context.Context, out chan<- []byte) error {
	for _, line := range f.lines {
		out <- []byte(line)
	}
	return f.err
}

type recordingSubmitter struct {
	commands []domain.Command
}

func (r *recordingSubmitter) Submit(_ context.Context, cmd domain.Command) (string, error) {
	r.commands = append(r.commands, cmd)
	if _, ok := cmd.(domain.CloseCommand); ok {
		return "", errors.ErrUnknownSession
	}
	return "ok " + cmd.Name(), nil
}

func TestSocketReader_Finishes_When_Connection_Drops(t *testing.T) {
	req := require.New(t)
	out := make(chan []byte, 2)
	reader := NewSocketReader(logs.GetLoggerFromLevel(slog.LevelDebug),
		fakeSource{lines: []string{`{"type":"a"}`}, err: errors.ErrConnectionLost}, out)

	// A lost connection is not worth restarting
	req.NoError(reader.Run(context.Background()))
	req.Equal(`{"type":"a"}`, string(<-out))
}

func TestConsole_Submits_Parsed_Commands(t *testing.T) {
	req := require.New(t)
	submitter := &recordingSubmitter{}
	var out bytes.Buffer
	in := strings.NewReader("/join G1\n\n/dance\n/send 1 hello world\n/close 7\n")
	console := NewConsole(logs.GetLoggerFromLevel(slog.LevelDebug), in, &out, submitter)

	req.NoError(console.Run(context.Background()))

	req.Equal([]domain.Command{
		domain.JoinCommand{GroupID: "G1"},
		domain.SendCommand{Session: 1, Body: "hello world"},
		domain.CloseCommand{Session: 7},
	}, submitter.commands)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	req.Len(lines, 4)
	req.Equal("ok join", lines[0])
	req.Contains(lines[1], "unknown command")
	req.Equal("ok send", lines[2])
	req.Contains(lines[3], "unknown chat session")
}

func TestConsole_Stops_On_Context(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	blocking, writer := io.Pipe()
	defer writer.Close()
	console := NewConsole(logs.GetLoggerFromLevel(slog.LevelDebug), blocking, &bytes.Buffer{}, &recordingSubmitter{})

	require.NoError(t, console.Run(ctx))
}
