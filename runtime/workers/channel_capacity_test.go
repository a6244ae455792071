package workers

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestChannelCapacityWorker_Warns_Above_Threshold(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	frames := make(chan []byte, 4)
	frames <- []byte("a")
	frames <- []byte("b")
	frames <- []byte("c")
	idle := make(chan []byte, 4)

	worker := NewChannelCapacityWorker(log, []NamedChannel{
		{Name: "frames", Channel: frames},
		{Name: "idle", Channel: idle},
		{Name: "bogus", Channel: 42},
	}, time.Hour, 75)
	worker.sample()

	out := buf.String()
	req.Contains(out, `level=WARN msg="Channel filling up" name=frames length=3 capacity=4`)
	req.Contains(out, `level=DEBUG msg="Channel capacity" name=idle length=0 capacity=4`)
	req.Contains(out, `msg="Provided object is not a channel" name=bogus`)
}

func TestChannelCapacityWorker_Stops_On_Context(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	worker := NewChannelCapacityWorker(slog.Default(), nil, time.Millisecond, 80)

	require.NoError(t, worker.Run(ctx))
}
