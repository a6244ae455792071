// Package transport connects the bridge to the signald unix socket.
// signald speaks newline delimited JSON in both directions.
package transport

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"signald-groups/errors"
	"sync"
)

const maxFrameSize = 4 * 1024 * 1024

type Socket struct {
	log  *slog.Logger
	conn net.Conn

	writeMu sync.Mutex
	errMu   sync.Mutex
	err     error
	once    sync.Once
	done    chan struct{}
}

func Dial(ctx context.Context, log *slog.Logger, path string) (*Socket, error) {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", errors.ErrNetwork, path, err)
	}
	log.Info("Connected to signald", "socket", path)
	return NewSocket(log, conn), nil
}

func NewSocket(log *slog.Logger, conn net.Conn) *Socket {
	return &Socket{log: log, conn: conn, done: make(chan struct{})}
}

// Send writes one request line. It reports whether the line was handed to the
// socket, not whether signald processed it.
func (s *Socket) Send(request any) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	line, err := json.Marshal(request)
	if err != nil {
		s.log.Error("Could not encode request", "error", err)
		return false
	}
	line = append(line, '\n')

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if _, err := s.conn.Write(line); err != nil {
		s.log.Warn("Could not write to signald", "error", err)
		return false
	}
	return true
}

// ReadFrames pushes every non blank line to out until the socket closes or ctx is done.
// It returns nil on ctx cancellation and the connection error otherwise.
func (s *Socket) ReadFrames(ctx context.Context, out chan<- []byte) error {
	stop := context.AfterFunc(ctx, func() { _ = s.conn.Close() })
	defer stop()

	scanner := bufio.NewScanner(s.conn)
	scanner.Buffer(make([]byte, 64*1024), maxFrameSize)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		select {
		case out <- bytes.Clone(line):
		case <-ctx.Done():
			return nil
		case <-s.done:
			return s.Err()
		}
	}
	if ctx.Err() != nil {
		return nil
	}
	cause := errors.ErrConnectionLost
	if err := scanner.Err(); err != nil {
		cause = fmt.Errorf("%w: %v", errors.ErrConnectionLost, err)
	}
	s.fail(cause)
	return s.Err()
}

// Error marks the connection as unusable. The first reason wins.
func (s *Socket) Error(reason string) {
	s.log.Error("signald connection error", "reason", reason)
	s.fail(fmt.Errorf("%w: %s", errors.ErrNetwork, reason))
}

func (s *Socket) Close() error {
	s.fail(errors.ErrConnectionLost)
	return nil
}

// Done is closed once the connection is unusable.
func (s *Socket) Done() <-chan struct{} {
	return s.done
}

func (s *Socket) Err() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.err
}

func (s *Socket) fail(err error) {
	s.once.Do(func() {
		s.errMu.Lock()
		s.err = err
		s.errMu.Unlock()
		_ = s.conn.Close()
		close(s.done)
	})
}
