package transport

import (
	"bufio"
	"context"
	"log/slog"
	"net"
	"path/filepath"
	"signald-groups/errors"
	"signald-groups/protocol"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newPipeSocket(t *testing.T) (*Socket, net.Conn) {
	client, server := net.Pipe()
	t.Cleanup(func() { _ = server.Close() })
	return NewSocket(logs.GetLoggerFromLevel(slog.LevelDebug), client), server
}

func TestSocket_Send_Writes_One_Line(t *testing.T) {
	req := require.New(t)
	socket, server := newPipeSocket(t)

	sent := make(chan bool, 1)
	go func() { sent <- socket.Send(protocol.NewListGroupsRequest("U-self")) }()

	line, err := bufio.NewReader(server).ReadBytes('\n')
	req.NoError(err)
	req.JSONEq(`{"type":"list_groups","account":"U-self"}`, string(line))
	req.True(<-sent)
}

func TestSocket_ReadFrames_Until_Peer_Closes(t *testing.T) {
	req := require.New(t)
	socket, server := newPipeSocket(t)

	go func() {
		_, _ = server.Write([]byte("{\"type\":\"a\"}\n\n  \n{\"type\":\"b\"}\n"))
		_ = server.Close()
	}()

	out := make(chan []byte, 4)
	err := socket.ReadFrames(context.Background(), out)

	req.ErrorIs(err, errors.ErrConnectionLost)
	req.Equal(`{"type":"a"}`, string(<-out))
	req.Equal(`{"type":"b"}`, string(<-out))
	req.Empty(out)
	select {
	case <-socket.Done():
	default:
		req.Fail("socket should be done")
	}
}

func TestSocket_ReadFrames_Stops_On_Context(t *testing.T) {
	socket, _ := newPipeSocket(t)
	ctx, cancel := context.WithCancel(context.Background())

	result := make(chan error, 1)
	go func() { result <- socket.ReadFrames(ctx, make(chan []byte)) }()
	cancel()

	select {
	case err := <-result:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "ReadFrames did not stop")
	}
}

func TestSocket_Error_Is_Fatal(t *testing.T) {
	req := require.New(t)
	socket, _ := newPipeSocket(t)

	socket.Error("Could not send message.")
	socket.Error("second reason is ignored")

	<-socket.Done()
	req.ErrorIs(socket.Err(), errors.ErrNetwork)
	req.Contains(socket.Err().Error(), "Could not send message.")
	req.False(socket.Send(protocol.NewListGroupsRequest("U-self")))
}

func TestDial_Missing_Socket(t *testing.T) {
	_, err := Dial(context.Background(), logs.GetLoggerFromLevel(slog.LevelDebug), filepath.Join(t.TempDir(), "signald.sock"))
	require.ErrorIs(t, err, errors.ErrNetwork)
}

func TestDial_Unix_Socket(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "s.sock")
	listener, err := net.Listen("unix", path)
	req.NoError(err)
	defer listener.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := listener.Accept()
		if err == nil {
			accepted <- conn
		}
	}()

	socket, err := Dial(context.Background(), logs.GetLoggerFromLevel(slog.LevelDebug), path)
	req.NoError(err)
	defer socket.Close()
	server := <-accepted
	defer server.Close()

	go socket.Send(protocol.NewGetGroupRequest("U-self", "G1"))
	line, err := bufio.NewReader(server).ReadBytes('\n')
	req.NoError(err)
	req.JSONEq(`{"type":"get_group","account":"U-self","groupID":"G1"}`, string(line))
}
