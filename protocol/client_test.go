package protocol

import (
	"log/slog"
	"signald-groups/errors"
	"signald-groups/mocks"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClient_RequestGroupInfo(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	t.Run("should hand a get_group request to the connection", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		conn := mocks.NewMockIConnection(ctrl)
		settings := mocks.NewMockISettings(ctrl)
		client := NewClient(log, conn, settings)

		settings.EXPECT().AccountUUID().Return("me").AnyTimes()
		conn.EXPECT().Send(NewGetGroupRequest("me", "G1")).Return(true).Times(1)
		conn.EXPECT().Error(gomock.Any()).Times(0)

		req.NoError(client.RequestGroupInfo("G1"))
	})

	t.Run("should raise a connection error when the transport refuses", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		conn := mocks.NewMockIConnection(ctrl)
		settings := mocks.NewMockISettings(ctrl)
		client := NewClient(log, conn, settings)

		settings.EXPECT().AccountUUID().Return("me").AnyTimes()
		conn.EXPECT().Send(gomock.Any()).Return(false).Times(1)
		conn.EXPECT().Error("Could not request group info.").Times(1)

		err := client.RequestGroupInfo("G1")
		req.ErrorIs(err, errors.ErrNetwork)
	})

	t.Run("should send nothing without a local account", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		conn := mocks.NewMockIConnection(ctrl)
		settings := mocks.NewMockISettings(ctrl)
		client := NewClient(log, conn, settings)

		settings.EXPECT().AccountUUID().Return("").AnyTimes()
		conn.EXPECT().Send(gomock.Any()).Times(0)

		req.ErrorIs(client.RequestGroupInfo("G1"), errors.ErrLocalAccountUnknown)
		req.ErrorIs(client.RequestGroupList(), errors.ErrLocalAccountUnknown)
		req.ErrorIs(client.AcceptInvitation("G1"), errors.ErrLocalAccountUnknown)
		req.ErrorIs(client.SendGroupMessage("G1", "hi"), errors.ErrLocalAccountUnknown)
	})
}

func TestClient_RequestGroupList(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockIConnection(ctrl)
	settings := mocks.NewMockISettings(ctrl)
	client := NewClient(log, conn, settings)

	settings.EXPECT().AccountUUID().Return("me").AnyTimes()
	conn.EXPECT().Send(NewListGroupsRequest("me")).Return(true).Times(1)

	req.NoError(client.RequestGroupList())
}
