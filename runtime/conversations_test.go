package runtime

import (
	"fmt"
	"log/slog"
	"signald-groups/domain"
	"signald-groups/errors"
	"signald-groups/mocks"
	"signald-groups/repositories"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConversations_Append_Persists_History(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	history := repositories.NewMessageRepository(db, slog.Default(), nil)
	conversations := NewConversations(slog.Default(), history)
	conversations.Register(domain.NewChatSession(1, "G1"))

	// When a message is appended
	at := time.Now().UTC()
	err = conversations.Append(1, domain.Message{SenderID: "A", Content: "hi", Flags: domain.FlagRecv, CreatedAt: at})
	req.NoError(err)

	// Then it is visible in the session
	session, ok := conversations.Find(1)
	req.True(ok)
	req.Len(session.Messages(), 1)
	req.Equal("G1", session.Messages()[0].GroupID)

	// And stored in the history
	stored, _, err := history.GetMessages("G1", nil)
	req.NoError(err)
	req.Len(stored, 1)
	req.Equal("A", stored[0].Author)
	req.Equal(uint(domain.FlagRecv), stored[0].Flags)
	req.Equal(session.Messages()[0].ID, stored[0].ID)
}

func TestConversations_Append_History_Failure_Keeps_Message(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	history := mocks.NewMockIMessageRepository(ctrl)
	conversations := NewConversations(slog.Default(), history)
	conversations.Register(domain.NewChatSession(1, "G1"))

	// Given the history store refuses every write
	history.EXPECT().
		StoreMessage(gomock.Any()).
		DoAndReturn(func(message repositories.DiskMessage) error {
			req.Equal("G1", message.GroupID)
			req.Equal("hi", message.Content)
			return fmt.Errorf("disk full")
		}).
		Times(1)

	// When a message is appended
	err := conversations.Append(1, domain.Message{SenderID: "A", Content: "hi", Flags: domain.FlagRecv})

	// Then the failure is reported
	req.ErrorContains(err, "disk full")

	// And the message is still visible in the session
	session, ok := conversations.Find(1)
	req.True(ok)
	req.Len(session.Messages(), 1)
	req.Equal("hi", session.Messages()[0].Content)
}

func TestConversations_Unknown_Session(t *testing.T) {
	req := require.New(t)
	conversations := NewConversations(slog.Default(), nil)

	req.ErrorIs(conversations.Append(7, domain.Message{}), errors.ErrUnknownSession)
	req.ErrorIs(conversations.AddParticipant(7, "A", domain.ParticipantFlagNone), errors.ErrUnknownSession)
	req.Nil(conversations.Participants(7))
}

func TestConversations_All_Sorted(t *testing.T) {
	req := require.New(t)
	conversations := NewConversations(slog.Default(), nil)
	conversations.Register(domain.NewChatSession(3, "G3"))
	conversations.Register(domain.NewChatSession(1, "G1"))

	sessions := conversations.All()

	req.Len(sessions, 2)
	req.Equal(domain.SessionID(1), sessions[0].ID)
	conversations.Remove(1)
	req.Len(conversations.All(), 1)
}
