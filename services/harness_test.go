package services

import (
	"log/slog"
	"signald-groups/directory"
	"signald-groups/domain"
	"signald-groups/formatter"
	"signald-groups/invitation"
	"signald-groups/membership"
	"signald-groups/mocks"
	"signald-groups/protocol"
	"signald-groups/repositories"
	"signald-groups/router"
	"signald-groups/runtime"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const localAccount = "U-self"

type harness struct {
	conn          *mocks.MockIConnection
	settings      *mocks.MockISettings
	store         repositories.DirectoryRepository
	conversations *runtime.Conversations
	registry      *runtime.Registry
	groups        *GroupService
	chats         *ChatService
	frames        *FrameHandler
	commands      *CommandHandler
}

// newHarness wires the real components on a Badger directory. Only the signald
// connection and the settings are mocked.
func newHarness(t *testing.T) *harness {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockIConnection(ctrl)
	settings := mocks.NewMockISettings(ctrl)
	settings.EXPECT().AccountUUID().Return(localAccount).AnyTimes()

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	store := repositories.NewDirectoryRepository(db, log)
	client := protocol.NewClient(log, conn, settings)
	conversations := runtime.NewConversations(log, nil)
	registry := runtime.NewRegistry(log, conversations, client)
	sync, err := directory.NewSync(log, store, domain.DefaultGroupingLabel)
	require.NoError(t, err)

	groups := NewGroupService(log, client,
		invitation.NewPolicy(log, settings, client),
		sync,
		membership.NewReconciler(log, registry, conversations))
	chats := NewChatService(log, registry, conversations, client, settings)
	route := router.NewRouter(log, registry, conversations, formatter.New(log))

	return &harness{
		conn:          conn,
		settings:      settings,
		store:         store,
		conversations: conversations,
		registry:      registry,
		groups:        groups,
		chats:         chats,
		frames:        NewFrameHandler(log, groups, route),
		commands:      NewCommandHandler(log, chats, groups, store),
	}
}

func (h *harness) autoAccept(enabled bool) {
	h.settings.EXPECT().AutoAcceptInvitations().Return(enabled).AnyTimes()
}
