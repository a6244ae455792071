package directory

import (
	"context"
	"log/slog"
	"signald-groups/domain"
	"signald-groups/errors"
	"signald-groups/mocks"
	"signald-groups/repositories"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newBadgerSync(t *testing.T) (*Sync, repositories.DirectoryRepository) {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	store := repositories.NewDirectoryRepository(db, log)
	sync, err := NewSync(log, store, domain.DefaultGroupingLabel)
	require.NoError(t, err)
	return sync, store
}

func TestSync_Upsert_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	sync, store := newBadgerSync(t)

	// When the same snapshot is applied twice
	first, err := sync.Upsert(ctx, "G1", "Family")
	req.NoError(err)
	second, err := sync.Upsert(ctx, "G1", "Family")
	req.NoError(err)

	// Then exactly one entry exists under the Signal grouping
	req.Equal(first, second)
	entries, err := store.ListChats(ctx)
	req.NoError(err)
	req.Equal([]domain.DirectoryEntry{{ID: "G1", Name: "G1", Alias: "Family", Grouping: "Signal"}}, entries)
}

func TestSync_Upsert_Overwrites_Alias(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	sync, store := newBadgerSync(t)

	_, err := sync.Upsert(ctx, "G1", "Family")
	req.NoError(err)
	entry, err := sync.Upsert(ctx, "G1", "Family & friends")
	req.NoError(err)

	req.Equal("Family & friends", entry.Alias)
	stored, err := store.FindChat(ctx, "G1")
	req.NoError(err)
	req.Equal("Family & friends", stored.Alias)
}

func TestSync_Upsert_Empty_Title_Keeps_Alias(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	sync, _ := newBadgerSync(t)

	_, err := sync.Upsert(ctx, "G1", "Family")
	req.NoError(err)
	entry, err := sync.Upsert(ctx, "G1", "")
	req.NoError(err)

	req.Equal("Family", entry.Alias)
	req.Equal("Family", entry.DisplayName())
}

func TestSync_Upsert_Without_Title_Uses_Id(t *testing.T) {
	req := require.New(t)
	sync, _ := newBadgerSync(t)

	entry, err := sync.Upsert(context.Background(), "G2", "")

	req.NoError(err)
	req.Empty(entry.Alias)
	req.Equal("G2", entry.DisplayName())
}

func TestSync_Upsert_Reuses_Grouping(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIDirectoryStore(ctrl)
	sync, err := NewSync(logs.GetLoggerFromLevel(slog.LevelDebug), store, "Signal")
	req.NoError(err)

	// Given a grouping that already exists and a new group
	store.EXPECT().FindChat(ctx, "G3").Return(nil, nil)
	store.EXPECT().FindGrouping(ctx, "Signal").Return(&domain.Grouping{Label: "Signal"}, nil)
	store.EXPECT().AddChat(ctx, domain.DirectoryEntry{ID: "G3", Name: "G3", Grouping: "Signal"}).Return(nil)
	store.EXPECT().AddGrouping(gomock.Any(), gomock.Any()).Times(0)
	store.EXPECT().SetAlias(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// When
	entry, err := sync.Upsert(ctx, "G3", "")

	// Then
	req.NoError(err)
	req.Equal("Signal", entry.Grouping)
}

func TestSync_Upsert_Store_Failure(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIDirectoryStore(ctrl)
	sync, err := NewSync(logs.GetLoggerFromLevel(slog.LevelDebug), store, "Signal")
	req.NoError(err)

	store.EXPECT().FindChat(ctx, "G1").Return(nil, errors.ErrDirectoryBackend)

	_, err = sync.Upsert(ctx, "G1", "Family")
	req.ErrorIs(err, errors.ErrDirectoryBackend)
}

func TestNewSync_Rejects_Empty_Label(t *testing.T) {
	_, err := NewSync(logs.GetLoggerFromLevel(slog.LevelDebug), nil, "")
	require.ErrorIs(t, err, errors.ErrEmptyGroupingLabel)
}
