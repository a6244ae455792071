package repositories

import (
	"context"
	"signald-groups/domain"
	"signald-groups/errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *RedisDirectoryRepository {
	s := miniredis.RunT(t)
	repository, err := OpenRedisDirectory(context.Background(), "redis://"+s.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repository.Close() })
	return repository
}

func TestRedisDirectoryRepository_Grouping(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := setupTestRedis(t)

	grouping, err := repository.FindGrouping(ctx, "Signal")
	req.NoError(err)
	req.Nil(grouping)

	req.NoError(repository.AddGrouping(ctx, domain.Grouping{Label: "Signal"}))

	grouping, err = repository.FindGrouping(ctx, "Signal")
	req.NoError(err)
	req.Equal("Signal", grouping.Label)
}

func TestRedisDirectoryRepository_ChatAndAlias(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := setupTestRedis(t)

	req.NoError(repository.AddChat(ctx, domain.NewDirectoryEntry("G1", "Signal")))
	req.NoError(repository.SetAlias(ctx, "G1", "Family"))
	req.NoError(repository.AddChat(ctx, domain.NewDirectoryEntry("G0", "Signal")))

	entry, err := repository.FindChat(ctx, "G1")
	req.NoError(err)
	req.Equal(domain.DirectoryEntry{ID: "G1", Name: "G1", Alias: "Family", Grouping: "Signal"}, *entry)

	entries, err := repository.ListChats(ctx)
	req.NoError(err)
	req.Len(entries, 2)
	req.Equal("Family", entries[0].DisplayName())
	req.Equal("G0", entries[1].DisplayName())

	req.ErrorIs(repository.SetAlias(ctx, "missing", "x"), errors.ErrUnknownGroup)
}

func TestOpenRedisDirectory_InvalidURL(t *testing.T) {
	req := require.New(t)

	_, err := OpenRedisDirectory(context.Background(), "not-a-url://")
	req.Error(err)
}
