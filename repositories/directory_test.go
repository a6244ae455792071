package repositories

import (
	"context"
	"log/slog"
	"signald-groups/domain"
	"signald-groups/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectoryRepository_Grouping(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewDirectoryRepository(openTestDB(t), slog.Default())

	// Given no grouping
	grouping, err := repository.FindGrouping(ctx, "Signal")
	req.NoError(err)
	req.Nil(grouping)

	// When it is added
	req.NoError(repository.AddGrouping(ctx, domain.Grouping{Label: "Signal"}))

	// Then it is found
	grouping, err = repository.FindGrouping(ctx, "Signal")
	req.NoError(err)
	req.Equal(&domain.Grouping{Label: "Signal"}, grouping)
}

func TestDirectoryRepository_ChatAndAlias(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewDirectoryRepository(openTestDB(t), slog.Default())

	entry, err := repository.FindChat(ctx, "G1")
	req.NoError(err)
	req.Nil(entry)

	req.NoError(repository.AddChat(ctx, domain.NewDirectoryEntry("G1", "Signal")))
	req.NoError(repository.SetAlias(ctx, "G1", "Family"))

	entry, err = repository.FindChat(ctx, "G1")
	req.NoError(err)
	req.Equal("G1", entry.Name)
	req.Equal("Family", entry.Alias)
	req.Equal("Signal", entry.Grouping)

	err = repository.SetAlias(ctx, "unknown", "Nope")
	req.ErrorIs(err, errors.ErrUnknownGroup)
}

func TestDirectoryRepository_ListChats(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewDirectoryRepository(openTestDB(t), slog.Default())

	req.NoError(repository.AddGrouping(ctx, domain.Grouping{Label: "Signal"}))
	req.NoError(repository.AddChat(ctx, domain.DirectoryEntry{ID: "G2", Name: "G2", Alias: "Work", Grouping: "Signal"}))
	req.NoError(repository.AddChat(ctx, domain.DirectoryEntry{ID: "G1", Name: "G1", Alias: "Family", Grouping: "Signal"}))

	entries, err := repository.ListChats(ctx)
	req.NoError(err)
	req.Len(entries, 2)
	req.Equal("Family", entries[0].DisplayName())
	req.Equal("Work", entries[1].DisplayName())
}
