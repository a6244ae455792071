// Package directory keeps the host's contact directory in line with group snapshots.
package directory

import (
	"context"
	"fmt"
	"log/slog"
	"signald-groups/contract"
	"signald-groups/domain"
	"signald-groups/errors"
)

// Sync upserts one directory entry per group. Entries are never deleted.
type Sync struct {
	log   *slog.Logger
	store contract.IDirectoryStore
	label string
}

func NewSync(log *slog.Logger, store contract.IDirectoryStore, groupingLabel string) (*Sync, error) {
	if groupingLabel == "" {
		return nil, errors.ErrEmptyGroupingLabel
	}
	return &Sync{log: log, store: store, label: groupingLabel}, nil
}

// Upsert creates the entry under the protocol grouping when the group is new,
// and sets its alias when title is not empty. Calling it again with the same
// arguments writes nothing.
func (s *Sync) Upsert(ctx context.Context, id, title string) (domain.DirectoryEntry, error) {
	if id == "" {
		return domain.DirectoryEntry{}, errors.ErrMissingGroupID
	}
	entry, err := s.store.FindChat(ctx, id)
	if err != nil {
		return domain.DirectoryEntry{}, fmt.Errorf("find chat %s: %w", id, err)
	}

	if entry == nil {
		grouping, err := s.ensureGrouping(ctx)
		if err != nil {
			return domain.DirectoryEntry{}, err
		}
		created := domain.NewDirectoryEntry(id, grouping.Label)
		if err := s.store.AddChat(ctx, created); err != nil {
			return domain.DirectoryEntry{}, fmt.Errorf("add chat %s: %w", id, err)
		}
		s.log.Debug("Added group to directory", "group_id", id, "grouping", grouping.Label)
		entry = &created
	}

	if title != "" && entry.Alias != title {
		if err := s.store.SetAlias(ctx, id, title); err != nil {
			return domain.DirectoryEntry{}, fmt.Errorf("alias chat %s: %w", id, err)
		}
		entry.Alias = title
	}
	return *entry, nil
}

func (s *Sync) ensureGrouping(ctx context.Context) (domain.Grouping, error) {
	grouping, err := s.store.FindGrouping(ctx, s.label)
	if err != nil {
		return domain.Grouping{}, fmt.Errorf("find grouping %s: %w", s.label, err)
	}
	if grouping != nil {
		return *grouping, nil
	}
	created := domain.Grouping{Label: s.label}
	if err := s.store.AddGrouping(ctx, created); err != nil {
		return domain.Grouping{}, fmt.Errorf("add grouping %s: %w", s.label, err)
	}
	return created, nil
}
