package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"signald-groups/domain"
	"signald-groups/errors"
	"sort"

	"github.com/dgraph-io/badger/v4"
)

const (
	groupingPrefix = "grouping:"
	chatPrefix     = "chat:"
)

// DirectoryRepository is the Badger backed contact directory.
// Keys are "grouping:{label}" and "chat:{groupID}", values are JSON documents.
type DirectoryRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewDirectoryRepository(db *badger.DB, log *slog.Logger) DirectoryRepository {
	return DirectoryRepository{db: db, log: log}
}

func (d DirectoryRepository) FindGrouping(_ context.Context, label string) (*domain.Grouping, error) {
	var grouping domain.Grouping
	found, err := d.get([]byte(groupingPrefix+label), &grouping)
	if err != nil || !found {
		return nil, err
	}
	return &grouping, nil
}

func (d DirectoryRepository) AddGrouping(_ context.Context, grouping domain.Grouping) error {
	return d.set([]byte(groupingPrefix+grouping.Label), grouping)
}

func (d DirectoryRepository) FindChat(_ context.Context, id string) (*domain.DirectoryEntry, error) {
	var entry domain.DirectoryEntry
	found, err := d.get([]byte(chatPrefix+id), &entry)
	if err != nil || !found {
		return nil, err
	}
	return &entry, nil
}

func (d DirectoryRepository) AddChat(_ context.Context, entry domain.DirectoryEntry) error {
	return d.set([]byte(chatPrefix+entry.ID), entry)
}

// SetAlias rewrites the alias inside a single transaction.
func (d DirectoryRepository) SetAlias(_ context.Context, id, alias string) error {
	key := []byte(chatPrefix + id)
	return d.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", errors.ErrUnknownGroup, id)
		}
		if err != nil {
			return err
		}
		var entry domain.DirectoryEntry
		if err = item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entry)
		}); err != nil {
			return err
		}
		if entry.Alias == alias {
			return nil
		}
		entry.Alias = alias
		bytes, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		return txn.Set(key, bytes)
	})
}

// ListChats returns every known group, sorted by display name.
func (d DirectoryRepository) ListChats(_ context.Context) ([]domain.DirectoryEntry, error) {
	var entries []domain.DirectoryEntry
	err := d.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(chatPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var entry domain.DirectoryEntry
				if err := json.Unmarshal(val, &entry); err != nil {
					return err
				}
				entries = append(entries, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortEntries(entries)
	return entries, nil
}

func (d DirectoryRepository) get(key []byte, target any) (bool, error) {
	err := d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, target)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (d DirectoryRepository) set(key []byte, value any) error {
	bytes, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, bytes)
	})
}

func sortEntries(entries []domain.DirectoryEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].DisplayName() == entries[j].DisplayName() {
			return entries[i].ID < entries[j].ID
		}
		return entries[i].DisplayName() < entries[j].DisplayName()
	})
}
