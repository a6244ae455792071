package repositories

import (
	"context"
	"fmt"
	"signald-groups/domain"
	"signald-groups/errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "signald:"

// RedisDirectoryRepository keeps the contact directory in Redis so that several
// hosts can share it. Each chat is a hash, the set "{prefix}chats" indexes them.
type RedisDirectoryRepository struct {
	client *redis.Client
	prefix string
}

// OpenRedisDirectory parses the URL and checks the server is reachable.
func OpenRedisDirectory(ctx context.Context, redisURL string) (*RedisDirectoryRepository, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return NewRedisDirectoryRepository(client), nil
}

func NewRedisDirectoryRepository(client *redis.Client) *RedisDirectoryRepository {
	return &RedisDirectoryRepository{client: client, prefix: defaultRedisPrefix}
}

func (r *RedisDirectoryRepository) groupingKey(label string) string {
	return r.prefix + groupingPrefix + label
}

func (r *RedisDirectoryRepository) chatKey(id string) string {
	return r.prefix + chatPrefix + id
}

func (r *RedisDirectoryRepository) indexKey() string {
	return r.prefix + "chats"
}

func (r *RedisDirectoryRepository) FindGrouping(ctx context.Context, label string) (*domain.Grouping, error) {
	n, err := r.client.Exists(ctx, r.groupingKey(label)).Result()
	if err != nil {
		return nil, fmt.Errorf("find grouping: %w", err)
	}
	if n == 0 {
		return nil, nil
	}
	return &domain.Grouping{Label: label}, nil
}

func (r *RedisDirectoryRepository) AddGrouping(ctx context.Context, grouping domain.Grouping) error {
	if err := r.client.Set(ctx, r.groupingKey(grouping.Label), grouping.Label, 0).Err(); err != nil {
		return fmt.Errorf("add grouping: %w", err)
	}
	return nil
}

func (r *RedisDirectoryRepository) FindChat(ctx context.Context, id string) (*domain.DirectoryEntry, error) {
	fields, err := r.client.HGetAll(ctx, r.chatKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("find chat: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return &domain.DirectoryEntry{
		ID:       fields["id"],
		Name:     fields["name"],
		Alias:    fields["alias"],
		Grouping: fields["grouping"],
	}, nil
}

func (r *RedisDirectoryRepository) AddChat(ctx context.Context, entry domain.DirectoryEntry) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, r.chatKey(entry.ID), map[string]any{
			"id":       entry.ID,
			"name":     entry.Name,
			"alias":    entry.Alias,
			"grouping": entry.Grouping,
		})
		pipe.SAdd(ctx, r.indexKey(), entry.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("add chat: %w", err)
	}
	return nil
}

func (r *RedisDirectoryRepository) SetAlias(ctx context.Context, id, alias string) error {
	n, err := r.client.Exists(ctx, r.chatKey(id)).Result()
	if err != nil {
		return fmt.Errorf("set alias: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", errors.ErrUnknownGroup, id)
	}
	if err := r.client.HSet(ctx, r.chatKey(id), "alias", alias).Err(); err != nil {
		return fmt.Errorf("set alias: %w", err)
	}
	return nil
}

func (r *RedisDirectoryRepository) ListChats(ctx context.Context) ([]domain.DirectoryEntry, error) {
	ids, err := r.client.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	entries := make([]domain.DirectoryEntry, 0, len(ids))
	for _, id := range ids {
		entry, err := r.FindChat(ctx, id)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			entries = append(entries, *entry)
		}
	}
	sortEntries(entries)
	return entries, nil
}

func (r *RedisDirectoryRepository) Close() error {
	return r.client.Close()
}
