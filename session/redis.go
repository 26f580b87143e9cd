package session

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisRegistry is a Redis-backed [Registry] for deployments where session
// state must survive a process restart or be shared between replicas.
//
// Key layout under the configured prefix:
//
//	<prefix>:live:<username>    SET of live token strings
//	<prefix>:tracked:<username> marker, set on first registration
//	<prefix>:accounts           SET of usernames with any state, for ResetAll
//
// The tracked marker is a separate key because Redis deletes a set when its
// last member is removed, which would otherwise erase the tracked/untracked
// distinction on logout.
type RedisRegistry struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisRegistry creates a registry on the given client. prefix namespaces
// all keys; when empty, "enrollauth" is used.
func NewRedisRegistry(client redis.UniversalClient, prefix string) *RedisRegistry {
	if prefix == "" {
		prefix = "enrollauth"
	}
	return &RedisRegistry{client: client, prefix: prefix}
}

func (r *RedisRegistry) liveKey(username string) string {
	return fmt.Sprintf("%s:live:%s", r.prefix, username)
}

func (r *RedisRegistry) trackedKey(username string) string {
	return fmt.Sprintf("%s:tracked:%s", r.prefix, username)
}

func (r *RedisRegistry) indexKey() string {
	return r.prefix + ":accounts"
}

// Register implements [Registry].
func (r *RedisRegistry) Register(ctx context.Context, username, token string) error {
	pipe := r.client.TxPipeline()
	pipe.SAdd(ctx, r.liveKey(username), token)
	pipe.Set(ctx, r.trackedKey(username), "1", 0)
	pipe.SAdd(ctx, r.indexKey(), username)
	_, err := pipe.Exec(ctx)
	return err
}

// IsLive implements [Registry].
func (r *RedisRegistry) IsLive(ctx context.Context, username, token string) (bool, error) {
	return r.client.SIsMember(ctx, r.liveKey(username), token).Result()
}

// Tracked implements [Registry].
func (r *RedisRegistry) Tracked(ctx context.Context, username string) (bool, error) {
	n, err := r.client.Exists(ctx, r.trackedKey(username)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Revoke implements [Registry].
func (r *RedisRegistry) Revoke(ctx context.Context, username, token string) (bool, error) {
	removed, err := r.client.SRem(ctx, r.liveKey(username), token).Result()
	if err != nil {
		return false, err
	}
	return removed > 0, nil
}

// ResetAll implements [Registry].
func (r *RedisRegistry) ResetAll(ctx context.Context) error {
	usernames, err := r.client.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		return err
	}

	keys := make([]string, 0, 2*len(usernames)+1)
	for _, username := range usernames {
		keys = append(keys, r.liveKey(username), r.trackedKey(username))
	}
	keys = append(keys, r.indexKey())
	return r.client.Del(ctx, keys...).Err()
}
