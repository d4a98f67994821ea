package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"Datashare/internal/core/users"

	"github.com/redis/go-redis/v9"
)

// Key layout:
//   user:<username>      JSON-encoded account record
//   followers:<username> set of usernames following this user
//   following:<username> set of usernames this user follows
//   repos:<username>     set of dataset ids published by this user
const (
	userKeyPrefix      = "user:"
	followersKeyPrefix = "followers:"
	followingKeyPrefix = "following:"
	reposKeyPrefix     = "repos:"
)

type redisUserRepo struct {
	client *redis.Client
}

// NewUserRepository creates a new Redis user repository
func NewUserRepository(client *redis.Client) users.Repository {
	return &redisUserRepo{client: client}
}

// Set stores a user record as a JSON value, overwriting any existing one
func (r *redisUserRepo) Set(ctx context.Context, user *users.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user %s: %w", user.Username, err)
	}

	if err := r.client.Set(ctx, userKeyPrefix+user.Username, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store user %s: %w", user.Username, err)
	}

	return nil
}

// Get retrieves a user record by username
func (r *redisUserRepo) Get(ctx context.Context, username string) (*users.User, error) {
	data, err := r.client.Get(ctx, userKeyPrefix+username).Bytes()
	if err == redis.Nil {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", username, err)
	}

	var user users.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user %s: %w", username, err)
	}

	return &user, nil
}

// Delete removes a user record along with its relation sets
func (r *redisUserRepo) Delete(ctx context.Context, username string) error {
	keys := []string{
		userKeyPrefix + username,
		followersKeyPrefix + username,
		followingKeyPrefix + username,
		reposKeyPrefix + username,
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", username, err)
	}

	return nil
}

// Exists reports whether a username is taken
func (r *redisUserRepo) Exists(ctx context.Context, username string) (bool, error) {
	n, err := r.client.Exists(ctx, userKeyPrefix+username).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check user %s: %w", username, err)
	}

	return n > 0, nil
}

// List retrieves every user record. SCAN walks the keyspace incrementally
// instead of blocking the server with KEYS.
func (r *redisUserRepo) List(ctx context.Context) ([]users.User, error) {
	results := []users.User{}

	iter := r.client.Scan(ctx, 0, userKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		data, err := r.client.Get(ctx, iter.Val()).Bytes()
		if err == redis.Nil {
			// key expired between scan and read
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read user key %s: %w", iter.Val(), err)
		}

		var user users.User
		if err := json.Unmarshal(data, &user); err != nil {
			return nil, fmt.Errorf("failed to decode user key %s: %w", iter.Val(), err)
		}
		results = append(results, user)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan users: %w", err)
	}

	return results, nil
}

// AddFollower updates both sides of the relation in one pipeline
func (r *redisUserRepo) AddFollower(ctx context.Context, follower, followee string) error {
	pipe := r.client.TxPipeline()
	pipe.SAdd(ctx, followersKeyPrefix+followee, follower)
	pipe.SAdd(ctx, followingKeyPrefix+follower, followee)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add follower %s -> %s: %w", follower, followee, err)
	}

	return nil
}

// Followers retrieves the usernames following the given user
func (r *redisUserRepo) Followers(ctx context.Context, username string) ([]string, error) {
	members, err := r.client.SMembers(ctx, followersKeyPrefix+username).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get followers of %s: %w", username, err)
	}

	return members, nil
}

// Following retrieves the usernames the given user follows
func (r *redisUserRepo) Following(ctx context.Context, username string) ([]string, error) {
	members, err := r.client.SMembers(ctx, followingKeyPrefix+username).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get following of %s: %w", username, err)
	}

	return members, nil
}

// AddRepository appends a dataset id to the user's personal index
func (r *redisUserRepo) AddRepository(ctx context.Context, username, datasetID string) error {
	if err := r.client.SAdd(ctx, reposKeyPrefix+username, datasetID).Err(); err != nil {
		return fmt.Errorf("failed to add repository for %s: %w", username, err)
	}

	return nil
}

// Repositories retrieves the dataset ids in the user's personal index
func (r *redisUserRepo) Repositories(ctx context.Context, username string) ([]string, error) {
	members, err := r.client.SMembers(ctx, reposKeyPrefix+username).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get repositories of %s: %w", username, err)
	}

	return members, nil
}
