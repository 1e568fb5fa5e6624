package myredis

import (
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisConfig holds the Redis connection address (URL form, e.g. redis://host:6379/0).
type RedisConfig struct {
	Addr string
}

// ConfigOption tweaks the parsed connection options before the client is built.
type ConfigOption func(*redis.Options)

// NewRedisUniversalClient creates the client backing the session store from a
// redis URL (REDIS_ADDR). Universal form so a clustered store can be swapped in
// through configuration alone.
//
// Parameters: redisAddr — URL accepted by redis.ParseURL; options — optional tweaks applied to the parsed options.
//
// Returns: (client, nil) on success; (nil, error) when the URL does not parse.
//
// Called from cmd/main before the startup ping check and from the store tests.
func NewRedisUniversalClient(redisAddr string, options ...ConfigOption) (redis.UniversalClient, error) {
	parsed, err := redis.ParseURL(redisAddr)
	if err != nil {
		return nil, fmt.Errorf("invalid redis address %q: %w", redisAddr, err)
	}
	for _, opt := range options {
		opt(parsed)
	}
	return redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:        []string{parsed.Addr},
		DB:           parsed.DB,
		Username:     parsed.Username,
		Password:     parsed.Password,
		DialTimeout:  parsed.DialTimeout,
		ReadTimeout:  parsed.ReadTimeout,
		WriteTimeout: parsed.WriteTimeout,
	}), nil
}
