package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"sync/atomic"
	"time"

	"intern-match/internal/config"

	"github.com/redis/go-redis/v9"
)

const (
	defaultTTL    = 600 * time.Second
	defaultPrefix = "internmatch:"
	pingTimeout   = 2 * time.Second
)

var ErrUnavailable = errors.New("redis unavailable")

// Stats counts lookups since start. Lookups made while Redis is bypassed
// are not counted.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// Redis stores résumé analyses as JSON under a fixed key prefix. When the
// server is unreachable at startup every call becomes a no-op miss.
type Redis struct {
	client *redis.Client
	logger *log.Logger
	ttl    time.Duration
	prefix string

	hits   atomic.Uint64
	misses atomic.Uint64

	warnedUnavailable atomic.Bool
}

func NewRedis(cfg config.RedisConfig, logger *log.Logger) *Redis {
	if logger == nil {
		logger = log.Default()
	}
	host, port := cfg.Host, cfg.Port
	if host == "" {
		host = "localhost"
	}
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: cfg.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Printf("[Cache] redis unavailable addr=%s, bypassing cache err=%v", net.JoinHostPort(host, port), err)
		_ = client.Close()
		client = nil
	}
	return NewRedisWithClient(client, cfg.TTL, logger)
}

// NewRedisWithClient wraps an existing client without pinging it. A nil
// client yields a bypassed cache.
func NewRedisWithClient(client *redis.Client, ttl time.Duration, logger *log.Logger) *Redis {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Redis{client: client, logger: logger, ttl: ttl, prefix: defaultPrefix}
}

func (r *Redis) Available() bool {
	return r != nil && r.client != nil
}

func (r *Redis) Ping(ctx context.Context) error {
	if !r.Available() {
		return ErrUnavailable
	}
	return r.client.Ping(ctx).Err()
}

// GetJSON decodes the value under key into out. A missing key, a bypassed
// cache and an empty value all report found=false with a nil error.
func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if !r.Available() {
		return false, nil
	}
	b, err := r.client.Get(ctx, r.prefix+key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		r.misses.Add(1)
		return false, nil
	case err != nil:
		r.warnOnce(err)
		return false, err
	case len(b) == 0:
		r.misses.Add(1)
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		r.misses.Add(1)
		return false, err
	}
	r.hits.Add(1)
	return true, nil
}

// SetJSON stores value for ttl, or for the configured TTL when ttl <= 0.
func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if !r.Available() {
		return nil
	}
	if ttl <= 0 {
		ttl = r.ttl
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.prefix+key, b, ttl).Err(); err != nil {
		r.warnOnce(err)
		return err
	}
	return nil
}

func (r *Redis) Stats() Stats {
	if r == nil {
		return Stats{}
	}
	return Stats{Hits: r.hits.Load(), Misses: r.misses.Load()}
}

func (r *Redis) Close() error {
	if !r.Available() {
		return nil
	}
	return r.client.Close()
}

// warnOnce logs the first runtime failure only; later failures are
// returned to callers, which log them per request.
func (r *Redis) warnOnce(err error) {
	if r.logger == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Printf("[Cache] redis call failed err=%v", err)
	}
}
