package resettoken

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Store keeps password-reset tokens in Redis with a TTL, plus a
// fixed-window throttle so one address cannot be flooded with reset
// mail.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

var (
	ErrInvalidToken = errors.New("resettoken: invalid or expired token")
	ErrThrottled    = errors.New("resettoken: too many requests")
)

const (
	tokenPrefix    = "pwreset:"
	throttlePrefix = "pwreset:rl:"

	throttleWindow = 15 * time.Minute
	throttleLimit  = 3
)

func New(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, ttl: 30 * time.Minute}
}

// Issue creates a single-use token for the agent. It throttles per
// email before touching anything else.
func (s *Store) Issue(ctx context.Context, email string, agentID uint) (string, error) {
	throttleKey := throttlePrefix + email
	count, err := s.rdb.Incr(ctx, throttleKey).Result()
	if err != nil {
		return "", fmt.Errorf("resettoken: throttle: %w", err)
	}
	if count == 1 {
		s.rdb.Expire(ctx, throttleKey, throttleWindow)
	}
	if count > throttleLimit {
		return "", ErrThrottled
	}

	token := uuid.NewString()
	if err := s.rdb.Set(ctx, tokenPrefix+token, agentID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("resettoken: store: %w", err)
	}
	return token, nil
}

// Redeem consumes the token and returns the agent it was issued for.
func (s *Store) Redeem(ctx context.Context, token string) (uint, error) {
	key := tokenPrefix + token

	val, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrInvalidToken
	}
	if err != nil {
		return 0, fmt.Errorf("resettoken: lookup: %w", err)
	}

	s.rdb.Del(ctx, key)

	id, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}
