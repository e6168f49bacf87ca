package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
	now         func() time.Time
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
		now:         time.Now,
	}
}

// Session resolves a token into the id of the logged user.
func (lc *LoginChecker) Session(ctx context.Context, token string) (int, error) {
	val, err := lc.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrSessionNotFound
	}
	if err != nil {
		return 0, err
	}

	session, err := decodeSession(val)
	if err != nil {
		return 0, err
	}
	if session.expired(lc.now(), lc.ttl) {
		return 0, ErrSessionExpired
	}
	return session.UserID, nil
}
