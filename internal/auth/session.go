package auth

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fittrack-session||"
	tokensSetKey     = "fittrack-sessions"
	tokenLength      = 35
)

type Session struct {
	UserID    int
	CreatedAt time.Time
}

// session values are stored as "<userID>|<createdAtUnix>"
func (s Session) encode() string {
	return fmt.Sprintf("%d|%d", s.UserID, s.CreatedAt.Unix())
}

func decodeSession(val string) (Session, error) {
	userIDStr, createdAtStr, found := strings.Cut(val, "|")
	if !found {
		return Session{}, fmt.Errorf("malformed session value [%s]", val)
	}
	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		return Session{}, fmt.Errorf("parse session user id: %w", err)
	}
	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return Session{}, fmt.Errorf("parse session created at: %w", err)
	}
	return Session{
		UserID:    userID,
		CreatedAt: time.Unix(createdAtUnix, 0),
	}, nil
}

func (s Session) expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.CreatedAt) > ttl
}

type ctxKey struct{}

// WithUserID stores the authenticated user id in the context.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserIDFromContext returns the id set by the auth middleware.
func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(ctxKey{}).(int)
	return userID, ok && userID > 0
}
