package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=auth_test

type usersRepo interface {
	Add(ctx context.Context, username, passwordHash string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Delete(ctx context.Context, id int) error
}

// profileFactory creates the empty profile of a freshly registered user.
type profileFactory interface {
	Create(ctx context.Context, userID int) error
}

type Service struct {
	users       usersRepo
	profiles    profileFactory
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
	Now            func() time.Time
}

func NewService(
	users usersRepo,
	profiles profileFactory,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		users:          users,
		profiles:       profiles,
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
		Now:            time.Now,
	}
}

// Register creates the user together with its empty profile.
func (s *Service) Register(ctx context.Context, creds Credentials) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := creds.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := pkg.HashPassword(creds.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Add(ctx, creds.Username, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("add user: %w", err)
	}
	span.SetAttributes(attribute.Int("user.id", user.ID))

	if err := s.profiles.Create(ctx, user.ID); err != nil {
		if delErr := s.users.Delete(ctx, user.ID); delErr != nil {
			log.Errorf("register, failed to remove user %d without profile: %s", user.ID, delErr)
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}

	return user, nil
}

// Login checks the credentials and opens a new session.
func (s *Service) Login(ctx context.Context, creds Credentials, createdAt time.Time) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.users.GetByUsername(ctx, creds.Username)
	if errors.Is(err, ErrUserNotFound) {
		return "", ErrWrongCredentials
	}
	if err != nil {
		return "", fmt.Errorf("get user: %w", err)
	}

	if !pkg.CheckPasswordHash(creds.Password, user.PasswordHash) {
		return "", ErrWrongCredentials
	}

	return s.newSession(ctx, Session{UserID: user.ID, CreatedAt: createdAt})
}

func (s *Service) newSession(ctx context.Context, session Session) (string, error) {
	token, err := s.RandStringFunc(tokenLength)
	if err != nil {
		return "", err
	}

	if err := s.redisClient.Set(ctx, sessionKeyPrefix+token, session.encode(), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	// add token to the set of sessions
	if err := s.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", fmt.Errorf("add session token: %w", err)
	}

	return token, nil
}

// Logout removes the session, false is returned if it did not exist.
func (s *Service) Logout(ctx context.Context, token string) (bool, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.logout")
	defer span.End()

	deleted, err := s.redisClient.Del(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}

	if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, err
	}

	return deleted > 0, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (s *Service) ScanAndClean(ctx context.Context) {
	sessionTokens, err := s.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("auth service, scan and clean, get sessions: %s", err)
		return
	}

	if len(sessionTokens) == 0 {
		log.Debugln("auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	now := s.Now()
	var toRemove []string
	for _, token := range sessionTokens {
		val, err := s.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
		if errors.Is(err, redis.Nil) {
			// already expired in redis, just drop it from the set
			toRemove = append(toRemove, token)
			continue
		}
		if err != nil {
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			continue
		}

		session, err := decodeSession(val)
		if err != nil || session.expired(now, s.ttl) {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if err := s.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
			continue
		}
		if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
			continue
		}
	}
	log.Debugf("auth service, scan and clean removed %d sessions", len(toRemove))
}

// RunCleanup calls ScanAndClean every interval until ctx is done.
func (s *Service) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.ScanAndClean(ctx)
		}
	}
}
