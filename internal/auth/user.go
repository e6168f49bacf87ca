package auth

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongCredentials   = errors.New("wrong credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const (
	maxUsernameLen    = 150
	minPasswordLength = 8
)

var usernameRegex = regexp.MustCompile(`^[\w.@+-]+$`)

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c Credentials) Validate() error {
	if c.Username == "" {
		return fmt.Errorf("%w: username empty", ErrInvalidCredentials)
	}
	if len(c.Username) > maxUsernameLen {
		return fmt.Errorf("%w: username longer than %d characters", ErrInvalidCredentials, maxUsernameLen)
	}
	if !usernameRegex.MatchString(c.Username) {
		return fmt.Errorf("%w: username may contain only letters, digits and @.+-_", ErrInvalidCredentials)
	}
	if len(c.Password) < minPasswordLength {
		return fmt.Errorf("%w: password shorter than %d characters", ErrInvalidCredentials, minPasswordLength)
	}
	return nil
}
