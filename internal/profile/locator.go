package profile

import (
	"context"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// Locator resolves the location "today" is evaluated in for a user.
type Locator struct {
	repo      profileRepo
	locations locationResolver
}

func NewLocator(repo profileRepo, locations locationResolver) *Locator {
	return &Locator{
		repo:      repo,
		locations: locations,
	}
}

func (l *Locator) UserLocation(ctx context.Context, req *http.Request, userID int) *time.Location {
	var timezone *string
	p, err := l.repo.Get(ctx, userID)
	switch {
	case err == nil:
		timezone = p.Timezone
	case !errors.Is(err, ErrProfileNotFound):
		log.Errorf("get profile timezone for user %d: %s", userID, err)
	}
	return l.locations.Location(ctx, req, timezone)
}
