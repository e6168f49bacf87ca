package geoip

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
	"github.com/ipinfo/go/v2/ipinfo"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=resolver_mocks_test.go -package=geoip_test

const (
	megabyte = 1024 * 1024

	localCacheExpireSeconds = 60 * 60 * 24
	redisCacheExpire        = 7 * 24 * time.Hour
	redisKeyPrefix          = "fittrack-ip-tz::"
)

type ipTimezoneLookup interface {
	GetIPTimezone(ip net.IP) (string, error)
}

// NewIPInfoClient creates the ipinfo.io client used for timezone lookups.
func NewIPInfoClient(token string, httpClient *http.Client) *ipinfo.Client {
	return ipinfo.NewClient(httpClient, nil, token)
}

// Resolver maps request IPs to IANA timezones. Lookups go through an in-process
// freecache first, then redis, then ipinfo.
type Resolver struct {
	lookup          ipTimezoneLookup
	cache           *freecache.Cache
	redisClient     *redis.Client
	defaultLocation *time.Location
	metricsManager  *metrics.Manager
}

func NewResolver(
	lookup ipTimezoneLookup,
	redisClient *redis.Client,
	cacheSizeMB int,
	defaultTimezone string,
	metricsManager *metrics.Manager,
) (*Resolver, error) {
	defaultLocation, err := time.LoadLocation(defaultTimezone)
	if err != nil {
		return nil, fmt.Errorf("load default timezone [%s]: %w", defaultTimezone, err)
	}
	if cacheSizeMB <= 0 {
		cacheSizeMB = 1
	}

	return &Resolver{
		lookup:          lookup,
		cache:           freecache.NewCache(cacheSizeMB * megabyte),
		redisClient:     redisClient,
		defaultLocation: defaultLocation,
		metricsManager:  metricsManager,
	}, nil
}

func (r *Resolver) DefaultLocation() *time.Location {
	return r.defaultLocation
}

// Location picks the user's location: the profile timezone when set and valid,
// else the timezone of the request IP, else the configured default.
func (r *Resolver) Location(ctx context.Context, req *http.Request, profileTimezone *string) *time.Location {
	if profileTimezone != nil && *profileTimezone != "" {
		if loc, err := time.LoadLocation(*profileTimezone); err == nil {
			return loc
		}
		log.Warnf("invalid profile timezone [%s], falling back to geo ip", *profileTimezone)
	}

	if req == nil {
		return r.defaultLocation
	}

	userIP, err := pkg.ReadUserIP(req)
	if err != nil {
		log.Debugf("read user ip: %s", err)
		return r.defaultLocation
	}

	tz, err := r.Timezone(ctx, userIP)
	if err != nil {
		log.Errorf("resolve timezone for [%s]: %s", userIP, err)
		return r.defaultLocation
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Errorf("load location [%s] for [%s]: %s", tz, userIP, err)
		return r.defaultLocation
	}
	return loc
}

// Timezone returns the IANA timezone name for the IP.
func (r *Resolver) Timezone(ctx context.Context, userIP string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "geoip.timezone")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.ip", userIP))

	if userIP == pkg.LocalIP {
		r.countLookup("local")
		return r.defaultLocation.String(), nil
	}

	ip := net.ParseIP(userIP)
	if ip == nil {
		return "", fmt.Errorf("invalid ip [%s]", userIP)
	}

	key := []byte(userIP)
	if tz, err := r.cache.Get(key); err == nil {
		r.countLookup("cache")
		span.SetAttributes(attribute.String("source", "cache"))
		return string(tz), nil
	} else if !errors.Is(err, freecache.ErrNotFound) {
		log.Errorf("get timezone for [%s] from local cache: %s", userIP, err)
	}

	redisKey := redisKeyPrefix + userIP
	tz, err := r.redisClient.Get(ctx, redisKey).Result()
	switch {
	case err == nil && tz != "":
		r.countLookup("redis")
		span.SetAttributes(attribute.String("source", "redis"))
		r.setLocal(key, tz)
		return tz, nil
	case err != nil && !errors.Is(err, redis.Nil):
		log.Errorf("get timezone for [%s] from redis: %s", userIP, err)
	}

	tz, err = r.lookup.GetIPTimezone(ip)
	if err != nil {
		r.countLookup("error")
		return "", fmt.Errorf("ipinfo lookup: %w", err)
	}
	if tz == "" {
		r.countLookup("error")
		return "", fmt.Errorf("no timezone for [%s]", userIP)
	}
	r.countLookup("ipinfo")
	span.SetAttributes(attribute.String("source", "ipinfo"))

	if err := r.redisClient.Set(ctx, redisKey, tz, redisCacheExpire).Err(); err != nil {
		log.Errorf("cache timezone for [%s] in redis: %s", userIP, err)
	}
	r.setLocal(key, tz)

	return tz, nil
}

func (r *Resolver) setLocal(key []byte, tz string) {
	if err := r.cache.Set(key, []byte(tz), localCacheExpireSeconds); err != nil {
		log.Errorf("cache timezone for [%s] locally: %s", key, err)
	}
}

func (r *Resolver) countLookup(source string) {
	if r.metricsManager == nil {
		return
	}
	r.metricsManager.CounterGeoIPLookups.With(prometheus.Labels{"source": source}).Inc()
}
