package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/captain-burah/estateflow-pro/internal/domain"
	"github.com/captain-burah/estateflow-pro/internal/logger"
	"github.com/captain-burah/estateflow-pro/internal/metrics"
	"github.com/captain-burah/estateflow-pro/internal/portalapi"
)

// LocationService searches portal location taxonomies, caching results in
// redis since portal taxonomies change rarely and autocomplete is chatty.
type LocationService struct {
	client   portalapi.LocationClient
	cache    *redis.Client
	cacheTTL time.Duration
}

// NewLocationService creates a new LocationService. cache may be nil, in
// which case every lookup goes to the portal API.
func NewLocationService(client portalapi.LocationClient, cache *redis.Client, cacheTTL time.Duration) *LocationService {
	return &LocationService{
		client:   client,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

func locationCacheKey(portal domain.PortalName, query string) string {
	return fmt.Sprintf("portal_locations:%s:%s", portal, strings.ToLower(strings.TrimSpace(query)))
}

// Search returns location candidates for the query on the named portal.
func (s *LocationService) Search(ctx context.Context, portal domain.PortalName, query string) ([]domain.PortalLocation, error) {
	if !domain.IsValidPortal(portal) {
		return nil, &domain.ValidationError{Field: "portal", Message: "unknown portal " + string(portal)}
	}
	if strings.TrimSpace(query) == "" {
		return nil, &domain.ValidationError{Field: "q", Message: "search query required"}
	}

	key := locationCacheKey(portal, query)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key).Result()
		if err == nil {
			var locations []domain.PortalLocation
			if err := json.Unmarshal([]byte(cached), &locations); err == nil {
				metrics.PortalLocationLookupsTotal.WithLabelValues(string(portal), "hit").Inc()
				return locations, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			logger.WarnContext(ctx, "location cache read failed", slog.String("error", err.Error()))
		}
	}
	metrics.PortalLocationLookupsTotal.WithLabelValues(string(portal), "miss").Inc()

	locations, err := s.client.SearchLocations(ctx, portal, query)
	if err != nil {
		return nil, fmt.Errorf("search portal locations: %w", err)
	}

	if s.cache != nil {
		if payload, err := json.Marshal(locations); err == nil {
			if err := s.cache.Set(ctx, key, payload, s.cacheTTL).Err(); err != nil {
				logger.WarnContext(ctx, "location cache write failed", slog.String("error", err.Error()))
			}
		}
	}
	return locations, nil
}
