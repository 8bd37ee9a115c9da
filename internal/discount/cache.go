package discount

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-redis/redis/v9"

	"carscope/internal/model"
)

type logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

// CachedProvider keeps a generated offer set stable for the cache TTL
// instead of re-rolling it on every lookup. Cache failures fall through to
// the wrapped Provider.
type CachedProvider struct {
	Provider Provider
	Redis    *redis.Client
	TTL      time.Duration
	Logger   logger
}

func offerCacheKey(brand string, carModel string) string {
	return "offers-" + strings.ToLower(brand) + "-" + strings.ToLower(carModel)
}

func (p CachedProvider) DealerOffers(brand string, carModel string) []model.DealerOffer {
	ctx := context.TODO()
	cacheKey := offerCacheKey(brand, carModel)

	cached, err := p.Redis.Get(ctx, cacheKey).Result()
	if err == nil {
		var offers []model.DealerOffer
		if err = json.Unmarshal([]byte(cached), &offers); err == nil {
			p.Logger.Debugf("DealerOffers: Cache found, key: %s", cacheKey)
			return offers
		}
		p.Logger.Errorf("DealerOffers: Error unmarshalling cache, key: %s, err: %v", cacheKey, err)
	} else if err != redis.Nil {
		p.Logger.Errorf("DealerOffers: Error getting Redis cache with key: %s, err: %v", cacheKey, err)
	}

	offers := p.Provider.DealerOffers(brand, carModel)

	offersJSON, err := json.Marshal(offers)
	if err != nil {
		p.Logger.Errorf("DealerOffers: Error marshalling offers for cache, key: %s, err: %v", cacheKey, err)
		return offers
	}
	if err = p.Redis.Set(ctx, cacheKey, offersJSON, p.TTL).Err(); err != nil {
		p.Logger.Errorf("DealerOffers: Error setting Redis cache with key: %s, err: %v", cacheKey, err)
	}
	return offers
}
