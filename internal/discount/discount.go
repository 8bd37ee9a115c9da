// Package discount generates dealer discount offers. There is no upstream
// pricing system behind this service: offers are simulated, which is why
// the generator sits behind the Provider interface and draws from an
// injected random source.
package discount

import (
	"math/rand"
	"sync"

	"golang.org/x/exp/slices"

	"carscope/internal/catalog"
	"carscope/internal/model"
)

const (
	discountChance = 0.7
	discountMin    = 100000
	discountMax    = 900000
	percentMin     = 5
	percentMax     = 20

	hasModelChance = 0.8
)

var specialOffers = []string{
	"Трейд-ин с доплатой",
	"Кредит 0.1%",
	"Каско в подарок",
	"Зимние шины в подарок",
	"Расширенная гарантия",
	"Бесплатное ТО на 3 года",
}

type Provider interface {
	DealerOffers(brand string, carModel string) []model.DealerOffer
}

type RandomProvider struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomProvider(rnd *rand.Rand) *RandomProvider {
	return &RandomProvider{rnd: rnd}
}

// DealerOffers resolves the brand's dealers from the catalog, rolls a
// discount for each one, drops dealers without a discount and returns the
// rest ordered by discount descending (stable on catalog order). The car
// model is display-only and does not affect the draw.
func (p *RandomProvider) DealerOffers(brand string, carModel string) []model.DealerOffer {
	p.mu.Lock()
	defer p.mu.Unlock()

	var offers []model.DealerOffer
	for _, d := range catalog.DealersByBrand(brand) {
		if p.rnd.Float64() >= discountChance {
			// No offer this round; availability alone is not listed.
			continue
		}
		offers = append(offers, model.DealerOffer{
			Dealer:          d,
			Discount:        discountMin + p.rnd.Intn(discountMax-discountMin),
			DiscountPercent: percentMin + p.rnd.Intn(percentMax-percentMin),
			SpecialOffer:    specialOffers[p.rnd.Intn(len(specialOffers))],
			HasModel:        p.rnd.Float64() < hasModelChance,
		})
	}

	slices.SortStableFunc(offers, func(a, b model.DealerOffer) bool {
		return a.Discount > b.Discount
	})
	return offers
}
