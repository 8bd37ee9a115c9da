package discount

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carscope/internal/catalog"
)

func TestDealerOffersBounds(t *testing.T) {
	p := NewRandomProvider(rand.New(rand.NewSource(1)))

	for i := 0; i < 200; i++ {
		for _, offer := range p.DealerOffers("BMW", "X5") {
			assert.GreaterOrEqual(t, offer.Discount, 100000)
			assert.Less(t, offer.Discount, 900000)
			assert.GreaterOrEqual(t, offer.DiscountPercent, 5)
			assert.Less(t, offer.DiscountPercent, 20)
			assert.Contains(t, specialOffers, offer.SpecialOffer)
		}
	}
}

func TestDealerOffersSortedDescending(t *testing.T) {
	p := NewRandomProvider(rand.New(rand.NewSource(42)))

	for i := 0; i < 200; i++ {
		offers := p.DealerOffers("Toyota", "Camry")
		for j := 1; j < len(offers); j++ {
			assert.GreaterOrEqual(t, offers[j-1].Discount, offers[j].Discount)
		}
	}
}

func TestDealerOffersOnlyMatchingBrand(t *testing.T) {
	p := NewRandomProvider(rand.New(rand.NewSource(7)))

	offers := p.DealerOffers("mercedes-benz", "C-Class")
	brandDealers := catalog.DealersByBrand("Mercedes-Benz")
	require.NotEmpty(t, brandDealers)
	assert.LessOrEqual(t, len(offers), len(brandDealers))
	for _, offer := range offers {
		assert.Equal(t, "Mercedes-Benz", offer.Brand)
	}
}

func TestDealerOffersUnknownBrand(t *testing.T) {
	p := NewRandomProvider(rand.New(rand.NewSource(3)))
	assert.Empty(t, p.DealerOffers("Lada", "Vesta"))
}

func TestDealerOffersEventuallyCoversAllDealers(t *testing.T) {
	p := NewRandomProvider(rand.New(rand.NewSource(11)))

	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		for _, offer := range p.DealerOffers("BMW", "X5") {
			seen[offer.ID] = true
		}
	}
	assert.Len(t, seen, len(catalog.DealersByBrand("BMW")))
}
