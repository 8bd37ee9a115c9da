// Package alert decides when discount alerts fire. Like the discount
// generator there is no real pricing feed: each check rolls whether a
// matching offer "appeared" and synthesizes the resulting notification.
package alert

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"carscope/internal/model"
)

const (
	triggerChance = 0.2
	// Emitted discounts land in [target, target+overshootMax).
	overshootMax = 500000
)

type Checker struct {
	mu          sync.Mutex
	rnd         *rand.Rand
	dealerNames []string
}

func NewChecker(rnd *rand.Rand, dealerNames []string) *Checker {
	return &Checker{rnd: rnd, dealerNames: dealerNames}
}

// Evaluate runs one check tick over the given alerts and returns the
// notifications to deliver. Inactive alerts never fire; an active alert
// fires with probability 0.2 and produces at most one notification per
// tick, carrying a random dealer name and a discount at or above the
// alert's target.
func (c *Checker) Evaluate(alerts []model.DiscountAlert, now time.Time) []model.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	var ns []model.Notification
	for _, a := range alerts {
		if !a.IsActive || c.rnd.Float64() >= triggerChance {
			continue
		}
		discount := a.TargetDiscount + c.rnd.Intn(overshootMax)
		dealerName := ""
		if len(c.dealerNames) > 0 {
			dealerName = c.dealerNames[c.rnd.Intn(len(c.dealerNames))]
		}
		ns = append(ns, model.Notification{
			UserID:     a.UserID,
			Type:       model.NotificationTypeDiscountAlert,
			Title:      "Новая скидка!",
			Message:    fmt.Sprintf("Скидка на %s %s достигла %d ₽", a.CarBrand, a.CarModel, discount),
			CarBrand:   a.CarBrand,
			CarModel:   a.CarModel,
			Discount:   discount,
			DealerName: dealerName,
			CreatedAt:  primitive.NewDateTimeFromTime(now),
		})
	}
	return ns
}
