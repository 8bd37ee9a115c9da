package alert

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"carscope/internal/model"
)

var checkerNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func activeAlert(target int) model.DiscountAlert {
	return model.DiscountAlert{
		ID:             primitive.NewObjectID(),
		UserID:         primitive.NewObjectID(),
		CarBrand:       "BMW",
		CarModel:       "X5",
		TargetDiscount: target,
		IsActive:       true,
	}
}

func TestEvaluateDiscountAtLeastTarget(t *testing.T) {
	c := NewChecker(rand.New(rand.NewSource(1)), []string{"BMW Авилон", "Toyota Центр Кунцево"})
	alerts := []model.DiscountAlert{activeAlert(200000)}

	var fired int
	for i := 0; i < 500; i++ {
		for _, n := range c.Evaluate(alerts, checkerNow) {
			fired++
			assert.Equal(t, model.NotificationTypeDiscountAlert, n.Type)
			assert.Equal(t, alerts[0].UserID, n.UserID)
			assert.GreaterOrEqual(t, n.Discount, 200000)
			assert.Less(t, n.Discount, 700000)
			assert.Contains(t, []string{"BMW Авилон", "Toyota Центр Кунцево"}, n.DealerName)
			assert.False(t, n.IsRead)
			assert.Equal(t, primitive.NewDateTimeFromTime(checkerNow), n.CreatedAt)
		}
	}
	// Probability 0.2 per tick; with 500 ticks some must fire, most must not.
	assert.Greater(t, fired, 0)
	assert.Less(t, fired, 500)
}

func TestEvaluateSkipsInactiveAlerts(t *testing.T) {
	c := NewChecker(rand.New(rand.NewSource(2)), []string{"BMW Авилон"})
	a := activeAlert(100000)
	a.IsActive = false

	for i := 0; i < 200; i++ {
		assert.Empty(t, c.Evaluate([]model.DiscountAlert{a}, checkerNow))
	}
}

func TestEvaluateAtMostOnePerAlert(t *testing.T) {
	c := NewChecker(rand.New(rand.NewSource(3)), []string{"BMW Авилон"})
	alerts := []model.DiscountAlert{activeAlert(100000), activeAlert(300000)}

	for i := 0; i < 200; i++ {
		ns := c.Evaluate(alerts, checkerNow)
		require.LessOrEqual(t, len(ns), len(alerts))
	}
}

func TestEvaluateNoAlerts(t *testing.T) {
	c := NewChecker(rand.New(rand.NewSource(4)), nil)
	assert.Empty(t, c.Evaluate(nil, checkerNow))
}
