// Package recognition provides the photo recognition capability. The only
// implementation is a mock: it waits an artificial delay and returns one of
// a fixed set of canned results, which is the intended behavior of this
// demonstration service.
package recognition

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"

	"carscope/internal/model"
)

type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (model.RecognitionResult, error)
}

var cannedResults = []model.RecognitionResult{
	{
		Make:       "BMW",
		Model:      "X5",
		Year:       "2020",
		Confidence: 0.95,
		Details: model.CarDetails{
			BodyType:     "SUV",
			Engine:       "3.0L I6 Turbo",
			Transmission: "Автоматическая",
			FuelType:     "Бензин",
		},
	},
	{
		Make:       "Mercedes-Benz",
		Model:      "C-Class",
		Year:       "2019",
		Confidence: 0.92,
		Details: model.CarDetails{
			BodyType:     "Седан",
			Engine:       "2.0L I4 Turbo",
			Transmission: "Автоматическая",
			FuelType:     "Бензин",
		},
	},
	{
		Make:       "Toyota",
		Model:      "Camry",
		Year:       "2021",
		Confidence: 0.88,
		Details: model.CarDetails{
			BodyType:     "Седан",
			Engine:       "2.5L I4",
			Transmission: "CVT",
			FuelType:     "Гибрид",
		},
	},
}

type MockRecognizer struct {
	mu    sync.Mutex
	rnd   *rand.Rand
	delay time.Duration
}

func NewMockRecognizer(rnd *rand.Rand, delay time.Duration) *MockRecognizer {
	return &MockRecognizer{rnd: rnd, delay: delay}
}

var ErrEmptyImage = errors.New("empty image")

// Recognize picks a canned result after the configured delay. The image
// content does not influence the pick; it only has to be non-empty.
func (r *MockRecognizer) Recognize(ctx context.Context, image []byte) (model.RecognitionResult, error) {
	if len(image) == 0 {
		return model.RecognitionResult{}, ErrEmptyImage
	}

	if r.delay > 0 {
		t := time.NewTimer(r.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return model.RecognitionResult{}, ctx.Err()
		case <-t.C:
		}
	}

	r.mu.Lock()
	res := cannedResults[r.rnd.Intn(len(cannedResults))]
	r.mu.Unlock()
	return res, nil
}
