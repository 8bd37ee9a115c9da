package recognition

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecognizeReturnsCannedResult(t *testing.T) {
	r := NewMockRecognizer(rand.New(rand.NewSource(1)), 0)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		res, err := r.Recognize(context.Background(), []byte("image-bytes"))
		require.NoError(t, err)
		seen[res.Make+" "+res.Model] = true
		assert.Greater(t, res.Confidence, 0.0)
		assert.NotEmpty(t, res.Details.BodyType)
	}
	assert.Len(t, seen, len(cannedResults))
}

func TestRecognizeEmptyImage(t *testing.T) {
	r := NewMockRecognizer(rand.New(rand.NewSource(1)), 0)
	_, err := r.Recognize(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyImage)
}

func TestRecognizeCancelledContext(t *testing.T) {
	r := NewMockRecognizer(rand.New(rand.NewSource(1)), time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Recognize(ctx, []byte("image-bytes"))
	assert.ErrorIs(t, err, context.Canceled)
}
