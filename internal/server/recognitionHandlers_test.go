package server

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeImage(t *testing.T) {
	raw := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10}
	encoded := base64.StdEncoding.EncodeToString(raw)

	t.Run("plain base64", func(t *testing.T) {
		img, err := decodeImage(encoded)
		require.NoError(t, err)
		assert.Equal(t, raw, img)
	})

	t.Run("data URL", func(t *testing.T) {
		img, err := decodeImage("data:image/jpeg;base64," + encoded)
		require.NoError(t, err)
		assert.Equal(t, raw, img)
	})

	t.Run("invalid base64", func(t *testing.T) {
		_, err := decodeImage("not-%%-base64")
		assert.Error(t, err)
	})

	t.Run("empty input", func(t *testing.T) {
		img, err := decodeImage("")
		require.NoError(t, err)
		assert.Empty(t, img)
	})
}
