package qr

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestEncodeProducesPNG(t *testing.T) {
	enc := New(LevelMedium)

	png, err := enc.Encode("order=INV-1&total=64.73", 256)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestEncodeIsDeterministic(t *testing.T) {
	enc := New(LevelMedium)

	first, err := enc.Encode("https://example.com/r/INV-1", 256)
	require.NoError(t, err)
	second, err := enc.Encode("https://example.com/r/INV-1", 256)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEncodeRejectsEmptyPayload(t *testing.T) {
	enc := New(LevelHigh)

	_, err := enc.Encode("", 256)
	assert.Error(t, err)
}

func TestEncodeDefaultsSize(t *testing.T) {
	enc := New(LevelLow)

	png, err := enc.Encode("SAMPLE-123", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
