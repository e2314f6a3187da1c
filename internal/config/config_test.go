package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, WindowWidth, cfg.Width)
	assert.Equal(t, WindowHeight, cfg.Height)
	assert.Equal(t, DefaultLetter, cfg.Letter)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Music)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HEART_WIDTH", "800")
	t.Setenv("HEART_MUSIC", "/tmp/song.mp3")
	t.Setenv("HEART_LETTER", "hi")
	t.Setenv("HEART_LETTER_FILE", "/tmp/letter.txt")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, "/tmp/song.mp3", cfg.Music)
	assert.Equal(t, "hi", cfg.Letter)
	assert.Equal(t, "/tmp/letter.txt", cfg.LetterFile)
}

func TestLoadZeroSizeFallsBack(t *testing.T) {
	t.Setenv("HEART_WIDTH", "0")
	t.Setenv("HEART_HEIGHT", "480")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, WindowWidth, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("HEART_HEIGHT", "tall")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")

	t.Setenv("HEART_HEIGHT", "-1")
	_, err = Load()
	assert.ErrorContains(t, err, "invalid window size")
}
