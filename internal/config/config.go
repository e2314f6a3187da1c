package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Button dimensions
	ButtonWidth  = 130
	ButtonHeight = 36
	ButtonGap    = 12
	ButtonMargin = 20

	// Letter overlay
	LetterWidth  = 520
	LetterHeight = 320
	CloseSize    = 28

	// Animation parameters
	PulseStep      = 0.03
	PulseAmplitude = 0.1
	HeartSpinSpeed = 0.005
	FieldSpinSpeed = 0.002

	// Music meter
	MeterBands     = 12
	MeterSmoothing = 0.6

	// Camera
	CameraFOV  = 75
	CameraNear = 0.1
	CameraFar  = 1000
	CameraZ    = 30
)

const DefaultLetter = "Every beat of this little heart is for you.\n\n" +
	"Drag to look around, scroll to zoom, and press the buttons below " +
	"to play our song or stop the heart from pulsing.\n\nWith love."

// Config holds the settings that may be overridden from the environment.
type Config struct {
	Width    int     `env:"HEART_WIDTH"`
	Height   int     `env:"HEART_HEIGHT"`
	Title    string  `env:"HEART_TITLE" envDefault:"Heart"`
	Music    string  `env:"HEART_MUSIC"`
	Volume   float64 `env:"HEART_VOLUME" envDefault:"0"`
	Letter   string  `env:"HEART_LETTER"`
	LogLevel string  `env:"HEART_LOG_LEVEL" envDefault:"info"`
	LogDev   bool    `env:"HEART_LOG_DEV" envDefault:"false"`

	// LetterFile, when set, replaces Letter and is reloaded on change.
	LetterFile string `env:"HEART_LETTER_FILE"`
}

// Load reads Config from the environment and fills in derived defaults.
// An unset or zero window size falls back to WindowWidth x WindowHeight.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	if cfg.Width == 0 {
		cfg.Width = WindowWidth
	}
	if cfg.Height == 0 {
		cfg.Height = WindowHeight
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return Config{}, errors.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Letter == "" {
		cfg.Letter = DefaultLetter
	}
	return cfg, nil
}
