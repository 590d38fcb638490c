package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const EnvConfigPath = "TICTACTOE_CONFIG"

const (
	BackendFramebuffer = "fb"
	BackendWindow      = "window"
	BackendTerminal    = "term"
	BackendHeadless    = "headless"
)

var (
	ErrUnknownBackend = errors.New("unknown backend")
	ErrInvalidValue   = errors.New("invalid config value")
)

type Config struct {
	Backend string `yaml:"backend" env:"TICTACTOE_BACKEND" env-default:"fb" env-description:"fb | window | term | headless"`
	FPS     int    `yaml:"fps" env:"TICTACTOE_FPS" env-default:"60" env-description:"frames per second, 0 runs unthrottled"`

	Framebuffer Framebuffer `yaml:"framebuffer"`
	Window      Window      `yaml:"window"`
	Headless    Headless    `yaml:"headless"`
	Log         Log         `yaml:"log"`

	Debug       bool   `yaml:"debug" env:"TICTACTOE_DEBUG" env-default:"false"`
	OverlayFont string `yaml:"overlay-font" env:"TICTACTOE_OVERLAY_FONT" env-description:"TTF/OTF file for the debug overlay"`
}

type Framebuffer struct {
	Device    string `yaml:"device" env:"TICTACTOE_FB_DEVICE" env-default:"/dev/fb0"`
	InputGlob string `yaml:"input-glob" env:"TICTACTOE_INPUT_GLOB" env-default:"/dev/input/event*"`
}

type Window struct {
	Scale int `yaml:"scale" env:"TICTACTOE_WINDOW_SCALE" env-default:"1"`
}

type Headless struct {
	Frames   uint64 `yaml:"frames" env:"TICTACTOE_FRAMES" env-default:"0" env-description:"stop after N frames, 0 runs until the script ends"`
	Script   string `yaml:"script" env:"TICTACTOE_SCRIPT" env-description:"comma separated frames of +-joined buttons"`
	Snapshot string `yaml:"snapshot" env:"TICTACTOE_SNAPSHOT" env-description:"write the last frame as PNG"`
}

type Log struct {
	Level    string `yaml:"level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	Format   string `yaml:"format" env:"TICTACTOE_LOG_FORMAT" env-default:"text"`
	File     string `yaml:"file" env:"TICTACTOE_DEBUG_LOG" env-default:"./tictactoe-debug.log"`
	StdioLog string `yaml:"stdio-log" env:"TICTACTOE_STDIO_LOG"`
}

// Load reads the YAML file named by TICTACTOE_CONFIG when it is set,
// otherwise the environment alone. Environment values override the file.
func Load() (*Config, error) {
	cfg := &Config{}

	if path := os.Getenv(EnvConfigPath); path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("unable to load config file %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("unable to read config from env: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFramebuffer, BackendWindow, BackendTerminal, BackendHeadless:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if c.FPS < 0 {
		return fmt.Errorf("%w: fps must not be negative (got %d)", ErrInvalidValue, c.FPS)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("%w: window scale must be positive (got %d)", ErrInvalidValue, c.Window.Scale)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidValue, c.Log.Format)
	}
	return nil
}

// Usage returns a description of every environment variable for -help output.
func Usage() string {
	text, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return text
}
