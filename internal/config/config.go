package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"yuzu-shot/internal/logger"
	"yuzu-shot/internal/menu"
)

// Config holds application configuration.
type Config struct {
	LogLevel     string  `mapstructure:"log_level"`
	JSONLogs     bool    `mapstructure:"json_logs"`
	EventBuffer  int     `mapstructure:"event_buffer"`
	Platform     string  `mapstructure:"platform"`
	WindowWidth  float32 `mapstructure:"window_width"`
	WindowHeight float32 `mapstructure:"window_height"`
}

// MenuPlatform is the platform used to assemble the menu bar.
func (c Config) MenuPlatform() menu.Platform {
	return menu.Platform(c.Platform)
}

// SetDefaults registers defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("json_logs", false)
	v.SetDefault("event_buffer", 64)
	v.SetDefault("platform", runtime.GOOS)
	v.SetDefault("window_width", 1280)
	v.SetDefault("window_height", 800)
}

// New returns a viper instance with defaults and YUZU_ env overrides.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("YUZU")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.EventBuffer <= 0 {
		return fmt.Errorf("config: event_buffer must be positive, got %d", c.EventBuffer)
	}
	if c.Platform == "" {
		return fmt.Errorf("config: platform must not be empty")
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("config: window size must be positive, got %vx%v", c.WindowWidth, c.WindowHeight)
	}
	return nil
}
