// Package config loads staycalc settings from an optional YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds every runtime setting.
type Config struct {
	Env        string `yaml:"env" env:"APP_ENV" env-default:"local"`
	LogLevel   string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	Timezone   string `yaml:"timezone" env:"STAY_TIMEZONE" env-default:"Asia/Seoul"`
	HTTPServer `yaml:"http_server"`
	Form       `yaml:"form"`
}

// HTTPServer configures the web UI and JSON API listener.
type HTTPServer struct {
	Address      string        `yaml:"address" env:"HTTP_ADDR" env-default:":8484"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// Form holds the clock times prefilled in the form and used by the CLI when
// a time flag is omitted.
type Form struct {
	CheckIn      string `yaml:"checkin" env:"FORM_CHECKIN" env-default:"09:00"`
	CheckOut     string `yaml:"checkout" env:"FORM_CHECKOUT" env-default:"10:00"`
	DaycareStart string `yaml:"daycare_start" env:"FORM_DAYCARE_START" env-default:"09:00"`
	DaycareEnd   string `yaml:"daycare_end" env:"FORM_DAYCARE_END" env-default:"16:00"`
}

// Load reads path (or CONFIG_PATH when path is empty) and then the environment.
// With no file at all, only the environment and defaults apply.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read env: %w", err)
		}
	} else {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	clocks := []struct{ key, val string }{
		{"form.checkin", c.CheckIn},
		{"form.checkout", c.CheckOut},
		{"form.daycare_start", c.DaycareStart},
		{"form.daycare_end", c.DaycareEnd},
	}
	for _, cl := range clocks {
		if _, err := time.Parse("15:04", cl.val); err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid time %q, expected HH:MM", cl.key, cl.val))
		}
	}
	return errors.Join(errs...)
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
