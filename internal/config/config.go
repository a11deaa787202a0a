package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/thurmanmarka/sunshift"
)

type Config struct {
	Location LocationConfig `mapstructure:"location"`
	Window   WindowConfig   `mapstructure:"window"`
	Year     int            `mapstructure:"year"`
	Provider string         `mapstructure:"provider"`
	Output   OutputConfig   `mapstructure:"output"`
}

type LocationConfig struct {
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
}

type WindowConfig struct {
	Sunrise string `mapstructure:"sunrise"`
	Sunset  string `mapstructure:"sunset"`
}

type OutputConfig struct {
	JSON    bool `mapstructure:"json"`
	NoColor bool `mapstructure:"no_color"`
	Verbose bool `mapstructure:"verbose"`
}

// FlagKeys maps command-line flag names to configuration keys.
var FlagKeys = map[string]string{
	"lat":      "location.latitude",
	"lon":      "location.longitude",
	"sunrise":  "window.sunrise",
	"sunset":   "window.sunset",
	"year":     "year",
	"provider": "provider",
	"json":     "output.json",
	"no-color": "output.no_color",
	"verbose":  "output.verbose",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("location.latitude", 42.3555)
	v.SetDefault("location.longitude", -71.0565)
	v.SetDefault("window.sunrise", "06:00")
	v.SetDefault("window.sunset", "19:15")
	v.SetDefault("year", 0)
	v.SetDefault("provider", sunshift.ProviderSolver)
	v.SetDefault("output.json", false)
	v.SetDefault("output.no_color", false)
	v.SetDefault("output.verbose", false)
}

// Load reads configuration from configPath, or from sunshift.yaml in the
// working directory or $HOME/.config when configPath is empty. A missing
// file is not an error. SUNSHIFT_* environment variables and any flags in
// fs that were set explicitly override the file.
func Load(configPath string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("sunshift")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config")
	}

	setDefaults(v)

	v.SetEnvPrefix("SUNSHIFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for flag, key := range FlagKeys {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %q: %w", flag, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the location range, the window times and the provider
// name.
func (c *Config) Validate() error {
	var errs []error
	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		errs = append(errs, fmt.Errorf("latitude %v out of range [-90, 90]", c.Location.Latitude))
	}
	if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
		errs = append(errs, fmt.Errorf("longitude %v out of range [-180, 180]", c.Location.Longitude))
	}
	if _, err := c.DesiredWindow(); err != nil {
		errs = append(errs, err)
	}
	if c.Year < 0 {
		errs = append(errs, fmt.Errorf("year %d is negative", c.Year))
	}
	if !slices.Contains(sunshift.ProviderNames(), strings.ToLower(c.Provider)) {
		errs = append(errs, fmt.Errorf("%w %q", sunshift.ErrUnknownProvider, c.Provider))
	}
	return errors.Join(errs...)
}

// Coordinates returns the configured location.
func (c *Config) Coordinates() sunshift.Coordinates {
	return sunshift.Coordinates{Lat: c.Location.Latitude, Lon: c.Location.Longitude}
}

// DesiredWindow parses the configured sunrise and sunset times.
func (c *Config) DesiredWindow() (sunshift.Window, error) {
	return sunshift.ParseWindow(c.Window.Sunrise, c.Window.Sunset)
}
