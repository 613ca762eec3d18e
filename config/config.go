// Package config loads editor defaults from an optional configuration file
// and IMGEDIT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"

	"github.com/NotActuallyHim/ImageEditor/editor"
	"github.com/NotActuallyHim/ImageEditor/render"
	"github.com/NotActuallyHim/ImageEditor/transform"
)

const (
	// Name is the configuration file base name searched for when no path is
	// given, e.g. imgedit.yaml or imgedit.toml.
	Name      = "imgedit"
	EnvPrefix = "IMGEDIT"
)

type Config struct {
	BlurRadius     int               `mapstructure:"blur_radius"`
	ContrastFactor float64           `mapstructure:"contrast_factor"`
	Workers        int               `mapstructure:"workers"`
	Layout         render.Layout     `mapstructure:"layout"`
	Keys           map[string]string `mapstructure:"keys"`
}

func Default() Config {
	keys := map[string]string{}
	for k, f := range editor.DefaultKeys(transform.DefaultBlurRadius, transform.DefaultContrastFactor) {
		keys[string(k)] = f.Kind.String()
	}

	return Config{
		BlurRadius:     transform.DefaultBlurRadius,
		ContrastFactor: transform.DefaultContrastFactor,
		Layout:         render.DefaultLayout(),
		Keys:           keys,
	}
}

// Load reads path, or when empty searches the working directory and
// $HOME/.config/imgedit for a file called Name. A missing searched file is
// not an error; a missing explicit path is.
func Load(path string) (Config, error) {
	def := Default()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("blur_radius", def.BlurRadius)
	v.SetDefault("contrast_factor", def.ContrastFactor)
	v.SetDefault("workers", def.Workers)
	v.SetDefault("layout.display_height", def.Layout.DisplayHeight)
	v.SetDefault("layout.display_width", def.Layout.DisplayWidth)
	v.SetDefault("layout.buffer", def.Layout.Buffer)
	keys := make(map[string]any, len(def.Keys))
	for k, spec := range def.Keys {
		keys[k] = spec
	}
	v.SetDefault("keys", keys)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(Name)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/" + Name)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("could not read configuration: %w", err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, fmt.Errorf("could not decode configuration: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

func (c Config) Validate() error {
	if c.BlurRadius < 0 {
		return fmt.Errorf("invalid blur_radius: %w: %d", transform.ErrInvalidRadius, c.BlurRadius)
	}
	if err := c.Layout.Validate(); err != nil {
		return fmt.Errorf("invalid layout: %w", err)
	}
	if _, err := c.Bindings(); err != nil {
		return err
	}
	return nil
}

// ParseFilter parses a filter spec, using the configured blur radius and
// contrast factor when the spec leaves them out.
func (c Config) ParseFilter(spec string) (transform.Filter, error) {
	return transform.ParseFilterWith(spec, c.BlurRadius, c.ContrastFactor)
}

// ParseFilters parses every spec in order.
func (c Config) ParseFilters(specs []string) ([]transform.Filter, error) {
	filters := make([]transform.Filter, 0, len(specs))
	for _, spec := range specs {
		f, err := c.ParseFilter(spec)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return filters, nil
}

// Bindings turns the key map into editor key bindings. Keys must be a
// single character.
func (c Config) Bindings() (map[rune]transform.Filter, error) {
	keys := make(map[rune]transform.Filter, len(c.Keys))
	for k, spec := range c.Keys {
		r, size := utf8.DecodeRuneInString(k)
		if r == utf8.RuneError || size != len(k) {
			return nil, fmt.Errorf("invalid key %q: must be a single character", k)
		}
		f, err := c.ParseFilter(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid binding for key %q: %w", k, err)
		}
		keys[r] = f
	}
	return keys, nil
}
