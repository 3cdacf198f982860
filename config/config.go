// Package config loads bar theming from TOML configuration files, so
// hosts can restyle the palette and glass presets without recompiling.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/lipgloss"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/dockbar/glass"
	"github.com/llehouerou/dockbar/icons"
	"github.com/llehouerou/dockbar/theme"
)

// Config is the on-disk theming surface.
type Config struct {
	Icons string                 `koanf:"icons"`
	Theme ThemeConfig            `koanf:"theme"`
	Glass map[string]GlassConfig `koanf:"glass"`
}

// ThemeConfig overrides palette entries. Empty fields keep the built-in
// default.
type ThemeConfig struct {
	Primary   string `koanf:"primary"`
	OnPrimary string `koanf:"on_primary"`
	Surface   string `koanf:"surface"`
	OnSurface string `koanf:"on_surface"`
	FgBase    string `koanf:"fg_base"`
	FgMuted   string `koanf:"fg_muted"`
	FgSubtle  string `koanf:"fg_subtle"`
	Border    string `koanf:"border"`
	Shadow    string `koanf:"shadow"`

	DurFastMS   int `koanf:"dur_fast_ms"`
	DurMediumMS int `koanf:"dur_medium_ms"`
}

// GlassConfig describes a named glass preset.
type GlassConfig struct {
	Blur         float64 `koanf:"blur"`
	Opacity      float64 `koanf:"opacity"`
	Tint         string  `koanf:"tint"`
	GradientFrom string  `koanf:"gradient_from"`
	GradientTo   string  `koanf:"gradient_to"`
	BorderColor  string  `koanf:"border_color"`
	BorderWidth  float64 `koanf:"border_width"`
	Shadow       bool    `koanf:"shadow"`
	ShadowColor  string  `koanf:"shadow_color"`
	ShadowBlur   float64 `koanf:"shadow_blur"`
	ShadowSpread float64 `koanf:"shadow_spread"`
}

// Load reads configuration files in priority order (last wins): the XDG
// config path, then a dockbar.toml in the working directory. A missing
// file is not an error; the zero Config yields library defaults.
func Load() (*Config, error) {
	return loadPaths(configPaths())
}

func loadPaths(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	icons.Init(cfg.Icons)
	return cfg, nil
}

func configPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, "dockbar", "config.toml"),
		"dockbar.toml",
	}
}

// BuildTheme merges the configured palette over the library default.
func (c *Config) BuildTheme() *theme.Theme {
	th := *theme.Default()

	setColor(&th.Primary, c.Theme.Primary)
	setColor(&th.OnPrimary, c.Theme.OnPrimary)
	setColor(&th.Surface, c.Theme.Surface)
	setColor(&th.OnSurface, c.Theme.OnSurface)
	setColor(&th.FgBase, c.Theme.FgBase)
	setColor(&th.FgMuted, c.Theme.FgMuted)
	setColor(&th.FgSubtle, c.Theme.FgSubtle)
	setColor(&th.Border, c.Theme.Border)
	setColor(&th.Shadow, c.Theme.Shadow)

	if c.Theme.DurFastMS > 0 {
		th.DurFast = time.Duration(c.Theme.DurFastMS) * time.Millisecond
	}
	if c.Theme.DurMediumMS > 0 {
		th.DurMedium = time.Duration(c.Theme.DurMediumMS) * time.Millisecond
	}
	return &th
}

// GlassEffect resolves a named glass preset. The built-in names
// ("default", "dark", "light") are always available and can be overridden
// from configuration.
func (c *Config) GlassEffect(name string) (glass.Effect, bool) {
	if gc, ok := c.Glass[name]; ok {
		return gc.build(), true
	}

	switch name {
	case "", "default":
		return glass.Default(), true
	case "dark":
		return glass.Dark(), true
	case "light":
		return glass.Light(), true
	}
	return glass.Effect{}, false
}

func (gc GlassConfig) build() glass.Effect {
	fx := glass.Effect{
		Blur:         gc.Blur,
		Opacity:      gc.Opacity,
		BorderWidth:  gc.BorderWidth,
		Shadow:       gc.Shadow,
		ShadowBlur:   gc.ShadowBlur,
		ShadowSpread: gc.ShadowSpread,
	}
	if gc.Tint != "" {
		c := lipgloss.Color(gc.Tint)
		fx.Tint = &c
	}
	if gc.GradientFrom != "" && gc.GradientTo != "" {
		fx.Gradient = &glass.Gradient{
			From: lipgloss.Color(gc.GradientFrom),
			To:   lipgloss.Color(gc.GradientTo),
		}
	}
	if gc.BorderColor != "" {
		c := lipgloss.Color(gc.BorderColor)
		fx.BorderColor = &c
	}
	if gc.ShadowColor != "" {
		fx.ShadowColor = lipgloss.Color(gc.ShadowColor)
	}
	return fx
}

func setColor(dst *lipgloss.Color, v string) {
	if v != "" {
		*dst = lipgloss.Color(v)
	}
}
