// Package config loads timer settings from file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lixenwraith/enc-timer/constant"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the effective configuration after merging defaults, file and environment
type Config struct {
	Timer   TimerConfig   `mapstructure:"timer" yaml:"timer"`
	Layout  LayoutConfig  `mapstructure:"layout" yaml:"layout"`
	Physics PhysicsConfig `mapstructure:"physics" yaml:"physics"`
	Render  RenderConfig  `mapstructure:"render" yaml:"render"`
	Colors  ColorConfig   `mapstructure:"colors" yaml:"colors"`
	Audio   AudioConfig   `mapstructure:"audio" yaml:"audio"`
	Debug   bool          `mapstructure:"debug" yaml:"debug"`
	LogFile string        `mapstructure:"log-file" yaml:"log-file"`
}

type TimerConfig struct {
	Duration string `mapstructure:"duration" yaml:"duration"`
	Decimal  bool   `mapstructure:"decimal" yaml:"decimal"`
	Autoplay bool   `mapstructure:"autoplay" yaml:"autoplay"`
	Items    int    `mapstructure:"items" yaml:"items"` // 0 derives the count from the duration
}

type LayoutConfig struct {
	Radius           float64 `mapstructure:"radius" yaml:"radius"`
	MarkerFill       float64 `mapstructure:"marker-fill" yaml:"marker-fill"`
	FloorInset       float64 `mapstructure:"floor-inset" yaml:"floor-inset"`
	FloorHeight      float64 `mapstructure:"floor-height" yaml:"floor-height"`
	SegmentLength    float64 `mapstructure:"segment-length" yaml:"segment-length"`
	SegmentThickness float64 `mapstructure:"segment-thickness" yaml:"segment-thickness"`
	SegmentGap       float64 `mapstructure:"segment-gap" yaml:"segment-gap"`
	CharGap          float64 `mapstructure:"char-gap" yaml:"char-gap"`
}

type PhysicsConfig struct {
	Gravity      float64       `mapstructure:"gravity" yaml:"gravity"`
	StepInterval time.Duration `mapstructure:"step-interval" yaml:"step-interval"`
	Restitution  float64       `mapstructure:"restitution" yaml:"restitution"`
	Friction     float64       `mapstructure:"friction" yaml:"friction"`
	UnlockFade   time.Duration `mapstructure:"unlock-fade" yaml:"unlock-fade"`
}

type RenderConfig struct {
	FrameInterval time.Duration `mapstructure:"frame-interval" yaml:"frame-interval"`
	CellWidth     int           `mapstructure:"cell-width" yaml:"cell-width"`
	CellHeight    int           `mapstructure:"cell-height" yaml:"cell-height"`
}

type ColorConfig struct {
	Static     string `mapstructure:"static" yaml:"static"`
	Dynamic    string `mapstructure:"dynamic" yaml:"dynamic"`
	Background string `mapstructure:"background" yaml:"background"`
	Text       string `mapstructure:"text" yaml:"text"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled" yaml:"enabled"`
	Volume  float64 `mapstructure:"volume" yaml:"volume"`
}

var ErrInvalid = errors.New("invalid configuration")

func setDefaults(v *viper.Viper) {
	v.SetDefault("timer.duration", constant.DefaultDuration)
	v.SetDefault("timer.decimal", constant.DefaultDecimal)
	v.SetDefault("timer.autoplay", constant.DefaultAutoplay)
	v.SetDefault("timer.items", 0)

	v.SetDefault("layout.radius", constant.CircleRadius)
	v.SetDefault("layout.marker-fill", constant.MarkerFill)
	v.SetDefault("layout.floor-inset", constant.FloorInset)
	v.SetDefault("layout.floor-height", constant.FloorHeight)
	v.SetDefault("layout.segment-length", constant.SegmentLength)
	v.SetDefault("layout.segment-thickness", constant.SegmentThickness)
	v.SetDefault("layout.segment-gap", constant.SegmentGap)
	v.SetDefault("layout.char-gap", constant.SegmentCharGap)

	v.SetDefault("physics.gravity", constant.Gravity)
	v.SetDefault("physics.step-interval", constant.PhysicsStepInterval)
	v.SetDefault("physics.restitution", constant.Restitution)
	v.SetDefault("physics.friction", constant.Friction)
	v.SetDefault("physics.unlock-fade", constant.UnlockFade)

	v.SetDefault("render.frame-interval", constant.FrameUpdateInterval)
	v.SetDefault("render.cell-width", constant.CellWidth)
	v.SetDefault("render.cell-height", constant.CellHeight)

	v.SetDefault("colors.static", constant.ColorStatic)
	v.SetDefault("colors.dynamic", constant.ColorDynamic)
	v.SetDefault("colors.background", constant.ColorBackground)
	v.SetDefault("colors.text", constant.ColorText)

	v.SetDefault("audio.enabled", constant.AudioEnabled)
	v.SetDefault("audio.volume", constant.AudioVolume)

	v.SetDefault("debug", false)
	v.SetDefault("log-file", "")
}

// DefaultPath is $HOME/.config/enc-timer/config.yml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", constant.ConfigDir, constant.ConfigFile), nil
}

// Load reads configPath, or the default path when empty; a missing default file is not an error
func Load(configPath string) (Config, error) {
	v := viper.New()
	return load(v, configPath)
}

func load(v *viper.Viper, configPath string) (Config, error) {
	var cfg Config

	v.SetEnvPrefix(constant.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	explicit := configPath != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		configPath = p
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
		if explicit || !missing {
			return cfg, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Default returns the configuration with no file or environment applied
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return cfg
}

// Validate rejects values the scene cannot be built from
func (c Config) Validate() error {
	switch {
	case c.Timer.Items < 0:
		return fmt.Errorf("%w: timer.items %d", ErrInvalid, c.Timer.Items)
	case c.Layout.Radius <= 0:
		return fmt.Errorf("%w: layout.radius %v", ErrInvalid, c.Layout.Radius)
	case c.Layout.MarkerFill <= 0 || c.Layout.MarkerFill > 1:
		return fmt.Errorf("%w: layout.marker-fill %v", ErrInvalid, c.Layout.MarkerFill)
	case c.Layout.SegmentLength <= 0 || c.Layout.SegmentThickness <= 0:
		return fmt.Errorf("%w: segment size %vx%v", ErrInvalid, c.Layout.SegmentLength, c.Layout.SegmentThickness)
	case c.Physics.StepInterval <= 0:
		return fmt.Errorf("%w: physics.step-interval %v", ErrInvalid, c.Physics.StepInterval)
	case c.Render.FrameInterval <= 0:
		return fmt.Errorf("%w: render.frame-interval %v", ErrInvalid, c.Render.FrameInterval)
	case c.Render.CellWidth <= 0 || c.Render.CellHeight < 2:
		return fmt.Errorf("%w: cell size %dx%d", ErrInvalid, c.Render.CellWidth, c.Render.CellHeight)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume %v", ErrInvalid, c.Audio.Volume)
	}

	for name, hex := range map[string]string{
		"static":     c.Colors.Static,
		"dynamic":    c.Colors.Dynamic,
		"background": c.Colors.Background,
		"text":       c.Colors.Text,
	} {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("%w: colors.%s %q", ErrInvalid, name, hex)
		}
	}
	return nil
}

// Dump renders the configuration as YAML
func (c Config) Dump() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return out, nil
}
