// Package config loads sfsheet settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/andareed/siftly-sheet/sheet"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Sheet SheetConfig `yaml:"sheet"`
}

type SheetConfig struct {
	CloseThreshold float64 `yaml:"close_threshold"`
	// Colors are lipgloss color strings; empty keeps the built-in colors.
	ContainerColor string          `yaml:"container_color"`
	SheetColor     string          `yaml:"sheet_color"`
	Shape          string          `yaml:"shape"`
	BottomEdge     bool            `yaml:"bottom_edge"`
	Width          int             `yaml:"width"`
	Handle         bool            `yaml:"handle"`
	FPS            int             `yaml:"fps"`
	Enter          AnimationConfig `yaml:"enter"`
	Exit           AnimationConfig `yaml:"exit"`
}

// AnimationConfig describes an enter or exit animation. Kind is "tween" or
// "spring"; the remaining fields apply to one kind or the other.
type AnimationConfig struct {
	Kind       string  `yaml:"kind"`
	DurationMS int     `yaml:"duration_ms"`
	Easing     string  `yaml:"easing"`
	Frequency  float64 `yaml:"frequency"`
	Damping    float64 `yaml:"damping"`
}

var borders = map[string]func() lipgloss.Border{
	"rounded": lipgloss.RoundedBorder,
	"normal":  lipgloss.NormalBorder,
	"thick":   lipgloss.ThickBorder,
	"double":  lipgloss.DoubleBorder,
	"block":   lipgloss.BlockBorder,
	"hidden":  lipgloss.HiddenBorder,
}

var easings = map[string]sheet.Easing{
	"linear":             sheet.Linear,
	"linear-out-slow-in": sheet.LinearOutSlowIn,
	"fast-out-slow-in":   sheet.FastOutSlowIn,
	"fast-out-linear-in": sheet.FastOutLinearIn,
}

func defaultAnimation() AnimationConfig {
	return AnimationConfig{
		Kind:       "tween",
		DurationMS: int(sheet.DefaultDuration / time.Millisecond),
		Easing:     "linear-out-slow-in",
		Frequency:  8,
		Damping:    1,
	}
}

// Default matches the sheet's built-in options.
func Default() Config {
	return Config{Sheet: SheetConfig{
		CloseThreshold: sheet.DefaultCloseThreshold,
		Shape:          "rounded",
		Handle:         true,
		FPS:            sheet.DefaultFPS,
		Enter:          defaultAnimation(),
		Exit:           defaultAnimation(),
	}}
}

// Load reads path over the defaults. An empty path or a missing file yields
// the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	s := c.Sheet
	if s.CloseThreshold < 0 {
		return fmt.Errorf("%w: close_threshold %v is negative", ErrInvalid, s.CloseThreshold)
	}
	if s.Width < 0 {
		return fmt.Errorf("%w: width %d is negative", ErrInvalid, s.Width)
	}
	if s.FPS < 0 {
		return fmt.Errorf("%w: fps %d is negative", ErrInvalid, s.FPS)
	}
	if _, ok := borders[s.Shape]; !ok {
		return fmt.Errorf("%w: unknown shape %q", ErrInvalid, s.Shape)
	}
	if err := s.Enter.validate(); err != nil {
		return fmt.Errorf("enter: %w", err)
	}
	if err := s.Exit.validate(); err != nil {
		return fmt.Errorf("exit: %w", err)
	}
	return nil
}

func (a AnimationConfig) validate() error {
	switch a.Kind {
	case "tween":
		if a.DurationMS < 0 {
			return fmt.Errorf("%w: duration_ms %d is negative", ErrInvalid, a.DurationMS)
		}
		if _, ok := easings[a.Easing]; !ok {
			return fmt.Errorf("%w: unknown easing %q", ErrInvalid, a.Easing)
		}
	case "spring":
		if a.Frequency <= 0 {
			return fmt.Errorf("%w: spring frequency must be positive", ErrInvalid)
		}
		if a.Damping <= 0 {
			return fmt.Errorf("%w: spring damping must be positive", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown animation kind %q", ErrInvalid, a.Kind)
	}
	return nil
}

// Spec builds the animation. The config must have been validated.
func (a AnimationConfig) Spec() sheet.AnimationSpec {
	if a.Kind == "spring" {
		return sheet.Spring{Frequency: a.Frequency, Damping: a.Damping}
	}
	return sheet.Tween{
		Duration: time.Duration(a.DurationMS) * time.Millisecond,
		Easing:   easings[a.Easing],
	}
}

// Options maps the config onto sheet options.
func (s SheetConfig) Options() []sheet.Option {
	border := lipgloss.RoundedBorder()
	if b, ok := borders[s.Shape]; ok {
		border = b()
	}
	opts := []sheet.Option{
		sheet.WithCloseThreshold(s.CloseThreshold),
		sheet.WithShape(sheet.Shape{Border: border, Bottom: s.BottomEdge}),
		sheet.WithWidth(s.Width),
		sheet.WithFPS(s.FPS),
		sheet.WithEnter(s.Enter.Spec()),
		sheet.WithExit(s.Exit.Spec()),
	}
	if s.ContainerColor != "" {
		opts = append(opts, sheet.WithContainerColor(lipgloss.Color(s.ContainerColor)))
	}
	if s.SheetColor != "" {
		opts = append(opts, sheet.WithSheetColor(lipgloss.Color(s.SheetColor)))
	}
	if s.Handle {
		opts = append(opts, sheet.WithDragHandle(sheet.DefaultHandle))
	} else {
		opts = append(opts, sheet.WithoutDragHandle())
	}
	return opts
}
