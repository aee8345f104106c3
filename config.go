package orbitview

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

var ErrInvalidConfig = errors.New("invalid config")

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type LoggingConfig struct {
	Prefix string `toml:"prefix"`
	// One of debug, info, warn or error.
	Level string `toml:"level"`
	Debug bool   `toml:"debug"`
}

// Config is the viewer's TOML configuration. Missing keys keep their defaults.
type Config struct {
	Window      WindowConfig      `toml:"window"`
	Logging     LoggingConfig     `toml:"logging"`
	Gesture     GestureConfig     `toml:"gesture"`
	Manipulator ManipulatorConfig `toml:"manipulator"`
	Camera      CameraConfig      `toml:"camera"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "orbitview",
		},
		Logging: LoggingConfig{
			Prefix: "orbitview",
			Level:  "info",
		},
		Gesture:     DefaultGestureConfig(),
		Manipulator: DefaultManipulatorConfig(),
		Camera:      DefaultCameraConfig(),
	}
}

func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

func (c Config) Validate() error {
	g := c.Gesture
	switch {
	case g.ZoomSpeed <= 0:
		return invalid("gesture.zoom_speed must be positive, got %v", g.ZoomSpeed)
	case g.EyeYMovementPerPixel <= 0:
		return invalid("gesture.eye_y_movement_per_pixel must be positive, got %v", g.EyeYMovementPerPixel)
	case g.ConfidenceCount < 0:
		return invalid("gesture.confidence_count must not be negative, got %d", g.ConfidenceCount)
	case g.ZoomConfidenceDistance < 0 || g.PanConfidenceDistance < 0:
		return invalid("gesture confidence distances must not be negative")
	}

	m := c.Manipulator
	switch {
	case m.ZoomSpeed <= 0:
		return invalid("manipulator.zoom_speed must be positive, got %v", m.ZoomSpeed)
	case m.HomeEye.Sub(m.Target).Len() == 0:
		return invalid("manipulator.home_eye must differ from manipulator.target")
	case m.FovDegrees <= 0 || m.FovDegrees >= 180:
		return invalid("manipulator.fov_degrees must be in (0, 180), got %v", m.FovDegrees)
	}

	cam := c.Camera
	switch {
	case cam.FocalLength <= 0:
		return invalid("camera.focal_length must be positive, got %v", cam.FocalLength)
	case cam.Near <= 0 || cam.Far <= cam.Near:
		return invalid("camera near/far must satisfy 0 < near < far, got %v/%v", cam.Near, cam.Far)
	case cam.Aperture <= 0 || cam.ShutterSpeed <= 0 || cam.Sensitivity <= 0:
		return invalid("camera exposure settings must be positive")
	}

	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return invalid("logging.level: %v", err)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return invalid("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
