package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/guikit"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the application shell settings.
type Config struct {
	Window WindowConfig `yaml:"window" mapstructure:"window"`
	Style  StyleConfig  `yaml:"style" mapstructure:"style"`
	Dock   DockConfig   `yaml:"dock" mapstructure:"dock"`
	Frame  FrameConfig  `yaml:"frame" mapstructure:"frame"`
}

// WindowConfig describes the native window.
type WindowConfig struct {
	Title     string `yaml:"title" mapstructure:"title" validate:"required"`
	Width     int    `yaml:"width" mapstructure:"width" validate:"min=320,max=16384"`
	Height    int    `yaml:"height" mapstructure:"height" validate:"min=240,max=16384"`
	VSync     bool   `yaml:"vsync" mapstructure:"vsync"`
	Resizable bool   `yaml:"resizable" mapstructure:"resizable"`

	// ClearColor is the RGBA background behind the panels, each 0..1.
	ClearColor [4]float32 `yaml:"clear_color" mapstructure:"clear_color" validate:"dive,gte=0,lte=1"`
}

// StyleConfig selects the theme.
type StyleConfig struct {
	Theme     string  `yaml:"theme" mapstructure:"theme" validate:"theme"`
	FontScale float32 `yaml:"font_scale" mapstructure:"font_scale" validate:"gt=0,lte=4"`
}

// DockConfig sizes the docked regions in pixels.
type DockConfig struct {
	LeftWidth    float32 `yaml:"left_width" mapstructure:"left_width" validate:"gte=0"`
	RightWidth   float32 `yaml:"right_width" mapstructure:"right_width" validate:"gte=0"`
	TopHeight    float32 `yaml:"top_height" mapstructure:"top_height" validate:"gte=0"`
	BottomHeight float32 `yaml:"bottom_height" mapstructure:"bottom_height" validate:"gte=0"`
	// SnapMargin is how close a dragged floating panel must come to an
	// edge before it snaps. 0 disables snapping.
	SnapMargin float32 `yaml:"snap_margin" mapstructure:"snap_margin" validate:"gte=0,lte=64"`
}

// FrameConfig controls frame pacing. MaxFPS 0 leaves pacing to vsync.
type FrameConfig struct {
	MaxFPS int `yaml:"max_fps" mapstructure:"max_fps" validate:"gte=0,lte=1000"`
}

// DefaultConfig returns the settings used when nothing else is configured.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:      "guikit",
			Width:      1280,
			Height:     720,
			VSync:      true,
			Resizable:  true,
			ClearColor: [4]float32{0.45, 0.55, 0.60, 1.0},
		},
		Style: StyleConfig{Theme: "dark", FontScale: 1},
		Dock:  DockConfig{LeftWidth: 280, RightWidth: 280, TopHeight: 120, BottomHeight: 160, SnapMargin: 8},
		Frame: FrameConfig{MaxFPS: 0},
	}
}

// LoadConfig reads defaults, then the YAML file at path if path is not
// empty, then GUIKIT_* environment overrides (GUIKIT_WINDOW_WIDTH=1920).
// The result is validated.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("GUIKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	logger.Debug("config loaded", "file", v.ConfigFileUsed(), "theme", c.Style.Theme)
	return c, nil
}

// setDefaults registers every key so env overrides apply to keys the file
// does not mention.
func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("window.title", c.Window.Title)
	v.SetDefault("window.width", c.Window.Width)
	v.SetDefault("window.height", c.Window.Height)
	v.SetDefault("window.vsync", c.Window.VSync)
	v.SetDefault("window.resizable", c.Window.Resizable)
	v.SetDefault("window.clear_color", c.Window.ClearColor)
	v.SetDefault("style.theme", c.Style.Theme)
	v.SetDefault("style.font_scale", c.Style.FontScale)
	v.SetDefault("dock.left_width", c.Dock.LeftWidth)
	v.SetDefault("dock.right_width", c.Dock.RightWidth)
	v.SetDefault("dock.top_height", c.Dock.TopHeight)
	v.SetDefault("dock.bottom_height", c.Dock.BottomHeight)
	v.SetDefault("dock.snap_margin", c.Dock.SnapMargin)
	v.SetDefault("frame.max_fps", c.Frame.MaxFPS)
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// configRules are the custom validation tags used by Config.
var configRules = map[string]validator.Func{
	"theme": func(fl validator.FieldLevel) bool {
		_, err := guikit.StyleByName(fl.Field().String())
		return err == nil
	},
}

func registerRules(v *validator.Validate, rules map[string]validator.Func) error {
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register validation %q: %w", tag, err)
		}
	}
	return nil
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		if err := registerRules(v, configRules); err != nil {
			panic(err)
		}
		validateInst = v
	})
	return validateInst
}

// Validate checks the config. Errors wrap ErrInvalidConfig and name the
// first offending field the way it is spelled in YAML.
func (c Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return fmt.Errorf("%w: %s failed validation for tag '%s'", ErrInvalidConfig, yamlFieldName(fe), fe.Tag())
	}
	return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
}

// yamlFieldName turns "Config.Style.FontScale" into "style.font_scale".
func yamlFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = snakeCase(p)
	}
	return strings.Join(parts, ".")
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && !(s[i-1] >= 'A' && s[i-1] <= 'Z') {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// GUIStyle resolves the configured theme and applies the font scale.
func (c Config) GUIStyle() (guikit.Style, error) {
	s, err := guikit.StyleByName(c.Style.Theme)
	if err != nil {
		return guikit.Style{}, err
	}
	if c.Style.FontScale > 0 {
		s.FontScale = c.Style.FontScale
	}
	return s, nil
}

// WriteYAML writes the config as YAML.
func (c Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
