package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	EnvPrefix = "JOM"

	KeyCatalog      = "catalog"
	KeyLogLevel     = "log.level"
	KeyLogFile      = "log.file"
	KeyAltScreen    = "ui.alt_screen"
	KeyDetectDistro = "ui.detect_distro"
	KeyStrict       = "ui.strict"
	KeyPrintPlan    = "ui.print_plan"
)

var validLevels = []string{"debug", "info", "warn", "error", "fatal"}

type Config struct {
	// Catalog is a path to a YAML catalog; empty means the embedded one.
	Catalog string    `mapstructure:"catalog"`
	Log     LogConfig `mapstructure:"log"`
	UI      UIConfig  `mapstructure:"ui"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type UIConfig struct {
	AltScreen    bool `mapstructure:"alt_screen"`
	DetectDistro bool `mapstructure:"detect_distro"`
	Strict       bool `mapstructure:"strict"`
	PrintPlan    bool `mapstructure:"print_plan"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyCatalog, "")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyAltScreen, true)
	v.SetDefault(KeyDetectDistro, false)
	v.SetDefault(KeyStrict, false)
	v.SetDefault(KeyPrintPlan, false)
}

// DefaultDir is $XDG_CONFIG_HOME/jom, falling back to ~/.config/jom.
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "jom")
}

// Load reads cfgFile, or config.yaml from DefaultDir when cfgFile is empty,
// then layers JOM_* environment variables and any flags already bound to v.
// A missing default file is not an error; a missing explicit one is.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(DefaultDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) Normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	c.Catalog = expandPath(strings.TrimSpace(c.Catalog))
	c.Log.File = expandPath(strings.TrimSpace(c.Log.File))
}

func (c Config) Validate() error {
	for _, l := range validLevels {
		if c.Log.Level == l {
			return nil
		}
	}
	return fmt.Errorf("invalid log level %q (valid: %s)", c.Log.Level, strings.Join(validLevels, ", "))
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
