package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Input InputConfig `yaml:"input" mapstructure:"input"`
	Log   LogConfig   `yaml:"log" mapstructure:"log"`
}

// InputConfig controls how extract files are opened. It never affects which
// rows are selected.
type InputConfig struct {
	TempDir       string `yaml:"temp_dir" mapstructure:"temp_dir"`
	XLSXSheet     string `yaml:"xlsx_sheet" mapstructure:"xlsx_sheet"`
	CSVDelimiter  string `yaml:"csv_delimiter" mapstructure:"csv_delimiter"`
	CSVLazyQuotes bool   `yaml:"csv_lazy_quotes" mapstructure:"csv_lazy_quotes"`
}

// Delimiter returns the CSV field separator, or 0 for the reader default.
func (c InputConfig) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSVDelimiter)
	if r == utf8.RuneError {
		return 0
	}
	return r
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("IMF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("input.temp_dir", filepath.Join(os.TempDir(), "imf-cli"))
	v.SetDefault("input.xlsx_sheet", "")
	v.SetDefault("input.csv_delimiter", ",")
	v.SetDefault("input.csv_lazy_quotes", false)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the values Load cannot type-check.
func (c *Config) Validate() error {
	var errs []string
	if c.Input.TempDir == "" {
		errs = append(errs, "input.temp_dir is required")
	}
	if !validDelimiter(c.Input.CSVDelimiter) {
		errs = append(errs, "input.csv_delimiter must be a single character other than a quote or line break")
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, "log.format must be json or console")
	}
	if len(errs) > 0 {
		return eris.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validDelimiter(d string) bool {
	if utf8.RuneCountInString(d) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(d)
	return r != '"' && r != '\r' && r != '\n' && r != utf8.RuneError
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
