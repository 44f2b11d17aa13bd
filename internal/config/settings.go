package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyLogLevel   = "log-level"
	KeyLogFile    = "log-file"
	KeyTheme      = "theme"
	KeyExportDir  = "export-dir"
	KeyPlotWidth  = "plot-width"
	KeyPlotHeight = "plot-height"
	KeySettings   = "settings"

	envPrefix    = "THERMDECAY"
	settingsName = "thermdecay"
)

// Settings are application preferences, not model inputs.
type Settings struct {
	LogLevel   string `mapstructure:"log-level"`
	LogFile    string `mapstructure:"log-file"`
	Theme      string `mapstructure:"theme"`
	ExportDir  string `mapstructure:"export-dir"`
	PlotWidth  int    `mapstructure:"plot-width"`
	PlotHeight int    `mapstructure:"plot-height"`
}

func DefaultSettings() Settings {
	return Settings{
		LogLevel:   "info",
		Theme:      "thermal",
		ExportDir:  ".",
		PlotWidth:  70,
		PlotHeight: 15,
	}
}

// LoadSettings merges, from lowest to highest precedence: defaults, the
// settings file, THERMDECAY_* environment variables and flags that were set
// explicitly. The settings file is the --settings flag when given, otherwise
// thermdecay.yaml in the working directory if one exists.
func LoadSettings(flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()

	def := DefaultSettings()
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyLogFile, def.LogFile)
	v.SetDefault(KeyTheme, def.Theme)
	v.SetDefault(KeyExportDir, def.ExportDir)
	v.SetDefault(KeyPlotWidth, def.PlotWidth)
	v.SetDefault(KeyPlotHeight, def.PlotHeight)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Settings{}, err
		}
	}

	// an explicit settings file must exist, the default one may not
	explicit := v.GetString(KeySettings)
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName(settingsName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("config: read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("config: decode settings: %w", err)
	}
	if s.PlotWidth <= 0 || s.PlotHeight <= 0 {
		return Settings{}, fmt.Errorf("config: plot size must be positive, got %dx%d", s.PlotWidth, s.PlotHeight)
	}
	return s, nil
}
