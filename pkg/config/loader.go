package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".aoc"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for aoc settings.
const envPrefix = "AOC"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// LoadConfig loads configuration from defaults, an optional file and AOC_*
// environment variables, in increasing order of precedence.
// If configPath is non-empty it must exist; otherwise .aoc.yaml is searched in
// CWD and $HOME and a missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("input.dir", DefaultInputDir)
	viperCfg.SetDefault("input.example", DefaultInputExample)

	viperCfg.SetDefault("ring.size", DefaultRingSize)
	viperCfg.SetDefault("ring.start", DefaultRingStart)

	viperCfg.SetDefault("output.format", DefaultOutputFormat)
	viperCfg.SetDefault("output.no_color", DefaultOutputNoColor)

	viperCfg.SetDefault("logging.level", DefaultLogLevel)
	viperCfg.SetDefault("logging.json", DefaultLogJSON)

	viperCfg.SetDefault("telemetry.otlp_endpoint", DefaultOTLPEndpoint)
	viperCfg.SetDefault("telemetry.otlp_insecure", DefaultOTLPInsecure)
	viperCfg.SetDefault("telemetry.metrics_textfile", DefaultMetricsTextfile)
}
