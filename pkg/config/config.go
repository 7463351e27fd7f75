package config

import (
    "errors"
    "fmt"
    "strings"

    "github.com/spf13/viper"
)

var ErrInvalid = errors.New("config: invalid")

// Config is the runtime configuration of the contract tooling.
type Config struct {
    Log   LogConfig   `mapstructure:"log"`
    Codec CodecConfig `mapstructure:"codec"`
    Trace TraceConfig `mapstructure:"trace"`
}

type LogConfig struct {
    Level  string `mapstructure:"level"`
    Format string `mapstructure:"format"`
}

// CodecConfig controls the optional stages of wire.Codec.
type CodecConfig struct {
    SchemaValidation bool `mapstructure:"schema_validation"`
    Canonical        bool `mapstructure:"canonical"`
}

type TraceConfig struct {
    Enabled bool `mapstructure:"enabled"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
    return &Config{
        Log:   LogConfig{Level: "info", Format: "json"},
        Codec: CodecConfig{SchemaValidation: false, Canonical: false},
        Trace: TraceConfig{Enabled: false},
    }
}

// Load reads configuration from path (any format viper understands) with
// FABRIC_* environment overrides, e.g. FABRIC_LOG_LEVEL. An empty path looks
// for fabric.yaml in the working directory and $HOME/.fabric; a missing file
// is not an error.
func Load(path string) (*Config, error) {
    v := viper.New()
    if path != "" {
        v.SetConfigFile(path)
    } else {
        v.SetConfigName("fabric")
        v.SetConfigType("yaml")
        v.AddConfigPath(".")
        v.AddConfigPath("$HOME/.fabric")
    }
    setDefaults(v)

    v.SetEnvPrefix("FABRIC")
    v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
    v.AutomaticEnv()

    if err := v.ReadInConfig(); err != nil {
        var notFound viper.ConfigFileNotFoundError
        if !errors.As(err, &notFound) { return nil, fmt.Errorf("config: read: %w", err) }
    }

    var cfg Config
    if err := v.Unmarshal(&cfg); err != nil { return nil, fmt.Errorf("config: decode: %w", err) }
    if err := cfg.Validate(); err != nil { return nil, err }
    return &cfg, nil
}

func setDefaults(v *viper.Viper) {
    d := Default()
    v.SetDefault("log.level", d.Log.Level)
    v.SetDefault("log.format", d.Log.Format)
    v.SetDefault("codec.schema_validation", d.Codec.SchemaValidation)
    v.SetDefault("codec.canonical", d.Codec.Canonical)
    v.SetDefault("trace.enabled", d.Trace.Enabled)
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
    switch strings.ToLower(c.Log.Level) {
    case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
    default:
        return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
    }
    switch strings.ToLower(c.Log.Format) {
    case "json", "console", "pretty":
    default:
        return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
    }
    return nil
}
