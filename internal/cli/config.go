package cli

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the CLI reads
const EnvPrefix = "FREEPLAY"

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Output    string
	Verbose   bool
	RedisURL  string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: "http://localhost:8080",
		Output:    "text",
		RedisURL:  "redis://localhost:6379",
	}
}

// newViper creates a viper instance reading FREEPLAY_* variables, with
// dashes in flag names mapped to underscores (redis-url -> FREEPLAY_REDIS_URL)
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig resolves configuration from flags, then environment, then defaults
func LoadConfig(v *viper.Viper, flags *pflag.FlagSet) (*Config, error) {
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	return &Config{
		ServerURL: v.GetString("server"),
		Output:    v.GetString("output"),
		Verbose:   v.GetBool("verbose"),
		RedisURL:  v.GetString("redis-url"),
	}, nil
}
