package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full server configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Game    GameConfig    `mapstructure:"game"`
}

// ServerConfig configures the HTTP/WebSocket shell.
type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GameConfig configures the rules engine.
type GameConfig struct {
	TargetScore   int      `mapstructure:"target_score"`
	PlayerNames   []string `mapstructure:"player_names"`
	LegacyShuffle bool     `mapstructure:"legacy_shuffle"`
	RecordReplay  bool     `mapstructure:"record_replay"`
}

// Load reads configuration from the given YAML file, with SKYJO_*
// environment variable overrides. An empty path loads defaults only.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("game.target_score", 100)
	v.SetDefault("game.player_names", []string{"Player 1", "Player 2"})
	v.SetDefault("game.legacy_shuffle", false)
	v.SetDefault("game.record_replay", false)

	v.SetEnvPrefix("SKYJO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Address == "" {
		return fmt.Errorf("server.address must not be empty")
	}
	if c.Game.TargetScore <= 0 {
		return fmt.Errorf("game.target_score must be positive, got %d", c.Game.TargetScore)
	}
	if len(c.Game.PlayerNames) != 2 {
		return fmt.Errorf("game.player_names must list exactly 2 names, got %d", len(c.Game.PlayerNames))
	}
	return nil
}
