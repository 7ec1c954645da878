// Package config loads application settings from a .env file and environment variables.
// Environment variables always take precedence over .env file values.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/vunguyen10111995/horse-racing-game/game"
	"github.com/vunguyen10111995/horse-racing-game/racing"
)

// Config holds all application configuration.
type Config struct {
	// Server
	Debug      bool
	Port       string
	TLSDomains []string

	// Game
	HorseCount     int
	InterRaceDelay time.Duration
	TimeScale      float64
	RNGSeed        uint64
	EventBuffer    int

	// Auth: command routes are open unless JWTSecret is set.
	JWTSecret          string
	PlayerPasswordHash string
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	cfg, err := FromViper(newViper())
	if err != nil {
		log.Fatal("config: ", err)
	}
	return cfg
}

// FromViper builds and validates a Config from v, applying defaults first.
func FromViper(v *viper.Viper) (*Config, error) {
	// Defaults
	v.SetDefault("DEBUG", false)
	v.SetDefault("PORT", ":9000")
	v.SetDefault("TLS_DOMAINS", "")
	v.SetDefault("HORSE_COUNT", racing.DefaultHorseCount)
	v.SetDefault("INTER_RACE_DELAY", "500ms")
	v.SetDefault("TIME_SCALE", 1.0)
	v.SetDefault("RNG_SEED", 0)
	v.SetDefault("EVENT_BUFFER", 64)

	cfg := &Config{
		Debug:              v.GetBool("DEBUG"),
		Port:               v.GetString("PORT"),
		TLSDomains:         splitTrimmed(v.GetString("TLS_DOMAINS")),
		HorseCount:         v.GetInt("HORSE_COUNT"),
		InterRaceDelay:     v.GetDuration("INTER_RACE_DELAY"),
		TimeScale:          v.GetFloat64("TIME_SCALE"),
		RNGSeed:            v.GetUint64("RNG_SEED"),
		EventBuffer:        v.GetInt("EVENT_BUFFER"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		PlayerPasswordHash: v.GetString("PLAYER_PASSWORD_HASH"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot run a game.
func (c *Config) Validate() error {
	if c.HorseCount < racing.HorsesPerRace || c.HorseCount > racing.PoolSize() {
		return fmt.Errorf("HORSE_COUNT must be between %d and %d, got %d", racing.HorsesPerRace, racing.PoolSize(), c.HorseCount)
	}
	if c.InterRaceDelay < 0 {
		return fmt.Errorf("INTER_RACE_DELAY must not be negative, got %s", c.InterRaceDelay)
	}
	if c.TimeScale <= 0 {
		return fmt.Errorf("TIME_SCALE must be positive, got %g", c.TimeScale)
	}
	if c.EventBuffer < 1 {
		return fmt.Errorf("EVENT_BUFFER must be at least 1, got %d", c.EventBuffer)
	}
	if c.JWTSecret != "" && c.PlayerPasswordHash == "" {
		return errors.New("PLAYER_PASSWORD_HASH must be set when JWT_SECRET is set")
	}
	if !c.Debug && len(c.TLSDomains) == 0 {
		return errors.New("TLS_DOMAINS must be set unless DEBUG is enabled")
	}
	return nil
}

// AuthEnabled reports whether command routes require a token.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// JWTKey returns the JWT signing key as a byte slice.
func (c *Config) JWTKey() []byte {
	return []byte(c.JWTSecret)
}

// EngineOptions maps the game settings onto engine options.
func (c *Config) EngineOptions() game.Options {
	opts := game.DefaultOptions()
	opts.HorseCount = c.HorseCount
	opts.InterRaceDelay = c.InterRaceDelay
	opts.TimeScale = c.TimeScale
	opts.EventBuffer = c.EventBuffer
	return opts
}

func newViper() *viper.Viper {
	// Silently load .env: OK if the file doesn't exist (production uses real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
