// Package config holds the tunable game constants.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every externally tunable constant. Durations are stored
// as milliseconds so the YAML stays plain numbers.
type Config struct {
	StartingMoney  float64 `yaml:"starting_money"`
	StartingDay    int     `yaml:"starting_day"`
	RegionMoveCost float64 `yaml:"region_move_cost"`

	Messages struct {
		FadeInMs  int `yaml:"fade_in_ms"`
		HoldMs    int `yaml:"hold_ms"`
		FadeOutMs int `yaml:"fade_out_ms"`
		MaxQueued int `yaml:"max_queued"`
	} `yaml:"messages"`

	Casino struct {
		RouletteSpinMs  int `yaml:"roulette_spin_ms"`
		DiceRollMs      int `yaml:"dice_roll_ms"`
		HighLowRevealMs int `yaml:"highlow_reveal_ms"`
	} `yaml:"casino"`

	BlackMarket struct {
		RefreshMs int `yaml:"refresh_ms"`
	} `yaml:"black_market"`
}

// Default returns the stock configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads config from a YAML file if it exists, then applies
// environment variable overrides and defaults for anything unset.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TYCOON_STARTING_MONEY"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.StartingMoney = f
		}
	}
	if v := os.Getenv("TYCOON_REGION_MOVE_COST"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RegionMoveCost = f
		}
	}
	if v := os.Getenv("TYCOON_MARKET_REFRESH_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.BlackMarket.RefreshMs = n
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.StartingMoney == 0 {
		c.StartingMoney = 1000
	}
	if c.StartingDay == 0 {
		c.StartingDay = 1
	}
	if c.RegionMoveCost == 0 {
		c.RegionMoveCost = 50
	}
	if c.Messages.FadeInMs == 0 {
		c.Messages.FadeInMs = 500
	}
	if c.Messages.HoldMs == 0 {
		c.Messages.HoldMs = 2000
	}
	if c.Messages.FadeOutMs == 0 {
		c.Messages.FadeOutMs = 1500
	}
	if c.Messages.MaxQueued == 0 {
		c.Messages.MaxQueued = 10
	}
	if c.Casino.RouletteSpinMs == 0 {
		c.Casino.RouletteSpinMs = 1500
	}
	if c.Casino.DiceRollMs == 0 {
		c.Casino.DiceRollMs = 1000
	}
	if c.Casino.HighLowRevealMs == 0 {
		c.Casino.HighLowRevealMs = 1000
	}
	if c.BlackMarket.RefreshMs == 0 {
		c.BlackMarket.RefreshMs = 15000
	}
}

// Validate checks the loaded values are usable.
func (c *Config) Validate() error {
	if c.StartingMoney <= 0 {
		return fmt.Errorf("starting_money must be positive")
	}
	if c.StartingDay <= 0 {
		return fmt.Errorf("starting_day must be positive")
	}
	if c.RegionMoveCost < 0 {
		return fmt.Errorf("region_move_cost must not be negative")
	}
	if c.BlackMarket.RefreshMs <= 0 {
		return fmt.Errorf("black_market.refresh_ms must be positive")
	}
	return nil
}

// Duration accessors.

func (c *Config) MessageFadeIn() time.Duration  { return ms(c.Messages.FadeInMs) }
func (c *Config) MessageHold() time.Duration    { return ms(c.Messages.HoldMs) }
func (c *Config) MessageFadeOut() time.Duration { return ms(c.Messages.FadeOutMs) }
func (c *Config) RouletteSpin() time.Duration   { return ms(c.Casino.RouletteSpinMs) }
func (c *Config) DiceRoll() time.Duration       { return ms(c.Casino.DiceRollMs) }
func (c *Config) HighLowReveal() time.Duration  { return ms(c.Casino.HighLowRevealMs) }
func (c *Config) MarketRefresh() time.Duration  { return ms(c.BlackMarket.RefreshMs) }

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }
