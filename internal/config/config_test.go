package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.StartingMoney != 1000 {
		t.Errorf("starting money = %v, want 1000", cfg.StartingMoney)
	}
	if cfg.StartingDay != 1 {
		t.Errorf("starting day = %d, want 1", cfg.StartingDay)
	}
	if cfg.RegionMoveCost != 50 {
		t.Errorf("region move cost = %v, want 50", cfg.RegionMoveCost)
	}
	if cfg.MessageFadeIn() != 500*time.Millisecond ||
		cfg.MessageHold() != 2*time.Second ||
		cfg.MessageFadeOut() != 1500*time.Millisecond {
		t.Errorf("message timings = %v/%v/%v", cfg.MessageFadeIn(), cfg.MessageHold(), cfg.MessageFadeOut())
	}
	if cfg.RouletteSpin() != 1500*time.Millisecond {
		t.Errorf("roulette spin = %v, want 1.5s", cfg.RouletteSpin())
	}
	if cfg.MarketRefresh() != 15*time.Second {
		t.Errorf("market refresh = %v, want 15s", cfg.MarketRefresh())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.StartingMoney != 1000 {
		t.Errorf("starting money = %v, want default 1000", cfg.StartingMoney)
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tycoon.yaml")
	body := "starting_money: 2500\ncasino:\n  dice_roll_ms: 250\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TYCOON_REGION_MOVE_COST", "75")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StartingMoney != 2500 {
		t.Errorf("starting money = %v, want 2500 from file", cfg.StartingMoney)
	}
	if cfg.DiceRoll() != 250*time.Millisecond {
		t.Errorf("dice roll = %v, want 250ms from file", cfg.DiceRoll())
	}
	if cfg.RegionMoveCost != 75 {
		t.Errorf("region move cost = %v, want 75 from env", cfg.RegionMoveCost)
	}
	// Untouched fields still get defaults.
	if cfg.Casino.RouletteSpinMs != 1500 {
		t.Errorf("roulette spin = %d, want default 1500", cfg.Casino.RouletteSpinMs)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.StartingMoney = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative starting money should fail validation")
	}
}
