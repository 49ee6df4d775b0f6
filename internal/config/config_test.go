package config

import (
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.DBPath != defaultDBPath {
		t.Fatalf("db path = %q, want %q", cfg.App.DBPath, defaultDBPath)
	}
	if cfg.App.Tick != defaultTick {
		t.Fatalf("tick = %s, want %s", cfg.App.Tick, defaultTick)
	}
	if cfg.App.EditKey != "f2" || cfg.App.SaveKey != "f9" || cfg.App.DiscardKey != "f12" {
		t.Fatalf("unexpected default keys: %+v", cfg.App)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	environ := []string{
		"BIBTUI_DB=env.db",
		"BIBTUI_TICK=5s",
		"BIBTUI_EDIT_KEY=f5",
	}
	cfg, err := LoadArgs([]string{"--db", "flag.db", "--tick", "1s"}, environ)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.DBPath != "flag.db" {
		t.Fatalf("db path = %q, flag should win over env", cfg.App.DBPath)
	}
	if cfg.App.Tick != time.Second {
		t.Fatalf("tick = %s, flag should win over env", cfg.App.Tick)
	}
	if cfg.App.EditKey != "f5" {
		t.Fatalf("edit key = %q, env should apply when no flag is set", cfg.App.EditKey)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}

	bad := cfg
	bad.App.DBPath = "  "
	if Validate(bad) == nil {
		t.Fatalf("blank db path must not validate")
	}

	bad = cfg
	bad.App.Tick = 0
	if Validate(bad) == nil {
		t.Fatalf("zero tick must not validate")
	}

	bad = cfg
	bad.App.SaveKey = ""
	if Validate(bad) == nil {
		t.Fatalf("empty save key must not validate")
	}
}

func TestEnvParsingIgnoresMalformedEntries(t *testing.T) {
	env := parseEnv([]string{"", "NOEQUALS", "BIBTUI_DB=x.db"})
	if env["BIBTUI_DB"] != "x.db" {
		t.Fatalf("well-formed entry lost: %v", env)
	}
	if _, ok := env["NOEQUALS"]; ok {
		t.Fatalf("malformed entry should be dropped")
	}
}
