package main

import (
	"testing"
	"time"

	"bibtui/internal/app"
	"bibtui/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	probes := collectTTYDetails()
	if len(probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			DBPath:     "catalog.db",
			Tick:       200 * time.Millisecond,
			EditKey:    "f2",
			SaveKey:    "f9",
			DiscardKey: "f12",
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"db":      "catalog.db",
			"tick":    "200ms",
			"editKey": "f2",
		},
		Args: []string{"--db", "catalog.db"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["db"] != "catalog.db" {
		t.Fatalf("expected db flag %q, got %v", "catalog.db", flagsValue["db"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].([]ttyProbe); !ok {
		t.Fatalf("expected tty probes in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
