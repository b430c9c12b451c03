package config

import (
	"testing"
	"time"

	"github.com/atomicstack/glossary/internal/theme"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Source != "data.json" {
		t.Fatalf("expected default source, got %q", cfg.App.Source)
	}
	if cfg.App.Timeout != 10*time.Second {
		t.Fatalf("expected default timeout, got %s", cfg.App.Timeout)
	}
	if !cfg.App.ShowFooter {
		t.Fatal("expected footer enabled by default")
	}
	if cfg.App.Theme != theme.Dark {
		t.Fatalf("expected dark theme by default, got %s", cfg.App.Theme)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate: %v", err)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{
		"GLOSSARY_SOURCE=https://env.example/data.json",
		"GLOSSARY_LIGHT=true",
		"GLOSSARY_WIDTH=100",
		"GLOSSARY_TIMEOUT=3s",
		"GLOSSARY_TRACE=1",
		"GLOSSARY_LOG_FILE=/tmp/env.log",
		"MALFORMED",
	}
	args := []string{"-source", "https://flag.example/data.json", "-width", "80", "-footer=false"}
	cfg, err := LoadArgs(args, env)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Source != "https://flag.example/data.json" {
		t.Fatalf("expected flag source, got %q", cfg.App.Source)
	}
	if cfg.App.Width != 80 {
		t.Fatalf("expected flag width 80, got %d", cfg.App.Width)
	}
	if cfg.App.Theme != theme.Light {
		t.Fatal("expected light theme from environment")
	}
	if cfg.App.Timeout != 3*time.Second {
		t.Fatalf("expected env timeout, got %s", cfg.App.Timeout)
	}
	if cfg.App.ShowFooter {
		t.Fatal("expected footer disabled by flag")
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/env.log" {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
	if cfg.Flags["source"] != "https://flag.example/data.json" || cfg.Flags["light"] != "true" {
		t.Fatalf("unexpected flags map %#v", cfg.Flags)
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected args copied, got %#v", cfg.Args)
	}
}

func TestLoadArgsInvalidEnvFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"GLOSSARY_WIDTH=wide", "GLOSSARY_TIMEOUT=soon", "GLOSSARY_FOOTER=maybe"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Timeout != 10*time.Second || !cfg.App.ShowFooter {
		t.Fatalf("expected fallbacks, got %#v", cfg.App)
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatal("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-5"}, nil); err == nil {
		t.Fatal("expected error for negative height")
	}
	if _, err := LoadArgs([]string{"-nope"}, nil); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestValidate(t *testing.T) {
	cfg, _ := LoadArgs([]string{"-source", " "}, nil)
	if err := Validate(cfg); err == nil {
		t.Fatal("expected empty source to fail validation")
	}
	cfg, _ = LoadArgs([]string{"-timeout", "0s"}, nil)
	if err := Validate(cfg); err == nil {
		t.Fatal("expected zero timeout to fail validation")
	}
}
