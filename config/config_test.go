package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "govctl.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, "base_url: https://gov.example.com/api/v1\nlog:\n  level: debug\n")

	l, err := Load[Settings](path,
		WithDefaults[Settings](SettingsDefaults()),
		WithEnv[Settings](EnvPrefix),
	)
	if err != nil {
		t.Fatal(err)
	}

	got := l.Get()
	if got.BaseURL != "https://gov.example.com/api/v1" {
		t.Errorf("BaseURL = %q", got.BaseURL)
	}
	if got.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", got.Log.Level)
	}
	if got.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want default", got.Log.Format)
	}
	if got.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want default 30s", got.RequestTimeout)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("GOVCTL_LOG_LEVEL", "error")
	path := writeConfigFile(t, "log:\n  level: debug\n")

	l, err := Load[Settings](path,
		WithDefaults[Settings](SettingsDefaults()),
		WithEnv[Settings](EnvPrefix),
	)
	if err != nil {
		t.Fatal(err)
	}

	if got := l.Get().Log.Level; got != "error" {
		t.Errorf("Log.Level = %q, want env override", got)
	}
}

func TestLoadSettings_NoFileUsesDefaults(t *testing.T) {
	s, err := LoadSettings("")
	if err != nil {
		t.Fatal(err)
	}
	if s.BaseURL != "http://localhost:8000/api/v1" {
		t.Errorf("BaseURL = %q", s.BaseURL)
	}
	if s.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v", s.RequestTimeout)
	}
}

func TestGet_ReturnsDeepCopy(t *testing.T) {
	path := writeConfigFile(t, "base_url: https://gov.example.com\n")

	l, err := Load[Settings](path, WithDefaults[Settings](SettingsDefaults()))
	if err != nil {
		t.Fatal(err)
	}

	a := l.Get()
	a.BaseURL = "mutated"
	if b := l.Get(); b.BaseURL == "mutated" {
		t.Error("Get returned shared state")
	}
}

func TestOnChange_FiresWithBothSnapshots(t *testing.T) {
	path := writeConfigFile(t, "log:\n  level: info\n")

	l, err := Load[Settings](path, WithDefaults[Settings](SettingsDefaults()))
	if err != nil {
		t.Fatal(err)
	}

	type change struct{ old, new Settings }
	changes := make(chan change, 1)
	l.OnChange(func(old, new Settings) {
		select {
		case changes <- change{old, new}:
		default:
		}
	})

	if err := os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-changes:
		if c.old.Log.Level != "info" || c.new.Log.Level != "debug" {
			t.Errorf("change = %q -> %q", c.old.Log.Level, c.new.Log.Level)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change callback after file rewrite")
	}

	if got := l.Get().Log.Level; got != "debug" {
		t.Errorf("Log.Level after reload = %q", got)
	}
}
