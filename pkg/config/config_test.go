package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
}

func TestValidate_RejectsUnknownProfile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Switch.Profile = "trident2"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for unknown switch profile")
	}
}

func TestLoadFromFile_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sai-core.yaml")
	yamlBody := "switch:\n  profile: mlnx2700\n  maxSwitches: 2\nlogging:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(yamlBody), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg := DefaultConfig()
	if err := cfg.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.Switch.Profile != "mlnx2700" {
		t.Errorf("Switch.Profile = %q, want mlnx2700", cfg.Switch.Profile)
	}
	if cfg.Switch.MaxSwitches != 2 {
		t.Errorf("Switch.MaxSwitches = %d, want 2", cfg.Switch.MaxSwitches)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want untouched default json", cfg.Logging.Format)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SAI_CORE_SWITCH_PROFILE", "mlnx2700")
	t.Setenv("SAI_CORE_LOG_LEVEL", "warn")

	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()

	if cfg.Switch.Profile != "mlnx2700" {
		t.Errorf("Switch.Profile = %q, want mlnx2700", cfg.Switch.Profile)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestProfileTable_GetValue(t *testing.T) {
	p := NewProfileTable(map[string]string{
		ProfileKeySwitchType: SwitchTypeMLNX2700,
	})
	v, ok := p.GetValue(ProfileKeySwitchType)
	if !ok || v != SwitchTypeMLNX2700 {
		t.Fatalf("GetValue(%s) = (%q, %v), want (%q, true)", ProfileKeySwitchType, v, ok, SwitchTypeMLNX2700)
	}
	if _, ok := p.GetValue("SAI_VS_MISSING"); ok {
		t.Fatal("GetValue returned ok=true for an absent key")
	}
}

func TestProfileTable_GetNextValue_IteratesSortedAndResets(t *testing.T) {
	p := NewProfileTable(map[string]string{
		"b": "2",
		"a": "1",
		"c": "3",
	})

	k1, v1, ok := p.GetNextValue("")
	if !ok || k1 != "a" || v1 != "1" {
		t.Fatalf("first GetNextValue(\"\") = (%q, %q, %v), want (a, 1, true)", k1, v1, ok)
	}
	k2, _, ok := p.GetNextValue(k1)
	if !ok || k2 != "b" {
		t.Fatalf("second GetNextValue = (%q, _, %v), want (b, true)", k2, ok)
	}
	k3, _, ok := p.GetNextValue(k2)
	if !ok || k3 != "c" {
		t.Fatalf("third GetNextValue = (%q, _, %v), want (c, true)", k3, ok)
	}
	if _, _, ok := p.GetNextValue(k3); ok {
		t.Fatal("GetNextValue past the last key should return ok=false")
	}

	// Passing "" again resets the iterator.
	k1again, _, ok := p.GetNextValue("")
	if !ok || k1again != "a" {
		t.Fatalf("GetNextValue(\"\") after exhaustion = (%q, %v), want (a, true)", k1again, ok)
	}
}
