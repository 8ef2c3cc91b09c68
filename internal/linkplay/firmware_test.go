package linkplay

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultProfile(t *testing.T) {
	profile := DefaultProfile()

	wantEq := map[string]int{"off": 0, "classical": 1, "pop": 2, "jazz": 3, "vocal": 4}
	if !reflect.DeepEqual(profile.EqualizerModes, wantEq) {
		t.Errorf("EqualizerModes = %v, want %v", profile.EqualizerModes, wantEq)
	}
	if profile.PresetKeys != 6 {
		t.Errorf("PresetKeys = %d, want 6", profile.PresetKeys)
	}
	if profile.LoopModes["repeat:off:shuffle:off"] != -1 {
		t.Errorf("repeat:off:shuffle:off = %d, want -1", profile.LoopModes["repeat:off:shuffle:off"])
	}
	if profile.WiFiStates["connected"] != "ok" {
		t.Errorf("WiFiStates[connected] = %q, want ok", profile.WiFiStates["connected"])
	}
}

func TestProfileReverseLookups(t *testing.T) {
	profile := DefaultProfile()

	if name, ok := profile.EqualizerName(3); !ok || name != "jazz" {
		t.Errorf("EqualizerName(3) = %q, %v, want jazz, true", name, ok)
	}
	if _, ok := profile.EqualizerName(9); ok {
		t.Error("EqualizerName(9) = ok, want miss")
	}
	if name, ok := profile.PlayerModeName(41); !ok || name != "bluetooth" {
		t.Errorf("PlayerModeName(41) = %q, %v, want bluetooth, true", name, ok)
	}
	if name, ok := profile.LoopModeName(2); !ok || name != "repeat:all:shuffle:on" {
		t.Errorf("LoopModeName(2) = %q, %v", name, ok)
	}
	if name, ok := profile.WiFiStateName("PAIRFAIL"); !ok || name != "error-password" {
		t.Errorf("WiFiStateName(PAIRFAIL) = %q, %v", name, ok)
	}
}

func TestEqualizerNames_Sorted(t *testing.T) {
	names := DefaultProfile().EqualizerNames()
	want := []string{"classical", "jazz", "off", "pop", "vocal"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("EqualizerNames() = %v, want %v", names, want)
	}
}

func TestLoadProfile_PartialOverride(t *testing.T) {
	// A profile file only lists what differs from the defaults.
	content := `equalizer_modes:
  flat: 0
  rock: 5
preset_keys: 4
`
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	profile, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile() error = %v", err)
	}

	wantEq := map[string]int{"flat": 0, "rock": 5}
	if !reflect.DeepEqual(profile.EqualizerModes, wantEq) {
		t.Errorf("EqualizerModes = %v, want %v", profile.EqualizerModes, wantEq)
	}
	if profile.PresetKeys != 4 {
		t.Errorf("PresetKeys = %d, want 4", profile.PresetKeys)
	}

	// Untouched maps fall back to the defaults
	if profile.WiFiStates["connected"] != "ok" {
		t.Errorf("WiFiStates[connected] = %q, want default ok", profile.WiFiStates["connected"])
	}
	if profile.PlayerModes["bluetooth"] != 41 {
		t.Errorf("PlayerModes[bluetooth] = %d, want default 41", profile.PlayerModes["bluetooth"])
	}
}

func TestLoadProfile_MissingFile(t *testing.T) {
	if _, err := LoadProfile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadProfile(missing) = nil error")
	}
}

func TestLoadProfile_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("equalizer_modes: [not a map"), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	if _, err := LoadProfile(path); err == nil {
		t.Error("LoadProfile(bad yaml) = nil error")
	}
}
