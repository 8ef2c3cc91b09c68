package linkplay

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// FirmwareProfile holds the firmware-version-dependent value maps: which
// equalizer presets, source modes, loop modes, and wifi states the target
// firmware understands. The defaults match A31-family firmware; other
// builds can supply a profile file instead of patching code.
type FirmwareProfile struct {
	// EqualizerModes maps preset names to the values setPlayerCmd:equalizer
	// accepts. The name set is closed: unknown names fail locally.
	EqualizerModes map[string]int `yaml:"equalizer_modes"`

	// PlayerModes maps source names to the mode values reported in player
	// status.
	PlayerModes map[string]int `yaml:"player_modes"`

	// LoopModes maps "repeat:<r>:shuffle:<s>" descriptors to the values
	// setPlayerCmd:loopmode accepts.
	LoopModes map[string]int `yaml:"loop_modes"`

	// WiFiStates maps logical state names to the tokens wlanGetConnectState
	// returns.
	WiFiStates map[string]string `yaml:"wifi_states"`

	// PresetKeys is the number of hardware preset slots (MCUKeyShortClick).
	PresetKeys int `yaml:"preset_keys"`
}

// DefaultProfile returns the value maps for A31-family firmware.
func DefaultProfile() *FirmwareProfile {
	return &FirmwareProfile{
		EqualizerModes: map[string]int{
			"off": 0, "classical": 1, "pop": 2, "jazz": 3, "vocal": 4,
		},
		PlayerModes: map[string]int{
			"none": 0, "airplay": 1, "dlna": 2, "wiimu": 10, "wiimu-local": 11,
			"wiimu-station": 12, "wiimu-radio": 13, "wiimu-songlist": 14,
			"wiimu-max": 19, "http": 20, "http-local": 21, "http-max": 29,
			"alarm": 30, "line-in": 40, "bluetooth": 41, "ext-local": 42,
			"optical": 43, "line-in-max": 49, "mirror": 50, "talk": 60,
			"slave": 99,
		},
		LoopModes: map[string]int{
			"repeat:off:shuffle:off": -1,
			"repeat:all:shuffle:off": 0,
			"repeat:one:shuffle:off": 1,
			"repeat:all:shuffle:on":  2,
			"repeat:off:shuffle:on":  3,
		},
		WiFiStates: map[string]string{
			"connecting":     "PROCESS",
			"error-password": "PAIRFAIL",
			"disconnected":   "FAIL",
			"connected":      "ok",
		},
		PresetKeys: 6,
	}
}

// LoadProfile reads a firmware profile from a YAML file. Maps omitted from
// the file fall back to the A31 defaults, so a profile only needs to list
// what differs.
func LoadProfile(path string) (*FirmwareProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read firmware profile: %w", err)
	}

	var loaded FirmwareProfile
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse firmware profile %s: %w", path, err)
	}

	profile := DefaultProfile()
	if loaded.EqualizerModes != nil {
		profile.EqualizerModes = loaded.EqualizerModes
	}
	if loaded.PlayerModes != nil {
		profile.PlayerModes = loaded.PlayerModes
	}
	if loaded.LoopModes != nil {
		profile.LoopModes = loaded.LoopModes
	}
	if loaded.WiFiStates != nil {
		profile.WiFiStates = loaded.WiFiStates
	}
	if loaded.PresetKeys != 0 {
		profile.PresetKeys = loaded.PresetKeys
	}
	return profile, nil
}

// EqualizerNames returns the profile's preset names, sorted for stable
// display and error messages.
func (p *FirmwareProfile) EqualizerNames() []string {
	names := make([]string, 0, len(p.EqualizerModes))
	for name := range p.EqualizerModes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EqualizerName maps a firmware equalizer value back to its preset name.
func (p *FirmwareProfile) EqualizerName(value int) (string, bool) {
	for name, v := range p.EqualizerModes {
		if v == value {
			return name, true
		}
	}
	return "", false
}

// PlayerModeName maps a firmware source-mode value back to its name.
func (p *FirmwareProfile) PlayerModeName(value int) (string, bool) {
	for name, v := range p.PlayerModes {
		if v == value {
			return name, true
		}
	}
	return "", false
}

// LoopModeName maps a firmware loop value back to its descriptor.
func (p *FirmwareProfile) LoopModeName(value int) (string, bool) {
	for name, v := range p.LoopModes {
		if v == value {
			return name, true
		}
	}
	return "", false
}

// WiFiStateName maps a wlanGetConnectState token to its logical name.
func (p *FirmwareProfile) WiFiStateName(token string) (string, bool) {
	for name, t := range p.WiFiStates {
		if t == token {
			return name, true
		}
	}
	return "", false
}
