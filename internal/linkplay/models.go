package linkplay

import "strconv"

// DeviceStatus is the record returned by getStatus. The firmware serializes
// nearly every value as a JSON string, including numbers and flags, so
// numeric fields are kept as strings and converted by accessors.
type DeviceStatus struct {
	UUID            string `json:"uuid"`
	DeviceName      string `json:"DeviceName"`
	GroupName       string `json:"GroupName"`
	SSID            string `json:"ssid"`
	HideSSID        string `json:"hideSSID"`
	Firmware        string `json:"firmware"`
	Hardware        string `json:"hardware"`
	Build           string `json:"build"`
	Project         string `json:"project"`
	Release         string `json:"Release"`
	Language        string `json:"language"`
	WifiChannel     string `json:"WifiChannel"`
	MAC             string `json:"MAC"`
	Netstat         string `json:"netstat"`
	Essid           string `json:"essid"`
	ApCli0          string `json:"apcli0"`
	SecureMode      string `json:"securemode"`
	Auth            string `json:"auth"`
	Encryption      string `json:"encry"`
	PSK             string `json:"psk"`
	MasterIP        string `json:"master_ip"`
	VersionUpdate   string `json:"VersionUpdate"`
	NewFirmware     string `json:"NewVer"`
	MCUVersion      string `json:"mcu_ver"`
	UPnPVersion     string `json:"upnp_version"`
	PresetKeyCount  string `json:"preset_key"`
	BatteryCharging string `json:"battery"`
	BatteryPercent  string `json:"battery_percent"`
}

// SSIDHidden reports whether the device hides its access-point SSID.
func (s *DeviceStatus) SSIDHidden() bool {
	return s.HideSSID == "1"
}

// Channel returns the WiFi radio channel, or an error when the firmware
// field is not numeric.
func (s *DeviceStatus) Channel() (int, error) {
	n, err := strconv.Atoi(s.WifiChannel)
	if err != nil {
		return 0, newProtocolError("device.status", "non-numeric WifiChannel %q", s.WifiChannel)
	}
	return n, nil
}

// IsSlave reports whether the device is slaved to a multiroom master.
func (s *DeviceStatus) IsSlave() bool {
	return s.MasterIP != ""
}

// PlayerStatus is the record returned by getPlayerStatus. Media tags are
// hex-encoded by the firmware; use the accessors for decoded values.
type PlayerStatus struct {
	Type      string `json:"type"`
	Channel   string `json:"ch"`
	Mode      string `json:"mode"`
	Loop      string `json:"loop"`
	EQ        string `json:"eq"`
	Status    string `json:"status"`
	Position  string `json:"curpos"`
	Length    string `json:"totlen"`
	RawTitle  string `json:"Title"`
	RawArtist string `json:"Artist"`
	RawAlbum  string `json:"Album"`
	Volume    string `json:"vol"`
	Mute      string `json:"mute"`
	PlCount   string `json:"plicount"`
	PlIndex   string `json:"plicurr"`
}

// Title returns the decoded media title.
func (s *PlayerStatus) Title() string { return decodeHexText(s.RawTitle) }

// Artist returns the decoded media artist.
func (s *PlayerStatus) Artist() string { return decodeHexText(s.RawArtist) }

// Album returns the decoded media album.
func (s *PlayerStatus) Album() string { return decodeHexText(s.RawAlbum) }

// VolumeLevel returns the current volume as an integer 0-100.
func (s *PlayerStatus) VolumeLevel() (int, error) {
	n, err := strconv.Atoi(s.Volume)
	if err != nil {
		return 0, newProtocolError("player.status", "non-numeric volume %q", s.Volume)
	}
	return n, nil
}

// Muted reports whether the device is muted.
func (s *PlayerStatus) Muted() bool { return s.Mute == "1" }

// PositionMS returns the playback position in milliseconds.
func (s *PlayerStatus) PositionMS() (int, error) {
	n, err := strconv.Atoi(s.Position)
	if err != nil {
		return 0, newProtocolError("player.status", "non-numeric position %q", s.Position)
	}
	return n, nil
}

// LengthMS returns the total media length in milliseconds.
func (s *PlayerStatus) LengthMS() (int, error) {
	n, err := strconv.Atoi(s.Length)
	if err != nil {
		return 0, newProtocolError("player.status", "non-numeric media length %q", s.Length)
	}
	return n, nil
}

// LoopValue returns the raw loop-mode value reported by the firmware.
func (s *PlayerStatus) LoopValue() (int, error) {
	n, err := strconv.Atoi(s.Loop)
	if err != nil {
		return 0, newProtocolError("player.status", "non-numeric loop mode %q", s.Loop)
	}
	return n, nil
}

// ModeValue returns the raw playback-source mode value.
func (s *PlayerStatus) ModeValue() (int, error) {
	n, err := strconv.Atoi(s.Mode)
	if err != nil {
		return 0, newProtocolError("player.status", "non-numeric source mode %q", s.Mode)
	}
	return n, nil
}

// Info is the combined device and player snapshot returned by Client.Info.
type Info struct {
	Device DeviceStatus
	Player PlayerStatus
}

// SlaveInfo describes one member of a multiroom group.
type SlaveInfo struct {
	Name    string `json:"name"`
	UUID    string `json:"uuid"`
	IP      string `json:"ip"`
	Version string `json:"version"`
	Channel int    `json:"channel"`
	Volume  int    `json:"volume"`
	Mute    int    `json:"mute"`
}

// MultiroomInfo describes the device's multiroom group membership.
type MultiroomInfo struct {
	// Role is "master" or "slave".
	Role string
	// MasterIP is set when the device is a slave.
	MasterIP string
	// Slaves are the devices grouped under this one.
	Slaves []SlaveInfo
}

// slaveList is the wire form of multiroom:getSlaveList.
type slaveList struct {
	Count  int         `json:"slaves"`
	Slaves []SlaveInfo `json:"slave_list"`
}

// FirmwareUpdateStatus is the record returned by getMvRemoteUpdateStatus.
type FirmwareUpdateStatus struct {
	Status     string `json:"status"`
	Progress   string `json:"progress"`
	NewVersion string `json:"new_version"`
}

// WiFiNetwork describes one access point from wlanGetApList.
type WiFiNetwork struct {
	SSID    string `json:"ssid"`
	BSSID   string `json:"bssid"`
	RSSI    string `json:"rssi"`
	Channel string `json:"channel"`
	Auth    string `json:"auth"`
	Encry   string `json:"encry"`
	Extch   string `json:"extch"`
}

// WiFiNetworkList is the wire form of wlanGetApList.
type WiFiNetworkList struct {
	Count    int           `json:"res"`
	Networks []WiFiNetwork `json:"aplist"`
}
