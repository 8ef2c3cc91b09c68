package linkplay

import "testing"

func TestPlayerStatusAccessors(t *testing.T) {
	status := PlayerStatus{
		RawTitle:  "5468652042656e64",
		RawArtist: "4e6f7420486578",
		Volume:    "42",
		Mute:      "1",
		Position:  "60000",
		Length:    "240000",
		Loop:      "-1",
		Mode:      "10",
	}

	if got := status.Title(); got != "The Bend" {
		t.Errorf("Title() = %q, want The Bend", got)
	}
	if got := status.Artist(); got != "Not Hex" {
		t.Errorf("Artist() = %q, want Not Hex", got)
	}
	if got := status.Album(); got != "" {
		t.Errorf("Album() = %q, want empty", got)
	}

	if v, err := status.VolumeLevel(); err != nil || v != 42 {
		t.Errorf("VolumeLevel() = %d, %v, want 42, nil", v, err)
	}
	if !status.Muted() {
		t.Error("Muted() = false, want true")
	}
	if p, err := status.PositionMS(); err != nil || p != 60000 {
		t.Errorf("PositionMS() = %d, %v", p, err)
	}
	if l, err := status.LengthMS(); err != nil || l != 240000 {
		t.Errorf("LengthMS() = %d, %v", l, err)
	}
	if v, err := status.LoopValue(); err != nil || v != -1 {
		t.Errorf("LoopValue() = %d, %v", v, err)
	}
	if m, err := status.ModeValue(); err != nil || m != 10 {
		t.Errorf("ModeValue() = %d, %v", m, err)
	}
}

func TestPlayerStatus_NonNumericFields(t *testing.T) {
	status := PlayerStatus{Volume: "loud", Position: "", Length: "n/a"}

	if _, err := status.VolumeLevel(); !IsProtocolError(err) {
		t.Errorf("VolumeLevel() error = %v, want protocol error", err)
	}
	if _, err := status.PositionMS(); !IsProtocolError(err) {
		t.Errorf("PositionMS() error = %v, want protocol error", err)
	}
	if _, err := status.LengthMS(); !IsProtocolError(err) {
		t.Errorf("LengthMS() error = %v, want protocol error", err)
	}
}

func TestDeviceStatusAccessors(t *testing.T) {
	status := DeviceStatus{
		HideSSID:    "1",
		WifiChannel: "11",
		MasterIP:    "192.168.1.50",
	}

	if !status.SSIDHidden() {
		t.Error("SSIDHidden() = false, want true")
	}
	if ch, err := status.Channel(); err != nil || ch != 11 {
		t.Errorf("Channel() = %d, %v, want 11, nil", ch, err)
	}
	if !status.IsSlave() {
		t.Error("IsSlave() = false, want true")
	}

	standalone := DeviceStatus{HideSSID: "0", WifiChannel: "auto"}
	if standalone.SSIDHidden() {
		t.Error("SSIDHidden() = true, want false")
	}
	if standalone.IsSlave() {
		t.Error("IsSlave() = true, want false")
	}
	if _, err := standalone.Channel(); !IsProtocolError(err) {
		t.Errorf("Channel() error = %v, want protocol error", err)
	}
}
