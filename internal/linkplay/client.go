package linkplay

import (
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kfm1/linkplayctl/internal/logging"
)

const (
	// DefaultVolumeStep is the increment used by VolumeUp/VolumeDown when
	// the caller passes a non-positive step.
	DefaultVolumeStep = 5

	// DefaultRebootDelay is how long a device takes to come back after a
	// reboot. SafeReboot waits this long before probing.
	DefaultRebootDelay = 60 * time.Second

	// DefaultSafeRebootRetries bounds SafeReboot attempts.
	DefaultSafeRebootRetries = 3

	// quietRebootVolume is the level used while rebooting quietly; volume 0
	// makes some firmware skip the jingle entirely but also drops the
	// multiroom channel, so 1 is the lowest safe value.
	quietRebootVolume = 1
)

// authTypes maps wifi auth names to the values setNetwork accepts.
var authTypes = map[string]int{"off": 0, "psk": 1}

// Client issues catalog commands to a single device endpoint. It holds only
// the endpoint, transport, and firmware profile; every call is independent.
type Client struct {
	// Address is the device host or IP this client controls.
	Address string

	// Transport carries wire commands to the device.
	Transport Transport

	// Profile holds the firmware-dependent value maps used for local
	// validation and response mapping.
	Profile *FirmwareProfile

	// RebootDelay is how long SafeReboot waits before probing the device.
	RebootDelay time.Duration
}

// New creates a client for the device at address (host or host with
// implied port 80) using the default HTTP transport and firmware profile.
func New(address string) *Client {
	return NewWithTransport(address, NewHTTPTransport(address, DefaultPort))
}

// NewWithTransport creates a client over a caller-supplied transport.
// Used by tests and by callers that need custom timeouts or ports.
func NewWithTransport(address string, transport Transport) *Client {
	return &Client{
		Address:     address,
		Transport:   transport,
		Profile:     DefaultProfile(),
		RebootDelay: DefaultRebootDelay,
	}
}

// Dispatch helpers. Each resolves a catalog entry, sends the built request,
// and normalizes the response for that entry's declared shape.

func (c *Client) ack(id string, args ...interface{}) error {
	cmd := mustCommand(id)
	raw, err := c.Transport.Send(cmd.Request(args...))
	if err != nil {
		return err
	}
	return normalizeAck(cmd, raw)
}

func (c *Client) intValue(id string, args ...interface{}) (int, error) {
	cmd := mustCommand(id)
	raw, err := c.Transport.Send(cmd.Request(args...))
	if err != nil {
		return 0, err
	}
	return normalizeInt(cmd, raw)
}

func (c *Client) jsonInto(id string, v interface{}, args ...interface{}) error {
	cmd := mustCommand(id)
	raw, err := c.Transport.Send(cmd.Request(args...))
	if err != nil {
		return err
	}
	return normalizeJSON(cmd, raw, v)
}

func (c *Client) tokenValue(id string, lookup func(string) (string, bool), args ...interface{}) (string, error) {
	cmd := mustCommand(id)
	raw, err := c.Transport.Send(cmd.Request(args...))
	if err != nil {
		return "", err
	}
	return normalizeToken(cmd, raw, lookup)
}

func (c *Client) rawValue(id string, args ...interface{}) (string, error) {
	cmd := mustCommand(id)
	raw, err := c.Transport.Send(cmd.Request(args...))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

// Command sends arbitrary command text to the device and returns the raw
// response body. Escape hatch for firmware commands not in the catalog.
func (c *Client) Command(text string) (string, error) {
	if text == "" {
		return "", newInvalidArgument("command text must be non-empty")
	}
	return c.Transport.Send(text)
}

// Power

// Reboot requests an immediate device reboot. Returns as soon as the
// device acknowledges; it will be unreachable for a minute or so after.
func (c *Client) Reboot() error {
	logging.Info("Requesting reboot", zap.String("address", c.Address))
	return c.ack("reboot")
}

// SafeReboot reboots the device and verifies it comes back up, retrying up
// to maxRetries additional times. A negative maxRetries retries without
// bound. This call blocks for at least RebootDelay per attempt.
func (c *Client) SafeReboot(maxRetries int) error {
	start := time.Now()
	for attempt := 1; ; attempt++ {
		logging.Debug("Starting reboot attempt",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", maxRetries),
		)
		if err := c.Reboot(); err != nil {
			return err
		}
		time.Sleep(c.RebootDelay)
		if c.responsive() {
			logging.Info("Safe reboot complete",
				zap.Int("attempts", attempt),
				zap.Duration("elapsed", time.Since(start)),
			)
			return nil
		}
		if maxRetries >= 0 && attempt > maxRetries {
			return newDeviceError("reboot",
				"device did not come back up after "+strconv.Itoa(attempt)+" reboot attempts")
		}
		logging.Debug("Device not responding after reboot, trying again")
	}
}

// QuietReboot reboots without the startup jingle: volume is dropped to the
// minimum, the device is safe-rebooted, and the previous volume restored.
// Blocks until the device is back up, typically a couple of minutes.
func (c *Client) QuietReboot() error {
	logging.Info("Requesting quiet reboot", zap.String("address", c.Address))

	oldVolume, err := c.Volume()
	if err != nil {
		return err
	}
	logging.Debug("Saving volume for quiet reboot", zap.Int("volume", oldVolume))

	if err := c.SetVolume(quietRebootVolume); err != nil {
		return err
	}
	if v, err := c.Volume(); err != nil {
		return err
	} else if v != quietRebootVolume {
		return newDeviceError("volume.set", "failed to set volume to minimum before quiet reboot")
	}

	if err := c.SafeReboot(DefaultSafeRebootRetries); err != nil {
		return err
	}

	logging.Debug("Restoring volume after quiet reboot", zap.Int("volume", oldVolume))
	if err := c.SetVolume(oldVolume); err != nil {
		return err
	}
	if v, err := c.Volume(); err != nil {
		return err
	} else if v != oldVolume {
		return newDeviceError("volume.set", "failed to restore volume after quiet reboot")
	}
	return nil
}

// Shutdown requests an immediate device shutdown.
func (c *Client) Shutdown() (string, error) {
	logging.Info("Requesting shutdown", zap.String("address", c.Address))
	return c.rawValue("shutdown")
}

// responsive reports whether the device answers a player status request
// with a usable volume field.
func (c *Client) responsive() bool {
	status, err := c.PlayerInfo()
	if err != nil {
		logging.Debug("Device not responsive", zap.Error(err))
		return false
	}
	if _, err := status.VolumeLevel(); err != nil {
		return false
	}
	return true
}

// Device information

// Info retrieves a combined device and player snapshot.
func (c *Client) Info() (*Info, error) {
	device, err := c.DeviceInfo()
	if err != nil {
		return nil, err
	}
	player, err := c.PlayerInfo()
	if err != nil {
		return nil, err
	}
	return &Info{Device: *device, Player: *player}, nil
}

// DeviceInfo retrieves device and hardware information.
func (c *Client) DeviceInfo() (*DeviceStatus, error) {
	var status DeviceStatus
	if err := c.jsonInto("device.status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// PlayerInfo retrieves player subsystem information.
func (c *Client) PlayerInfo() (*PlayerStatus, error) {
	var status PlayerStatus
	if err := c.jsonInto("player.status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Name returns the device name used for services such as Airplay.
func (c *Client) Name() (string, error) {
	status, err := c.DeviceInfo()
	if err != nil {
		return "", err
	}
	return status.DeviceName, nil
}

// SetName renames the device.
func (c *Client) SetName(name string) error {
	if name == "" {
		return newInvalidArgument("device name must be non-empty")
	}
	return c.ack("device.rename", name)
}

// Group returns the multiroom group name the device belongs to.
func (c *Client) Group() (string, error) {
	status, err := c.DeviceInfo()
	if err != nil {
		return "", err
	}
	return status.GroupName, nil
}

// UUID returns the device UUID.
func (c *Client) UUID() (string, error) {
	status, err := c.DeviceInfo()
	if err != nil {
		return "", err
	}
	return status.UUID, nil
}

// Hardware returns the hardware version.
func (c *Client) Hardware() (string, error) {
	status, err := c.DeviceInfo()
	if err != nil {
		return "", err
	}
	return status.Hardware, nil
}

// Model returns the model (project) name.
func (c *Client) Model() (string, error) {
	status, err := c.DeviceInfo()
	if err != nil {
		return "", err
	}
	return status.Project, nil
}

// Playback transport

// TransportState returns the current transport status (play, pause, stop).
// Devices report stale values for some stream types such as airplay.
func (c *Client) TransportState() (string, error) {
	status, err := c.PlayerInfo()
	if err != nil {
		return "", err
	}
	return status.Status, nil
}

// Play starts playback of the track or playlist at uri, or of the current
// media when uri is empty.
func (c *Client) Play(uri string) error {
	if uri == "" {
		return c.ack("player.play")
	}
	return c.ack("player.play-uri", uri)
}

// Pause pauses playback.
func (c *Client) Pause() error { return c.ack("player.pause") }

// Resume resumes paused playback.
func (c *Client) Resume() error { return c.ack("player.resume") }

// Stop stops playback.
func (c *Client) Stop() error { return c.ack("player.stop") }

// Next skips forward to the next track.
func (c *Client) Next() error { return c.ack("player.next") }

// Previous skips backward to the previous track.
func (c *Client) Previous() error { return c.ack("player.prev") }

// Seek moves playback to the given second mark, clamped to media length.
func (c *Client) Seek(seconds int) error {
	return c.SetPosition(seconds * 1000)
}

// Back rewinds playback by the given seconds (default 10 when seconds is
// not positive).
func (c *Client) Back(seconds int) error {
	if seconds <= 0 {
		seconds = 10
	}
	pos, err := c.Position()
	if err != nil {
		return err
	}
	return c.SetPosition(pos - seconds*1000)
}

// Forward fast-forwards playback by the given seconds (default 10 when
// seconds is not positive).
func (c *Client) Forward(seconds int) error {
	if seconds <= 0 {
		seconds = 10
	}
	pos, err := c.Position()
	if err != nil {
		return err
	}
	return c.SetPosition(pos + seconds*1000)
}

// Position returns the playback position in milliseconds.
func (c *Client) Position() (int, error) {
	status, err := c.PlayerInfo()
	if err != nil {
		return 0, err
	}
	return status.PositionMS()
}

// SetPosition moves playback to the given millisecond mark, clamped to
// [0, media length]. The firmware seeks in whole seconds.
func (c *Client) SetPosition(ms int) error {
	length, err := c.Length()
	if err != nil {
		return err
	}
	if ms < 0 {
		ms = 0
	}
	if ms > length {
		ms = length
	}
	return c.ack("player.seek", ms/1000)
}

// Length returns the total media length in milliseconds.
func (c *Client) Length() (int, error) {
	status, err := c.PlayerInfo()
	if err != nil {
		return 0, err
	}
	return status.LengthMS()
}

// Media info

// Title returns the current media title.
func (c *Client) Title() (string, error) {
	status, err := c.PlayerInfo()
	if err != nil {
		return "", err
	}
	return status.Title(), nil
}

// Album returns the current media album.
func (c *Client) Album() (string, error) {
	status, err := c.PlayerInfo()
	if err != nil {
		return "", err
	}
	return status.Album(), nil
}

// Artist returns the current media artist.
func (c *Client) Artist() (string, error) {
	status, err := c.PlayerInfo()
	if err != nil {
		return "", err
	}
	return status.Artist(), nil
}

// Shuffle and repeat

// LoopMode returns the current loop descriptor, e.g.
// "repeat:all:shuffle:off".
func (c *Client) LoopMode() (string, error) {
	status, err := c.PlayerInfo()
	if err != nil {
		return "", err
	}
	value, err := status.LoopValue()
	if err != nil {
		return "", err
	}
	name, ok := c.Profile.LoopModeName(value)
	if !ok {
		return "", newProtocolError("player.status", "unknown loop mode value %d", value)
	}
	return name, nil
}

// SetLoopMode sets the loop descriptor, which must be one of the profile's
// loop modes.
func (c *Client) SetLoopMode(mode string) error {
	value, ok := c.Profile.LoopModes[mode]
	if !ok {
		return newInvalidArgument("unknown loop mode %q", mode)
	}
	return c.ack("player.loopmode", value)
}

// Shuffle reports whether shuffle is on.
func (c *Client) Shuffle() (bool, error) {
	mode, err := c.LoopMode()
	if err != nil {
		return false, err
	}
	return strings.HasSuffix(mode, ":on"), nil
}

// SetShuffle turns shuffle on or off, preserving the repeat setting.
func (c *Client) SetShuffle(on bool) error {
	repeat, err := c.Repeat()
	if err != nil {
		return err
	}
	shuffle := "off"
	if on {
		shuffle = "on"
	}
	return c.SetLoopMode("repeat:" + repeat + ":shuffle:" + shuffle)
}

// Repeat returns the repeat setting: "off", "one", or "all".
func (c *Client) Repeat() (string, error) {
	mode, err := c.LoopMode()
	if err != nil {
		return "", err
	}
	parts := strings.Split(mode, ":")
	if len(parts) != 4 {
		return "", newProtocolError("player.status", "malformed loop descriptor %q", mode)
	}
	return parts[1], nil
}

// SetRepeat sets the repeat mode ("off", "one", or "all"), preserving the
// shuffle setting. The firmware has no repeat-one-with-shuffle mode, so
// "one" forces shuffle off.
func (c *Client) SetRepeat(mode string) error {
	switch mode {
	case "off", "one", "all":
	default:
		return newInvalidArgument("repeat must be one of [off one all], not %q", mode)
	}
	shuffle := "off"
	if mode != "one" {
		on, err := c.Shuffle()
		if err != nil {
			return err
		}
		if on {
			shuffle = "on"
		}
	}
	return c.SetLoopMode("repeat:" + mode + ":shuffle:" + shuffle)
}

// Volume control

// Volume returns the current volume, 0-100.
func (c *Client) Volume() (int, error) {
	status, err := c.PlayerInfo()
	if err != nil {
		return 0, err
	}
	return status.VolumeLevel()
}

// SetVolume sets the volume to an absolute value. Values outside [0,100]
// fail locally without a network call.
func (c *Client) SetVolume(v int) error {
	if v < 0 || v > 100 {
		return newInvalidArgument("volume must be between 0 and 100, not %d", v)
	}
	return c.ack("volume.set", v)
}

// AdjustVolume changes the volume by a signed delta. The resulting level is
// clamped to [0,100].
func (c *Client) AdjustVolume(delta int) error {
	current, err := c.Volume()
	if err != nil {
		return err
	}
	target := current + delta
	if target < 0 {
		target = 0
	}
	if target > 100 {
		target = 100
	}
	return c.ack("volume.set", target)
}

// VolumeUp raises the volume by step, or by DefaultVolumeStep when step is
// not positive.
func (c *Client) VolumeUp(step int) error {
	if step <= 0 {
		step = DefaultVolumeStep
	}
	return c.AdjustVolume(step)
}

// VolumeDown lowers the volume by step, or by DefaultVolumeStep when step
// is not positive.
func (c *Client) VolumeDown(step int) error {
	if step <= 0 {
		step = DefaultVolumeStep
	}
	return c.AdjustVolume(-step)
}

// Mute reports whether the device is muted.
func (c *Client) Mute() (bool, error) {
	status, err := c.PlayerInfo()
	if err != nil {
		return false, err
	}
	return status.Muted(), nil
}

// MuteOn mutes the device.
func (c *Client) MuteOn() error { return c.ack("mute.set", 1) }

// MuteOff unmutes the device.
func (c *Client) MuteOff() error { return c.ack("mute.set", 0) }

// MuteToggle flips the muting state and returns the new state.
func (c *Client) MuteToggle() (bool, error) {
	muted, err := c.Mute()
	if err != nil {
		return false, err
	}
	if muted {
		return false, c.MuteOff()
	}
	return true, c.MuteOn()
}

// Source control

// Source returns the current playback source name (airplay, dlna,
// bluetooth, ...), mapped through the firmware profile.
func (c *Client) Source() (string, error) {
	status, err := c.PlayerInfo()
	if err != nil {
		return "", err
	}
	value, err := status.ModeValue()
	if err != nil {
		return "", err
	}
	name, ok := c.Profile.PlayerModeName(value)
	if !ok {
		return "", newProtocolError("player.status", "unknown source mode value %d", value)
	}
	return name, nil
}

// Bluetooth switches the playback source to bluetooth.
func (c *Client) Bluetooth() error { return c.ack("source.switch", "bluetooth") }

// Aux switches the playback source to AUX/line-in.
func (c *Client) Aux() error { return c.ack("source.switch", "line-in") }

// Local switches to the local filesystem source (SD, USB) and starts
// playing at the given file index.
func (c *Client) Local(index int) error {
	if index < 1 {
		return newInvalidArgument("local track index must be positive, not %d", index)
	}
	return c.ack("source.local", index)
}

// Playlist points the player at the playlist at uri. Known not to work on
// some firmware builds; Play(uri) is the reliable path.
func (c *Client) Playlist(uri string) error {
	if uri == "" {
		return newInvalidArgument("playlist uri must be non-empty")
	}
	return c.ack("source.playlist", uri)
}

// Preset loads the numbered hardware preset.
func (c *Client) Preset(number int) error {
	if number < 1 || number > c.Profile.PresetKeys {
		return newInvalidArgument("preset number must be between 1 and %d, not %d",
			c.Profile.PresetKeys, number)
	}
	return c.ack("preset.load", number)
}

// Equalizer control

// Equalizer returns the current equalizer preset name.
func (c *Client) Equalizer() (string, error) {
	value, err := c.intValue("eq.get")
	if err != nil {
		return "", err
	}
	name, ok := c.Profile.EqualizerName(value)
	if !ok {
		return "", newProtocolError("eq.get", "unknown equalizer value %d", value)
	}
	return name, nil
}

// SetEqualizer sets the equalizer preset by name. Names outside the
// profile's closed set fail locally without a network call; the firmware's
// behavior for unsupported values is inconsistent.
func (c *Client) SetEqualizer(name string) error {
	value, ok := c.Profile.EqualizerModes[name]
	if !ok {
		return newInvalidArgument("equalizer preset must be one of [%s], not %q",
			strings.Join(c.Profile.EqualizerNames(), " "), name)
	}
	return c.ack("eq.set", value)
}

// EqualizerModes returns the preset names supported by the firmware
// profile.
func (c *Client) EqualizerModes() []string {
	return c.Profile.EqualizerNames()
}

// Voice prompts and jingles

// PromptOn enables voice prompts and action jingles.
func (c *Client) PromptOn() error { return c.ack("prompt.on") }

// PromptOff disables voice prompts and action jingles.
func (c *Client) PromptOff() error { return c.ack("prompt.off") }

// PromptLanguage returns the voice prompt language.
func (c *Client) PromptLanguage() (string, error) {
	status, err := c.DeviceInfo()
	if err != nil {
		return "", err
	}
	return status.Language, nil
}

// WiFi status and control

// WiFiSSID returns the device's access point SSID.
func (c *Client) WiFiSSID() (string, error) {
	status, err := c.DeviceInfo()
	if err != nil {
		return "", err
	}
	return status.SSID, nil
}

// WiFiSSIDHidden reports whether the access point SSID is hidden.
func (c *Client) WiFiSSIDHidden() (bool, error) {
	status, err := c.DeviceInfo()
	if err != nil {
		return false, err
	}
	return status.SSIDHidden(), nil
}

// WiFiChannel returns the current WiFi radio channel.
func (c *Client) WiFiChannel() (int, error) {
	status, err := c.DeviceInfo()
	if err != nil {
		return 0, err
	}
	return status.Channel()
}

// WiFiMAC returns the WiFi radio MAC address.
func (c *Client) WiFiMAC() (string, error) {
	status, err := c.DeviceInfo()
	if err != nil {
		return "", err
	}
	return status.MAC, nil
}

// WiFiNetworks returns the access points visible to the device.
func (c *Client) WiFiNetworks() (*WiFiNetworkList, error) {
	var list WiFiNetworkList
	if err := c.jsonInto("wifi.networks", &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// WiFiStatus returns the WiFi connection state: connected, connecting,
// disconnected, or error-password.
func (c *Client) WiFiStatus() (string, error) {
	return c.tokenValue("wifi.state", c.Profile.WiFiStateName)
}

// WiFiOff powers down the WiFi radio. The device drops off the network
// immediately, so no response is interpreted.
func (c *Client) WiFiOff() (string, error) {
	return c.rawValue("wifi.off")
}

// SetWiFiAuth sets the access point authentication. authType is "off" or
// "psk"; psk requires a non-empty password. The device reboots itself after
// this call.
func (c *Client) SetWiFiAuth(authType, password string) (string, error) {
	value, ok := authTypes[authType]
	if !ok {
		return "", newInvalidArgument("auth type must be one of [off psk], not %q", authType)
	}
	if value != 0 && password == "" {
		return "", newInvalidArgument("auth type %q requires a non-empty password", authType)
	}
	return c.rawValue("wifi.auth", value, password)
}

// Firmware updating

// FirmwareVersion returns the current firmware version.
func (c *Client) FirmwareVersion() (string, error) {
	status, err := c.DeviceInfo()
	if err != nil {
		return "", err
	}
	return status.Firmware, nil
}

// FirmwareUpdateSearch starts a non-blocking search for new firmware.
func (c *Client) FirmwareUpdateSearch() (string, error) {
	return c.rawValue("firmware.search")
}

// FirmwareUpdateStatus reports on an update search started by
// FirmwareUpdateSearch.
func (c *Client) FirmwareUpdateStatus() (*FirmwareUpdateStatus, error) {
	var status FirmwareUpdateStatus
	if err := c.jsonInto("firmware.status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// FirmwareNewVersion returns the available update version, if any.
func (c *Client) FirmwareNewVersion() (string, error) {
	status, err := c.DeviceInfo()
	if err != nil {
		return "", err
	}
	return status.NewFirmware, nil
}

// Multiroom

// Multiroom returns the device's multiroom role and slave list.
func (c *Client) Multiroom() (*MultiroomInfo, error) {
	device, err := c.DeviceInfo()
	if err != nil {
		return nil, err
	}
	info := &MultiroomInfo{Role: "master"}
	if device.IsSlave() {
		info.Role = "slave"
		info.MasterIP = device.MasterIP
	}
	var slaves slaveList
	if err := c.jsonInto("multiroom.slaves", &slaves); err != nil {
		return nil, err
	}
	info.Slaves = slaves.Slaves
	return info, nil
}

// MultiroomAdd slaves the device at slaveAddress to this one, passing this
// device's access point parameters to the slave.
func (c *Client) MultiroomAdd(slaveAddress string) error {
	if slaveAddress == "" {
		return newInvalidArgument("slave address must be non-empty")
	}
	device, err := c.DeviceInfo()
	if err != nil {
		return err
	}
	auth, encry, psk := "OPEN", "", ""
	if device.SecureMode != "" && device.SecureMode != "0" {
		auth, encry, psk = device.Auth, device.Encryption, device.PSK
	}
	slave := NewWithTransport(slaveAddress, NewHTTPTransport(slaveAddress, DefaultPort))
	return slave.JoinGroup(device.SSID, device.WifiChannel, auth, encry, psk)
}

// JoinGroup slaves this device to the multiroom master advertising the
// given access point.
func (c *Client) JoinGroup(ssid, channel, auth, encry, psk string) error {
	return c.ack("multiroom.join", encodeHexText(ssid), channel, auth, encry, encodeHexText(psk))
}

// MultiroomRemove kicks the slave at the given address out of this group.
func (c *Client) MultiroomRemove(slaveIP string) error {
	if slaveIP == "" {
		return newInvalidArgument("slave address must be non-empty")
	}
	return c.ack("multiroom.kick", slaveIP)
}

// MultiroomHide makes the given slave hide itself from the network list.
func (c *Client) MultiroomHide(slaveIP string) error {
	if slaveIP == "" {
		return newInvalidArgument("slave address must be non-empty")
	}
	return c.ack("multiroom.hide", slaveIP)
}

// MultiroomShow makes the given slave visible on the network list again.
func (c *Client) MultiroomShow(slaveIP string) error {
	if slaveIP == "" {
		return newInvalidArgument("slave address must be non-empty")
	}
	return c.ack("multiroom.show", slaveIP)
}

// MultiroomOff removes this device from its group and, if master, tears
// the whole group down.
func (c *Client) MultiroomOff() error {
	return c.ack("multiroom.ungroup")
}
