package linkplay

import "fmt"

// Shape describes the response a wire command is known to produce. The
// normalizer refuses to guess: a body that does not match the declared
// shape is a protocol error, never a silent default.
type Shape int

const (
	// ShapeAck is a bare literal success token ("OK").
	ShapeAck Shape = iota
	// ShapeInt is bare numeric text (e.g. the equalizer value).
	ShapeInt
	// ShapeJSON is a JSON object payload.
	ShapeJSON
	// ShapeToken is a bare text token interpreted against a closed set by
	// the caller (e.g. wifi connect state).
	ShapeToken
	// ShapeRaw is an uninterpreted body returned to the caller verbatim.
	ShapeRaw
)

// Command is one entry of the command catalog: a logical operation's wire
// template and expected response shape. Commands are stateless descriptors;
// they are resolved to a concrete request at call time.
type Command struct {
	ID       string
	Template string // fmt template; verbs are filled from call arguments
	Shape    Shape
}

// Request builds the wire command text for the given arguments.
func (c Command) Request(args ...interface{}) string {
	if len(args) == 0 {
		return c.Template
	}
	return fmt.Sprintf(c.Template, args...)
}

// catalog maps logical operation ids to their firmware wire contract. The
// templates are an externally fixed contract (A31 HTTP API) and must not be
// reinvented.
var catalog = map[string]Command{
	// Power
	"reboot":   {ID: "reboot", Template: "reboot", Shape: ShapeAck},
	"shutdown": {ID: "shutdown", Template: "getShutdown", Shape: ShapeRaw},

	// Device and player status
	"device.status": {ID: "device.status", Template: "getStatus", Shape: ShapeJSON},
	"player.status": {ID: "player.status", Template: "getPlayerStatus", Shape: ShapeJSON},
	"device.rename": {ID: "device.rename", Template: "setDeviceName:%s", Shape: ShapeAck},

	// Playback transport
	"player.play":     {ID: "player.play", Template: "setPlayerCmd:play", Shape: ShapeAck},
	"player.play-uri": {ID: "player.play-uri", Template: "setPlayerCmd:play:%s", Shape: ShapeAck},
	"player.pause":    {ID: "player.pause", Template: "setPlayerCmd:pause", Shape: ShapeAck},
	"player.resume":   {ID: "player.resume", Template: "setPlayerCmd:resume", Shape: ShapeAck},
	"player.stop":     {ID: "player.stop", Template: "setPlayerCmd:stop", Shape: ShapeAck},
	"player.next":     {ID: "player.next", Template: "setPlayerCmd:next", Shape: ShapeAck},
	"player.prev":     {ID: "player.prev", Template: "setPlayerCmd:prev", Shape: ShapeAck},
	"player.seek":     {ID: "player.seek", Template: "setPlayerCmd:seek:%d", Shape: ShapeAck},
	"player.loopmode": {ID: "player.loopmode", Template: "setPlayerCmd:loopmode:%d", Shape: ShapeAck},

	// Volume and muting
	"volume.set": {ID: "volume.set", Template: "setPlayerCmd:vol:%d", Shape: ShapeAck},
	"mute.set":   {ID: "mute.set", Template: "setPlayerCmd:mute:%d", Shape: ShapeAck},

	// Sources and presets
	"source.switch":   {ID: "source.switch", Template: "setPlayerCmd:switchmode:%s", Shape: ShapeAck},
	"source.playlist": {ID: "source.playlist", Template: "setPlayerCmd:playlist:%s", Shape: ShapeAck},
	"source.local":    {ID: "source.local", Template: "setPlayerCmd:playLocalList:%d", Shape: ShapeAck},
	"preset.load":     {ID: "preset.load", Template: "MCUKeyShortClick:%d", Shape: ShapeAck},

	// Equalizer
	"eq.get": {ID: "eq.get", Template: "getEqualizer", Shape: ShapeInt},
	"eq.set": {ID: "eq.set", Template: "setPlayerCmd:equalizer:%d", Shape: ShapeAck},

	// Voice prompts and jingles
	"prompt.on":  {ID: "prompt.on", Template: "PromptEnable", Shape: ShapeAck},
	"prompt.off": {ID: "prompt.off", Template: "PromptDisable", Shape: ShapeAck},

	// WiFi
	"wifi.networks": {ID: "wifi.networks", Template: "wlanGetApList", Shape: ShapeJSON},
	"wifi.state":    {ID: "wifi.state", Template: "wlanGetConnectState", Shape: ShapeToken},
	"wifi.off":      {ID: "wifi.off", Template: "setWifiPowerDown", Shape: ShapeRaw},
	"wifi.auth":     {ID: "wifi.auth", Template: "setNetwork:%d:%s", Shape: ShapeRaw},

	// Firmware updates
	"firmware.search": {ID: "firmware.search", Template: "getMvRemoteUpdateStartCheck", Shape: ShapeRaw},
	"firmware.status": {ID: "firmware.status", Template: "getMvRemoteUpdateStatus", Shape: ShapeJSON},

	// Multiroom
	"multiroom.slaves":  {ID: "multiroom.slaves", Template: "multiroom:getSlaveList", Shape: ShapeJSON},
	"multiroom.kick":    {ID: "multiroom.kick", Template: "multiroom:SlaveKickout:%s", Shape: ShapeAck},
	"multiroom.hide":    {ID: "multiroom.hide", Template: "multiroom:SlaveMask:%s", Shape: ShapeAck},
	"multiroom.show":    {ID: "multiroom.show", Template: "multiroom:SlaveUnMask:%s", Shape: ShapeAck},
	"multiroom.ungroup": {ID: "multiroom.ungroup", Template: "multiroom:Ungroup", Shape: ShapeAck},
	"multiroom.join": {ID: "multiroom.join",
		Template: "ConnectMasterAp:ssid=%s:ch=%s:auth=%s:encry=%s:pwd=%s:chext=0", Shape: ShapeAck},
}

// mustCommand returns the catalog entry for id. Unknown ids are programmer
// errors, not runtime conditions.
func mustCommand(id string) Command {
	cmd, ok := catalog[id]
	if !ok {
		panic(fmt.Sprintf("linkplay: unknown catalog command %q", id))
	}
	return cmd
}
