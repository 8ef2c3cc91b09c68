package linkplay

import "testing"

func TestCommandRequest(t *testing.T) {
	tests := []struct {
		id   string
		args []interface{}
		want string
	}{
		{id: "reboot", want: "reboot"},
		{id: "shutdown", want: "getShutdown"},
		{id: "device.status", want: "getStatus"},
		{id: "player.status", want: "getPlayerStatus"},
		{id: "device.rename", args: []interface{}{"Kitchen"}, want: "setDeviceName:Kitchen"},
		{id: "volume.set", args: []interface{}{100}, want: "setPlayerCmd:vol:100"},
		{id: "mute.set", args: []interface{}{1}, want: "setPlayerCmd:mute:1"},
		{id: "player.play", want: "setPlayerCmd:play"},
		{id: "player.play-uri", args: []interface{}{"http://example.com/s.m3u"},
			want: "setPlayerCmd:play:http://example.com/s.m3u"},
		{id: "player.seek", args: []interface{}{90}, want: "setPlayerCmd:seek:90"},
		{id: "player.loopmode", args: []interface{}{-1}, want: "setPlayerCmd:loopmode:-1"},
		{id: "eq.get", want: "getEqualizer"},
		{id: "eq.set", args: []interface{}{3}, want: "setPlayerCmd:equalizer:3"},
		{id: "preset.load", args: []interface{}{4}, want: "MCUKeyShortClick:4"},
		{id: "source.switch", args: []interface{}{"bluetooth"}, want: "setPlayerCmd:switchmode:bluetooth"},
		{id: "source.local", args: []interface{}{2}, want: "setPlayerCmd:playLocalList:2"},
		{id: "prompt.on", want: "PromptEnable"},
		{id: "prompt.off", want: "PromptDisable"},
		{id: "wifi.state", want: "wlanGetConnectState"},
		{id: "multiroom.kick", args: []interface{}{"192.168.1.56"}, want: "multiroom:SlaveKickout:192.168.1.56"},
		{id: "multiroom.ungroup", want: "multiroom:Ungroup"},
		{id: "multiroom.join", args: []interface{}{"4d7957696669", "11", "WPAPSK", "AES", "70617373"},
			want: "ConnectMasterAp:ssid=4d7957696669:ch=11:auth=WPAPSK:encry=AES:pwd=70617373:chext=0"},
	}

	for _, tt := range tests {
		cmd := mustCommand(tt.id)
		if got := cmd.Request(tt.args...); got != tt.want {
			t.Errorf("%s: Request() = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestCatalogShapes(t *testing.T) {
	// Spot-check the response shape declared for each category of command.
	shapes := map[string]Shape{
		"reboot":        ShapeAck,
		"volume.set":    ShapeAck,
		"eq.get":        ShapeInt,
		"device.status": ShapeJSON,
		"wifi.state":    ShapeToken,
		"shutdown":      ShapeRaw,
	}
	for id, want := range shapes {
		if got := mustCommand(id).Shape; got != want {
			t.Errorf("%s: Shape = %v, want %v", id, got, want)
		}
	}
}

func TestMustCommand_UnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("mustCommand(bogus) did not panic")
		}
	}()
	mustCommand("bogus")
}
