package linkplay

import "testing"

func TestNormalizeAck(t *testing.T) {
	cmd := mustCommand("reboot")

	tests := []struct {
		name     string
		raw      string
		wantKind Kind
		wantOK   bool
	}{
		{name: "success token", raw: "OK", wantOK: true},
		{name: "success token with whitespace", raw: "OK\n", wantOK: true},
		{name: "failed token", raw: "Failed", wantKind: KindDevice},
		{name: "unknown command token", raw: "unknown command reboot", wantKind: KindDevice},
		{name: "empty body", raw: "", wantKind: KindProtocol},
		{name: "unrecognized body", raw: "<html>boot</html>", wantKind: KindProtocol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := normalizeAck(cmd, tt.raw)
			if tt.wantOK {
				if err != nil {
					t.Fatalf("normalizeAck(%q) error = %v, want nil", tt.raw, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("normalizeAck(%q) = nil, want %v error", tt.raw, tt.wantKind)
			}
			if !hasKind(err, tt.wantKind) {
				t.Errorf("normalizeAck(%q) kind = %v, want %v", tt.raw, err, tt.wantKind)
			}
		})
	}
}

func TestNormalizeInt(t *testing.T) {
	cmd := mustCommand("eq.get")

	tests := []struct {
		name     string
		raw      string
		want     int
		wantKind Kind
		wantErr  bool
	}{
		{name: "plain number", raw: "3", want: 3},
		{name: "number with whitespace", raw: " 100\n", want: 100},
		{name: "failed token", raw: "Failed", wantErr: true, wantKind: KindDevice},
		{name: "non-numeric", raw: "jazz", wantErr: true, wantKind: KindProtocol},
		{name: "empty", raw: "", wantErr: true, wantKind: KindProtocol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeInt(cmd, tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("normalizeInt(%q) = %d, want error", tt.raw, got)
				}
				if !hasKind(err, tt.wantKind) {
					t.Errorf("normalizeInt(%q) kind = %v, want %v", tt.raw, err, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalizeInt(%q) error = %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("normalizeInt(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeJSON(t *testing.T) {
	cmd := mustCommand("player.status")

	t.Run("clean object", func(t *testing.T) {
		var status PlayerStatus
		err := normalizeJSON(cmd, `{"vol":"42","mute":"0"}`, &status)
		if err != nil {
			t.Fatalf("normalizeJSON() error = %v", err)
		}
		if status.Volume != "42" {
			t.Errorf("Volume = %q, want 42", status.Volume)
		}
	})

	t.Run("trailing garbage after object", func(t *testing.T) {
		var status PlayerStatus
		err := normalizeJSON(cmd, `{"vol":"42"}</div>trailing`, &status)
		if err != nil {
			t.Fatalf("normalizeJSON() error = %v", err)
		}
		if status.Volume != "42" {
			t.Errorf("Volume = %q, want 42", status.Volume)
		}
	})

	t.Run("no object", func(t *testing.T) {
		var status PlayerStatus
		err := normalizeJSON(cmd, "OK", &status)
		if !IsProtocolError(err) {
			t.Errorf("normalizeJSON(OK) = %v, want protocol error", err)
		}
	})

	t.Run("truncated object", func(t *testing.T) {
		var status PlayerStatus
		err := normalizeJSON(cmd, `{"vol":"42"`, &status)
		if !IsProtocolError(err) {
			t.Errorf("normalizeJSON(truncated) = %v, want protocol error", err)
		}
	})

	t.Run("rejection token", func(t *testing.T) {
		var status PlayerStatus
		err := normalizeJSON(cmd, "Failed", &status)
		if !IsDeviceError(err) {
			t.Errorf("normalizeJSON(Failed) = %v, want device error", err)
		}
	})
}

func TestNormalizeToken(t *testing.T) {
	cmd := mustCommand("wifi.state")
	names := map[string]string{"ok": "connected", "FAIL": "disconnected"}
	lookup := func(token string) (string, bool) {
		name, ok := names[token]
		return name, ok
	}

	if got, err := normalizeToken(cmd, "ok", lookup); err != nil || got != "connected" {
		t.Errorf("normalizeToken(ok) = %q, %v, want connected, nil", got, err)
	}
	if _, err := normalizeToken(cmd, "BOGUS", lookup); !IsProtocolError(err) {
		t.Errorf("normalizeToken(BOGUS) error = %v, want protocol error", err)
	}
	if _, err := normalizeToken(cmd, "", lookup); !IsProtocolError(err) {
		t.Errorf("normalizeToken(empty) error = %v, want protocol error", err)
	}
}

func TestDecodeHexText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "valid hex", in: "5468652042656e64", want: "The Bend"},
		{name: "empty passthrough", in: "", want: ""},
		{name: "odd length passthrough", in: "abc", want: "abc"},
		{name: "non-hex passthrough", in: "Not Hex!", want: "Not Hex!"},
	}

	for _, tt := range tests {
		if got := decodeHexText(tt.in); got != tt.want {
			t.Errorf("%s: decodeHexText(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestEncodeHexText(t *testing.T) {
	if got := encodeHexText("MyWifi"); got != "4d7957696669" {
		t.Errorf("encodeHexText(MyWifi) = %q, want 4d7957696669", got)
	}
}
