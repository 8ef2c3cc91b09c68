package linkplay

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"
	"testing"
)

func TestClassifyNetworkError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		subtype NetworkSubtype
	}{
		{
			name:    "dns failure",
			err:     &net.DNSError{Err: "no such host", Name: "speaker.local"},
			subtype: NetworkDNS,
		},
		{
			name:    "connection refused",
			err:     &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED},
			subtype: NetworkConnectionRefused,
		},
		{
			name:    "host unreachable",
			err:     &net.OpError{Op: "dial", Err: syscall.EHOSTUNREACH},
			subtype: NetworkHostUnreachable,
		},
		{
			name: "refused wrapped in url.Error",
			err: &url.Error{Op: "Get", URL: "http://192.168.1.55",
				Err: &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}},
			subtype: NetworkConnectionRefused,
		},
		{
			name:    "unclassifiable",
			err:     errors.New("something odd"),
			subtype: NetworkGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := classifyNetworkError(tt.err, "192.168.1.55")
			if classified == nil {
				t.Fatal("classifyNetworkError() = nil")
			}
			if classified.Kind != KindNetwork {
				t.Errorf("Kind = %v, want KindNetwork", classified.Kind)
			}
			if classified.Subtype != tt.subtype {
				t.Errorf("Subtype = %v, want %v", classified.Subtype, tt.subtype)
			}
			if classified.Address != "192.168.1.55" {
				t.Errorf("Address = %q, want 192.168.1.55", classified.Address)
			}
		})
	}
}

func TestClassifyNetworkError_Nil(t *testing.T) {
	if got := classifyNetworkError(nil, "x"); got != nil {
		t.Errorf("classifyNetworkError(nil) = %v, want nil", got)
	}
}

func TestKindPredicates(t *testing.T) {
	tests := []struct {
		err       error
		predicate func(error) bool
		name      string
	}{
		{newInvalidArgument("bad value %d", 7), IsInvalidArgument, "invalid argument"},
		{newStatusError(500, "x"), IsNetworkError, "network"},
		{newDeviceError("reboot", "rejected"), IsDeviceError, "device"},
		{newProtocolError("eq.get", "garbage %q", "zz"), IsProtocolError, "protocol"},
	}

	for _, tt := range tests {
		if !tt.predicate(tt.err) {
			t.Errorf("%s predicate = false for %v", tt.name, tt.err)
		}
		// Predicates see through fmt.Errorf wrapping
		wrapped := fmt.Errorf("while testing: %w", tt.err)
		if !tt.predicate(wrapped) {
			t.Errorf("%s predicate = false for wrapped %v", tt.name, wrapped)
		}
	}

	if IsDeviceError(newInvalidArgument("nope")) {
		t.Error("IsDeviceError matched an invalid-argument error")
	}
	if IsNetworkError(nil) {
		t.Error("IsNetworkError(nil) = true")
	}
	if IsNetworkError(errors.New("plain")) {
		t.Error("IsNetworkError matched a plain error")
	}
}

func TestErrorMessage(t *testing.T) {
	err := newDeviceError("reboot", "command rejected")
	if got := err.Error(); got != "Device Error: command rejected" {
		t.Errorf("Error() = %q", got)
	}

	cause := errors.New("EOF")
	withCause := &Error{Kind: KindNetwork, Message: "request failed", Err: cause}
	if got := withCause.Error(); !strings.Contains(got, "caused by: EOF") {
		t.Errorf("Error() = %q, want cause included", got)
	}
	if !errors.Is(withCause, cause) {
		t.Error("errors.Is did not find the wrapped cause")
	}
}

func TestShortMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "invalid argument passes through", err: newInvalidArgument("volume must be between 0 and 100"),
			want: "volume must be between 0 and 100"},
		{name: "http status", err: newStatusError(503, "x"), want: "device returned HTTP 503"},
		{name: "refused", err: &Error{Kind: KindNetwork, Subtype: NetworkConnectionRefused},
			want: "device refused connection - is it powered on?"},
		{name: "timeout", err: &Error{Kind: KindNetwork, Subtype: NetworkTimeout},
			want: "device not responding (timeout)"},
		{name: "device rejection", err: newDeviceError("reboot", "Failed"),
			want: "device rejected command: Failed"},
		{name: "protocol", err: newProtocolError("eq.get", "garbage"),
			want: "unexpected device response - firmware mismatch?"},
		{name: "plain error passes through", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		if got := ShortMessage(tt.err); got != tt.want {
			t.Errorf("%s: ShortMessage() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestIsTimeout(t *testing.T) {
	timeout := &Error{Kind: KindNetwork, Subtype: NetworkTimeout}
	if !IsTimeout(timeout) {
		t.Error("IsTimeout = false for a timeout error")
	}
	if IsTimeout(newStatusError(500, "x")) {
		t.Error("IsTimeout = true for an HTTP status error")
	}
}
