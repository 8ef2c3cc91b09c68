package linkplay

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"
)

// splitHostPort breaks an httptest server URL into the address and port the
// transport wants.
func splitHostPort(t *testing.T, serverURL string) (string, int) {
	t.Helper()
	u, err := url.Parse(serverURL)
	if err != nil {
		t.Fatalf("parse server URL: %v", err)
	}
	port, err := strconv.Atoi(u.Port())
	if err != nil {
		t.Fatalf("parse server port: %v", err)
	}
	return u.Hostname(), port
}

func TestHTTPTransport_URL(t *testing.T) {
	transport := NewHTTPTransport("192.168.1.55", 0)

	got := transport.URL("setPlayerCmd:vol:100")
	want := "http://192.168.1.55:80/httpapi.asp?command=setPlayerCmd:vol:100"
	if got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}

func TestHTTPTransport_Send(t *testing.T) {
	var gotPath, gotCommand string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCommand = r.URL.Query().Get("command")
		fmt.Fprint(w, "OK")
	}))
	defer server.Close()

	host, port := splitHostPort(t, server.URL)
	transport := NewHTTPTransport(host, port)
	transport.CommandSpacing = 0

	body, err := transport.Send("reboot")
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if body != "OK" {
		t.Errorf("Send() body = %q, want OK", body)
	}
	if gotPath != ControlPath {
		t.Errorf("request path = %q, want %q", gotPath, ControlPath)
	}
	if gotCommand != "reboot" {
		t.Errorf("command query = %q, want reboot", gotCommand)
	}
}

func TestHTTPTransport_Send_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	host, port := splitHostPort(t, server.URL)
	transport := NewHTTPTransport(host, port)
	transport.CommandSpacing = 0

	_, err := transport.Send("getStatus")
	if !IsNetworkError(err) {
		t.Fatalf("Send() error = %v, want network error", err)
	}
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Fatalf("Send() error type = %T, want *Error", err)
	}
	if cerr.Subtype != NetworkHTTPStatus {
		t.Errorf("Subtype = %v, want NetworkHTTPStatus", cerr.Subtype)
	}
	if cerr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", cerr.StatusCode)
	}
}

func TestHTTPTransport_Send_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	host, port := splitHostPort(t, server.URL)
	server.Close() // nothing listens on the port anymore

	transport := NewHTTPTransport(host, port)
	transport.CommandSpacing = 0

	_, err := transport.Send("getStatus")
	if !IsNetworkError(err) {
		t.Fatalf("Send() error = %v, want network error", err)
	}
	if !strings.Contains(err.Error(), "Network Error") {
		t.Errorf("error text = %q, want network error prefix", err.Error())
	}
}

func TestHTTPTransport_Pacing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "OK")
	}))
	defer server.Close()

	host, port := splitHostPort(t, server.URL)
	transport := NewHTTPTransport(host, port)
	transport.CommandSpacing = 50 * time.Millisecond

	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := transport.Send("reboot"); err != nil {
			t.Fatalf("Send() error = %v", err)
		}
	}
	// First send is unpaced; the next two each wait out the spacing.
	if elapsed := time.Since(start); elapsed < 100*time.Millisecond {
		t.Errorf("3 sends took %v, want at least 100ms of pacing", elapsed)
	}
}
