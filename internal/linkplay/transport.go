package linkplay

import (
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kfm1/linkplayctl/internal/logging"
)

const (
	// ControlPath is the fixed control endpoint exposed by the firmware.
	ControlPath = "/httpapi.asp"

	// DefaultPort is the device management port.
	DefaultPort = 80

	// DefaultTimeout is the HTTP request timeout. Devices live on the local
	// network, so a conservative fixed timeout is enough.
	DefaultTimeout = 10 * time.Second

	// DefaultCommandSpacing is the minimum gap enforced between consecutive
	// requests to one device. The firmware's HTTP server wedges when
	// commands arrive back to back.
	DefaultCommandSpacing = 2 * time.Second
)

// Transport issues one wire command to one device and returns the raw
// response body. Implementations perform a single attempt; retry policy
// belongs to the caller.
type Transport interface {
	Send(command string) (string, error)
}

// HTTPTransport sends commands as HTTP GET requests to the device's control
// endpoint. Safe for concurrent use.
type HTTPTransport struct {
	// Address is the device host or IP, without port.
	Address string

	// Port is the device HTTP port (typically 80).
	Port int

	// HTTPClient is the underlying HTTP client. Its Timeout bounds each
	// request; there is no per-call context plumbing.
	HTTPClient *http.Client

	// CommandSpacing is the minimum delay between consecutive Send calls.
	// Zero disables pacing.
	CommandSpacing time.Duration

	mu       sync.Mutex
	lastSend time.Time
}

// NewHTTPTransport creates a transport for the device at address:port.
func NewHTTPTransport(address string, port int) *HTTPTransport {
	if port == 0 {
		port = DefaultPort
	}
	return &HTTPTransport{
		Address:        address,
		Port:           port,
		HTTPClient:     &http.Client{Timeout: DefaultTimeout},
		CommandSpacing: DefaultCommandSpacing,
	}
}

// URL returns the full request URL for a wire command. The command text is
// embedded as-is: the firmware parses everything after "command=" itself,
// including colons and URIs, and rejects percent-encoded forms.
func (t *HTTPTransport) URL(command string) string {
	return fmt.Sprintf("http://%s:%d%s?command=%s", t.Address, t.Port, ControlPath, command)
}

// Send issues a single GET for the given wire command and returns the raw
// response body. Non-2xx statuses are reported as network errors; the body
// is never inspected here.
func (t *HTTPTransport) Send(command string) (string, error) {
	t.pace()
	defer t.stamp()

	reqURL := t.URL(command)
	logging.Debug("Sending device command",
		zap.String("address", t.Address),
		zap.String("command", command),
	)

	start := time.Now()
	resp, err := t.HTTPClient.Get(reqURL)
	if err != nil {
		return "", newNetworkError("request failed", err, t.Address)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", newNetworkError("failed to read response body", err, t.Address)
	}

	logging.Debug("Device response received",
		zap.String("address", t.Address),
		zap.Int("status_code", resp.StatusCode),
		zap.Int("length", len(body)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", newStatusError(resp.StatusCode, t.Address)
	}

	return string(body), nil
}

// pace sleeps until CommandSpacing has elapsed since the previous Send.
func (t *HTTPTransport) pace() {
	if t.CommandSpacing <= 0 {
		return
	}
	t.mu.Lock()
	wait := t.CommandSpacing - time.Since(t.lastSend)
	t.mu.Unlock()
	if wait > 0 {
		logging.Debug("Pacing before next device command", zap.Duration("wait", wait))
		time.Sleep(wait)
	}
}

func (t *HTTPTransport) stamp() {
	t.mu.Lock()
	t.lastSend = time.Now()
	t.mu.Unlock()
}
