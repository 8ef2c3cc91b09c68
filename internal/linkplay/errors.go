package linkplay

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
)

// Kind is the category of a client error.
type Kind int

const (
	// KindInvalidArgument indicates a caller-supplied parameter failed local
	// validation. These errors are raised before any network traffic.
	KindInvalidArgument Kind = iota
	// KindNetwork indicates a network-level failure: connection refused,
	// timeout, DNS failure, or a non-2xx HTTP status from the device.
	KindNetwork
	// KindDevice indicates the device answered in a recognized shape that
	// reports rejection or failure of the command.
	KindDevice
	// KindProtocol indicates the device response did not match any shape
	// known for the issued command (firmware mismatch, truncated body, etc.).
	KindProtocol
)

// String returns a human-readable name for the error kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "Invalid Argument"
	case KindNetwork:
		return "Network Error"
	case KindDevice:
		return "Device Error"
	case KindProtocol:
		return "Protocol Error"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// NetworkSubtype provides more specific network error classification.
type NetworkSubtype int

const (
	NetworkGeneral NetworkSubtype = iota
	NetworkTimeout
	NetworkConnectionRefused
	NetworkDNS
	NetworkHostUnreachable
	NetworkHTTPStatus
)

// Error is the error type returned by all client operations.
type Error struct {
	Kind       Kind           // Category of error
	Message    string         // Human-readable error message
	Command    string         // Wire command that was being issued, if any
	StatusCode int            // HTTP status code (network errors only, if applicable)
	Subtype    NetworkSubtype // More specific network error type
	Address    string         // Device address, for context
	Err        error          // Underlying error, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error chain inspection.
func (e *Error) Unwrap() error {
	return e.Err
}

// classifyNetworkError analyzes a transport error and returns an *Error with
// the most specific network subtype it can determine.
func classifyNetworkError(err error, address string) *Error {
	if err == nil {
		return nil
	}

	if os.IsTimeout(err) {
		return &Error{
			Kind:    KindNetwork,
			Message: "request timed out",
			Subtype: NetworkTimeout,
			Address: address,
			Err:     err,
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &Error{
			Kind:    KindNetwork,
			Message: fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Subtype: NetworkDNS,
			Address: address,
			Err:     err,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		switch {
		case errors.Is(opErr.Err, syscall.ECONNREFUSED):
			return &Error{
				Kind:    KindNetwork,
				Message: "device refused connection",
				Subtype: NetworkConnectionRefused,
				Address: address,
				Err:     err,
			}
		case errors.Is(opErr.Err, syscall.EHOSTUNREACH), errors.Is(opErr.Err, syscall.ENETUNREACH):
			return &Error{
				Kind:    KindNetwork,
				Message: "device unreachable",
				Subtype: NetworkHostUnreachable,
				Address: address,
				Err:     err,
			}
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		classified := classifyNetworkError(urlErr.Err, address)
		if classified != nil {
			return classified
		}
	}

	return &Error{
		Kind:    KindNetwork,
		Message: "network error",
		Subtype: NetworkGeneral,
		Address: address,
		Err:     err,
	}
}

// newNetworkError creates a network-level error with automatic classification.
func newNetworkError(message string, err error, address string) *Error {
	classified := classifyNetworkError(err, address)
	if classified != nil {
		classified.Message = message
		return classified
	}
	return &Error{Kind: KindNetwork, Message: message, Address: address, Err: err}
}

// newStatusError creates a network error for a non-2xx HTTP status.
func newStatusError(statusCode int, address string) *Error {
	return &Error{
		Kind:       KindNetwork,
		Message:    fmt.Sprintf("device returned HTTP status %d", statusCode),
		StatusCode: statusCode,
		Subtype:    NetworkHTTPStatus,
		Address:    address,
	}
}

// newInvalidArgument creates a local validation error.
func newInvalidArgument(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// newDeviceError creates an error for a recognized negative device response.
func newDeviceError(command, message string) *Error {
	return &Error{Kind: KindDevice, Command: command, Message: message}
}

// newProtocolError creates an error for an unrecognizable device response.
func newProtocolError(command, format string, args ...interface{}) *Error {
	return &Error{Kind: KindProtocol, Command: command, Message: fmt.Sprintf(format, args...)}
}

// IsInvalidArgument reports whether err is a local validation failure.
func IsInvalidArgument(err error) bool { return hasKind(err, KindInvalidArgument) }

// IsNetworkError reports whether err is a network-level failure.
func IsNetworkError(err error) bool { return hasKind(err, KindNetwork) }

// IsDeviceError reports whether err is a recognized negative device response.
func IsDeviceError(err error) bool { return hasKind(err, KindDevice) }

// IsProtocolError reports whether err is an unrecognizable device response.
func IsProtocolError(err error) bool { return hasKind(err, KindProtocol) }

// IsTimeout reports whether err is a network timeout.
func IsTimeout(err error) bool {
	var cerr *Error
	return errors.As(err, &cerr) && cerr.Kind == KindNetwork && cerr.Subtype == NetworkTimeout
}

func hasKind(err error, kind Kind) bool {
	var cerr *Error
	return errors.As(err, &cerr) && cerr.Kind == kind
}

// ShortMessage returns a concise, user-facing message for an error.
func ShortMessage(err error) string {
	var cerr *Error
	if !errors.As(err, &cerr) {
		return err.Error()
	}

	switch cerr.Kind {
	case KindInvalidArgument:
		return cerr.Message
	case KindNetwork:
		switch cerr.Subtype {
		case NetworkTimeout:
			return "device not responding (timeout)"
		case NetworkConnectionRefused:
			return "device refused connection - is it powered on?"
		case NetworkDNS:
			return "cannot resolve device address"
		case NetworkHostUnreachable:
			return "device unreachable - check network connection"
		case NetworkHTTPStatus:
			return fmt.Sprintf("device returned HTTP %d", cerr.StatusCode)
		default:
			return "network error - check connection"
		}
	case KindDevice:
		return "device rejected command: " + cerr.Message
	case KindProtocol:
		return "unexpected device response - firmware mismatch?"
	default:
		return cerr.Message
	}
}
