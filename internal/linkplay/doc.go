// Package linkplay provides an HTTP client for Linkplay/A31-family
// wireless speakers.
//
// The firmware exposes roughly seventy operations through a single control
// endpoint, http://<device>/httpapi.asp?command=<cmd>. This package maps
// logical operations onto that wire contract through three layers:
//
//   - Transport: one HTTP GET per command with a fixed timeout and a single
//     attempt. Retry policy belongs to callers (see SafeReboot and the
//     fleet package).
//   - Command catalog: a table mapping each logical operation to its wire
//     template and expected response shape.
//   - Normalizer: converts raw bodies (ack tokens, bare numbers, JSON
//     blobs, hex-encoded text) into typed results, and refuses to guess
//     when a body matches no known shape.
//
// # Usage Example
//
//	client := linkplay.New("192.168.1.55")
//
//	if err := client.SetVolume(40); err != nil {
//	    log.Fatal(err)
//	}
//
//	title, err := client.Title()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Every operation returns a *Error with one of four kinds:
//
//   - InvalidArgument: caller input failed local validation; no network
//     traffic was issued.
//   - Network: connection failure, timeout, or non-2xx HTTP status.
//   - Device: the device answered in a recognized shape that reports
//     command rejection ("Failed", "unknown command").
//   - Protocol: the response matched no shape known for the command,
//     indicating a firmware mismatch.
//
// Use the Is* predicates (IsNetworkError, IsInvalidArgument, ...) to
// branch on kind.
//
// # Firmware Profiles
//
// Equalizer presets, source modes, loop modes, and wifi state tokens vary
// by firmware build and are only informally documented. They live in a
// FirmwareProfile rather than in code; LoadProfile reads an alternate
// profile from YAML for firmware the defaults don't match.
//
// # Concurrency
//
// A Client holds only its endpoint, transport, and profile. Calls are
// blocking and independent; the HTTP transport serializes requests to
// respect the firmware's minimum command spacing.
package linkplay
