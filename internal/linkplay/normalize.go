package linkplay

import (
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
)

// Response tokens used by the firmware. "OK" acknowledges a command;
// "Failed" and "unknown command" are recognized rejections. Anything else
// on an ack-shaped command is a protocol error.
const (
	tokenOK      = "OK"
	tokenFailed  = "Failed"
	tokenUnknown = "unknown command"
)

// normalizeAck interprets a bare success-token response.
func normalizeAck(cmd Command, raw string) error {
	body := strings.TrimSpace(raw)
	switch {
	case body == tokenOK:
		return nil
	case body == tokenFailed || strings.HasPrefix(body, tokenUnknown):
		return newDeviceError(cmd.ID, "device rejected "+cmd.ID+": "+body)
	case body == "":
		return newProtocolError(cmd.ID, "empty response where ack expected")
	default:
		return newProtocolError(cmd.ID, "unrecognized response %q where ack expected", truncate(body))
	}
}

// normalizeInt interprets a bare-numeric response.
func normalizeInt(cmd Command, raw string) (int, error) {
	body := strings.TrimSpace(raw)
	if body == tokenFailed || strings.HasPrefix(body, tokenUnknown) {
		return 0, newDeviceError(cmd.ID, "device rejected "+cmd.ID+": "+body)
	}
	n, err := strconv.Atoi(body)
	if err != nil {
		return 0, newProtocolError(cmd.ID, "expected numeric response, got %q", truncate(body))
	}
	return n, nil
}

// normalizeJSON decodes a JSON-object response into v. The firmware
// occasionally appends trailing bytes after the closing brace, so the
// object is cut out of the body before decoding.
func normalizeJSON(cmd Command, raw string, v interface{}) error {
	body := strings.TrimSpace(raw)
	if body == tokenFailed || strings.HasPrefix(body, tokenUnknown) {
		return newDeviceError(cmd.ID, "device rejected "+cmd.ID+": "+body)
	}
	obj, ok := extractJSONObject(body)
	if !ok {
		return newProtocolError(cmd.ID, "expected JSON object, got %q", truncate(body))
	}
	if err := json.Unmarshal([]byte(obj), v); err != nil {
		return newProtocolError(cmd.ID, "malformed JSON response: %v", err)
	}
	return nil
}

// normalizeToken interprets a bare-token response through a closed lookup
// from wire tokens to logical names.
func normalizeToken(cmd Command, raw string, lookup func(string) (string, bool)) (string, error) {
	body := strings.TrimSpace(raw)
	if body == "" {
		return "", newProtocolError(cmd.ID, "empty response where token expected")
	}
	name, ok := lookup(body)
	if !ok {
		return "", newProtocolError(cmd.ID, "unrecognized token %q", truncate(body))
	}
	return name, nil
}

// extractJSONObject returns the first balanced {...} object in body. The
// scan is brace-depth only; the device never nests braces inside strings.
func extractJSONObject(body string) (string, bool) {
	start := strings.IndexByte(body, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	for i := start; i < len(body); i++ {
		switch body[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return body[start : i+1], true
			}
		}
	}
	return "", false
}

// decodeHexText decodes a hex-encoded string, returning the input unchanged
// when it is not valid hex. The firmware hex-encodes media tags (title,
// artist, album) but leaves other fields plain.
func decodeHexText(s string) string {
	if s == "" || len(s)%2 != 0 {
		return s
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return s
	}
	return string(decoded)
}

// encodeHexText hex-encodes a string the way the firmware expects for
// ConnectMasterAp arguments.
func encodeHexText(s string) string {
	return hex.EncodeToString([]byte(s))
}

// truncate bounds a response body for inclusion in error messages.
func truncate(s string) string {
	const max = 64
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
