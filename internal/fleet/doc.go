// Package fleet sequences linkplay operations across an explicit list of
// devices. Runs are strictly sequential with a fixed delay between
// devices and continue past per-device failures; the device list is always
// supplied by the caller (typically from a YAML file), never global state.
package fleet
