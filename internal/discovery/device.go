package discovery

import (
	"fmt"
	"time"
)

// Device represents a speaker discovered on the local network.
type Device struct {
	// Name is the advertised instance name (usually the AirPlay name).
	Name string

	// Hostname is the mDNS hostname.
	Hostname string

	// IP is the IPv4 address (IPv6 only when no IPv4 record exists).
	IP string

	// Port is the device HTTP management port (typically 80).
	Port int

	// Metadata contains additional mDNS TXT record data.
	Metadata map[string]string

	// DiscoveredAt is when the device was discovered.
	DiscoveredAt time.Time
}

// String returns a human-readable description of the device.
func (d *Device) String() string {
	return fmt.Sprintf("Linkplay device %q at %s:%d", d.Name, d.IP, d.Port)
}

// Address returns the address to hand to the linkplay client.
func (d *Device) Address() string {
	return d.IP
}

// GetMetadata retrieves a TXT record value, or an empty string when absent.
func (d *Device) GetMetadata(key string) string {
	if d.Metadata == nil {
		return ""
	}
	return d.Metadata[key]
}
