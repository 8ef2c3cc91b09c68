// Package discovery finds Linkplay speakers on the local network via
// mDNS/DNS-SD. Discovery is best-effort: devices that joined the network
// before the listener started may take a full advertisement interval to
// appear, and the CLI always accepts an explicit address instead.
package discovery
