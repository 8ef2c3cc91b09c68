package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kfm1/linkplayctl/internal/discovery"
	"github.com/kfm1/linkplayctl/internal/fleet"
	"github.com/kfm1/linkplayctl/internal/linkplay"
	"github.com/kfm1/linkplayctl/internal/ui"
)

// Fleet and scan flags
var (
	scanTimeout  int
	scanWaitName string
	devicesFile  string
	fleetDelay   int
	fleetQuiet   bool
	resetVolume  int
	resetPreset  string
)

func init() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(fleetCmd)
	fleetCmd.AddCommand(fleetRebootCmd)
	fleetCmd.AddCommand(fleetResetCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for speakers on the network",
	Long: `Scan for Linkplay speakers using mDNS/DNS-SD discovery and list
the devices found with their addresses.`,
	Example: `  # Scan for 10 seconds (default)
  linkplayctl scan

  # Quick 3-second scan
  linkplayctl scan --timeout 3

  # Block until a named device reappears (e.g. after a reboot)
  linkplayctl scan --wait Kitchen --timeout 120`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if scanWaitName != "" {
			fmt.Printf("Waiting for %q (timeout: %ds)...\n", scanWaitName, scanTimeout)
			scanner := discovery.NewScanner()
			scanner.Timeout = time.Duration(scanTimeout) * time.Second
			device, err := scanner.WaitForDevice(context.Background(), scanWaitName)
			if err != nil {
				return err
			}
			fmt.Println(device)
			return nil
		}

		fmt.Printf("Scanning for speakers (timeout: %ds)...\n\n", scanTimeout)

		devices, err := discovery.Scan(time.Duration(scanTimeout) * time.Second)
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}

		if len(devices) == 0 {
			fmt.Println(ui.WarningStyle.Render("No devices found."))
			fmt.Println("\nDevices that don't advertise over mDNS can still be used")
			fmt.Println("directly with --device <address>.")
			return nil
		}

		if outputFormat == "json" {
			return printJSON(devices)
		}

		fmt.Printf("Found %d device(s):\n\n", len(devices))
		for i, device := range devices {
			fmt.Printf("%d. %s\n", i+1, device.Name)
			fmt.Printf("   Address: %s:%d\n", device.IP, device.Port)
			if device.Hostname != "" {
				fmt.Printf("   Host:    %s\n", device.Hostname)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().IntVar(&scanTimeout, "timeout", 10, "Scan timeout in seconds")
	scanCmd.Flags().StringVar(&scanWaitName, "wait", "", "Wait for a device with this name instead of listing")
}

var fleetCmd = &cobra.Command{
	Use:   "fleet",
	Short: "Run an operation across a list of devices",
	Long: `Run an operation sequentially across a list of devices.

The device list is a YAML file:

  devices:
    - address: 192.168.1.55
      name: kitchen
    - address: 192.168.1.56

Devices are processed one at a time with a fixed delay in between, and a
failure on one device does not stop the run.`,
}

func init() {
	fleetCmd.PersistentFlags().StringVar(&devicesFile, "devices", "", "Device list YAML file (required)")
	fleetCmd.PersistentFlags().IntVar(&fleetDelay, "delay", 5, "Delay between devices in seconds")
	_ = fleetCmd.MarkPersistentFlagRequired("devices")
}

var fleetRebootCmd = &cobra.Command{
	Use:   "reboot",
	Short: "Reboot every device in the list",
	Example: `  # Plain reboots, fire-and-forget per device
  linkplayctl fleet reboot --devices speakers.yaml

  # Quiet verified reboots (slow: ~2 minutes per device)
  linkplayctl fleet reboot --devices speakers.yaml --quiet`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		targets, err := fleet.LoadTargets(devicesFile)
		if err != nil {
			return err
		}
		runner, err := newRunner()
		if err != nil {
			return err
		}
		report := runner.RebootAll(targets, fleetQuiet)
		return printReport(report)
	},
}

func init() {
	fleetRebootCmd.Flags().BoolVar(&fleetQuiet, "quiet", false, "Suppress startup jingles (verified quiet reboots)")
}

var fleetResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset every device in the list to a known state",
	Long: `Reset every device in the list: set the volume and equalizer preset,
then safe-reboot so the device comes back in a clean state.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		targets, err := fleet.LoadTargets(devicesFile)
		if err != nil {
			return err
		}
		runner, err := newRunner()
		if err != nil {
			return err
		}
		report := runner.ResetAll(targets, fleet.ResetOptions{
			Volume:    resetVolume,
			Equalizer: resetPreset,
		})
		return printReport(report)
	},
}

func init() {
	defaults := fleet.DefaultResetOptions()
	fleetResetCmd.Flags().IntVar(&resetVolume, "volume", defaults.Volume, "Volume to set (0-100)")
	fleetResetCmd.Flags().StringVar(&resetPreset, "equalizer", defaults.Equalizer, "Equalizer preset to set (empty to skip)")
}

// newRunner builds a fleet runner honoring the shared CLI flags. The
// firmware profile is loaded once, up front, so a bad --profile fails the
// run instead of silently falling back to the defaults per device.
func newRunner() (*fleet.Runner, error) {
	var profile *linkplay.FirmwareProfile
	if profilePath != "" {
		loaded, err := linkplay.LoadProfile(profilePath)
		if err != nil {
			return nil, err
		}
		profile = loaded
	}

	runner := fleet.NewRunner()
	runner.DeviceDelay = time.Duration(fleetDelay) * time.Second
	runner.NewController = func(address string) fleet.Controller {
		client := linkplay.New(address)
		if profile != nil {
			client.Profile = profile
		}
		return client
	}
	return runner, nil
}

// printReport renders a fleet report and returns an error when any device
// failed, so the process exits non-zero.
func printReport(report *fleet.Report) error {
	for _, outcome := range report.Outcomes {
		if outcome.Err != nil {
			fmt.Printf("%s %s: %s\n", ui.ErrorStyle.Render("✗"),
				outcome.Target.Label(), linkplay.ShortMessage(outcome.Err))
			continue
		}
		fmt.Printf("%s %s (%s)\n", ui.SuccessStyle.Render("✓"),
			outcome.Target.Label(), outcome.Elapsed.Round(time.Second))
	}

	failed := report.Failed()
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d devices failed", len(failed), len(report.Outcomes))
	}
	fmt.Printf("\nAll %d devices OK\n", len(report.Outcomes))
	return nil
}
