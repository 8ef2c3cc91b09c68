package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kfm1/linkplayctl/internal/linkplay"
	"github.com/kfm1/linkplayctl/internal/ui"
)

// Global command flags
var (
	deviceAddr   string
	devicePort   int
	timeoutSec   int
	outputFormat string
	profilePath  string
	verbosity    int
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&deviceAddr, "device", "d", "", "Device address (hostname or IP)")
	rootCmd.PersistentFlags().IntVar(&devicePort, "port", linkplay.DefaultPort, "Device HTTP port")
	rootCmd.PersistentFlags().IntVar(&timeoutSec, "timeout", 10, "Request timeout in seconds")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "text", "Output format (text, json)")
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "Firmware profile YAML file (defaults to built-in A31 maps)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase logging verbosity (-v info, -vv debug)")

	rootCmd.AddCommand(rebootCmd)
	rootCmd.AddCommand(shutdownCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(volumeCmd)
	volumeCmd.AddCommand(volumeUpCmd)
	volumeCmd.AddCommand(volumeDownCmd)
	rootCmd.AddCommand(muteCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(previousCmd)
	rootCmd.AddCommand(seekCmd)
	rootCmd.AddCommand(backCmd)
	rootCmd.AddCommand(forwardCmd)
	rootCmd.AddCommand(mediaCmd)
	rootCmd.AddCommand(shuffleCmd)
	rootCmd.AddCommand(repeatCmd)
	rootCmd.AddCommand(equalizerCmd)
	rootCmd.AddCommand(presetCmd)
	rootCmd.AddCommand(sourceCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(wifiCmd)
	rootCmd.AddCommand(firmwareCmd)
	rootCmd.AddCommand(multiroomCmd)
	rootCmd.AddCommand(rawCmd)
}

// newClient builds the client for the --device flag, applying the port,
// timeout, and firmware profile flags.
func newClient() (*linkplay.Client, error) {
	if deviceAddr == "" {
		return nil, fmt.Errorf("no device specified; use --device <address> (or scan to find one)")
	}

	transport := linkplay.NewHTTPTransport(deviceAddr, devicePort)
	transport.HTTPClient.Timeout = time.Duration(timeoutSec) * time.Second

	client := linkplay.NewWithTransport(deviceAddr, transport)
	if profilePath != "" {
		profile, err := linkplay.LoadProfile(profilePath)
		if err != nil {
			return nil, err
		}
		client.Profile = profile
	}
	return client, nil
}

func printOK() {
	fmt.Println(ui.OK())
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// Power commands

var (
	rebootQuiet   bool
	rebootSafe    bool
	rebootRetries int
)

var rebootCmd = &cobra.Command{
	Use:   "reboot",
	Short: "Reboot the device",
	Long: `Reboot the device.

By default the call returns as soon as the device acknowledges; the
device is unreachable for a minute or so afterwards. --safe waits and
verifies the device comes back, retrying if necessary. --quiet also
suppresses the startup jingle by dropping the volume to minimum for the
reboot and restoring it afterwards.`,
	Example: `  # Fire-and-forget reboot
  linkplayctl -d 192.168.1.55 reboot

  # Verified reboot, up to 3 retries
  linkplayctl -d 192.168.1.55 reboot --safe

  # Reboot without the startup jingle (takes ~2 minutes)
  linkplayctl -d 192.168.1.55 reboot --quiet`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		switch {
		case rebootQuiet:
			err = client.QuietReboot()
		case rebootSafe:
			err = client.SafeReboot(rebootRetries)
		default:
			err = client.Reboot()
		}
		if err != nil {
			return err
		}
		printOK()
		return nil
	},
}

func init() {
	rebootCmd.Flags().BoolVar(&rebootQuiet, "quiet", false, "Suppress the startup jingle (implies --safe)")
	rebootCmd.Flags().BoolVar(&rebootSafe, "safe", false, "Verify the device comes back up, retrying if needed")
	rebootCmd.Flags().IntVar(&rebootRetries, "retries", linkplay.DefaultSafeRebootRetries, "Retries for --safe (-1 for unlimited)")
}

var shutdownCmd = &cobra.Command{
	Use:   "shutdown",
	Short: "Shut the device down",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		response, err := client.Shutdown()
		if err != nil {
			return err
		}
		fmt.Println(response)
		return nil
	},
}

// Information commands

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show combined device and player information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		info, err := client.Info()
		if err != nil {
			return err
		}
		if outputFormat == "json" {
			return printJSON(info)
		}
		fmt.Println(ui.KeyValues(map[string]string{
			"Name":     info.Device.DeviceName,
			"Model":    info.Device.Project,
			"Firmware": info.Device.Firmware,
			"Hardware": info.Device.Hardware,
			"UUID":     info.Device.UUID,
			"MAC":      info.Device.MAC,
			"SSID":     info.Device.SSID,
			"Group":    info.Device.GroupName,
			"State":    info.Player.Status,
			"Volume":   info.Player.Volume,
			"Title":    info.Player.Title(),
			"Artist":   info.Player.Artist(),
		}))
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show player status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		status, err := client.PlayerInfo()
		if err != nil {
			return err
		}
		if outputFormat == "json" {
			return printJSON(status)
		}
		fmt.Println(ui.KeyValues(map[string]string{
			"State":    status.Status,
			"Volume":   status.Volume,
			"Muted":    status.Mute,
			"Title":    status.Title(),
			"Artist":   status.Artist(),
			"Album":    status.Album(),
			"Position": status.Position + " / " + status.Length + " ms",
		}))
		return nil
	},
}

var nameCmd = &cobra.Command{
	Use:   "name [new-name]",
	Short: "Get or set the device name",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			name, err := client.Name()
			if err != nil {
				return err
			}
			fmt.Println(name)
			return nil
		}
		if err := client.SetName(args[0]); err != nil {
			return err
		}
		printOK()
		return nil
	},
}

// Volume commands

var volumeCmd = &cobra.Command{
	Use:   "volume [level|up|down]",
	Short: "Get, set, or adjust the volume",
	Example: `  # Read the current volume
  linkplayctl -d 192.168.1.55 volume

  # Set an absolute level (0-100)
  linkplayctl -d 192.168.1.55 volume 40

  # Step up or down (default step 5)
  linkplayctl -d 192.168.1.55 volume up
  linkplayctl -d 192.168.1.55 volume down 10`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			volume, err := client.Volume()
			if err != nil {
				return err
			}
			fmt.Println(volume)
			return nil
		}

		// "+N" still works as a relative form; "-N" needs the up/down
		// subcommands because flag parsing eats a leading dash.
		arg := args[0]
		if strings.HasPrefix(arg, "+") || strings.HasPrefix(arg, "-") {
			delta, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid volume adjustment %q", arg)
			}
			if err := client.AdjustVolume(delta); err != nil {
				return err
			}
			printOK()
			return nil
		}

		level, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid volume %q", arg)
		}
		if err := client.SetVolume(level); err != nil {
			return err
		}
		printOK()
		return nil
	},
}

var volumeUpCmd = stepCmd("up", "Raise the volume",
	func(c *linkplay.Client, step int) error { return c.VolumeUp(step) })
var volumeDownCmd = stepCmd("down", "Lower the volume",
	func(c *linkplay.Client, step int) error { return c.VolumeDown(step) })

// stepCmd builds a volume step command taking an optional step size
// (default 5).
func stepCmd(use, short string, op func(*linkplay.Client, int) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [step]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			step := 0
			if len(args) == 1 {
				var err error
				step, err = strconv.Atoi(args[0])
				if err != nil || step < 1 {
					return fmt.Errorf("invalid volume step %q", args[0])
				}
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			if err := op(client, step); err != nil {
				return err
			}
			printOK()
			return nil
		},
	}
}

var muteCmd = &cobra.Command{
	Use:       "mute [on|off|toggle]",
	Short:     "Get or set muting",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"on", "off", "toggle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			muted, err := client.Mute()
			if err != nil {
				return err
			}
			fmt.Println(muted)
			return nil
		}
		switch args[0] {
		case "on":
			err = client.MuteOn()
		case "off":
			err = client.MuteOff()
		case "toggle":
			_, err = client.MuteToggle()
		default:
			return fmt.Errorf("mute argument must be on, off, or toggle")
		}
		if err != nil {
			return err
		}
		printOK()
		return nil
	},
}

// Playback transport commands

var playCmd = &cobra.Command{
	Use:   "play [uri]",
	Short: "Start playback of a URI, or of the current media",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		uri := ""
		if len(args) == 1 {
			uri = args[0]
		}
		if err := client.Play(uri); err != nil {
			return err
		}
		printOK()
		return nil
	},
}

var pauseCmd = simpleCmd("pause", "Pause playback", func(c *linkplay.Client) error { return c.Pause() })
var resumeCmd = simpleCmd("resume", "Resume paused playback", func(c *linkplay.Client) error { return c.Resume() })
var stopCmd = simpleCmd("stop", "Stop playback", func(c *linkplay.Client) error { return c.Stop() })
var nextCmd = simpleCmd("next", "Skip to the next track", func(c *linkplay.Client) error { return c.Next() })
var previousCmd = simpleCmd("previous", "Skip to the previous track", func(c *linkplay.Client) error { return c.Previous() })

// simpleCmd builds a no-argument command that acks or errors.
func simpleCmd(use, short string, op func(*linkplay.Client) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			if err := op(client); err != nil {
				return err
			}
			printOK()
			return nil
		},
	}
}

var seekCmd = &cobra.Command{
	Use:   "seek <seconds>",
	Short: "Seek to a second mark in the current media",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid seek offset %q", args[0])
		}
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.Seek(seconds); err != nil {
			return err
		}
		printOK()
		return nil
	},
}

var backCmd = offsetCmd("back", "Rewind playback by the given seconds (default 10)",
	func(c *linkplay.Client, s int) error { return c.Back(s) })
var forwardCmd = offsetCmd("forward", "Fast-forward playback by the given seconds (default 10)",
	func(c *linkplay.Client, s int) error { return c.Forward(s) })

// offsetCmd builds a command taking an optional second offset.
func offsetCmd(use, short string, op func(*linkplay.Client, int) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [seconds]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seconds := 0
			if len(args) == 1 {
				var err error
				seconds, err = strconv.Atoi(args[0])
				if err != nil || seconds < 0 {
					return fmt.Errorf("invalid second offset %q", args[0])
				}
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			if err := op(client, seconds); err != nil {
				return err
			}
			printOK()
			return nil
		},
	}
}

var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Show current media title, artist, and album",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		status, err := client.PlayerInfo()
		if err != nil {
			return err
		}
		fmt.Println(ui.KeyValues(map[string]string{
			"Title":  status.Title(),
			"Artist": status.Artist(),
			"Album":  status.Album(),
		}))
		return nil
	},
}

// Shuffle and repeat

var shuffleCmd = &cobra.Command{
	Use:       "shuffle [on|off]",
	Short:     "Get or set shuffle",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			on, err := client.Shuffle()
			if err != nil {
				return err
			}
			if on {
				fmt.Println("on")
			} else {
				fmt.Println("off")
			}
			return nil
		}
		if err := client.SetShuffle(args[0] == "on"); err != nil {
			return err
		}
		printOK()
		return nil
	},
}

var repeatCmd = &cobra.Command{
	Use:       "repeat [off|one|all]",
	Short:     "Get or set repeat",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"off", "one", "all"},
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			mode, err := client.Repeat()
			if err != nil {
				return err
			}
			fmt.Println(mode)
			return nil
		}
		if err := client.SetRepeat(args[0]); err != nil {
			return err
		}
		printOK()
		return nil
	},
}

// Equalizer and presets

var equalizerCmd = &cobra.Command{
	Use:   "equalizer [preset|list]",
	Short: "Get or set the equalizer preset",
	Example: `  # Show the current preset
  linkplayctl -d 192.168.1.55 equalizer

  # Set a preset
  linkplayctl -d 192.168.1.55 equalizer jazz

  # List presets the firmware profile supports
  linkplayctl -d 192.168.1.55 equalizer list`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			preset, err := client.Equalizer()
			if err != nil {
				return err
			}
			fmt.Println(preset)
			return nil
		}
		if args[0] == "list" {
			for _, name := range client.EqualizerModes() {
				fmt.Println(name)
			}
			return nil
		}
		if err := client.SetEqualizer(args[0]); err != nil {
			return err
		}
		printOK()
		return nil
	},
}

var presetCmd = &cobra.Command{
	Use:   "preset <number>",
	Short: "Load a numbered hardware preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		number, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid preset number %q", args[0])
		}
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.Preset(number); err != nil {
			return err
		}
		printOK()
		return nil
	},
}

// Source control

var sourceCmd = &cobra.Command{
	Use:   "source [bluetooth|aux|local <index>|playlist <uri>]",
	Short: "Get or switch the playback source",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			source, err := client.Source()
			if err != nil {
				return err
			}
			fmt.Println(source)
			return nil
		}
		switch args[0] {
		case "bluetooth":
			err = client.Bluetooth()
		case "aux", "line-in":
			err = client.Aux()
		case "local":
			index := 1
			if len(args) == 2 {
				index, err = strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid track index %q", args[1])
				}
			}
			err = client.Local(index)
		case "playlist":
			if len(args) != 2 {
				return fmt.Errorf("playlist requires a uri argument")
			}
			err = client.Playlist(args[1])
		default:
			return fmt.Errorf("unknown source %q", args[0])
		}
		if err != nil {
			return err
		}
		printOK()
		return nil
	},
}

// Voice prompts

var promptCmd = &cobra.Command{
	Use:       "prompt <on|off|language>",
	Short:     "Control voice prompts and jingles",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off", "language"},
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		switch args[0] {
		case "on":
			err = client.PromptOn()
		case "off":
			err = client.PromptOff()
		case "language":
			language, err := client.PromptLanguage()
			if err != nil {
				return err
			}
			fmt.Println(language)
			return nil
		default:
			return fmt.Errorf("prompt argument must be on, off, or language")
		}
		if err != nil {
			return err
		}
		printOK()
		return nil
	},
}

// WiFi

var wifiCmd = &cobra.Command{
	Use:   "wifi <status|ssid|channel|mac|networks|off>",
	Short: "WiFi status and control",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		switch args[0] {
		case "status":
			state, err := client.WiFiStatus()
			if err != nil {
				return err
			}
			fmt.Println(state)
		case "ssid":
			ssid, err := client.WiFiSSID()
			if err != nil {
				return err
			}
			fmt.Println(ssid)
		case "channel":
			channel, err := client.WiFiChannel()
			if err != nil {
				return err
			}
			fmt.Println(channel)
		case "mac":
			mac, err := client.WiFiMAC()
			if err != nil {
				return err
			}
			fmt.Println(mac)
		case "networks":
			list, err := client.WiFiNetworks()
			if err != nil {
				return err
			}
			if outputFormat == "json" {
				return printJSON(list)
			}
			for _, network := range list.Networks {
				fmt.Printf("%-32s ch %-3s rssi %-4s %s/%s\n",
					network.SSID, network.Channel, network.RSSI, network.Auth, network.Encry)
			}
		case "off":
			response, err := client.WiFiOff()
			if err != nil {
				return err
			}
			fmt.Println(response)
		default:
			return fmt.Errorf("unknown wifi subcommand %q", args[0])
		}
		return nil
	},
}

// Firmware

var firmwareCmd = &cobra.Command{
	Use:   "firmware <version|check|status>",
	Short: "Firmware version and update queries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		switch args[0] {
		case "version":
			fw, err := client.FirmwareVersion()
			if err != nil {
				return err
			}
			fmt.Println(fw)
		case "check":
			response, err := client.FirmwareUpdateSearch()
			if err != nil {
				return err
			}
			fmt.Println(response)
		case "status":
			status, err := client.FirmwareUpdateStatus()
			if err != nil {
				return err
			}
			return printJSON(status)
		default:
			return fmt.Errorf("unknown firmware subcommand %q", args[0])
		}
		return nil
	},
}

// Multiroom

var multiroomCmd = &cobra.Command{
	Use:   "multiroom <info|add <addr>|remove <addr>|hide <addr>|show <addr>|off>",
	Short: "Multiroom group management",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		needsAddr := func() (string, error) {
			if len(args) != 2 {
				return "", fmt.Errorf("multiroom %s requires a device address", args[0])
			}
			return args[1], nil
		}
		switch args[0] {
		case "info":
			info, err := client.Multiroom()
			if err != nil {
				return err
			}
			return printJSON(info)
		case "add":
			addr, err := needsAddr()
			if err != nil {
				return err
			}
			if err := client.MultiroomAdd(addr); err != nil {
				return err
			}
		case "remove":
			addr, err := needsAddr()
			if err != nil {
				return err
			}
			if err := client.MultiroomRemove(addr); err != nil {
				return err
			}
		case "hide":
			addr, err := needsAddr()
			if err != nil {
				return err
			}
			if err := client.MultiroomHide(addr); err != nil {
				return err
			}
		case "show":
			addr, err := needsAddr()
			if err != nil {
				return err
			}
			if err := client.MultiroomShow(addr); err != nil {
				return err
			}
		case "off":
			if err := client.MultiroomOff(); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown multiroom subcommand %q", args[0])
		}
		printOK()
		return nil
	},
}

// Raw escape hatch

var rawCmd = &cobra.Command{
	Use:   "raw <command-text>",
	Short: "Send raw command text to the device",
	Long: `Send arbitrary command text to the device's control endpoint and
print the raw response. For firmware commands not covered by the catalog.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		response, err := client.Command(args[0])
		if err != nil {
			return err
		}
		fmt.Println(response)
		return nil
	},
}
