package fleet

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/kfm1/linkplayctl/internal/linkplay"
	"github.com/kfm1/linkplayctl/internal/logging"
)

// DefaultDeviceDelay is the pause between devices in a sequential run.
// Rebooting a whole room at once drops every stream simultaneously, so
// runs are deliberately staggered.
const DefaultDeviceDelay = 5 * time.Second

// Target identifies one device in a fleet run.
type Target struct {
	// Address is the device host or IP.
	Address string `yaml:"address"`

	// Name is an optional label used in reports.
	Name string `yaml:"name,omitempty"`
}

// Label returns the target's display name.
func (t Target) Label() string {
	if t.Name != "" {
		return fmt.Sprintf("%s (%s)", t.Name, t.Address)
	}
	return t.Address
}

// targetFile is the wire form of a device-list YAML file.
type targetFile struct {
	Devices []Target `yaml:"devices"`
}

// LoadTargets reads a device list from a YAML file of the form:
//
//	devices:
//	  - address: 192.168.1.55
//	    name: kitchen
//	  - address: 192.168.1.56
func LoadTargets(path string) ([]Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read device list: %w", err)
	}

	var file targetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse device list %s: %w", path, err)
	}
	if len(file.Devices) == 0 {
		return nil, fmt.Errorf("device list %s contains no devices", path)
	}
	for i, t := range file.Devices {
		if t.Address == "" {
			return nil, fmt.Errorf("device list %s: entry %d has no address", path, i+1)
		}
	}
	return file.Devices, nil
}

// Controller is the slice of the linkplay client a fleet run drives.
type Controller interface {
	Reboot() error
	QuietReboot() error
	SafeReboot(maxRetries int) error
	SetVolume(v int) error
	SetEqualizer(name string) error
}

// Outcome records the result for one target.
type Outcome struct {
	Target  Target
	Err     error
	Elapsed time.Duration
}

// Report collects per-target outcomes of a fleet run.
type Report struct {
	Outcomes []Outcome
}

// Failed returns the outcomes that ended in error.
func (r *Report) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

// OK reports whether every target succeeded.
func (r *Report) OK() bool {
	return len(r.Failed()) == 0
}

// Runner executes an operation sequentially across an explicit target
// list. One device at a time, fixed delay in between, continue on error;
// there is no parallel dispatch and no shared state between targets.
type Runner struct {
	// DeviceDelay is the pause between consecutive devices.
	DeviceDelay time.Duration

	// NewController builds the client for one target. Tests substitute
	// fakes here.
	NewController func(address string) Controller
}

// NewRunner creates a runner using real linkplay clients.
func NewRunner() *Runner {
	return &Runner{
		DeviceDelay: DefaultDeviceDelay,
		NewController: func(address string) Controller {
			return linkplay.New(address)
		},
	}
}

// Run applies op to every target in order and returns the per-target
// report. Errors are recorded, not fatal: the remaining targets still run.
func (r *Runner) Run(targets []Target, opName string, op func(Controller) error) *Report {
	report := &Report{}
	for i, target := range targets {
		if i > 0 && r.DeviceDelay > 0 {
			time.Sleep(r.DeviceDelay)
		}
		logging.Info("Running fleet operation",
			zap.String("operation", opName),
			zap.String("target", target.Label()),
		)
		start := time.Now()
		err := op(r.NewController(target.Address))
		if err != nil {
			logging.Warn("Fleet operation failed on target",
				zap.String("operation", opName),
				zap.String("target", target.Label()),
				zap.Error(err),
			)
		}
		report.Outcomes = append(report.Outcomes, Outcome{
			Target:  target,
			Err:     err,
			Elapsed: time.Since(start),
		})
	}
	return report
}

// RebootAll reboots every target. When quiet is set the startup jingle is
// suppressed via the quiet-reboot sequence, which verifies each device
// comes back before moving on.
func (r *Runner) RebootAll(targets []Target, quiet bool) *Report {
	if quiet {
		return r.Run(targets, "quiet-reboot", func(c Controller) error {
			return c.QuietReboot()
		})
	}
	return r.Run(targets, "reboot", func(c Controller) error {
		return c.Reboot()
	})
}

// ResetOptions are the settings ResetAll applies to each device.
type ResetOptions struct {
	// Volume is the level to set, 0-100.
	Volume int

	// Equalizer is the preset name to set, empty to leave unchanged.
	Equalizer string
}

// DefaultResetOptions returns the standard evening reset: moderate volume,
// equalizer off.
func DefaultResetOptions() ResetOptions {
	return ResetOptions{Volume: 30, Equalizer: "off"}
}

// ResetAll restores every target to a known state: volume and equalizer
// are set, then the device is safe-rebooted so the settings survive the
// firmware's occasional post-uptime wedge.
func (r *Runner) ResetAll(targets []Target, opts ResetOptions) *Report {
	return r.Run(targets, "reset", func(c Controller) error {
		if err := c.SetVolume(opts.Volume); err != nil {
			return err
		}
		if opts.Equalizer != "" {
			if err := c.SetEqualizer(opts.Equalizer); err != nil {
				return err
			}
		}
		return c.SafeReboot(linkplay.DefaultSafeRebootRetries)
	})
}
