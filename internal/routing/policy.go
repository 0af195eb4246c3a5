package routing

import "fmt"

// AlertPolicy controls how the --stderr flag turns into the alert input of Decide.
type AlertPolicy int

const (
	// AlertOnFlag alerts on every successful run once the flag is set,
	// whether or not anything was written to stderr.
	AlertOnFlag AlertPolicy = iota
	// AlertOnStderrOutput alerts only when the flag is set and stderr is non-empty.
	AlertOnStderrOutput
)

func (p AlertPolicy) String() string {
	switch p {
	case AlertOnFlag:
		return "flag"
	case AlertOnStderrOutput:
		return "stderr-output"
	default:
		return fmt.Sprintf("AlertPolicy(%d)", int(p))
	}
}

// Alert returns the alert input for Decide.
func (p AlertPolicy) Alert(flag bool, stderr []byte) bool {
	if !flag {
		return false
	}
	if p == AlertOnStderrOutput {
		return len(stderr) > 0
	}
	return true
}

// ParseAlertPolicy parses a policy name. An empty name selects AlertOnFlag.
func ParseAlertPolicy(name string) (AlertPolicy, error) {
	switch name {
	case "", "flag":
		return AlertOnFlag, nil
	case "stderr-output":
		return AlertOnStderrOutput, nil
	default:
		return 0, fmt.Errorf("unknown alert policy %q (want flag or stderr-output)", name)
	}
}
