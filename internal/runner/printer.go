package runner

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Describe returns the summary lines written around an alerting run's output.
func Describe(result *Result) (header, footer string) {
	header = fmt.Sprintf("rcronic detected error in command `%s`", result.Command)
	if result.Success {
		header = fmt.Sprintf("rcronic detected stderr output from command `%s`", result.Command)
	}

	footer = fmt.Sprintf("command `%s` exited with status %d after %ss",
		result.Command, result.ExitCode, Seconds(result.ExecutionTime))
	return header, footer
}

// Seconds renders a millisecond duration as seconds with millisecond precision.
func Seconds(ms int64) string {
	return decimal.NewFromInt(ms).Shift(-3).StringFixed(3)
}
