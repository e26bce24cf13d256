// Command channelsim runs radio channel scenarios and writes the resulting
// series as CSV, JSON, PNG or HTML.
//
// Usage:
//
//	channelsim list
//	channelsim models [--distance km] [model ...]
//	channelsim run <scenario> [flags]
//
// Examples:
//
//	channelsim run sinus --param period=0.002
//	channelsim run fading --domain frequency --seed 7 --format png --out fading.png
//	channelsim run --config ofdm.yaml
//	channelsim models --distance 5 hata cost231
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-rfchannel/dsp/core"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := root.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return exitCode(err)
}

// exitCode is 2 for invalid or unsupported parameters and 1 for any other
// failure.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, core.ErrInvalidParameter), errors.Is(err, core.ErrUnsupportedVariant):
		return 2
	default:
		return 1
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "channelsim",
		Short:         "Simulate radio propagation and fading channels",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(newListCmd(), newModelsCmd(), newRunCmd())
	return root
}
