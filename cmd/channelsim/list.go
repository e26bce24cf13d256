package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/cwbudde/algo-rfchannel/channel/pathloss"
	"github.com/cwbudde/algo-rfchannel/internal/scenario"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range scenario.Names() {
				s, err := scenario.Lookup(name)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(tw, "%s\t%s\n", s.Name, s.Description); err != nil {
					return fmt.Errorf("failed to write scenario list: %w", err)
				}
			}
			return tw.Flush()
		},
	}
}

func newModelsCmd() *cobra.Command {
	var distanceKm float64

	cmd := &cobra.Command{
		Use:   "models [model ...]",
		Short: "Print the default loss of path-loss models at a distance",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = pathloss.ModelNames()
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			if _, err := fmt.Fprintf(tw, "Model\tDistance [km]\tLoss [dB]\tAmplitude factor\n"); err != nil {
				return fmt.Errorf("failed to write output header: %w", err)
			}
			if _, err := fmt.Fprintf(tw, "-----\t-------------\t---------\t----------------\n"); err != nil {
				return fmt.Errorf("failed to write output header: %w", err)
			}

			for _, name := range names {
				m, err := pathloss.ParseModel(name)
				if err != nil {
					return err
				}
				loss, err := m.Loss(distanceKm)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(tw, "%s\t%g\t%.2f\t%.4g\n",
					m.Name(), distanceKm, loss, pathloss.AmplitudeFactor(loss)); err != nil {
					return fmt.Errorf("failed to write output row: %w", err)
				}
			}
			return tw.Flush()
		},
	}
	cmd.Flags().Float64Var(&distanceKm, "distance", 1, "link distance in km")
	return cmd
}
