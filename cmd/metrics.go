package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nsrg-lab/attackgen/metrics"
)

func init() {

	cmd := &cobra.Command{
		Use:   "metrics <ground_truth.json> <eve.json> <output.json> <test_type> <iteration>",
		Short: "Score IDS alerts against attack ground truth.",
		Long: `Analyzes a Suricata eve.json log against a campaign's ground truth and
reports time to first detection, alert counts, and detection rates per
attack type.`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {

			c := metrics.NewCollector(args[0], args[1])

			if err := c.ParseGroundTruth(); err != nil {
				return err
			}

			if err := c.ParseDetections(); err != nil {
				return err
			}

			report := c.GenerateReport(c.CalculateMetrics(), args[3], args[4])

			return report.Save(args[2])
		},
	}

	rootCmd.AddCommand(cmd)
}
