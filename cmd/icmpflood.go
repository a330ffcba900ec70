package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nsrg-lab/attackgen/campaign"
	"github.com/nsrg-lab/attackgen/config"
)

func init() {

	cmd := &cobra.Command{
		Use:   "icmp <target>",
		Short: "Run a controlled ICMP echo flood.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			target, err := parseTarget(args[0])
			if err != nil {
				return err
			}

			source, err := resolveSourceIP(getVal(cmd.Flags().GetString("source")).(string))
			if err != nil {
				return err
			}

			c := campaign.New(target, source)

			if err := c.RunIcmpFlood(&config.IcmpFloodOptions{
				TargetIP: target,
				Count:    getVal(cmd.Flags().GetInt("count")).(int),
				Rate:     getVal(cmd.Flags().GetInt("rate")).(int),
			}); err != nil {
				return err
			}

			return c.Finish(outputPath(cmd))
		},
	}

	cmd.Flags().Int("count", 10000, "Exact number of echo requests to send.")
	cmd.Flags().Int("rate", 1000, "Packets per second. 0 == unbounded.")

	rootCmd.AddCommand(addAttackFlags(cmd))
}
