package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nsrg-lab/attackgen/campaign"
	"github.com/nsrg-lab/attackgen/config"
	"github.com/nsrg-lab/attackgen/stats"
)

// addAttackFlags carries the flags every attack command shares.
func addAttackFlags(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().String("source", "10.0.0.11", "Source IPv4 address. 'auto' picks the default-route address.")
	cmd.Flags().String("output", "", "Ground-truth output path. Default: /tmp/controlled_attack_stats_<unix>.json")

	return cmd
}

func outputPath(cmd *cobra.Command) string {

	path := getVal(cmd.Flags().GetString("output")).(string)
	if path == "" {
		path = stats.DefaultOutputPath()
	}

	return path
}

func init() {

	cmd := &cobra.Command{
		Use:   "syn <target>",
		Short: "Run a controlled SYN flood.",
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

			if err := c.RunSynFlood(&config.SynFloodOptions{
				TargetIP:   target,
				SourceIP:   source,
				TargetPort: getVal(cmd.Flags().GetInt("port")).(int),
				Count:      getVal(cmd.Flags().GetInt("count")).(int),
				Rate:       getVal(cmd.Flags().GetInt("rate")).(int),
			}); err != nil {
				return err
			}

			return c.Finish(outputPath(cmd))
		},
	}

	cmd.Flags().Int("port", 80, "Target port.")
	cmd.Flags().Int("count", 100000, "Exact number of SYN packets to send.")
	cmd.Flags().Int("rate", 10000, "Packets per second. 0 == unbounded.")

	rootCmd.AddCommand(addAttackFlags(cmd))
}
