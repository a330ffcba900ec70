package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nsrg-lab/attackgen/campaign"
	"github.com/nsrg-lab/attackgen/config"
)

func init() {

	cmd := &cobra.Command{
		Use:   "http <target>",
		Short: "Run a controlled HTTP flood.",
		Long: `One short-lived connection per request with a fixed GET and a 2-second
timeout. Unpaced; the per-connection timeout is the only gate.`,
		Args: cobra.ExactArgs(1),
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

			if err := c.RunHttpFlood(&config.HttpFloodOptions{
				TargetIP:       target,
				TargetPort:     getVal(cmd.Flags().GetInt("port")).(int),
				Count:          getVal(cmd.Flags().GetInt("count")).(int),
				ConnectTimeout: config.DefaultConnectTimeout,
			}); err != nil {
				return err
			}

			return c.Finish(outputPath(cmd))
		},
	}

	cmd.Flags().Int("port", 8080, "Target HTTP port.")
	cmd.Flags().Int("count", 500, "Exact number of requests to send.")

	rootCmd.AddCommand(addAttackFlags(cmd))
}
