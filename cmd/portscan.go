package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nsrg-lab/attackgen/campaign"
	"github.com/nsrg-lab/attackgen/config"
)

func init() {

	cmd := &cobra.Command{
		Use:   "scan <target>",
		Short: "Run a controlled port scan.",
		Long:  `Sequential SYN probes across a contiguous port range, one probe per port.`,
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

			startPort := getVal(cmd.Flags().GetInt("start-port")).(int)
			endPort := getVal(cmd.Flags().GetInt("end-port")).(int)

			if startPort < 1 || endPort > 65535 || startPort > endPort {
				return fmt.Errorf("invalid port range %d-%d", startPort, endPort)
			}

			c := campaign.New(target, source)

			if err := c.RunPortScan(&config.PortScanOptions{
				TargetIP:  target,
				SourceIP:  source,
				StartPort: startPort,
				EndPort:   endPort,
				Rate:      getVal(cmd.Flags().GetInt("rate")).(int),
			}); err != nil {
				return err
			}

			return c.Finish(outputPath(cmd))
		},
	}

	cmd.Flags().Int("start-port", 1, "First port to probe.")
	cmd.Flags().Int("end-port", 1000, "Last port to probe.")
	cmd.Flags().Int("rate", 1000, "Probes per second. 0 == unbounded.")

	rootCmd.AddCommand(addAttackFlags(cmd))
}
