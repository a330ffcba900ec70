package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nsrg-lab/attackgen/campaign"
	"github.com/nsrg-lab/attackgen/config"
)

func init() {

	cmd := &cobra.Command{
		Use:   "suite <target>",
		Short: "Run the standard attack suite.",
		Long: `Runs all four campaigns back-to-back with a fixed pause:
HTTP flood (500 requests), ICMP flood (10,000 @ 1000 pps),
port scan (ports 1-1000 @ 1000 pps), SYN flood (100,000 @ 10,000 pps).
A YAML config file can override the counts and rates.`,
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

			sc := config.DefaultSuite()

			if path := getVal(cmd.Flags().GetString("config")).(string); path != "" {
				if sc, err = config.LoadSuite(path); err != nil {
					return err
				}
			}

			c := campaign.New(target, source)

			if err := c.RunSuite(sc); err != nil {
				return err
			}

			return c.Finish(outputPath(cmd))
		},
	}

	cmd.Flags().String("config", "", "YAML suite config overriding the standard counts and rates.")

	rootCmd.AddCommand(addAttackFlags(cmd))
}
