package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nsrg-lab/attackgen/api"
)

func init() {

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve ground-truth and report files over HTTP.",
		Long: `Read-only artifact server for the evaluator host. Never run this
during a campaign; attack runs are strictly sequential and standalone.`,
		RunE: func(cmd *cobra.Command, args []string) error {

			addLog := func(s string) bool { log.Print("INFO: " + s); return true }
			addError := func(e error) bool { log.Print("ERROR: " + e.Error()); return true }

			s := api.NewServer(getVal(cmd.Flags().GetString("dir")).(string), addLog, addError)

			osSigChann := make(chan os.Signal, 1)
			signal.Notify(osSigChann, syscall.SIGINT, syscall.SIGTERM)

			go func() {
				<-osSigChann
				if err := s.Stop(); err != nil {
					addError(err)
				}
			}()

			return s.Run(getVal(cmd.Flags().GetString("listen")).(string))
		},
	}

	cmd.Flags().String("listen", "127.0.0.1:8080", "Address to listen on.")
	cmd.Flags().String("dir", "/tmp", "Directory holding the JSON artifacts.")

	rootCmd.AddCommand(cmd)
}
