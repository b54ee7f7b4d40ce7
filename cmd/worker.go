package main

import (
	"github.com/Imm0bilize/heartleaves-core-service/internal/app"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Process assessment requests from Kafka",
	Long: `Consumes assessment requests from CONSUMER_TOPIC, calls the prediction
endpoint once per request and publishes the result, or the failure reason,
to PRODUCER_TOPIC. Runs until interrupted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd.Context(), stderrLogger, func(a *app.App) error {
			return a.RunWorker(cmd.Context())
		})
	},
}
