package main

import (
	"github.com/Imm0bilize/heartleaves-core-service/internal/app"
	"github.com/Imm0bilize/heartleaves-core-service/internal/config"
	"github.com/Imm0bilize/heartleaves-core-service/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the interactive patient data form",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Log lines would corrupt the full-screen form.
		quiet := func(*config.Config) (*zap.Logger, error) { return zap.NewNop(), nil }

		return withApp(cmd.Context(), quiet, func(a *app.App) error {
			return tui.Run(cmd.Context(), a.UseCase())
		})
	},
}
