package main

import (
	"fmt"
	"github.com/Imm0bilize/heartleaves-core-service/internal/app"
	"github.com/Imm0bilize/heartleaves-core-service/internal/entities"
	"github.com/Imm0bilize/heartleaves-core-service/internal/input"
	"github.com/Imm0bilize/heartleaves-core-service/internal/presenter"
	"github.com/Imm0bilize/heartleaves-core-service/pkg/predictor"
	"github.com/spf13/cobra"
)

var (
	predictTroponin float64
	predictCKMB     float64
	predictAge      int
	predictOutput   string
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Calculate the infarction risk for one patient",
	Long: `Sends the biomarker values to the prediction endpoint once and prints the
result with its clinical interpretation.

Bounds: troponin 0-100 ng/mL, CK-MB 0-1000 U/L, age 18-120 years.

Example:
  heartleaves predict --troponin 0.45 --ck-mb 12.3 --age 67 --output json`,
	Args: cobra.NoArgs,
	RunE: runPredict,
}

func init() {
	predictCmd.Flags().Float64Var(&predictTroponin, "troponin", input.DefaultTroponin, "troponin level in ng/mL")
	predictCmd.Flags().Float64Var(&predictCKMB, "ck-mb", input.DefaultCKMB, "CK-MB level in U/L")
	predictCmd.Flags().IntVar(&predictAge, "age", input.DefaultAge, "patient age in completed years")
	predictCmd.Flags().StringVarP(&predictOutput, "output", "o", presenter.FormatText, "output format: text, json or yaml")
}

func runPredict(cmd *cobra.Command, _ []string) error {
	req := entities.PredictionRequest{
		Troponin: predictTroponin,
		CKMB:     predictCKMB,
		Age:      predictAge,
	}

	if err := req.Validate(); err != nil {
		return err
	}

	return withApp(cmd.Context(), stderrLogger, func(a *app.App) error {
		assessment, err := a.UseCase().Assess(cmd.Context(), req)
		if err != nil {
			if _, ok := predictor.AsRequestFailure(err); ok {
				fmt.Fprintln(cmd.ErrOrStderr(), presenter.FailureText(err))
			}
			return err
		}

		return presenter.Encode(cmd.OutOrStdout(), predictOutput, assessment)
	})
}
