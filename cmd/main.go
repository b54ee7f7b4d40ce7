package main

import (
	"context"
	"github.com/Imm0bilize/heartleaves-core-service/internal/app"
	"github.com/Imm0bilize/heartleaves-core-service/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

var (
	envFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "heartleaves",
	Short: "HeartLeaves AI: infarction risk prediction from cardiac biomarkers",
	Long: `HeartLeaves sends troponin, CK-MB and age to a remote prediction endpoint
and reports the infarction risk with clinical interpretation guidance.

The endpoint is configured with PREDICTION_ENDPOINT (env or --env-file).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "env file to load before reading the environment")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(predictCmd, formCmd, aboutCmd, workerCmd)
}

// withApp loads configuration, builds the application and shuts it down after run.
func withApp(ctx context.Context, logger func(*config.Config) (*zap.Logger, error), run func(*app.App) error) error {
	cfg, err := config.New(envFile)
	if err != nil {
		return err
	}

	log, err := logger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	a, err := app.New(cfg, log)
	if err != nil {
		return errors.Wrap(err, "can't initialize application")
	}

	runErr := run(a)

	shCtx, shCancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer shCancel()

	if err := a.Shutdown(shCtx); err != nil {
		log.Error("error during shutdown", zap.Error(err))
	}

	return runErr
}

func stderrLogger(cfg *config.Config) (*zap.Logger, error) {
	return app.NewLogger(cfg.Log, verbose)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
