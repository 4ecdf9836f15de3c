package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iyhunko/getenv/internal/check"
	"github.com/iyhunko/getenv/internal/config"
	"github.com/iyhunko/getenv/internal/logger"
	"github.com/iyhunko/getenv/internal/metrics"
)

func main() {
	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)

	if err := newRootCmd(conf, check.NewChecker, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

type checkerFactory func(*metrics.Recorder) *check.Checker

func newRootCmd(conf *config.Config, newChecker checkerFactory, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "envcheck [KEY...]",
		Short: "Validate that environment variables are set",
		Long: fmt.Sprintf(`Validate that the named environment variables are defined strings.

Modes:
  static   every key must be set; values are trimmed
  public   like static, and every key must start with the public prefix
  dynamic  every key must be set in the process environment (default)

Keys may also be given as a comma separated list in %s.
Validated key names are printed to stdout, one per line.`, config.KeysEnv),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				conf.Keys = args
			}
			if err := conf.Validate(); err != nil {
				return err
			}
			logger.InitJSONLogger(stderr, conf.DebugMode)

			mode, err := check.ParseMode(conf.Mode)
			if err != nil {
				return err
			}

			recorder := metrics.NewRecorder()
			env, runErr := newChecker(recorder).Run(check.Request{
				Mode:   mode,
				Keys:   conf.Keys,
				Prefix: conf.Prefix,
			})

			if conf.MetricsFile != "" {
				if err := recorder.WriteTextfile(conf.MetricsFile); err != nil {
					return err
				}
			}
			if runErr != nil {
				return runErr
			}

			keys := make([]string, 0, len(env))
			for key := range env {
				keys = append(keys, key)
			}
			slices.Sort(keys)
			_, err = fmt.Fprintln(stdout, strings.Join(keys, "\n"))
			return err
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().StringVarP(&conf.Mode, "mode", "m", conf.Mode, "validation mode: "+strings.Join(config.Modes, ", "))
	cmd.Flags().StringVar(&conf.Prefix, "prefix", conf.Prefix, "required key prefix in public mode")
	cmd.Flags().StringVar(&conf.MetricsFile, "metrics-file", conf.MetricsFile, "write Prometheus metrics to this textfile")
	cmd.Flags().BoolVar(&conf.DebugMode, "debug", conf.DebugMode, "enable debug logging")

	return cmd
}

func handleErr(msg string, err error) {
	if err != nil {
		log.Fatalf("error while %s: %v", msg, err)
	}
}
