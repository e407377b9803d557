// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// app carries state shared by the subcommands.
type app struct {
	stderr   io.Writer
	logLevel string
	jsonLogs bool
	logger   zerolog.Logger
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr, logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "qrdemo",
		Short: "QR factorization by Gram–Schmidt and Givens rotations",
		Long: `qrdemo factorizes a real m×n matrix (m >= n) as A = QR using modified
Gram–Schmidt and Givens rotations, then rebuilds A from the factors and
reports reconstruction, orthogonality and triangularity errors.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupLogger(cmd.Flags().Changed("log-level"))
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level: trace, debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.jsonLogs, "json", false, "Emit JSON logs even on a terminal")

	root.AddCommand(newFactorCmd(a), newEigenCmd(a))

	return root
}

// setupLogger builds the logger for this invocation. The console writer is
// used only when stderr is a terminal and --json is not set.
func (a *app) setupLogger(explicitLevel bool) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(a.logLevel))
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
	}

	out := a.stderr
	if !a.jsonLogs && isTerminal(out) {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}
	a.logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	log.Logger = a.logger

	if !explicitLevel {
		// a config file or QRKIT_LOG_LEVEL may still lower or raise it
		a.logLevel = ""
	}

	return nil
}

// applyConfigLevel lets the configured level win when --log-level was not
// given explicitly.
func (a *app) applyConfigLevel(lvl zerolog.Level) {
	if a.logLevel == "" {
		a.logger = a.logger.Level(lvl)
		log.Logger = a.logger
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
