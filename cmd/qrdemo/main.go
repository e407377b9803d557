// SPDX-License-Identifier: MIT

// Command qrdemo factorizes a matrix with Gram–Schmidt and Givens QR and
// prints the factors together with a verification report.
//
//	qrdemo factor                       # built-in 4×3 example, both methods
//	qrdemo factor --hilbert 10 --strict # fail when either method is inaccurate
//	qrdemo eigen --hilbert 3            # dominant eigenvalue by power iteration
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd(os.Stderr).ExecuteContext(ctx)
	cancel()
	if err != nil {
		log.Error().Err(err).Msg("qrdemo failed")
		os.Exit(1)
	}
}
