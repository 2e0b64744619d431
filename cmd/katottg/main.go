// Command katottg converts the administrative-territorial register into a
// CSV artifact with romanized names, loads it into PostgreSQL and serves it
// over HTTP.
//
//	katottg convert katottg.txt -o katottg.csv
//	katottg translit -s k Київ
//	katottg import katottg.csv
//	katottg serve --data katottg.csv
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	// Variables already set in the environment take precedence over .env.
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
