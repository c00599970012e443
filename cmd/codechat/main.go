// Package main implements codechat, a terminal chat client that relays user
// text to a hosted completion endpoint and prints the reply.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/codechat/codechat/pkg/chat"
	loggerpkg "github.com/codechat/codechat/pkg/logger"
)

// main is the program entry point.
func main() {
	appLogger := loggerpkg.NewWriterLogger(os.Stderr)
	cfg := parseCLIConfig(appLogger)

	client, err := chat.New(cfg, chat.WithLogger(appLogger))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	transcript := chat.NewTranscript()
	if err := runREPL(context.Background(), client, transcript, replOptions{
		Verbose: cfg.Verbose,
		Logger:  appLogger,
	}, os.Stdin, os.Stdout); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
