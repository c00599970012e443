package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/codechat/codechat/pkg/chat"
	loggerpkg "github.com/codechat/codechat/pkg/logger"
)

// replOptions configures REPL behavior.
type replOptions struct {
	Verbose bool
	Logger  loggerpkg.Logger
}

// completer abstracts the completion backend so the loop can be driven in
// tests without a live endpoint.
type completer interface {
	Send(ctx context.Context, transcript *chat.Transcript) (string, error)
}

// runREPL starts an interactive chat session. Each cycle reads one line,
// dispatches one completion request, and prints either the reply or a
// classified error notice. A failed turn leaves its user message in the
// transcript so the next attempt re-sends it as context.
func runREPL(ctx context.Context, client completer, transcript *chat.Transcript, opts replOptions, in io.Reader, out io.Writer) error {
	if client == nil {
		return fmt.Errorf("completion client is required")
	}
	if transcript == nil {
		return fmt.Errorf("transcript is required")
	}
	if in == nil {
		return fmt.Errorf("input reader is required")
	}
	if out == nil {
		out = io.Discard
	}

	loggerpkg.Debug(opts.Verbose, opts.Logger, "repl start", nil)

	scanner := bufio.NewScanner(in)
	printWelcome(out)

	for {
		_, _ = fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			_, _ = fmt.Fprintln(out, "Please type a message, or \"exit\" to quit.")
			continue
		}
		if strings.EqualFold(input, "exit") {
			_, _ = fmt.Fprintln(out, "Goodbye!")
			break
		}

		transcript.AppendUser(input)
		loggerpkg.Debug(opts.Verbose, opts.Logger, "dispatching turn", map[string]any{
			"transcript_len": transcript.Len(),
		})

		reply, err := client.Send(ctx, transcript)
		if err != nil {
			_, _ = fmt.Fprintf(out, "%s\n\n", chat.Notice(err))
			continue
		}

		transcript.AppendAssistant(reply)
		_, _ = fmt.Fprintf(out, "Bot: %s\n\n", reply)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// printWelcome prints the startup banner.
func printWelcome(out io.Writer) {
	_, _ = fmt.Fprintln(out, "=== CodeChat ===")
	_, _ = fmt.Fprintln(out, "Ask anything about code. Type \"exit\" to quit.")
	_, _ = fmt.Fprintln(out)
}
