package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vokinneberg/askgem/internal/qa"
	"github.com/vokinneberg/askgem/internal/types"
)

//go:generate mockgen -source=console.go -destination=mock_answerer.go -package=console Answerer

// Answerer defines the interface for turning a normalized question into answer text
type Answerer interface {
	Answer(ctx context.Context, question string) string
}

// ErrMissingCredential is returned by Run when no API key is configured
var ErrMissingCredential = errors.New("GEMINI_API_KEY environment variable is not set")

const (
	maxLineSize = 1024 * 1024
	farewell    = "Exiting application. Goodbye!"
)

// Console runs the interactive question loop over a reader/writer pair
type Console struct {
	in         io.Reader
	out        io.Writer
	answerer   Answerer
	credential func() string
	logger     *slog.Logger
}

// New creates a console driver. credential is checked once before the loop starts.
func New(in io.Reader, out io.Writer, answerer Answerer, credential func() string, logger *slog.Logger) *Console {
	if logger == nil {
		logger = slog.Default()
	}
	return &Console{
		in:         in,
		out:        out,
		answerer:   answerer,
		credential: credential,
		logger:     logger,
	}
}

type readResult struct {
	line string
	err  error
}

// Run prints the banner, verifies the credential and reads questions until a
// sentinel word, end of input or ctx cancellation.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "--- LLM Question-and-Answering CLI System ---")
	fmt.Fprintln(c.out, "Type 'quit' or 'exit' to close the application.")

	if c.credential() == "" {
		fmt.Fprintln(c.out, "\nWARNING: GEMINI_API_KEY environment variable is not set.")
		fmt.Fprintln(c.out, "Please set the key to run the application.")
		return ErrMissingCredential
	}

	done := make(chan struct{})
	defer close(done)
	lines := c.readLines(done)

	for {
		fmt.Fprint(c.out, "\nEnter your question: ")

		var res readResult
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out, "\n"+farewell)
			return nil
		case res, ok = <-lines:
		}

		if !ok {
			fmt.Fprintln(c.out, "\n"+farewell)
			return nil
		}
		if res.err != nil {
			fmt.Fprintf(c.out, "\n%s\n", farewell)
			return fmt.Errorf("failed to read input: %w", res.err)
		}

		if isSentinel(res.line) {
			fmt.Fprintln(c.out, farewell)
			return nil
		}
		if strings.TrimSpace(res.line) == "" {
			continue
		}

		c.cycle(ctx, res.line)

		if ctx.Err() != nil {
			fmt.Fprintln(c.out, "\n"+farewell)
			return nil
		}
	}
}

// cycle answers a single question. A panic is reported and swallowed so the
// session keeps running.
func (c *Console) cycle(ctx context.Context, input string) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Unexpected error in question cycle", "panic", r)
			fmt.Fprintf(c.out, "An unexpected error occurred: %v\n", r)
		}
	}()

	ex := types.Exchange{Question: input, Normalized: qa.Normalize(input)}
	fmt.Fprintf(c.out, "\n[Processed Question]: %s\n", ex.Normalized)

	fmt.Fprintln(c.out, "\n[Querying LLM... please wait]")
	ex.Answer = c.answerer.Answer(ctx, ex.Normalized)

	fmt.Fprintln(c.out, "\n--- LLM Final Answer ---")
	fmt.Fprintln(c.out, ex.Answer)
	fmt.Fprintln(c.out, "-------------------------")
}

// readLines feeds input lines to the returned channel until EOF, a read
// error or done is closed.
func (c *Console) readLines(done <-chan struct{}) <-chan readResult {
	lines := make(chan readResult)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			select {
			case lines <- readResult{line: scanner.Text()}:
			case <-done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case lines <- readResult{err: err}:
			case <-done:
			}
		}
	}()
	return lines
}

func isSentinel(line string) bool {
	word := strings.TrimSpace(line)
	return strings.EqualFold(word, "quit") || strings.EqualFold(word, "exit")
}
