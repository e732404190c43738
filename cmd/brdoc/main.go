// Command brdoc validates Brazilian CPF and CNPJ numbers.
//
// Usage:
//
//	brdoc [-kind auto|cpf|cnpj] [-lang pt-BR] [value ...]
//
// Values come from the arguments or, when there are none, from stdin one per
// line. Each value is printed followed by a tab and either "valid" or the
// rejection message. The exit status is 1 when any value is invalid.
//
// Environment: BRDOC_LANGUAGE, BRDOC_KIND, BRDOC_CONCURRENCY, LOG_LEVEL and
// LOG_FORMAT. A .env file in the working directory is loaded first.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/brdoc/core/config"
	"github.com/dmitrymomot/brdoc/core/logger"
	"github.com/dmitrymomot/brdoc/core/sanitizer"
	"github.com/dmitrymomot/brdoc/core/validator"
)

// Exit codes.
const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "brdoc:", err)
		os.Exit(exitUsage)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, cfg, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the exit code.
func run(ctx context.Context, cfg Config, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("brdoc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Kind, "kind", cfg.Kind, "document kind: auto, cpf or cnpj")
	fs.StringVar(&cfg.Language, "lang", cfg.Language, "message language, e.g. pt-BR, en, es")
	fs.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "values validated in parallel")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat, stderr).With(
		logger.Component("brdoc"),
		logger.CorrelationID(uuid.NewString()),
	)

	spec, err := cfg.spec()
	if err != nil {
		log.Error("invalid configuration", logger.Error(err))
		return exitUsage
	}

	values, err := readValues(fs.Args(), stdin)
	if err != nil {
		log.Error("failed to read input", logger.Error(err))
		return exitUsage
	}

	tr := validator.NewTranslator(cfg.Language)
	kind := KindAuto
	if spec != nil {
		kind = spec.Name()
	}
	start := time.Now()
	log.Info("validation started",
		slog.String("kind", kind),
		slog.String("language", tr.Language()),
		logger.Count("values", len(values)),
	)

	c := newChecker(spec, tr, cfg.concurrency(), log)
	results, err := c.checkAll(ctx, values)
	if err != nil {
		log.Error("validation interrupted", logger.Error(err))
		return exitUsage
	}

	w := bufio.NewWriter(stdout)
	invalid := 0
	for _, r := range results {
		if r.Valid {
			fmt.Fprintf(w, "%s\tvalid\n", r.Value)
			continue
		}
		invalid++
		fmt.Fprintf(w, "%s\t%s\n", r.Value, r.Message)
	}
	if err := w.Flush(); err != nil {
		log.Error("failed to write output", logger.Error(err))
		return exitUsage
	}

	log.Info("validation finished",
		logger.Count("values", len(results)),
		logger.Count("invalid", invalid),
		logger.Elapsed(start),
	)

	if invalid > 0 {
		return exitInvalid
	}
	return exitOK
}

// readValues returns the trimmed arguments, or the non-blank stdin lines when
// there are no arguments.
func readValues(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		values := make([]string, len(args))
		for i, a := range args {
			values[i] = sanitizer.Trim(a)
		}
		return values, nil
	}

	var values []string
	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		if line := sanitizer.Trim(sanitizer.RemoveControlChars(sc.Text())); line != "" {
			values = append(values, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return values, nil
}
