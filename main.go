// Command aceto interprets an Aceto source grid: a square program walked
// along a Hilbert curve, starting bottom-left, one character per command.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/acetolang/aceto/internal/logio"
)

func main() {
	var (
		trace     bool
		dump      bool
		stepLimit int
		timeout   time.Duration
	)
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&dump, "dump", false, "print a state dump when the program halts")
	flag.IntVar(&stepLimit, "step-limit", 0, "abort after this many dispatcher steps (0 = unlimited)")
	flag.DurationVar(&timeout, "timeout", 0, "abort after this much wall-clock time (0 = unlimited)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: aceto <source-file>")
		os.Exit(2)
	}

	log := logio.Logger{}
	log.SetOutput(os.Stderr)

	src, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	opts := []VMOption{
		WithOutput(os.Stdout),
		WithInput(os.Stdin),
	}
	if trace && !isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Fprintln(os.Stderr, "TRACE: stdin is not a terminal; `,` reads one character from the piped stream")
	}
	if seed, ok := seedFromEnv(); ok {
		opts = append(opts, WithSeed(seed))
	}
	if stepLimit > 0 {
		opts = append(opts, WithStepLimit(stepLimit))
	}
	if dump {
		opts = append(opts, WithDump(true))
	}
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}

	vm := New(string(src), opts...)

	ctx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	os.Exit(exitCodeFor(vm.Run(ctx), &log))
}

// seedFromEnv implements spec.md §6's optional PRNG seed environment
// variable.
func seedFromEnv() (int64, bool) {
	s, ok := os.LookupEnv("ACETO_SEED")
	if !ok {
		return 0, false
	}
	seed, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return seed, true
}

// exitCodeFor derives the process exit code from vm.Run's result: 0 on nil
// (normal termination, including `X`), the code carried by an
// *exitCodeError if present (2 for parse-time failures), else 1 for any
// other unhandled error (spec.md §6-§7).
func exitCodeFor(err error, log *logio.Logger) int {
	if err == nil {
		return 0
	}
	var ece *exitCodeError
	if errors.As(err, &ece) {
		log.Errorf("%v", err)
		return ece.Code
	}
	log.Errorf("%v", err)
	return 1
}
