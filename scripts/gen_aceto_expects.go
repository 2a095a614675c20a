// Command gen_aceto_expects regenerates the golden testdata/*.expected
// fixtures by running a built aceto binary against every testdata/*.aceto
// program concurrently, mirroring the concurrent-fixture-regeneration role
// jcorbin/gothird's scripts/gen_vm_expects.go plays for its own VM test
// fixtures.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	bin := flag.String("bin", "./aceto", "path to a built aceto binary")
	dir := flag.String("dir", "testdata", "directory of .aceto fixtures")
	timeout := flag.Duration("timeout", 10*time.Second, "per-fixture run timeout")
	flag.Parse()

	if err := run(*bin, *dir, *timeout); err != nil {
		log.Fatalln(err)
	}
}

func run(bin, dir string, timeout time.Duration) error {
	if _, err := os.Stat(bin); err != nil {
		return fmt.Errorf("aceto binary not found at %v (build it first: go build -o %v .): %w", bin, bin, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*timeout)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".aceto") {
			continue
		}
		name := e.Name()
		eg.Go(func() error {
			return regenerate(ctx, bin, dir, name, timeout)
		})
	}

	return eg.Wait()
}

func regenerate(ctx context.Context, bin, dir, name string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	src := filepath.Join(dir, name)
	dst := filepath.Join(dir, strings.TrimSuffix(name, ".aceto")+".expected")

	cmd := exec.CommandContext(ctx, bin, src)
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return fmt.Errorf("%v: %w", src, err)
		}
		// a nonzero exit (an uncaught raise, or `X`-less halt) is still a
		// valid fixture outcome; capture whatever stdout it produced.
	}

	return os.WriteFile(dst, out.Bytes(), 0o644)
}
