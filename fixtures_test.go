package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFixtures runs every testdata/*.aceto program in-process and compares
// its stdout against the sibling *.expected golden file, the same pairing
// scripts/gen_aceto_expects.go produces when regenerating them by running a
// built binary.
func TestFixtures(t *testing.T) {
	entries, err := os.ReadDir("testdata")
	require.NoError(t, err)

	found := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".aceto") {
			continue
		}
		found++
		name := strings.TrimSuffix(e.Name(), ".aceto")
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(filepath.Join("testdata", name+".aceto"))
			require.NoError(t, err)
			want, err := os.ReadFile(filepath.Join("testdata", name+".expected"))
			require.NoError(t, err)

			var out bytes.Buffer
			vm := New(string(src), WithOutput(&out), WithStepLimit(100000))
			require.NoError(t, vm.Run(context.Background()))
			assert.Equal(t, string(want), out.String())
		})
	}
	require.NotZero(t, found, "no testdata/*.aceto fixtures found")
}
