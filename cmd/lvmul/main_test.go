// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/lvmul/config"
	"github.com/stretchr/testify/require"
)

const productYAML = `
a: {rows: 2, cols: 3, data: [1, 2, 3, 4, 5, 6]}
b: {rows: 3, cols: 2, data: [1, 2, 3, 4, 5, 6]}
`

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestMultiplyFromStdin(t *testing.T) {
	out, err := execute(t, productYAML, "multiply")
	require.NoError(t, err)
	require.Equal(t, "{22 28, 49 64}\n", out)
}

func TestMultiplyVerboseFloat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.yaml")
	require.NoError(t, os.WriteFile(path, []byte(productYAML), 0o600))

	out, err := execute(t, "", "multiply", path, "--type", "float", "-v")
	require.NoError(t, err)
	require.Contains(t, out, "{22 28, 49 64}")
	require.Contains(t, out, "Matrix { rows: 2, cols: 2, data: {22 28, 49 64} }")
	require.Contains(t, out, "4 cells, 12 multiply-adds")
	require.Contains(t, out, "matmul.cells: 4")
	require.Contains(t, out, "call.thread.worker.0: 4") // 4 cells < 100: one worker

	out, err = execute(t, productYAML, "multiply", "--shared-pool")
	require.NoError(t, err)
	require.Equal(t, "{22 28, 49 64}\n", out)
}

func TestMultiplyRejectsBadInput(t *testing.T) {
	_, err := execute(t, "a: {rows: 2, cols: 2, data: [1]}\nb: {rows: 2, cols: 2, data: [1, 2, 3, 4]}\n", "multiply")
	require.ErrorContains(t, err, "operand a")

	_, err = execute(t, "a: {rows: 1, cols: 2, data: [1, 2]}\nb: {rows: 1, cols: 2, data: [1, 2]}\n", "multiply")
	require.ErrorContains(t, err, "dimension mismatch")

	_, err = execute(t, productYAML, "multiply", "--type", "complex")
	require.Error(t, err)

	_, err = execute(t, productYAML, "multiply", "--log-level", "loud")
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestCountersDemo(t *testing.T) {
	for _, store := range []string{"lock", "sharded", "atomic"} {
		t.Run(store, func(t *testing.T) {
			out, err := execute(t, "", "counters", "--store", store,
				"--duration", "60ms", "--max-pause", "2ms", "--seed", "7")
			require.NoError(t, err)
			require.Contains(t, out, "call.thread.worker.0")
			require.Contains(t, out, "req.page.")
		})
	}

	_, err := execute(t, "", "counters", "--store", "nope", "--duration", "1ms")
	require.ErrorContains(t, err, "unknown store")
}

func TestServeStopsOnCancel(t *testing.T) {
	cfg := config.Default()
	cfg.Responder.Addr = "127.0.0.1:0"
	c := &cli{cfg: cfg, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	require.NoError(t, runServe(ctx, c, "127.0.0.1:0"))
}
