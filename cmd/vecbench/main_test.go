package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecbench"
)

func TestRootCmd(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(vecbench.WithSize(1024), vecbench.WithIterations(2))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())

	out := stdout.String()
	assert.Contains(t, out, "Regular Addition")
	assert.Contains(t, out, "SIMD Addition")
	assert.Contains(t, out, "Aligned SIMD")
	assert.Contains(t, out, "Checksums agree")
	assert.Contains(t, out, "mod 32 = 0")

	assert.Contains(t, stderr.String(), "vecbench_kernel_duration_seconds")
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd(vecbench.WithSize(16), vecbench.WithIterations(1))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	require.Error(t, cmd.Execute())
}

func TestRootCmd_InvalidOptions(t *testing.T) {
	cmd := newRootCmd(vecbench.WithIterations(0))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(nil)

	err := cmd.Execute()
	require.ErrorIs(t, err, vecbench.ErrInvalidIterationCount)
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelWarn, false},
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelWarn, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := logLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
