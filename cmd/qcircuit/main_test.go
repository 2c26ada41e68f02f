package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	qcircuit "github.com/Q-lds/quantum-circuit-simulator"
	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	pterm.DisableColor()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRunClassical(t *testing.T) {
	out, err := execute(t, "run", "-q", "1", "--seed", "3", "--shots", "50", "x 0")
	require.NoError(t, err)

	assert.Contains(t, out, "genericCircuit")
	assert.Contains(t, out, "50")
	assert.Contains(t, out, "1.0000")
}

func TestRunQuantum(t *testing.T) {
	out, err := execute(t, "run", "-q", "1", "--mode", "quantum", "h 0")
	require.NoError(t, err)

	assert.Contains(t, out, "0.7071")
	assert.Contains(t, out, "0.5000")
	assert.Contains(t, out, "|1⟩")
}

func TestRunSeparatedInstructions(t *testing.T) {
	out, err := execute(t, "run", "-q", "2", "--seed", "1", "--shots", "200", "h 0;", "cnot 0 1")
	require.NoError(t, err)

	assert.Contains(t, out, "2 instructions")
	assert.Contains(t, out, "00")
	assert.Contains(t, out, "11")
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown gate", []string{"run", "-q", "1", "q 0"}, qcircuit.ErrUnknownInstruction},
		{"bad mode", []string{"run", "-q", "1", "--mode", "both", "h 0"}, qcircuit.ErrInvalidReadoutMode},
		{"target too wide", []string{"run", "-q", "2", "cnot 0 2"}, qcircuit.ErrIndexOutOfRange},
		{"no qubits", []string{"run", "-q", "0", "h 0"}, qcircuit.ErrInvalidRegisterSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestRunFileAndConfig(t *testing.T) {
	dir := t.TempDir()

	program := filepath.Join(dir, "flip.yaml")
	require.NoError(t, os.WriteFile(program, []byte(`
name: flip
qubits: 2
initial_bits: [1, 0]
instructions:
  - classicalcontrol 0 1 x
`), 0o644))

	config := filepath.Join(dir, "qcircuit.toml")
	require.NoError(t, os.WriteFile(config, []byte("shots = 7\nseed = 4\n"), 0o644))

	out, err := execute(t, "run", "--config", config, "--file", program)
	require.NoError(t, err)

	assert.Contains(t, out, "flip")
	assert.Contains(t, out, "01")
	assert.Contains(t, out, "7")
	assert.Contains(t, out, "1.0000")
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, qcircuit.DefaultTolerance, cfg.Tolerance)
	assert.Equal(t, 1024, cfg.Shots)
	assert.Equal(t, "classical", cfg.ReadoutMode)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("QCIRCUIT_SHOTS", "12")
	t.Setenv("QCIRCUIT_READOUT_MODE", "quantum")

	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Shots)
	assert.Equal(t, "quantum", cfg.ReadoutMode)
}

func TestGatesAndVersion(t *testing.T) {
	out, err := execute(t, "gates")
	require.NoError(t, err)
	assert.Contains(t, out, "SDagger")
	assert.Contains(t, out, "TDagger")

	out, err = execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "qcircuit dev")
}
