//go:build e2e && unix

package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Card expiration"), "Should show the form title")

	require.NoError(t, tf.Quit())

	exited, err := tf.WaitExit(2 * time.Second)
	if !exited {
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		t.Fatal("app did not exit after quit")
	}
	require.NoError(t, err, "Quit should exit with status 0")

	config, err := os.ReadFile(tf.ConfigPath())
	require.NoError(t, err, "First run should write the default config")
	require.Contains(t, string(config), "[state]")
}

func TestApplicationExitWithCtrlCWhileOpen(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	tf.Press(KeyMonth)
	require.True(t, tf.SeePlain("Select Month"), "Month list should open")

	require.NoError(t, tf.SendCtrlC())

	exited, err := tf.WaitExit(2 * time.Second)
	require.True(t, exited, "Ctrl+C should exit even with the list open")
	require.NoError(t, err)
}

func TestApplicationSavesOnExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("-month", "08", "-year", "2030"), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("2030"), "Should show the year from the flag")

	require.NoError(t, tf.Quit())
	exited, err := tf.WaitExit(2 * time.Second)
	require.True(t, exited, "app did not exit after quit")
	require.NoError(t, err)

	state := tf.ReadState()
	require.Contains(t, state, "month = '08'")
	require.Contains(t, state, "year = '2030'")
}
