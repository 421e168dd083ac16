package pebble_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-peb/peb/backend"
	"github.com/go-peb/peb/inter"
	"github.com/go-peb/peb/networkgen"
	"github.com/go-peb/peb/pebble"
)

// TestHorizonDriverStopsAtKMax verifies that a network needing more steps
// than KMax allows returns Unknown rather than looping forever.
func TestHorizonDriverStopsAtKMax(t *testing.T) {
	net := networkgen.Chain(6) // needs 5 sequential computes
	enc := pebble.NewEncoder(net, backend.New(), 5, 0, 0)
	driver := pebble.NewHorizonDriver(enc, 2)
	res, seq, err := driver.Run()
	require.NoError(t, err)
	require.Equal(t, inter.Unknown, res)
	require.Nil(t, seq)
}

// TestHorizonDriverFindsMinimalHorizon verifies the driver returns the
// first satisfiable horizon rather than always exhausting KMax.
func TestHorizonDriverFindsMinimalHorizon(t *testing.T) {
	net := networkgen.Chain(3) // two gates: compute both, then uncompute the first, K=3
	enc := pebble.NewEncoder(net, backend.New(), 2, 0, 0)
	driver := pebble.NewHorizonDriver(enc, 10)
	res, seq, err := driver.Run()
	require.NoError(t, err)
	require.Equal(t, inter.Sat, res)
	require.Len(t, seq, 3)
}

// TestEncoderAddStepPanicsWithoutInit documents that AddStep before Init is
// a programmer error, not a recoverable Unknown.
func TestEncoderAddStepPanicsWithoutInit(t *testing.T) {
	net := networkgen.Chain(2)
	enc := pebble.NewEncoder(net, backend.New(), 1, 0, 0)
	require.Panics(t, func() { enc.AddStep() })
}
