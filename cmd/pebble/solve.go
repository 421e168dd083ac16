package main

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/go-peb/peb/backend"
	"github.com/go-peb/peb/inter"
	"github.com/go-peb/peb/network"
	"github.com/go-peb/peb/networkgen"
	"github.com/go-peb/peb/pebble"
)

var solveCmd = &cobra.Command{
	Use:   "solve [chain|diamond|random]",
	Short: "build a synthetic network and search for a pebbling schedule",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

var (
	fBound              int
	fKMax               int
	fConflictBudget     int
	fWeightCap          int
	fIncrementOnFailure bool
	fDecrementOnSuccess bool
	fNumPIs             int
	fNumGates           int
	fNumOutputs         int
	fSeed               int64
)

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVar(&fBound, "bound", 2, "starting pebble bound")
	solveCmd.Flags().IntVar(&fKMax, "kmax", 16, "maximum horizon per outer iteration")
	solveCmd.Flags().IntVar(&fConflictBudget, "conflict-budget", 0, "per-solve conflict budget (0 = unbounded)")
	solveCmd.Flags().IntVar(&fWeightCap, "weight-cap", 0, "total action weight cap (0 = disabled)")
	solveCmd.Flags().BoolVar(&fIncrementOnFailure, "increment-on-failure", false, "raise the bound and retry on UNKNOWN")
	solveCmd.Flags().BoolVar(&fDecrementOnSuccess, "decrement-on-success", false, "lower the bound and retry on SAT")
	solveCmd.Flags().IntVar(&fNumPIs, "pis", 4, "primary inputs (chain, random)")
	solveCmd.Flags().IntVar(&fNumGates, "gates", 6, "gate count (random)")
	solveCmd.Flags().IntVar(&fNumOutputs, "outputs", 1, "primary output count (random)")
	solveCmd.Flags().Int64Var(&fSeed, "seed", 1, "random seed (random)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	if fIncrementOnFailure && fDecrementOnSuccess {
		return errors.New("--increment-on-failure and --decrement-on-success are mutually exclusive")
	}

	net, err := buildNetwork(args[0])
	if err != nil {
		return errors.Wrap(err, "building network")
	}

	c := &pebble.Controller{
		Net:                net,
		NewBackend:         func() inter.S { return backend.New() },
		StartBound:         fBound,
		KMax:               fKMax,
		ConflictBudget:     fConflictBudget,
		WeightCap:          fWeightCap,
		IncrementOnFailure: fIncrementOnFailure,
		DecrementOnSuccess: fDecrementOnSuccess,
	}

	seq, status, err := c.Run()
	if err != nil {
		return errors.Wrap(err, "solving")
	}

	fmt.Printf("status: %s\n", status)
	for _, act := range seq {
		fmt.Printf("%-9s node %d\n", act.Kind, act.Node)
	}
	return nil
}

func buildNetwork(kind string) (*network.Network, error) {
	switch kind {
	case "chain":
		return networkgen.Chain(fNumPIs), nil
	case "diamond":
		return networkgen.Diamond(), nil
	case "random":
		rng := rand.New(rand.NewSource(fSeed))
		return networkgen.RandomDAG(rng, fNumPIs, fNumGates, fNumOutputs), nil
	default:
		return nil, errors.Errorf("unknown network kind %q, want chain, diamond, or random", kind)
	}
}
