package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/scs"

	"github.com/zk-mahjong/shuffle-circuit/internal/logging"
	"github.com/zk-mahjong/shuffle-circuit/pkg/circuit"
)

func cmdCompile(args []string) error {
	fs := flag.NewFlagSet("compile", flag.ExitOnError)
	cf := bindCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	prof, err := startCPUProfile(cf.cpuProfile)
	if err != nil {
		return err
	}
	defer prof.stop()

	t0 := time.Now()
	cs, err := frontend.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, circuit.Blank(cf.tiles))
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}
	elapsed := time.Since(t0)

	logging.Logger().Info().
		Int("tiles", cf.tiles).
		Int("constraints", cs.GetNbConstraints()).
		Int("min_blinding_rows", circuit.MinBlindingRows).
		Dur("elapsed", elapsed).
		Msg("circuit compiled")

	return writeMemProfile(cf.memProfile)
}
