package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/kzg"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/scs"

	"github.com/zk-mahjong/shuffle-circuit/internal/logging"
	"github.com/zk-mahjong/shuffle-circuit/pkg/circuit"
)

func cmdSetup(args []string) error {
	fs := flag.NewFlagSet("setup", flag.ExitOnError)
	cf := bindCommonFlags(fs)
	pkPath := fs.String("pk", "mahjong.pk", "proving key output path")
	vkPath := fs.String("vk", "mahjong.vk", "verifying key output path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := gpuAccelerate(cf.gpu); err != nil {
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
		return fmt.Errorf("setup: compile: %w", err)
	}

	srs, srsLagrange, err := newSRS(cs.GetNbConstraints())
	if err != nil {
		return fmt.Errorf("setup: srs: %w", err)
	}

	pk, vk, err := plonk.Setup(cs, srs, srsLagrange)
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	if err := writeTo(*pkPath, pk); err != nil {
		return fmt.Errorf("setup: write proving key: %w", err)
	}
	if err := writeTo(*vkPath, vk); err != nil {
		return fmt.Errorf("setup: write verifying key: %w", err)
	}

	logging.Logger().Info().
		Int("tiles", cf.tiles).
		Int("constraints", cs.GetNbConstraints()).
		Dur("elapsed", time.Since(t0)).
		Str("pk", *pkPath).
		Str("vk", *vkPath).
		Msg("setup complete")

	return writeMemProfile(cf.memProfile)
}

// newSRS builds a KZG reference string for BN254; size (the constraint
// count) is not used to size it and only appears in the error. This is
// a demo SRS (no distributed trusted-setup ceremony); production deployment
// would load a ceremony transcript instead.
func newSRS(size int) (kzg.SRS, kzg.SRS, error) {
	srs := kzg.NewSRS(ecc.BN254)
	if srs == nil {
		return nil, nil, fmt.Errorf("nil SRS returned for size %d", size)
	}
	return srs, srs, nil
}

func writeTo(path string, v io.WriterTo) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = v.WriteTo(f)
	return err
}
