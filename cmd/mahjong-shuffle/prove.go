package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/scs"

	"github.com/zk-mahjong/shuffle-circuit/internal/logging"
	"github.com/zk-mahjong/shuffle-circuit/internal/proofbundle"
	"github.com/zk-mahjong/shuffle-circuit/internal/version"
	"github.com/zk-mahjong/shuffle-circuit/pkg/circuit"
)

func cmdProve(args []string) error {
	fs := flag.NewFlagSet("prove", flag.ExitOnError)
	cf := bindCommonFlags(fs)
	fixturePath := fs.String("fixture", "", "fixture file written by the fixture subcommand")
	pkPath := fs.String("pk", "mahjong.pk", "proving key path")
	vkPath := fs.String("vk", "mahjong.vk", "verifying key path, used only to stamp the bundle's digest")
	out := fs.String("out", "mahjong.proof", "proof bundle output path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := gpuAccelerate(cf.gpu); err != nil {
		return err
	}
	if *fixturePath == "" {
		return fmt.Errorf("prove: -fixture is required")
	}

	prof, err := startCPUProfile(cf.cpuProfile)
	if err != nil {
		return err
	}
	defer prof.stop()

	ff, err := loadFixture(*fixturePath)
	if err != nil {
		return err
	}
	w, err := ff.toWitness()
	if err != nil {
		return fmt.Errorf("prove: build witness: %w", err)
	}

	cs, err := frontend.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, circuit.Blank(ff.N))
	if err != nil {
		return fmt.Errorf("prove: compile: %w", err)
	}

	pk := plonk.NewProvingKey(ecc.BN254)
	if err := readFrom(*pkPath, pk); err != nil {
		return fmt.Errorf("prove: load proving key: %w", err)
	}
	vkDigest, err := fileDigest(*vkPath)
	if err != nil {
		return fmt.Errorf("prove: digest verifying key: %w", err)
	}

	fullWitness, err := frontend.NewWitness(w, ecc.BN254.ScalarField())
	if err != nil {
		return fmt.Errorf("prove: witness: %w", err)
	}

	t0 := time.Now()
	proof, err := plonk.Prove(cs, pk, fullWitness)
	if err != nil {
		return fmt.Errorf("prove: %w", err)
	}
	elapsed := time.Since(t0)

	var proofBuf bytes.Buffer
	if _, err := proof.WriteTo(&proofBuf); err != nil {
		return fmt.Errorf("prove: serialize proof: %w", err)
	}

	bundle := proofbundle.Bundle{
		Version:        version.Current.String(),
		VKDigest:       vkDigest,
		ProofBytes:     proofBuf.Bytes(),
		PublicInstance: publicInstanceOf(w),
	}
	data, err := proofbundle.Encode(bundle)
	if err != nil {
		return fmt.Errorf("prove: encode bundle: %w", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return fmt.Errorf("prove: write %s: %w", *out, err)
	}

	logging.Logger().Info().
		Int("tiles", ff.N).
		Dur("elapsed", elapsed).
		Str("out", *out).
		Msg("proof written")

	return writeMemProfile(cf.memProfile)
}

func readFrom(path string, v io.ReaderFrom) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = v.ReadFrom(f)
	return err
}

func fileDigest(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return sha256Sum(data), nil
}

func publicInstanceOf(w *circuit.ShuffleEncryptCircuit) [][]byte {
	fields := []fieldVariable{w.AggPKX, w.AggPKY, w.CinSumX, w.CinSumY, w.CoutSumX, w.CoutSumY}
	out := make([][]byte, len(fields))
	for i, f := range fields {
		out[i] = bigIntBytes(f)
	}
	return out
}
