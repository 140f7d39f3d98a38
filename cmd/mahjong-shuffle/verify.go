package main

import (
	"bytes"
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/frontend"

	"github.com/zk-mahjong/shuffle-circuit/internal/logging"
	"github.com/zk-mahjong/shuffle-circuit/internal/proofbundle"
	"github.com/zk-mahjong/shuffle-circuit/pkg/circuit"
)

func cmdVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	bundlePath := fs.String("proof", "mahjong.proof", "proof bundle path")
	vkPath := fs.String("vk", "mahjong.vk", "verifying key path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := os.ReadFile(*bundlePath)
	if err != nil {
		return fmt.Errorf("verify: read %s: %w", *bundlePath, err)
	}
	bundle, err := proofbundle.Decode(data)
	if err != nil {
		return fmt.Errorf("verify: decode bundle: %w", err)
	}

	vkDigest, err := fileDigest(*vkPath)
	if err != nil {
		return fmt.Errorf("verify: digest verifying key: %w", err)
	}
	if !bytes.Equal(vkDigest, bundle.VKDigest) {
		return fmt.Errorf("verify: bundle was produced against a different verifying key")
	}

	vk := plonk.NewVerifyingKey(ecc.BN254)
	if err := readFrom(*vkPath, vk); err != nil {
		return fmt.Errorf("verify: load verifying key: %w", err)
	}

	proof := plonk.NewProof(ecc.BN254)
	if _, err := proof.ReadFrom(bytes.NewReader(bundle.ProofBytes)); err != nil {
		return fmt.Errorf("verify: deserialize proof: %w", err)
	}

	assignment, err := publicAssignmentFrom(bundle.PublicInstance)
	if err != nil {
		return fmt.Errorf("verify: rebuild public instance: %w", err)
	}

	fullWitness, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return fmt.Errorf("verify: public witness: %w", err)
	}

	if err := plonk.Verify(proof, vk, fullWitness); err != nil {
		logging.Logger().Warn().Msg("proof rejected")
		return fmt.Errorf("verify: %w", err)
	}

	logging.Logger().Info().Str("proof", *bundlePath).Msg("proof accepted")
	return nil
}

func publicAssignmentFrom(instance [][]byte) (*circuit.ShuffleEncryptCircuit, error) {
	if len(instance) != 6 {
		return nil, fmt.Errorf("expected 6 public values, got %d", len(instance))
	}
	return &circuit.ShuffleEncryptCircuit{
		AggPKX:   new(big.Int).SetBytes(instance[0]),
		AggPKY:   new(big.Int).SetBytes(instance[1]),
		CinSumX:  new(big.Int).SetBytes(instance[2]),
		CinSumY:  new(big.Int).SetBytes(instance[3]),
		CoutSumX: new(big.Int).SetBytes(instance[4]),
		CoutSumY: new(big.Int).SetBytes(instance[5]),
	}, nil
}
