package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"math/big"
	mrand "math/rand"
	"os"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/fxamacker/cbor/v2"

	"github.com/zk-mahjong/shuffle-circuit/internal/curvemodel"
	"github.com/zk-mahjong/shuffle-circuit/internal/logging"
	"github.com/zk-mahjong/shuffle-circuit/internal/proofbundle"
	"github.com/zk-mahjong/shuffle-circuit/internal/randsrc"
	"github.com/zk-mahjong/shuffle-circuit/pkg/circuit"
	"github.com/zk-mahjong/shuffle-circuit/pkg/tile"
)

// fixtureFile is the on-disk shape `fixture` writes and `prove` reads: the
// plaintext inputs a prover holds, never the circuit's public instance.
type fixtureFile struct {
	N            int      `cbor:"n"`
	AggPKX       string   `cbor:"agg_pk_x"`
	AggPKY       string   `cbor:"agg_pk_y"`
	MessageC1X   []string `cbor:"message_c1_x"`
	MessageC1Y   []string `cbor:"message_c1_y"`
	PermutationN int      `cbor:"permutation_n"`
	PackedPerm   []byte   `cbor:"packed_permutation"`
	Randomness   []string `cbor:"randomness"`
}

func cmdFixture(args []string) error {
	fs := flag.NewFlagSet("fixture", flag.ExitOnError)
	cf := bindCommonFlags(fs)
	out := fs.String("out", "fixture.cbor", "output fixture file")
	seedHex := fs.String("seed", "", "hex seed for deterministic randomness (random if empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cf.tiles <= 0 || cf.tiles > circuit.MaxTiles {
		return fmt.Errorf("fixture: -n must be in (0, %d]", circuit.MaxTiles)
	}

	seed, err := resolveSeed(*seedHex)
	if err != nil {
		return err
	}

	skAgg, err := rand.Int(rand.Reader, curveOrderBound())
	if err != nil {
		return fmt.Errorf("fixture: aggregate key scalar: %w", err)
	}
	aggPK := curvemodel.ScalarMul(curvemodel.Generator, skAgg).ToAffine()

	messages := make([]curvemodel.Affine, cf.tiles)
	for i := 0; i < cf.tiles; i++ {
		p, err := tile.Encode(i % tile.NumTiles)
		if err != nil {
			return fmt.Errorf("fixture: encode tile %d: %w", i, err)
		}
		messages[i] = p
	}

	randomness, err := randsrc.Expand(seed, cf.tiles, curveOrderBound())
	if err != nil {
		return fmt.Errorf("fixture: expand randomness: %w", err)
	}

	permSeed := new(big.Int).SetBytes(sha256Sum(seed)[:7]).Int64()
	perm := mrand.New(mrand.NewSource(permSeed + int64(cf.tiles))).Perm(cf.tiles)
	packed, err := proofbundle.PackPermutation(perm, cf.tiles)
	if err != nil {
		return fmt.Errorf("fixture: pack permutation: %w", err)
	}

	// Validate the fixture solves before writing it out.
	ciphertexts := make([]circuit.Ciphertext, cf.tiles)
	for i, m := range messages {
		ciphertexts[i] = circuit.Ciphertext{C0: curvemodel.Identity(), C1: m}
	}
	if _, err := circuit.BuildWitness(aggPK, ciphertexts, perm, randomness); err != nil {
		return fmt.Errorf("fixture: does not produce a valid witness: %w", err)
	}

	ff := fixtureFile{
		N:            cf.tiles,
		AggPKX:       aggPK.X.String(),
		AggPKY:       aggPK.Y.String(),
		MessageC1X:   stringsOf(messages, func(a curvemodel.Affine) string { return a.X.String() }),
		MessageC1Y:   stringsOf(messages, func(a curvemodel.Affine) string { return a.Y.String() }),
		PermutationN: cf.tiles,
		PackedPerm:   packed,
		Randomness:   bigStrings(randomness),
	}

	data, err := cbor.Marshal(ff)
	if err != nil {
		return fmt.Errorf("fixture: encode: %w", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return fmt.Errorf("fixture: write %s: %w", *out, err)
	}

	logging.Logger().Info().Str("file", *out).Int("tiles", cf.tiles).Msg("fixture written")
	return nil
}

func loadFixture(path string) (*fixtureFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load fixture %s: %w", path, err)
	}
	var ff fixtureFile
	if err := cbor.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", path, err)
	}
	return &ff, nil
}

func parseFieldElement(s string) (fr.Element, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fr.Element{}, fmt.Errorf("invalid field element %q", s)
	}
	var e fr.Element
	e.SetBigInt(v)
	return e, nil
}

func (ff *fixtureFile) toWitness() (*circuit.ShuffleEncryptCircuit, error) {
	aggPKX, err := parseFieldElement(ff.AggPKX)
	if err != nil {
		return nil, fmt.Errorf("fixture: agg_pk.x: %w", err)
	}
	aggPKY, err := parseFieldElement(ff.AggPKY)
	if err != nil {
		return nil, fmt.Errorf("fixture: agg_pk.y: %w", err)
	}
	aggPK := curvemodel.Affine{X: aggPKX, Y: aggPKY}

	n := ff.N
	messages := make([]circuit.Ciphertext, n)
	for i := 0; i < n; i++ {
		x, err := parseFieldElement(ff.MessageC1X[i])
		if err != nil {
			return nil, fmt.Errorf("fixture: message %d x: %w", i, err)
		}
		y, err := parseFieldElement(ff.MessageC1Y[i])
		if err != nil {
			return nil, fmt.Errorf("fixture: message %d y: %w", i, err)
		}
		messages[i] = circuit.Ciphertext{C0: curvemodel.Identity(), C1: curvemodel.Affine{X: x, Y: y}}
	}

	perm, err := proofbundle.UnpackPermutation(ff.PackedPerm, ff.PermutationN, n)
	if err != nil {
		return nil, fmt.Errorf("fixture: unpack permutation: %w", err)
	}

	randomness := make([]*big.Int, n)
	for i, s := range ff.Randomness {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, fmt.Errorf("fixture: invalid randomness %d", i)
		}
		randomness[i] = v
	}

	return circuit.BuildWitness(aggPK, messages, perm, randomness)
}

func resolveSeed(hexSeed string) ([]byte, error) {
	if hexSeed == "" {
		seed := make([]byte, 32)
		if _, err := rand.Read(seed); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
		return seed, nil
	}
	seed, err := hex.DecodeString(hexSeed)
	if err != nil {
		return nil, fmt.Errorf("seed: invalid hex: %w", err)
	}
	return seed, nil
}

func curveOrderBound() *big.Int {
	// Grumpkin's base field equals BN254's scalar field; its order is the
	// bound every in-circuit scalar (randomness, the aggregate key) must
	// stay under.
	return curvemodel.FieldOrder()
}

func stringsOf(points []curvemodel.Affine, f func(curvemodel.Affine) string) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = f(p)
	}
	return out
}

func bigStrings(vs []*big.Int) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	return out
}
