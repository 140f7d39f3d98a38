// Package proofbundle defines the canonical on-disk encoding of a proof
// artifact: the PLONK proof bytes, a digest of the verifying key, the public
// instance, and the circuit version that produced them. Bundles are CBOR
// encoded and LZSS compressed before being written, the same two steps
// real-world gnark-adjacent tooling applies to proof/witness blobs before
// shipping them over a network or into storage.
package proofbundle

import (
	"fmt"

	"github.com/blang/semver/v4"
	"github.com/consensys/compress/lzss"
	"github.com/fxamacker/cbor/v2"
)

// Bundle is the canonical serialized shape of a completed proof.
type Bundle struct {
	Version        string   `cbor:"version"`
	VKDigest       []byte   `cbor:"vk_digest"`
	ProofBytes     []byte   `cbor:"proof"`
	PublicInstance [][]byte `cbor:"public_instance"`
}

// Encode CBOR-encodes and then LZSS-compresses b.
func Encode(b Bundle) ([]byte, error) {
	raw, err := cbor.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("proofbundle: cbor marshal: %w", err)
	}
	settings := lzss.BestCompression()
	compressed, err := lzss.Compress(raw, settings)
	if err != nil {
		return nil, fmt.Errorf("proofbundle: lzss compress: %w", err)
	}
	return compressed, nil
}

// Decode reverses Encode.
func Decode(data []byte) (Bundle, error) {
	settings := lzss.BestCompression()
	raw, err := lzss.Decompress(data, settings)
	if err != nil {
		return Bundle{}, fmt.Errorf("proofbundle: lzss decompress: %w", err)
	}
	var b Bundle
	if err := cbor.Unmarshal(raw, &b); err != nil {
		return Bundle{}, fmt.Errorf("proofbundle: cbor unmarshal: %w", err)
	}
	return b, nil
}

// ParsedVersion returns the bundle's stamped version.
func (b Bundle) ParsedVersion() (semver.Version, error) {
	return semver.Parse(b.Version)
}
