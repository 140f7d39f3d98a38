package main

import (
	"crypto/sha256"
	"math/big"

	"github.com/consensys/gnark/frontend"
)

type fieldVariable = frontend.Variable

// bigIntBytes extracts the big-endian byte encoding of a witness field that
// BuildWitness populated with a *big.Int (every public field of
// ShuffleEncryptCircuit is assigned this way).
func bigIntBytes(v fieldVariable) []byte {
	b, ok := v.(*big.Int)
	if !ok {
		return nil
	}
	return b.Bytes()
}

func sha256Sum(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}
