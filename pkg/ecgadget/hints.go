package ecgadget

import (
	"math/big"

	"github.com/consensys/gnark/constraint/solver"
)

func init() {
	solver.RegisterHint(GetHints()...)
}

// GetHints returns every hint function pkg/ecgadget relies on.
func GetHints() []solver.Hint {
	return []solver.Hint{zInvHint}
}

// zInvHint computes the witness value of Z^-1, or 0 when Z = 0, exactly the
// choice spec §3 requires the prover to make: "the witness must choose
// Zinv = 0 when Z = 0; the circuit cannot enforce uniqueness without the
// Zinv hint." The corresponding in-circuit invariant is enforced separately
// by ZInvGate.
func zInvHint(mod *big.Int, inputs, outputs []*big.Int) error {
	z := inputs[0]
	if z.Sign() == 0 {
		outputs[0].SetInt64(0)
		return nil
	}
	outputs[0].ModInverse(z, mod)
	return nil
}
