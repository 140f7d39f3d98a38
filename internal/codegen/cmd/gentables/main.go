// Command gentables regenerates pkg/tables/pow2_literals_gen.go. Run it with
// `go generate ./...` from the module root; pkg/tables/pow2.go carries the
// matching go:generate directive.
package main

import (
	"flag"
	"log"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/zk-mahjong/shuffle-circuit/internal/codegen"
)

func main() {
	out := flag.String("out", "pkg/tables/pow2_literals_gen.go", "output file path")
	rows := flag.Int("rows", 255, "number of (i, 2^i) rows to emit")
	flag.Parse()

	values := make([]string, *rows)
	var v fr.Element
	v.SetOne()
	for i := 0; i < *rows; i++ {
		values[i] = v.BigInt(new(big.Int)).String()
		v.Double(&v)
	}

	if err := codegen.Generate(*out, values); err != nil {
		log.Fatalf("gentables: %v", err)
	}
}
