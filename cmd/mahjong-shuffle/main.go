// Command mahjong-shuffle is a demo CLI around the shuffle/re-encrypt
// circuit: compile it, run a PLONK setup, produce a proof for a fixture or
// a file-supplied witness, and verify a proof bundle. It exists to exercise
// the library end to end; the actual constraint system lives in pkg/circuit.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/zk-mahjong/shuffle-circuit/internal/logging"
	"github.com/zk-mahjong/shuffle-circuit/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logging.SetConsole(zerolog.InfoLevel)
	log := logging.Logger()

	if len(args) == 0 {
		usage()
		return 2
	}

	cmd, rest := args[0], args[1:]
	var err error
	switch cmd {
	case "compile":
		err = cmdCompile(rest)
	case "setup":
		err = cmdSetup(rest)
	case "prove":
		err = cmdProve(rest)
	case "verify":
		err = cmdVerify(rest)
	case "fixture":
		err = cmdFixture(rest)
	case "version":
		fmt.Println(version.String())
		return 0
	default:
		usage()
		return 2
	}
	if err != nil {
		log.Error().Err(err).Str("command", cmd).Msg("command failed")
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: mahjong-shuffle <compile|setup|prove|verify|fixture|version> [flags]")
}

// commonFlags are accepted by every subcommand that touches the prover.
type commonFlags struct {
	tiles      int
	cpuProfile string
	memProfile string
	gpu        bool
}

func bindCommonFlags(fs *flag.FlagSet) *commonFlags {
	c := &commonFlags{}
	fs.IntVar(&c.tiles, "n", 4, "number of tiles")
	fs.StringVar(&c.cpuProfile, "cpuprofile", "", "write a CPU profile to this file")
	fs.StringVar(&c.memProfile, "memprofile", "", "write a heap profile to this file")
	fs.BoolVar(&c.gpu, "gpu", false, "attempt GPU-accelerated MSM (requires an icicle build)")
	return c
}
