//go:build !icicle

package main

import "errors"

// errGPUNotBuilt is returned by the setup and prove subcommands when --gpu
// is set and the binary was not built with -tags icicle.
var errGPUNotBuilt = errors.New("mahjong-shuffle: built without GPU support, rebuild with -tags icicle")

func gpuAccelerate(enabled bool) error {
	if !enabled {
		return nil
	}
	return errGPUNotBuilt
}
