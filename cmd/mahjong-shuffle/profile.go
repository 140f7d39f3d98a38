package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	googlepprof "github.com/google/pprof/profile"

	"github.com/zk-mahjong/shuffle-circuit/internal/logging"
)

// profileSession owns the lifetime of an optional CPU profile: startCPUProfile
// opens the output file and begins sampling; stop ends sampling, closes the file,
// then re-parses it with google/pprof/profile to log a short summary (total
// samples captured), the way `go tool pprof` itself reads profiles back.
type profileSession struct {
	path string
	f    *os.File
}

func startCPUProfile(path string) (*profileSession, error) {
	if path == "" {
		return &profileSession{}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("cpuprofile: create %s: %w", path, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("cpuprofile: start: %w", err)
	}
	return &profileSession{path: path, f: f}, nil
}

func (s *profileSession) stop() error {
	if s.f == nil {
		return nil
	}
	pprof.StopCPUProfile()
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("cpuprofile: close: %w", err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("cpuprofile: reread %s: %w", s.path, err)
	}
	prof, err := googlepprof.ParseData(data)
	if err != nil {
		return fmt.Errorf("cpuprofile: parse %s: %w", s.path, err)
	}
	logging.Logger().Info().
		Str("file", s.path).
		Int("samples", len(prof.Sample)).
		Int64("duration_ns", prof.DurationNanos).
		Msg("cpu profile written")
	return nil
}

func writeMemProfile(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("memprofile: create %s: %w", path, err)
	}
	defer f.Close()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("memprofile: write: %w", err)
	}
	return nil
}
