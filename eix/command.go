package eix

import (
	"context"
	"log"
	"os/exec"
	"strings"

	"golang.org/x/xerrors"
)

const DefaultBin = "eix"

// Runner invokes the system eix binary.
type Runner struct {
	Bin string
}

func NewRunner() Runner {
	return Runner{Bin: DefaultBin}
}

func (r Runner) bin() string {
	if r.Bin == "" {
		return DefaultBin
	}
	return r.Bin
}

// Found reports whether the binary is on PATH.
func (r Runner) Found() bool {
	_, err := exec.LookPath(r.bin())
	return err == nil
}

// HasCache reports whether the local index cache exists and is usable.
func (r Runner) HasCache(ctx context.Context) bool {
	return exec.CommandContext(ctx, r.bin(), "-Qq0").Run() == nil
}

// HasRemoteCache probes the remote index cache. The probe spawns a
// process; callers that ask repeatedly should memoize through CacheState.
func (r Runner) HasRemoteCache(ctx context.Context) bool {
	return exec.CommandContext(ctx, r.bin(), "-QRq0").Run() == nil
}

// Search runs an index query built with SearchArgs and parses its XML
// output. eix exits non-zero when nothing matched, which is an empty
// result rather than an error.
func (r Runner) Search(ctx context.Context, args []string) ([]Package, error) {
	out, err := exec.CommandContext(ctx, r.bin(), args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if xerrors.As(err, &exitErr) {
			log.Printf("eix query exited with status %d", exitErr.ExitCode())
			return nil, nil
		}
		return nil, xerrors.Errorf("failed to run eix: %w", err)
	}
	return ParsePackages(out), nil
}

// SearchArgs builds the argument list for an XML index query. Remote-cache
// queries add -R. extraFlags carries the configured search flags and is
// dropped when the query itself contains flag arguments.
func SearchArgs(remoteCache bool, extraFlags, query []string) []string {
	args := []string{"-Q", "--xml"}
	if remoteCache {
		args = []string{"-RQ", "--xml"}
	}
	for _, q := range query {
		if strings.HasPrefix(q, "-") {
			extraFlags = nil
			break
		}
	}
	args = append(args, extraFlags...)
	return append(args, query...)
}

// CacheState memoizes the remote-cache probe across queries. The zero
// value is ready to use.
type CacheState struct {
	remote *bool
}

// Remote returns the memoized probe result, running probe on first use.
func (s *CacheState) Remote(probe func() bool) bool {
	if s.remote == nil {
		v := probe()
		s.remote = &v
	}
	return *s.remote
}

// Reset discards the memoized answer, e.g. after the remote cache has
// been rebuilt.
func (s *CacheState) Reset() {
	s.remote = nil
}
